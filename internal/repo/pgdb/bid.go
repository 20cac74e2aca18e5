package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"marketplace-api/internal/entity"
	"marketplace-api/internal/repo/repo_errors"
	"marketplace-api/pkg/postgres"

	"github.com/google/uuid"
)

type BidRepo struct {
	*postgres.Postgres
}

func NewBidRepo(pgdb *postgres.Postgres) *BidRepo {
	return &BidRepo{pgdb}
}

func (r *BidRepo) CreateBid(ctx context.Context, input *entity.CreateBidInput) (uuid.UUID, error) {
	projectId, err := uuid.Parse(input.ProjectId)
	if err != nil {
		return uuid.Nil, err
	}

	sellerId, err := uuid.Parse(input.SellerId)
	if err != nil {
		return uuid.Nil, err
	}

	createBidSql, args, _ := r.SqlBuilder.
		Insert("bid").
		Columns("project_id", "seller_id", "amount", "eta_days", "message").
		Values(projectId, sellerId, input.Amount, input.EtaDays, input.Message).
		Suffix("RETURNING id").
		ToSql()

	var bidId uuid.UUID
	err = r.Database.QueryRowContext(ctx, createBidSql, args...).Scan(&bidId)
	if err != nil {
		return uuid.Nil, err
	}

	return bidId, nil
}

func (r *BidRepo) GetBidById(ctx context.Context, id string) (*entity.Bid, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getBidSql, args, _ := r.SqlBuilder.
		Select("id, project_id, seller_id, amount, eta_days, message, created_at").
		From("bid").
		Where("id = ?", uuidForm).
		ToSql()

	var bid entity.Bid
	var createdAt time.Time

	row := r.Database.QueryRowContext(ctx, getBidSql, args...)
	err = row.Scan(&bid.Id, &bid.ProjectId, &bid.SellerId, &bid.Amount, &bid.EtaDays, &bid.Message, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	bid.CreatedAt = createdAt.Format(time.RFC3339)

	return &bid, nil
}

// GetBidsByProjectId lists a project's bids newest first, each joined
// with its bidder's public identity.
func (r *BidRepo) GetBidsByProjectId(ctx context.Context, projectId string) ([]entity.BidWithBidder, error) {
	uuidForm, err := uuid.Parse(projectId)
	if err != nil {
		return nil, err
	}

	getBidsSql, args, _ := r.SqlBuilder.
		Select("bid.id, bid.project_id, bid.seller_id, bid.amount, bid.eta_days, bid.message, bid.created_at, users.id, users.name, users.email").
		From("bid").
		InnerJoin("users on users.id = bid.seller_id").
		Where("bid.project_id = ?", uuidForm).
		OrderBy("bid.created_at DESC").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getBidsSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bids := make([]entity.BidWithBidder, 0)
	for rows.Next() {
		var item entity.BidWithBidder
		var createdAt time.Time

		err := rows.Scan(&item.Bid.Id, &item.Bid.ProjectId, &item.Bid.SellerId, &item.Bid.Amount,
			&item.Bid.EtaDays, &item.Bid.Message, &createdAt,
			&item.Bidder.Id, &item.Bidder.Name, &item.Bidder.Email)
		if err != nil {
			return nil, err
		}

		item.Bid.CreatedAt = createdAt.Format(time.RFC3339)
		bids = append(bids, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bids, nil
}
