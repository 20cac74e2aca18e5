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

type DeliverableRepo struct {
	*postgres.Postgres
}

func NewDeliverableRepo(pgdb *postgres.Postgres) *DeliverableRepo {
	return &DeliverableRepo{pgdb}
}

func (r *DeliverableRepo) CreateDeliverable(ctx context.Context, input *entity.CreateDeliverableInput) (uuid.UUID, error) {
	projectId, err := uuid.Parse(input.ProjectId)
	if err != nil {
		return uuid.Nil, err
	}

	createSql, args, _ := r.SqlBuilder.
		Insert("deliverable").
		Columns("project_id", "file_url").
		Values(projectId, input.FileUrl).
		Suffix("RETURNING id").
		ToSql()

	var deliverableId uuid.UUID
	err = r.Database.QueryRowContext(ctx, createSql, args...).Scan(&deliverableId)
	if err != nil {
		return uuid.Nil, err
	}

	return deliverableId, nil
}

func (r *DeliverableRepo) GetDeliverableById(ctx context.Context, id string) (*entity.Deliverable, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getSql, args, _ := r.SqlBuilder.
		Select("id, project_id, file_url, created_at").
		From("deliverable").
		Where("id = ?", uuidForm).
		ToSql()

	var deliverable entity.Deliverable
	var createdAt time.Time

	row := r.Database.QueryRowContext(ctx, getSql, args...)
	err = row.Scan(&deliverable.Id, &deliverable.ProjectId, &deliverable.FileUrl, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	deliverable.CreatedAt = createdAt.Format(time.RFC3339)

	return &deliverable, nil
}

func (r *DeliverableRepo) GetDeliverablesByProjectId(ctx context.Context, projectId string) ([]entity.Deliverable, error) {
	uuidForm, err := uuid.Parse(projectId)
	if err != nil {
		return nil, err
	}

	getSql, args, _ := r.SqlBuilder.
		Select("id, project_id, file_url, created_at").
		From("deliverable").
		Where("project_id = ?", uuidForm).
		OrderBy("created_at DESC").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliverables := make([]entity.Deliverable, 0)
	for rows.Next() {
		var deliverable entity.Deliverable
		var createdAt time.Time

		err := rows.Scan(&deliverable.Id, &deliverable.ProjectId, &deliverable.FileUrl, &createdAt)
		if err != nil {
			return nil, err
		}

		deliverable.CreatedAt = createdAt.Format(time.RFC3339)
		deliverables = append(deliverables, deliverable)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return deliverables, nil
}
