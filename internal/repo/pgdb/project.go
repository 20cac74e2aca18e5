package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"marketplace-api/internal/common"
	"marketplace-api/internal/entity"
	"marketplace-api/internal/repo/repo_errors"
	"marketplace-api/pkg/postgres"

	"github.com/google/uuid"
)

const deadlineLayout = "2006-01-02"

const projectColumns = "id, title, description, budget_min, budget_max, deadline, buyer_id, seller_id, status, created_at"

type ProjectRepo struct {
	*postgres.Postgres
}

func NewProjectRepo(pgdb *postgres.Postgres) *ProjectRepo {
	return &ProjectRepo{pgdb}
}

func (r *ProjectRepo) CreateProject(ctx context.Context, input *entity.CreateProjectInput) (uuid.UUID, error) {
	buyerId, err := uuid.Parse(input.BuyerId)
	if err != nil {
		return uuid.Nil, err
	}

	createProjectSql, args, _ := r.SqlBuilder.
		Insert("project").
		Columns("title", "description", "budget_min", "budget_max", "deadline", "buyer_id", "status").
		Values(input.Title, input.Description, input.BudgetMin, input.BudgetMax, input.Deadline, buyerId, input.Status).
		Suffix("RETURNING id").
		ToSql()

	var projectId uuid.UUID
	err = r.Database.QueryRowContext(ctx, createProjectSql, args...).Scan(&projectId)
	if err != nil {
		return uuid.Nil, err
	}

	return projectId, nil
}

func (r *ProjectRepo) GetProjectById(ctx context.Context, id string) (*entity.Project, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getProjectSql, args, _ := r.SqlBuilder.
		Select(projectColumns).
		From("project").
		Where("id = ?", uuidForm).
		ToSql()

	row := r.Database.QueryRowContext(ctx, getProjectSql, args...)

	project, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return project, nil
}

func (r *ProjectRepo) GetProjectsByBuyerId(ctx context.Context, buyerId string) ([]entity.Project, error) {
	uuidForm, err := uuid.Parse(buyerId)
	if err != nil {
		return nil, err
	}

	getProjectsSql, args, _ := r.SqlBuilder.
		Select(projectColumns).
		From("project").
		Where("buyer_id = ?", uuidForm).
		OrderBy("created_at DESC").
		ToSql()

	return r.queryProjects(ctx, getProjectsSql, args...)
}

func (r *ProjectRepo) GetProjectsBySellerId(ctx context.Context, sellerId string) ([]entity.Project, error) {
	uuidForm, err := uuid.Parse(sellerId)
	if err != nil {
		return nil, err
	}

	getProjectsSql, args, _ := r.SqlBuilder.
		Select(projectColumns).
		From("project").
		Where("seller_id = ?", uuidForm).
		OrderBy("created_at DESC").
		ToSql()

	return r.queryProjects(ctx, getProjectsSql, args...)
}

// GetMarketplaceProjects returns the open marketplace: projects still
// seeking a seller, newest first.
func (r *ProjectRepo) GetMarketplaceProjects(ctx context.Context) ([]entity.Project, error) {
	getProjectsSql, args, _ := r.SqlBuilder.
		Select(projectColumns).
		From("project").
		Where("status = ? OR status = ?", common.Open, common.Pending).
		Where("seller_id IS NULL").
		OrderBy("created_at DESC").
		ToSql()

	return r.queryProjects(ctx, getProjectsSql, args...)
}

// SetProjectSeller updates the seller assignment and status in one
// statement. A null sellerId clears the assignment (compensation path).
func (r *ProjectRepo) SetProjectSeller(ctx context.Context, projectId string, sellerId uuid.NullUUID, newStatus string) error {
	uuidForm, err := uuid.Parse(projectId)
	if err != nil {
		return err
	}

	updateSql, args, _ := r.SqlBuilder.
		Update("project").
		Set("seller_id", sellerId).
		Set("status", newStatus).
		Where("id = ?", uuidForm).
		ToSql()

	result, err := r.Database.ExecContext(ctx, updateSql, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}

func (r *ProjectRepo) UpdateProjectStatusById(ctx context.Context, projectId string, newStatus string) error {
	uuidForm, err := uuid.Parse(projectId)
	if err != nil {
		return err
	}

	updateSql, args, _ := r.SqlBuilder.
		Update("project").
		Set("status", newStatus).
		Where("id = ?", uuidForm).
		ToSql()

	result, err := r.Database.ExecContext(ctx, updateSql, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}

func (r *ProjectRepo) queryProjects(ctx context.Context, sqlReq string, args ...interface{}) ([]entity.Project, error) {
	rows, err := r.Database.QueryContext(ctx, sqlReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]entity.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}

		projects = append(projects, *project)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row rowScanner) (*entity.Project, error) {
	var project entity.Project
	var deadline, createdAt time.Time

	err := row.Scan(&project.Id, &project.Title, &project.Description, &project.BudgetMin,
		&project.BudgetMax, &deadline, &project.BuyerId, &project.SellerId, &project.Status, &createdAt)
	if err != nil {
		return nil, err
	}

	project.Deadline = deadline.Format(deadlineLayout)
	project.CreatedAt = createdAt.Format(time.RFC3339)

	return &project, nil
}
