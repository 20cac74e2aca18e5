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
	"github.com/lib/pq"
)

type UserRepo struct {
	*postgres.Postgres
}

func NewUserRepo(pgdb *postgres.Postgres) *UserRepo {
	return &UserRepo{pgdb}
}

func (r *UserRepo) CreateUser(ctx context.Context, input *entity.CreateUserInput) (uuid.UUID, error) {
	createUserSql, args, _ := r.SqlBuilder.
		Insert("users").
		Columns("name", "email", "password_hash", "role").
		Values(input.Name, input.Email, input.PasswordHash, input.Role).
		Suffix("RETURNING id").
		ToSql()

	var userId uuid.UUID
	err := r.Database.QueryRowContext(ctx, createUserSql, args...).Scan(&userId)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return uuid.Nil, repo_errors.ErrAlreadyExists
		}

		return uuid.Nil, err
	}

	return userId, nil
}

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	getUserSql, args, _ := r.SqlBuilder.
		Select("id, name, email, password_hash, role, created_at").
		From("users").
		Where("email = ?", email).
		ToSql()

	return r.scanUser(ctx, getUserSql, args...)
}

func (r *UserRepo) GetUserById(ctx context.Context, id string) (*entity.User, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getUserSql, args, _ := r.SqlBuilder.
		Select("id, name, email, password_hash, role, created_at").
		From("users").
		Where("id = ?", uuidForm).
		ToSql()

	return r.scanUser(ctx, getUserSql, args...)
}

func (r *UserRepo) scanUser(ctx context.Context, sqlReq string, args ...interface{}) (*entity.User, error) {
	var user entity.User
	var createdAt time.Time

	row := r.Database.QueryRowContext(ctx, sqlReq, args...)
	err := row.Scan(&user.Id, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	user.CreatedAt = createdAt.Format(time.RFC3339)

	return &user, nil
}
