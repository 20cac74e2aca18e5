package repo

import (
	"context"

	"marketplace-api/internal/entity"
	"marketplace-api/internal/repo/pgdb"
	"marketplace-api/pkg/postgres"

	"github.com/google/uuid"
)

type Diagnostics interface {
	Ping() error
}

type User interface {
	CreateUser(ctx context.Context, input *entity.CreateUserInput) (uuid.UUID, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserById(ctx context.Context, id string) (*entity.User, error)
}

type Project interface {
	CreateProject(ctx context.Context, input *entity.CreateProjectInput) (uuid.UUID, error)
	GetProjectById(ctx context.Context, id string) (*entity.Project, error)
	GetProjectsByBuyerId(ctx context.Context, buyerId string) ([]entity.Project, error)
	GetProjectsBySellerId(ctx context.Context, sellerId string) ([]entity.Project, error)
	GetMarketplaceProjects(ctx context.Context) ([]entity.Project, error)
	SetProjectSeller(ctx context.Context, projectId string, sellerId uuid.NullUUID, newStatus string) error
	UpdateProjectStatusById(ctx context.Context, projectId string, newStatus string) error
}

type Bid interface {
	CreateBid(ctx context.Context, input *entity.CreateBidInput) (uuid.UUID, error)
	GetBidById(ctx context.Context, id string) (*entity.Bid, error)
	GetBidsByProjectId(ctx context.Context, projectId string) ([]entity.BidWithBidder, error)
}

type Deliverable interface {
	CreateDeliverable(ctx context.Context, input *entity.CreateDeliverableInput) (uuid.UUID, error)
	GetDeliverableById(ctx context.Context, id string) (*entity.Deliverable, error)
	GetDeliverablesByProjectId(ctx context.Context, projectId string) ([]entity.Deliverable, error)
}

type Repositories struct {
	Diagnostics
	User
	Project
	Bid
	Deliverable
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics: pgdb.NewDiagnosticsRepo(p),
		User:        pgdb.NewUserRepo(p),
		Project:     pgdb.NewProjectRepo(p),
		Bid:         pgdb.NewBidRepo(p),
		Deliverable: pgdb.NewDeliverableRepo(p),
	}
}
