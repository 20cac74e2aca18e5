package service

import (
	"context"

	"marketplace-api/internal/entity"
	"marketplace-api/internal/repo"
)

type Diagnostics interface {
	Ping() error
}

type Auth interface {
	Register(ctx context.Context, input *RegisterInput) error
	Login(ctx context.Context, email, password string) (*entity.LoginOutputModel, error)
}

type Project interface {
	CreateProject(ctx context.Context, input *entity.CreateProjectInput) (*entity.ProjectOutputModel, error)
	GetAllProjects(ctx context.Context, userId, role string) ([]entity.ProjectDetailsOutputModel, error)
	GetSingleProject(ctx context.Context, projectId string) (*entity.ProjectDetailsOutputModel, error)
	GetMyProjects(ctx context.Context, buyerId string) ([]entity.ProjectOutputModel, error)
	GetSellerProjects(ctx context.Context, sellerId string) ([]entity.SellerProjectOutputModel, error)

	SelectSeller(ctx context.Context, projectId, buyerId, sellerId string) (*entity.ProjectOutputModel, error)
	AcceptBid(ctx context.Context, bidId, buyerId string) (*entity.ProjectOutputModel, error)
	MarkComplete(ctx context.Context, projectId, buyerId string) (*entity.ProjectOutputModel, error)
}

type Bid interface {
	PlaceBid(ctx context.Context, input *entity.CreateBidInput, callerRole string) (*entity.BidOutputModel, error)
	GetBidsByProject(ctx context.Context, projectId string) ([]entity.BidOutputModel, error)
}

type Deliverable interface {
	SaveDeliverable(ctx context.Context, input *entity.CreateDeliverableInput) (*entity.DeliverableOutputModel, error)
	GetProjectDeliverables(ctx context.Context, projectId string) ([]entity.DeliverableOutputModel, error)
}

// Mailer is the notification collaborator used on seller assignment.
type Mailer interface {
	SendSellerAssigned(to, sellerName, buyerName, projectTitle string) error
}

type Services struct {
	Diagnostics Diagnostics
	Auth        Auth
	Project     Project
	Bid         Bid
	Deliverable Deliverable
}

func NewServices(repos *repo.Repositories, tokens *TokenManager, mailer Mailer) *Services {
	return &Services{
		Diagnostics: NewDiagnosticsService(repos),
		Auth:        NewAuthService(repos, tokens),
		Project:     NewProjectService(repos, mailer),
		Bid:         NewBidService(repos),
		Deliverable: NewDeliverableService(repos),
	}
}
