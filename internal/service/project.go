package service

import (
	"context"
	"errors"

	"marketplace-api/internal/common"
	"marketplace-api/internal/entity"
	"marketplace-api/internal/repo"
	"marketplace-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

type ProjectService struct {
	projectRepo     repo.Project
	bidRepo         repo.Bid
	deliverableRepo repo.Deliverable
	userRepo        repo.User
	mailer          Mailer
}

func NewProjectService(repos *repo.Repositories, mailer Mailer) *ProjectService {
	return &ProjectService{
		projectRepo:     repos.Project,
		bidRepo:         repos.Bid,
		deliverableRepo: repos.Deliverable,
		userRepo:        repos.User,
		mailer:          mailer,
	}
}

func (s *ProjectService) CreateProject(ctx context.Context, input *entity.CreateProjectInput) (*entity.ProjectOutputModel, error) {
	input.Status = common.Open

	projectId, err := s.projectRepo.CreateProject(ctx, input)
	if err != nil {
		return nil, err
	}

	project, err := s.projectRepo.GetProjectById(ctx, projectId.String())
	if err != nil {
		return nil, err
	}

	return mapProject(project), nil
}

// GetAllProjects is the role-scoped listing: buyers see their own
// projects with bids and bidder identities, sellers see the open
// marketplace with each project's buyer attached.
func (s *ProjectService) GetAllProjects(ctx context.Context, userId, role string) ([]entity.ProjectDetailsOutputModel, error) {
	switch role {
	case common.RoleBuyer:
		return s.buyerProjectListing(ctx, userId)
	case common.RoleSeller:
		return s.marketplaceListing(ctx)
	default:
		return nil, ErrInvalidRole
	}
}

func (s *ProjectService) buyerProjectListing(ctx context.Context, buyerId string) ([]entity.ProjectDetailsOutputModel, error) {
	projects, err := s.projectRepo.GetProjectsByBuyerId(ctx, buyerId)
	if err != nil {
		return nil, err
	}

	buyer, err := s.userRepo.GetUserById(ctx, buyerId)
	if err != nil {
		return nil, err
	}

	listing := make([]entity.ProjectDetailsOutputModel, 0, len(projects))
	for _, project := range projects {
		bids, err := s.bidRepo.GetBidsByProjectId(ctx, project.Id.String())
		if err != nil {
			return nil, err
		}

		details := entity.ProjectDetailsOutputModel{
			ProjectOutputModel: *mapProject(&project),
			Buyer:              mapUserRef(buyer),
			Bids:               mapBidsWithBidders(bids),
		}
		listing = append(listing, details)
	}

	return listing, nil
}

func (s *ProjectService) marketplaceListing(ctx context.Context) ([]entity.ProjectDetailsOutputModel, error) {
	projects, err := s.projectRepo.GetMarketplaceProjects(ctx)
	if err != nil {
		return nil, err
	}

	listing := make([]entity.ProjectDetailsOutputModel, 0, len(projects))
	for _, project := range projects {
		buyer, err := s.userRepo.GetUserById(ctx, project.BuyerId.String())
		if err != nil {
			return nil, err
		}

		bids, err := s.bidRepo.GetBidsByProjectId(ctx, project.Id.String())
		if err != nil {
			return nil, err
		}

		details := entity.ProjectDetailsOutputModel{
			ProjectOutputModel: *mapProject(&project),
			Buyer:              mapUserRef(buyer),
			Bids:               mapBidsPlain(bids),
		}
		listing = append(listing, details)
	}

	return listing, nil
}

// GetSingleProject returns the project with buyer, seller, bids and
// deliverables attached. Readable by any authenticated caller.
func (s *ProjectService) GetSingleProject(ctx context.Context, projectId string) (*entity.ProjectDetailsOutputModel, error) {
	project, err := s.projectRepo.GetProjectById(ctx, projectId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrProjectNotFound
		}

		return nil, err
	}

	buyer, err := s.userRepo.GetUserById(ctx, project.BuyerId.String())
	if err != nil {
		return nil, err
	}

	details := &entity.ProjectDetailsOutputModel{
		ProjectOutputModel: *mapProject(project),
		Buyer:              mapUserRef(buyer),
	}

	if project.SellerId.Valid {
		seller, err := s.userRepo.GetUserById(ctx, project.SellerId.UUID.String())
		if err != nil {
			return nil, err
		}
		details.Seller = mapUserRef(seller)
	}

	bids, err := s.bidRepo.GetBidsByProjectId(ctx, projectId)
	if err != nil {
		return nil, err
	}
	details.Bids = mapBidsWithBidders(bids)

	deliverables, err := s.deliverableRepo.GetDeliverablesByProjectId(ctx, projectId)
	if err != nil {
		return nil, err
	}
	details.Deliverables = mapDeliverables(deliverables)

	return details, nil
}

func (s *ProjectService) GetMyProjects(ctx context.Context, buyerId string) ([]entity.ProjectOutputModel, error) {
	projects, err := s.projectRepo.GetProjectsByBuyerId(ctx, buyerId)
	if err != nil {
		return nil, err
	}

	return mapProjects(projects), nil
}

func (s *ProjectService) GetSellerProjects(ctx context.Context, sellerId string) ([]entity.SellerProjectOutputModel, error) {
	projects, err := s.projectRepo.GetProjectsBySellerId(ctx, sellerId)
	if err != nil {
		return nil, err
	}

	return mapSellerProjects(projects), nil
}

// SelectSeller is the single seller-selection path: it checks ownership,
// requires the project to still be open, assigns the seller, moves the
// project to IN_PROGRESS and notifies the seller by mail. When the
// notification fails the assignment is rolled back, so the stored state
// never silently diverges from what the caller was told.
func (s *ProjectService) SelectSeller(ctx context.Context, projectId, buyerId, sellerId string) (*entity.ProjectOutputModel, error) {
	project, err := s.projectRepo.GetProjectById(ctx, projectId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrProjectNotFound
		}

		return nil, err
	}

	if project.BuyerId.String() != buyerId {
		return nil, ErrNotProjectOwner
	}

	if !common.IsBiddable(project.Status) {
		return nil, ErrProjectNotBiddable
	}

	seller, err := s.userRepo.GetUserById(ctx, sellerId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrSellerNotFound
		}

		return nil, err
	}

	buyer, err := s.userRepo.GetUserById(ctx, buyerId)
	if err != nil {
		return nil, err
	}

	assigned := uuid.NullUUID{UUID: seller.Id, Valid: true}
	if err := s.projectRepo.SetProjectSeller(ctx, projectId, assigned, common.InProgress); err != nil {
		return nil, err
	}

	if err := s.mailer.SendSellerAssigned(seller.Email, seller.Name, buyer.Name, project.Title); err != nil {
		// compensate: put the project back the way it was
		if revertErr := s.projectRepo.SetProjectSeller(ctx, projectId, uuid.NullUUID{}, project.Status); revertErr != nil {
			return nil, revertErr
		}

		return nil, ErrSellerNotNotified
	}

	updated, err := s.projectRepo.GetProjectById(ctx, projectId)
	if err != nil {
		return nil, err
	}

	return mapProject(updated), nil
}

// AcceptBid is the bid-scoped alias: it resolves the bid to its project
// and seller, then runs the same selection path.
func (s *ProjectService) AcceptBid(ctx context.Context, bidId, buyerId string) (*entity.ProjectOutputModel, error) {
	bid, err := s.bidRepo.GetBidById(ctx, bidId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrBidNotFound
		}

		return nil, err
	}

	return s.SelectSeller(ctx, bid.ProjectId.String(), buyerId, bid.SellerId.String())
}

// MarkComplete moves an IN_PROGRESS project to its terminal COMPLETED
// state. A second call fails because the status check no longer holds.
func (s *ProjectService) MarkComplete(ctx context.Context, projectId, buyerId string) (*entity.ProjectOutputModel, error) {
	project, err := s.projectRepo.GetProjectById(ctx, projectId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrProjectNotFound
		}

		return nil, err
	}

	if project.BuyerId.String() != buyerId {
		return nil, ErrNotProjectOwner
	}

	if project.Status != common.InProgress {
		return nil, ErrProjectNotInProgress
	}

	if err := s.projectRepo.UpdateProjectStatusById(ctx, projectId, common.Completed); err != nil {
		return nil, err
	}

	updated, err := s.projectRepo.GetProjectById(ctx, projectId)
	if err != nil {
		return nil, err
	}

	return mapProject(updated), nil
}
