package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-api/internal/entity"
	"marketplace-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

// in-memory repositories used by the service tests

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, input *entity.CreateUserInput) (uuid.UUID, error) {
	for _, u := range r.users {
		if u.Email == input.Email {
			return uuid.Nil, repo_errors.ErrAlreadyExists
		}
	}

	user := &entity.User{
		Id:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		Role:         input.Role,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}
	r.users = append(r.users, user)

	return user.Id, nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}

	return nil, repo_errors.ErrNotFound
}

func (r *fakeUserRepo) GetUserById(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Id.String() == id {
			return u, nil
		}
	}

	return nil, repo_errors.ErrNotFound
}

func (r *fakeUserRepo) add(name, email, role string) *entity.User {
	user := &entity.User{
		Id:    uuid.New(),
		Name:  name,
		Email: email,
		Role:  role,
	}
	r.users = append(r.users, user)

	return user
}

type fakeProjectRepo struct {
	projects []*entity.Project
}

func (r *fakeProjectRepo) CreateProject(ctx context.Context, input *entity.CreateProjectInput) (uuid.UUID, error) {
	buyerId, err := uuid.Parse(input.BuyerId)
	if err != nil {
		return uuid.Nil, err
	}

	project := &entity.Project{
		Id:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		BudgetMin:   input.BudgetMin,
		BudgetMax:   input.BudgetMax,
		Deadline:    input.Deadline.Format("2006-01-02"),
		BuyerId:     buyerId,
		Status:      input.Status,
		CreatedAt:   time.Now().Format(time.RFC3339),
	}
	r.projects = append(r.projects, project)

	return project.Id, nil
}

func (r *fakeProjectRepo) GetProjectById(ctx context.Context, id string) (*entity.Project, error) {
	for _, p := range r.projects {
		if p.Id.String() == id {
			copied := *p
			return &copied, nil
		}
	}

	return nil, repo_errors.ErrNotFound
}

func (r *fakeProjectRepo) GetProjectsByBuyerId(ctx context.Context, buyerId string) ([]entity.Project, error) {
	out := make([]entity.Project, 0)
	for i := len(r.projects) - 1; i >= 0; i-- {
		if r.projects[i].BuyerId.String() == buyerId {
			out = append(out, *r.projects[i])
		}
	}

	return out, nil
}

func (r *fakeProjectRepo) GetProjectsBySellerId(ctx context.Context, sellerId string) ([]entity.Project, error) {
	out := make([]entity.Project, 0)
	for i := len(r.projects) - 1; i >= 0; i-- {
		p := r.projects[i]
		if p.SellerId.Valid && p.SellerId.UUID.String() == sellerId {
			out = append(out, *p)
		}
	}

	return out, nil
}

func (r *fakeProjectRepo) GetMarketplaceProjects(ctx context.Context) ([]entity.Project, error) {
	out := make([]entity.Project, 0)
	for i := len(r.projects) - 1; i >= 0; i-- {
		p := r.projects[i]
		if (p.Status == "OPEN" || p.Status == "PENDING") && !p.SellerId.Valid {
			out = append(out, *p)
		}
	}

	return out, nil
}

func (r *fakeProjectRepo) SetProjectSeller(ctx context.Context, projectId string, sellerId uuid.NullUUID, newStatus string) error {
	for _, p := range r.projects {
		if p.Id.String() == projectId {
			p.SellerId = sellerId
			p.Status = newStatus
			return nil
		}
	}

	return repo_errors.ErrNotFound
}

func (r *fakeProjectRepo) UpdateProjectStatusById(ctx context.Context, projectId string, newStatus string) error {
	for _, p := range r.projects {
		if p.Id.String() == projectId {
			p.Status = newStatus
			return nil
		}
	}

	return repo_errors.ErrNotFound
}

type fakeBidRepo struct {
	bids  []*entity.Bid
	users *fakeUserRepo
}

func (r *fakeBidRepo) CreateBid(ctx context.Context, input *entity.CreateBidInput) (uuid.UUID, error) {
	projectId, err := uuid.Parse(input.ProjectId)
	if err != nil {
		return uuid.Nil, err
	}

	sellerId, err := uuid.Parse(input.SellerId)
	if err != nil {
		return uuid.Nil, err
	}

	bid := &entity.Bid{
		Id:        uuid.New(),
		ProjectId: projectId,
		SellerId:  sellerId,
		Amount:    input.Amount,
		EtaDays:   input.EtaDays,
		Message:   input.Message,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	r.bids = append(r.bids, bid)

	return bid.Id, nil
}

func (r *fakeBidRepo) GetBidById(ctx context.Context, id string) (*entity.Bid, error) {
	for _, b := range r.bids {
		if b.Id.String() == id {
			copied := *b
			return &copied, nil
		}
	}

	return nil, repo_errors.ErrNotFound
}

func (r *fakeBidRepo) GetBidsByProjectId(ctx context.Context, projectId string) ([]entity.BidWithBidder, error) {
	out := make([]entity.BidWithBidder, 0)
	for i := len(r.bids) - 1; i >= 0; i-- {
		b := r.bids[i]
		if b.ProjectId.String() != projectId {
			continue
		}

		bidder, err := r.users.GetUserById(ctx, b.SellerId.String())
		if err != nil {
			return nil, fmt.Errorf("bidder missing: %w", err)
		}

		out = append(out, entity.BidWithBidder{
			Bid:    *b,
			Bidder: entity.UserRef{Id: bidder.Id.String(), Name: bidder.Name, Email: bidder.Email},
		})
	}

	return out, nil
}

type fakeDeliverableRepo struct {
	deliverables []*entity.Deliverable
}

func (r *fakeDeliverableRepo) CreateDeliverable(ctx context.Context, input *entity.CreateDeliverableInput) (uuid.UUID, error) {
	projectId, err := uuid.Parse(input.ProjectId)
	if err != nil {
		return uuid.Nil, err
	}

	deliverable := &entity.Deliverable{
		Id:        uuid.New(),
		ProjectId: projectId,
		FileUrl:   input.FileUrl,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	r.deliverables = append(r.deliverables, deliverable)

	return deliverable.Id, nil
}

func (r *fakeDeliverableRepo) GetDeliverableById(ctx context.Context, id string) (*entity.Deliverable, error) {
	for _, d := range r.deliverables {
		if d.Id.String() == id {
			copied := *d
			return &copied, nil
		}
	}

	return nil, repo_errors.ErrNotFound
}

func (r *fakeDeliverableRepo) GetDeliverablesByProjectId(ctx context.Context, projectId string) ([]entity.Deliverable, error) {
	out := make([]entity.Deliverable, 0)
	for i := len(r.deliverables) - 1; i >= 0; i-- {
		if r.deliverables[i].ProjectId.String() == projectId {
			out = append(out, *r.deliverables[i])
		}
	}

	return out, nil
}

type sentMail struct {
	to           string
	sellerName   string
	buyerName    string
	projectTitle string
}

type fakeMailer struct {
	sent []sentMail
	fail bool
}

func (m *fakeMailer) SendSellerAssigned(to, sellerName, buyerName, projectTitle string) error {
	if m.fail {
		return errors.New("smtp unreachable")
	}

	m.sent = append(m.sent, sentMail{to, sellerName, buyerName, projectTitle})

	return nil
}
