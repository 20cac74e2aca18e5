package service

import (
	"marketplace-api/internal/entity"
)

func mapUser(u *entity.User) *entity.UserOutputModel {
	return &entity.UserOutputModel{
		Id:    u.Id.String(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

func mapUserRef(u *entity.User) *entity.UserRef {
	return &entity.UserRef{
		Id:    u.Id.String(),
		Name:  u.Name,
		Email: u.Email,
	}
}

func mapProject(p *entity.Project) *entity.ProjectOutputModel {
	var sellerId *string
	if p.SellerId.Valid {
		s := p.SellerId.UUID.String()
		sellerId = &s
	}

	return &entity.ProjectOutputModel{
		Id:          p.Id.String(),
		Title:       p.Title,
		Description: p.Description,
		BudgetMin:   p.BudgetMin,
		BudgetMax:   p.BudgetMax,
		Deadline:    p.Deadline,
		BuyerId:     p.BuyerId.String(),
		SellerId:    sellerId,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
	}
}

func mapProjects(projects []entity.Project) []entity.ProjectOutputModel {
	s := make([]entity.ProjectOutputModel, 0)
	for _, project := range projects {
		s = append(s, *mapProject(&project))
	}

	return s
}

func mapSellerProject(p *entity.Project) *entity.SellerProjectOutputModel {
	return &entity.SellerProjectOutputModel{
		Id:          p.Id.String(),
		Title:       p.Title,
		Description: p.Description,
		Status:      p.Status,
		Deadline:    p.Deadline,
		BudgetMin:   p.BudgetMin,
		BudgetMax:   p.BudgetMax,
	}
}

func mapSellerProjects(projects []entity.Project) []entity.SellerProjectOutputModel {
	s := make([]entity.SellerProjectOutputModel, 0)
	for _, project := range projects {
		s = append(s, *mapSellerProject(&project))
	}

	return s
}

func mapBid(b *entity.Bid) *entity.BidOutputModel {
	return &entity.BidOutputModel{
		Id:        b.Id.String(),
		ProjectId: b.ProjectId.String(),
		SellerId:  b.SellerId.String(),
		Amount:    b.Amount,
		EtaDays:   b.EtaDays,
		Message:   b.Message,
		CreatedAt: b.CreatedAt,
	}
}

func mapBidsWithBidders(bids []entity.BidWithBidder) []entity.BidOutputModel {
	s := make([]entity.BidOutputModel, 0)
	for _, item := range bids {
		out := mapBid(&item.Bid)
		bidder := item.Bidder
		out.Seller = &bidder
		s = append(s, *out)
	}

	return s
}

// mapBidsPlain drops the bidder identity, used for the marketplace view
// where sellers see each other's raw bids only.
func mapBidsPlain(bids []entity.BidWithBidder) []entity.BidOutputModel {
	s := make([]entity.BidOutputModel, 0)
	for _, item := range bids {
		s = append(s, *mapBid(&item.Bid))
	}

	return s
}

func mapDeliverable(d *entity.Deliverable) *entity.DeliverableOutputModel {
	return &entity.DeliverableOutputModel{
		Id:        d.Id.String(),
		ProjectId: d.ProjectId.String(),
		FileUrl:   d.FileUrl,
		CreatedAt: d.CreatedAt,
	}
}

func mapDeliverables(deliverables []entity.Deliverable) []entity.DeliverableOutputModel {
	s := make([]entity.DeliverableOutputModel, 0)
	for _, deliverable := range deliverables {
		s = append(s, *mapDeliverable(&deliverable))
	}

	return s
}
