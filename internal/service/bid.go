package service

import (
	"context"
	"errors"

	"marketplace-api/internal/common"
	"marketplace-api/internal/entity"
	"marketplace-api/internal/repo"
	"marketplace-api/internal/repo/repo_errors"
)

type BidService struct {
	bidRepo     repo.Bid
	projectRepo repo.Project
}

func NewBidService(repos *repo.Repositories) *BidService {
	return &BidService{
		bidRepo:     repos.Bid,
		projectRepo: repos.Project,
	}
}

// PlaceBid records a seller's offer. Only sellers may bid, and only on
// projects that are still part of the open marketplace.
func (s *BidService) PlaceBid(ctx context.Context, input *entity.CreateBidInput, callerRole string) (*entity.BidOutputModel, error) {
	if callerRole != common.RoleSeller {
		return nil, ErrInvalidRole
	}

	project, err := s.projectRepo.GetProjectById(ctx, input.ProjectId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrProjectNotFound
		}

		return nil, err
	}

	if !common.IsBiddable(project.Status) || project.SellerId.Valid {
		return nil, ErrProjectNotBiddable
	}

	bidId, err := s.bidRepo.CreateBid(ctx, input)
	if err != nil {
		return nil, err
	}

	bid, err := s.bidRepo.GetBidById(ctx, bidId.String())
	if err != nil {
		return nil, err
	}

	return mapBid(bid), nil
}

func (s *BidService) GetBidsByProject(ctx context.Context, projectId string) ([]entity.BidOutputModel, error) {
	bids, err := s.bidRepo.GetBidsByProjectId(ctx, projectId)
	if err != nil {
		return nil, err
	}

	return mapBidsWithBidders(bids), nil
}
