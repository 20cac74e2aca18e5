package service

import (
	"context"
	"errors"

	"marketplace-api/internal/entity"
	"marketplace-api/internal/repo"
	"marketplace-api/internal/repo/repo_errors"
)

type DeliverableService struct {
	deliverableRepo repo.Deliverable
	projectRepo     repo.Project
}

func NewDeliverableService(repos *repo.Repositories) *DeliverableService {
	return &DeliverableService{
		deliverableRepo: repos.Deliverable,
		projectRepo:     repos.Project,
	}
}

// SaveDeliverable persists the metadata for an already-stored file.
// The caller is responsible for removing the file if this fails.
func (s *DeliverableService) SaveDeliverable(ctx context.Context, input *entity.CreateDeliverableInput) (*entity.DeliverableOutputModel, error) {
	_, err := s.projectRepo.GetProjectById(ctx, input.ProjectId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrProjectNotFound
		}

		return nil, err
	}

	deliverableId, err := s.deliverableRepo.CreateDeliverable(ctx, input)
	if err != nil {
		return nil, err
	}

	deliverable, err := s.deliverableRepo.GetDeliverableById(ctx, deliverableId.String())
	if err != nil {
		return nil, err
	}

	return mapDeliverable(deliverable), nil
}

func (s *DeliverableService) GetProjectDeliverables(ctx context.Context, projectId string) ([]entity.DeliverableOutputModel, error) {
	deliverables, err := s.deliverableRepo.GetDeliverablesByProjectId(ctx, projectId)
	if err != nil {
		return nil, err
	}

	return mapDeliverables(deliverables), nil
}
