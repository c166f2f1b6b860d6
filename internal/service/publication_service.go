package service

import (
	"context"

	"github.com/popeskul/pnba-gateway/internal/models"
	"github.com/popeskul/pnba-gateway/internal/publication"
	"github.com/popeskul/pnba-gateway/internal/repository"
)

type publicationService struct {
	*publication.Recorder
	repo repository.PublicationRepository
}

func NewPublicationService(repo repository.Repository, recorder *publication.Recorder) PublicationService {
	return &publicationService{
		Recorder: recorder,
		repo:     repo.Publication(),
	}
}

func (s *publicationService) GetMetrics(ctx context.Context, filter models.PublicationFilter) (*publication.Report, error) {
	return publication.BuildReport(ctx, s.repo, filter)
}
