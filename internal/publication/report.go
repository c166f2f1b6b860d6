package publication

import (
	"context"
	"errors"
	"fmt"

	"github.com/popeskul/pnba-gateway/internal/models"
	"github.com/popeskul/pnba-gateway/internal/repository"
)

var ErrInvalidDateRange = errors.New("end_date must not be before start_date")

// Report is the filtered publication listing with its totals.
type Report struct {
	Totals models.PublicationTotals
	Data   []*models.Publication
}

// BuildReport loads publications matching filter together with their totals.
func BuildReport(ctx context.Context, repo repository.PublicationRepository, filter models.PublicationFilter) (*Report, error) {
	if !filter.StartDate.IsZero() && !filter.EndDate.IsZero() && filter.EndDate.Before(filter.StartDate) {
		return nil, ErrInvalidDateRange
	}

	totals, err := repo.Totals(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count publications: %w", err)
	}

	data, err := repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list publications: %w", err)
	}

	return &Report{Totals: *totals, Data: data}, nil
}
