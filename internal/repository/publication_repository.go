package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/popeskul/pnba-gateway/internal/models"
)

type publicationRepository struct {
	db *sqlx.DB
}

func NewPublicationRepository(db *sqlx.DB) PublicationRepository {
	return &publicationRepository{
		db: db,
	}
}

// Create appends a publication record.
func (r *publicationRepository) Create(ctx context.Context, entry models.PublicationEntry) error {
	query := `
		INSERT INTO publications (country_code, platform_name, source, status, gateway_client, date_created)
		VALUES (NULLIF($1, ''), $2, $3, $4, NULLIF($5, ''), $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.CountryCode, entry.PlatformName, entry.Source, entry.Status, entry.GatewayClient, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to create publication: %w", err)
	}

	return nil
}

// List returns publications matching filter, newest first.
func (r *publicationRepository) List(ctx context.Context, filter models.PublicationFilter) ([]*models.Publication, error) {
	where, args := publicationWhere(filter)
	query := `
		SELECT id, country_code, platform_name, source, status, gateway_client, date_created
		FROM publications` + where + `
		ORDER BY date_created DESC, id DESC
	`

	publications := []*models.Publication{}
	if err := r.db.SelectContext(ctx, &publications, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list publications: %w", err)
	}

	return publications, nil
}

// Totals counts publications matching filter, split by status.
func (r *publicationRepository) Totals(ctx context.Context, filter models.PublicationFilter) (*models.PublicationTotals, error) {
	where, args := publicationWhere(filter)
	query := `
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE status = 'published') AS published,
		       COUNT(*) FILTER (WHERE status = 'failed') AS failed
		FROM publications` + where

	var totals models.PublicationTotals
	if err := r.db.GetContext(ctx, &totals, query, args...); err != nil {
		return nil, fmt.Errorf("failed to count publications: %w", err)
	}

	return &totals, nil
}

func publicationWhere(filter models.PublicationFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)

	add := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if !filter.StartDate.IsZero() {
		add("date_created >= $%d", filter.StartDate.UTC())
	}
	if !filter.EndDate.IsZero() {
		add("date_created < $%d", filter.EndDate.UTC())
	}
	if filter.CountryCode != "" {
		add("country_code = $%d", filter.CountryCode)
	}
	if filter.PlatformName != "" {
		add("platform_name = $%d", filter.PlatformName)
	}
	if filter.Source != "" {
		add("source = $%d", filter.Source)
	}
	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}
	if filter.GatewayClient != "" {
		add("gateway_client = $%d", filter.GatewayClient)
	}

	if len(conditions) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}
