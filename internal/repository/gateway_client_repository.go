package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/popeskul/pnba-gateway/internal/models"
)

const gatewayClientColumns = `msisdn, country, operator, operator_code, protocols, reliability,
		last_published_date, created_at, updated_at`

type gatewayClientRepository struct {
	db *sqlx.DB
}

func NewGatewayClientRepository(db *sqlx.DB) GatewayClientRepository {
	return &gatewayClientRepository{
		db: db,
	}
}

// Create inserts a new gateway client. Reliability starts at zero.
func (r *gatewayClientRepository) Create(ctx context.Context, client *models.GatewayClient) error {
	query := `
		INSERT INTO gateway_clients (msisdn, country, operator, operator_code, protocols, reliability, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 0, $6, $6)
		RETURNING ` + gatewayClientColumns

	protocols := client.Protocols
	if protocols == nil {
		protocols = pq.StringArray{}
	}

	err := r.db.QueryRowxContext(ctx, query,
		client.MSISDN, client.Country, client.Operator, client.OperatorCode, protocols, time.Now().UTC(),
	).StructScan(client)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("gateway client %s: %w", client.MSISDN, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create gateway client: %w", err)
	}

	return nil
}

// Get retrieves a gateway client by MSISDN.
func (r *gatewayClientRepository) Get(ctx context.Context, msisdn string) (*models.GatewayClient, error) {
	query := `SELECT ` + gatewayClientColumns + ` FROM gateway_clients WHERE msisdn = $1`

	var client models.GatewayClient
	if err := r.db.GetContext(ctx, &client, query, msisdn); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("gateway client %s: %w", msisdn, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get gateway client: %w", err)
	}

	return &client, nil
}

// List returns gateway clients ordered by reliability, most reliable first.
func (r *gatewayClientRepository) List(ctx context.Context, filter models.GatewayClientFilter) ([]*models.GatewayClient, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.Country != "" {
		args = append(args, filter.Country)
		conditions = append(conditions, fmt.Sprintf("country = $%d", len(args)))
	}
	if filter.Protocol != "" {
		args = append(args, filter.Protocol)
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(protocols)", len(args)))
	}
	if filter.MinReliability != nil {
		args = append(args, *filter.MinReliability)
		conditions = append(conditions, fmt.Sprintf("reliability >= $%d", len(args)))
	}

	query := `SELECT ` + gatewayClientColumns + ` FROM gateway_clients`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY reliability DESC, msisdn ASC`

	clients := []*models.GatewayClient{}
	if err := r.db.SelectContext(ctx, &clients, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list gateway clients: %w", err)
	}

	return clients, nil
}

// ListMSISDNs returns every registered MSISDN.
func (r *gatewayClientRepository) ListMSISDNs(ctx context.Context) ([]string, error) {
	var msisdns []string
	if err := r.db.SelectContext(ctx, &msisdns, `SELECT msisdn FROM gateway_clients ORDER BY msisdn`); err != nil {
		return nil, fmt.Errorf("failed to list gateway client msisdns: %w", err)
	}

	return msisdns, nil
}

// Update applies the non-nil fields of update. Reliability is never touched here.
func (r *gatewayClientRepository) Update(ctx context.Context, msisdn string, update models.GatewayClientUpdate) (*models.GatewayClient, error) {
	query := `
		UPDATE gateway_clients
		SET country = COALESCE($2, country),
		    operator = COALESCE($3, operator),
		    operator_code = COALESCE($4, operator_code),
		    protocols = COALESCE($5, protocols),
		    updated_at = $6
		WHERE msisdn = $1
		RETURNING ` + gatewayClientColumns

	var protocols any
	if update.Protocols != nil {
		protocols = pq.StringArray(update.Protocols)
	}

	var client models.GatewayClient
	err := r.db.QueryRowxContext(ctx, query,
		msisdn, nullString(update.Country), nullString(update.Operator), nullString(update.OperatorCode),
		protocols, time.Now().UTC(),
	).StructScan(&client)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("gateway client %s: %w", msisdn, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update gateway client: %w", err)
	}

	return &client, nil
}

// UpdateReliability stores a freshly computed score.
func (r *gatewayClientRepository) UpdateReliability(ctx context.Context, msisdn string, score float64, lastPublishedAt sql.NullTime) error {
	query := `
		UPDATE gateway_clients
		SET reliability = $2,
		    last_published_date = COALESCE($3, last_published_date),
		    updated_at = $4
		WHERE msisdn = $1
	`

	result, err := r.db.ExecContext(ctx, query, msisdn, score, lastPublishedAt, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update gateway client reliability: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("gateway client %s: %w", msisdn, ErrNotFound)
	}

	return nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
