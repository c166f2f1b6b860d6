// Package repository provides PostgreSQL persistence for gateway clients, reliability
// tests and publications.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db              *sqlx.DB
	gatewayClient   GatewayClientRepository
	reliabilityTest ReliabilityTestRepository
	publication     PublicationRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:              db,
		gatewayClient:   NewGatewayClientRepository(db),
		reliabilityTest: NewReliabilityTestRepository(db),
		publication:     NewPublicationRepository(db),
	}
}

func (r *repositoryImpl) GatewayClient() GatewayClientRepository {
	return r.gatewayClient
}

func (r *repositoryImpl) ReliabilityTest() ReliabilityTestRepository {
	return r.reliabilityTest
}

func (r *repositoryImpl) Publication() PublicationRepository {
	return r.publication
}

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}

// sqlState extracts the SQLSTATE code from either supported driver.
func sqlState(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

func isUniqueViolation(err error) bool {
	return sqlState(err) == "23505"
}

func isForeignKeyViolation(err error) bool {
	return sqlState(err) == "23503"
}
