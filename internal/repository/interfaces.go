package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/popeskul/pnba-gateway/internal/models"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error
	GatewayClient() GatewayClientRepository
	ReliabilityTest() ReliabilityTestRepository
	Publication() PublicationRepository
}

// GatewayClientRepository persists gateway clients keyed by MSISDN.
type GatewayClientRepository interface {
	Create(ctx context.Context, client *models.GatewayClient) error
	Get(ctx context.Context, msisdn string) (*models.GatewayClient, error)
	List(ctx context.Context, filter models.GatewayClientFilter) ([]*models.GatewayClient, error)
	ListMSISDNs(ctx context.Context) ([]string, error)
	Update(ctx context.Context, msisdn string, update models.GatewayClientUpdate) (*models.GatewayClient, error)
	UpdateReliability(ctx context.Context, msisdn string, score float64, lastPublishedAt sql.NullTime) error
}

// ReliabilityTestRepository persists reliability tests. Transition is the only way a
// test's status changes and is atomic per test.
type ReliabilityTestRepository interface {
	Create(ctx context.Context, msisdn string, startTime time.Time) (*models.ReliabilityTest, error)
	Get(ctx context.Context, id int64) (*models.ReliabilityTest, error)
	Transition(ctx context.Context, id int64, transition models.TestTransition) (bool, error)
	ExpireStale(ctx context.Context, msisdn string, before time.Time) (int64, error)
	ListForScoring(ctx context.Context, msisdn string, since time.Time, limit int) ([]*models.ReliabilityTest, error)
	LatestSentTime(ctx context.Context, msisdn string) (sql.NullTime, error)
}

// PublicationRepository appends and queries publication records.
type PublicationRepository interface {
	Create(ctx context.Context, entry models.PublicationEntry) error
	List(ctx context.Context, filter models.PublicationFilter) ([]*models.Publication, error)
	Totals(ctx context.Context, filter models.PublicationFilter) (*models.PublicationTotals, error)
}
