package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"
	"time"

	"github.com/popeskul/pnba-gateway/internal/api"
	"github.com/popeskul/pnba-gateway/internal/models"
	"github.com/popeskul/pnba-gateway/internal/publication"
)

// AuthService keeps at most one live session per platform and phone number and
// serializes the operations on it.
type AuthService interface {
	RequestAuthorization(ctx context.Context, platform, phoneNumber string) (*SessionResult, error)
	SubmitCode(ctx context.Context, platform, phoneNumber, code string) (*SessionResult, error)
	SubmitSecondFactor(ctx context.Context, platform, phoneNumber, password string) (*SessionResult, error)
	Invalidate(ctx context.Context, platform, phoneNumber string) (*SessionResult, error)
	SendMessage(ctx context.Context, platform, phoneNumber, recipient, text string) (*SessionResult, error)
	EvictExpired() int
	ActiveSessions() int
	GetCircuitBreakerStatus() (state api.HealthResponseCircuitBreakerState, requests uint32, failures uint32)
}

type GatewayService interface {
	RegisterClient(ctx context.Context, client *models.GatewayClient) (*models.GatewayClient, error)
	UpdateClient(ctx context.Context, msisdn string, update models.GatewayClientUpdate) (*models.GatewayClient, error)
	GetClient(ctx context.Context, msisdn string) (*models.GatewayClient, error)
	ListClients(ctx context.Context, filter models.GatewayClientFilter) ([]*models.GatewayClient, error)
	BeginTest(ctx context.Context, msisdn string) (*models.ReliabilityTest, error)
	RecordSent(ctx context.Context, id int64, at time.Time) (*models.ReliabilityTest, error)
	RecordReceived(ctx context.Context, id int64, at time.Time) (*models.ReliabilityTest, error)
	RecordRouted(ctx context.Context, id int64, at time.Time) (*models.ReliabilityTest, error)
	RecordFailure(ctx context.Context, id int64, reason string) (*models.ReliabilityTest, error)
	RecordTimeout(ctx context.Context, id int64) (*models.ReliabilityTest, error)
	GetTest(ctx context.Context, id int64) (*models.ReliabilityTest, error)
	RecomputeScore(ctx context.Context, msisdn string) (*models.GatewayClient, error)
	RecomputeAll(ctx context.Context) error
}

type PublicationService interface {
	Record(entry models.PublicationEntry)
	Start() error
	Stop(ctx context.Context) error
	GetMetrics(ctx context.Context, filter models.PublicationFilter) (*publication.Report, error)
}

type SchedulerService interface {
	Start() error
	Stop() error
	IsRunning() bool
}

type HealthService interface {
	GetHealth() *HealthStatus
}

// SessionLocker guards a session key across gateway instances. Acquire returns
// ErrLockHeld when another holder owns the key.
type SessionLocker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (string, error)
	Refresh(ctx context.Context, key, token string, ttl time.Duration) error
	Release(ctx context.Context, key, token string) error
}
