package service

import (
	"strings"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/popeskul/pnba-gateway/internal/config"
	"github.com/popeskul/pnba-gateway/internal/provider"
	"github.com/popeskul/pnba-gateway/internal/publication"
	"github.com/popeskul/pnba-gateway/internal/reliability"
	"github.com/popeskul/pnba-gateway/internal/repository"
)

type Service struct {
	Auth        AuthService
	Gateway     GatewayService
	Publication PublicationService
	Scheduler   SchedulerService
	Health      HealthService
}

// NewService wires one breaker-guarded provider per configured platform. Sent
// messages and finished reliability tests both feed the publication recorder.
func NewService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	logger *zap.Logger,
) *Service {
	recorder := publication.NewRecorder(repo.Publication(), cfg.Publication.BufferSize, logger)
	publicationService := NewPublicationService(repo, recorder)

	tracker := reliability.NewTracker(repo, reliability.Config{
		WindowSize:     cfg.Reliability.WindowSize,
		Window:         cfg.Reliability.Window(),
		PendingTimeout: cfg.Reliability.PendingTimeout(),
	}, logger, reliability.WithPublisher(recorder))
	gatewayService := NewGatewayService(repo, tracker, logger)

	providers := make([]provider.Provider, 0, len(cfg.Provider.Platforms))
	for _, platform := range cfg.Provider.Platforms {
		client := provider.NewHTTPClient(
			strings.ToLower(platform),
			cfg.Provider.BaseURL,
			cfg.Provider.AuthKey,
			cfg.Provider.CallTimeout(),
			logger,
		)
		providers = append(providers, provider.NewBreaker(client, &cfg.Provider.CircuitBreaker, logger))
	}

	var locker SessionLocker
	if redisClient != nil {
		locker = NewRedisLocker(redisClient)
	}

	authService := NewAuthService(providers, locker, AuthConfig{
		CallTimeout: cfg.Provider.CallTimeout(),
		SessionTTL:  cfg.Session.TTL(),
	}, logger, WithSessionPublisher(recorder), WithSessionMeasurer(tracker))

	schedulerService := NewSchedulerService(cfg.Reliability.SweepInterval(), authService, gatewayService, logger)
	healthService := NewHealthService(repo, redisClient, schedulerService, authService)

	return &Service{
		Auth:        authService,
		Gateway:     gatewayService,
		Publication: publicationService,
		Scheduler:   schedulerService,
		Health:      healthService,
	}
}
