package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/pnba-gateway/internal/scheduler"
)

const sweepTaskName = "reliability-sweep"

type schedulerService struct {
	scheduler *scheduler.Scheduler
	auth      AuthService
	gateway   GatewayService
	logger    *zap.Logger
}

// NewSchedulerService runs the periodic sweep: expired sessions are evicted, then
// every gateway client score is recomputed.
func NewSchedulerService(
	interval time.Duration,
	auth AuthService,
	gateway GatewayService,
	logger *zap.Logger,
) SchedulerService {
	svc := &schedulerService{
		auth:    auth,
		gateway: gateway,
		logger:  logger,
	}

	svc.scheduler = scheduler.NewScheduler(logger, sweepTaskName, interval, svc.executeSweep)
	return svc
}

func (s *schedulerService) Start() error {
	return s.scheduler.Start(context.Background())
}

func (s *schedulerService) Stop() error {
	return s.scheduler.Stop()
}

func (s *schedulerService) IsRunning() bool {
	return s.scheduler.IsRunning()
}

func (s *schedulerService) executeSweep(ctx context.Context) error {
	if evicted := s.auth.EvictExpired(); evicted > 0 {
		s.logger.Debug("Sweep evicted expired sessions", zap.Int("count", evicted))
	}
	return s.gateway.RecomputeAll(ctx)
}
