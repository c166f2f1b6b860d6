package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/popeskul/pnba-gateway/internal/api"
	"github.com/popeskul/pnba-gateway/internal/repository"
)

const healthProbeTimeout = 2 * time.Second

type healthService struct {
	repo        repository.Repository
	redisClient *redis.Client
	scheduler   SchedulerService
	auth        AuthService
}

func NewHealthService(
	repo repository.Repository,
	redisClient *redis.Client,
	scheduler SchedulerService,
	auth AuthService,
) HealthService {
	return &healthService{
		repo:        repo,
		redisClient: redisClient,
		scheduler:   scheduler,
		auth:        auth,
	}
}

// GetHealth is unhealthy without the database. Sessions survive a Redis outage on
// the in-process guard, so a missing Redis or an open breaker only degrades.
func (s *healthService) GetHealth() *HealthStatus {
	var (
		wg      sync.WaitGroup
		dbUp    bool
		redisUp bool
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		dbUp = s.repo.Ping() == nil
	}()
	go func() {
		defer wg.Done()
		redisUp = s.pingRedis()
	}()

	status := &HealthStatus{
		Status:          api.Healthy,
		SchedulerStatus: api.Stopped,
		ActiveSessions:  s.auth.ActiveSessions(),
	}
	if s.scheduler.IsRunning() {
		status.SchedulerStatus = api.Running
	}

	state, requests, failures := s.auth.GetCircuitBreakerStatus()
	status.CircuitBreakerState = state
	status.CircuitBreakerStatus = breakerSummary(requests, failures)

	wg.Wait()

	status.DatabaseStatus = api.HealthResponseDatabaseStatusDisconnected
	if dbUp {
		status.DatabaseStatus = api.HealthResponseDatabaseStatusConnected
	}
	status.RedisStatus = api.HealthResponseRedisStatusDisconnected
	if redisUp {
		status.RedisStatus = api.HealthResponseRedisStatusConnected
	}

	switch {
	case !dbUp:
		status.Status = api.Unhealthy
	case !redisUp, state == api.Open:
		status.Status = api.Degraded
	}

	return status
}

func (s *healthService) pingRedis() bool {
	if s.redisClient == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), healthProbeTimeout)
	defer cancel()

	return s.redisClient.Ping(ctx).Err() == nil
}

func breakerSummary(requests, failures uint32) string {
	if requests == 0 {
		return "No requests yet"
	}
	rate := float64(failures) / float64(requests) * 100
	return fmt.Sprintf("Requests: %d, Failures: %d (%.1f%%)", requests, failures, rate)
}
