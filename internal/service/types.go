package service

import (
	"github.com/popeskul/pnba-gateway/internal/api"
	"github.com/popeskul/pnba-gateway/internal/pnba"
)

type HealthStatus struct {
	Status               api.HealthResponseStatus              `json:"status"`
	SchedulerStatus      api.HealthResponseSchedulerStatus     `json:"scheduler_status"`
	DatabaseStatus       api.HealthResponseDatabaseStatus      `json:"database_status"`
	RedisStatus          api.HealthResponseRedisStatus         `json:"redis_status"`
	CircuitBreakerStatus string                                `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  api.HealthResponseCircuitBreakerState `json:"circuit_breaker_state,omitempty"`
	ActiveSessions       int                                   `json:"active_sessions"`
}

// SessionResult is the outcome of one successful session operation.
type SessionResult struct {
	SessionID            string
	Platform             string
	PhoneNumber          string
	State                pnba.State
	Message              string
	SecondFactorRequired bool
}
