// Package handler provides HTTP request handlers for the application.
package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/popeskul/pnba-gateway/internal/api"
	"github.com/popeskul/pnba-gateway/internal/middleware"
	"github.com/popeskul/pnba-gateway/internal/service"
)

const errorCodeInvalidRequest = "INVALID_REQUEST"

type Handler struct {
	service *service.Service
	logger  *zap.Logger
	now     func() time.Time
}

// NewHandler creates a new handler instance that implements api.ServerInterface.
func NewHandler(service *service.Service, logger *zap.Logger) api.ServerInterface {
	return &Handler{
		service: service,
		logger:  logger,
		now:     time.Now,
	}
}

// HealthCheck implements api.ServerInterface.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth()

	activeSessions := health.ActiveSessions
	response := api.HealthResponse{
		Status:         health.Status,
		Timestamp:      h.now().UTC(),
		ActiveSessions: &activeSessions,
	}

	if health.SchedulerStatus != "" {
		status := health.SchedulerStatus
		response.SchedulerStatus = &status
	}

	if health.DatabaseStatus != "" {
		status := health.DatabaseStatus
		response.DatabaseStatus = &status
	}

	if health.RedisStatus != "" {
		status := health.RedisStatus
		response.RedisStatus = &status
	}

	if health.CircuitBreakerStatus != "" {
		response.CircuitBreakerStatus = &health.CircuitBreakerStatus
	}

	if health.CircuitBreakerState != "" {
		state := health.CircuitBreakerState
		response.CircuitBreakerState = &state
	}

	// degraded still answers 200 so the instance stays in rotation
	if health.Status == api.Unhealthy {
		render.Status(r, http.StatusServiceUnavailable)
	}

	render.JSON(w, r, response)
}

// decodeBody decodes a required JSON body.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "Request body must be valid JSON")
		return false
	}
	return true
}

// decodeOptionalBody accepts an empty body and leaves v untouched.
func (h *Handler) decodeOptionalBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil || r.Body == http.NoBody {
		return true
	}
	if err := render.DecodeJSON(r.Body, v); err != nil && !errors.Is(err, io.EOF) {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "Request body must be valid JSON")
		return false
	}
	return true
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	middleware.WriteError(w, r, statusCode, errorCode, message)
}
