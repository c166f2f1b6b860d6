package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/popeskul/pnba-gateway/internal/api"
)

// Common error codes used by middleware
const (
	ErrorCodeInternal          = "INTERNAL_ERROR"
	ErrorCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrorCodeRequestTimeout    = "REQUEST_TIMEOUT"
)

// Common error messages used by middleware
const (
	ErrorMessageInternal          = "An internal error occurred"
	ErrorMessageRateLimitExceeded = "Too many requests"
	ErrorMessageRequestTimeout    = "Request timeout"
)

// WriteError renders an api.ErrorResponse with the given status.
func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	WriteErrorResponse(w, r, status, api.ErrorResponse{Error: code, Message: message})
}

// WriteErrorResponse stamps resp with the current time and renders it.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, status int, resp api.ErrorResponse) {
	now := time.Now().UTC()
	resp.Timestamp = &now

	render.Status(r, status)
	render.JSON(w, r, resp)
}
