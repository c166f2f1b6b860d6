package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/popeskul/pnba-gateway/internal/api"
	"github.com/popeskul/pnba-gateway/internal/middleware"
	"github.com/popeskul/pnba-gateway/internal/pnba"
	"github.com/popeskul/pnba-gateway/internal/publication"
	"github.com/popeskul/pnba-gateway/internal/reliability"
	"github.com/popeskul/pnba-gateway/internal/service"
)

// statusClientClosedRequest is the non-standard status logged when the caller went away.
const statusClientClosedRequest = 499

type errorMapping struct {
	status  int
	code    string
	message string
}

var kindMappings = map[pnba.Kind]errorMapping{
	pnba.KindInvalidPhoneNumber:   {http.StatusBadRequest, "INVALID_PHONE_NUMBER", "Phone number is not valid"},
	pnba.KindSessionAlreadyActive: {http.StatusConflict, "SESSION_ALREADY_ACTIVE", "A session is already active for this phone number"},
	pnba.KindStateViolation:       {http.StatusConflict, "STATE_VIOLATION", "Operation is not allowed in the current session state"},
	pnba.KindRateLimited:          {http.StatusTooManyRequests, "RATE_LIMITED", "The platform is rate limiting this phone number"},
	pnba.KindInvalidOrExpiredCode: {http.StatusUnauthorized, "INVALID_OR_EXPIRED_CODE", "The code is invalid or has expired"},
	pnba.KindInvalidSecondFactor:  {http.StatusUnauthorized, "INVALID_SECOND_FACTOR", "The two-step verification password is invalid"},
	pnba.KindProviderTimeout:      {http.StatusGatewayTimeout, "PROVIDER_TIMEOUT", "The platform did not answer in time"},
	pnba.KindProviderUnavailable:  {http.StatusBadGateway, "PROVIDER_UNAVAILABLE", "The platform is unavailable"},
	pnba.KindCanceled:             {statusClientClosedRequest, "REQUEST_CANCELED", "The request was canceled"},
}

var sentinelMappings = []struct {
	target error
	errorMapping
}{
	{service.ErrUnknownPlatform, errorMapping{http.StatusNotFound, "UNKNOWN_PLATFORM", ""}},
	{service.ErrSessionNotFound, errorMapping{http.StatusNotFound, "SESSION_NOT_FOUND", "No active session for this phone number"}},
	{service.ErrInvalidGatewayClient, errorMapping{http.StatusBadRequest, "INVALID_GATEWAY_CLIENT", ""}},
	{service.ErrGatewayClientExists, errorMapping{http.StatusConflict, "GATEWAY_CLIENT_EXISTS", ""}},
	{reliability.ErrUnknownGatewayClient, errorMapping{http.StatusNotFound, "UNKNOWN_GATEWAY_CLIENT", ""}},
	{reliability.ErrTestNotFound, errorMapping{http.StatusNotFound, "TEST_NOT_FOUND", ""}},
	{reliability.ErrInvalidTransition, errorMapping{http.StatusConflict, "INVALID_TRANSITION", ""}},
	{publication.ErrInvalidDateRange, errorMapping{http.StatusBadRequest, "INVALID_DATE_RANGE", ""}},
}

// handleError renders err with the status its type maps to. An empty mapping
// message means err's own text is safe to show. Unmapped errors are logged and
// answered with 500 and fallback.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var pnbaErr *pnba.Error
	if errors.As(err, &pnbaErr) {
		if m, ok := kindMappings[pnbaErr.Kind]; ok {
			resp := api.ErrorResponse{Error: m.code, Message: m.message}
			if pnbaErr.Kind == pnba.KindRateLimited && pnbaErr.RetryAfter > 0 {
				seconds := int(math.Ceil(pnbaErr.RetryAfter.Seconds()))
				resp.RetryAfter = &seconds
				w.Header().Set("Retry-After", strconv.Itoa(seconds))
			}
			middleware.WriteErrorResponse(w, r, m.status, resp)
			return
		}
	}

	for _, m := range sentinelMappings {
		if errors.Is(err, m.target) {
			message := m.message
			if message == "" {
				message = err.Error()
			}
			h.sendError(w, r, m.status, m.code, message)
			return
		}
	}

	h.logger.Error(fallback,
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, fallback)
}
