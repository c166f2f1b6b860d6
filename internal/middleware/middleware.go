package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Config struct {
	Logger *zap.Logger

	// CORS is skipped when nil.
	CORS *CORSConfig

	// Limiter is used as is when set; otherwise one is built from RateLimit and
	// RateLimitBurst. A zero RateLimit disables limiting.
	Limiter        *RateLimiter
	RateLimit      rate.Limit
	RateLimitBurst int

	// RequestTimeout bounds each request; zero disables it.
	RequestTimeout time.Duration
}

// Chain wraps a handler as Logger, RequestID, Recovery, CORS, rate limit,
// Timeout, outermost first.
func Chain(config *Config) func(http.Handler) http.Handler {
	limiter := config.Limiter
	if limiter == nil && config.RateLimit > 0 {
		limiter = NewRateLimiter(config.RateLimit, config.RateLimitBurst)
	}

	stack := []func(http.Handler) http.Handler{
		Logger(config.Logger),
		RequestID,
		Recovery(config.Logger),
	}
	if config.CORS != nil {
		stack = append(stack, CORS(config.CORS))
	}
	if limiter != nil {
		stack = append(stack, limiter.Middleware())
	}
	stack = append(stack, Timeout(config.RequestTimeout))

	return func(handler http.Handler) http.Handler {
		for i := len(stack) - 1; i >= 0; i-- {
			handler = stack[i](handler)
		}
		return handler
	}
}
