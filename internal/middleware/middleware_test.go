package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/time/rate"

	"github.com/popeskul/pnba-gateway/internal/api"
	"github.com/popeskul/pnba-gateway/internal/middleware"
)

func decodeError(t *testing.T, w *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()
	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "generated when missing"},
		{name: "propagated from header", incoming: "req-123"},
		{name: "replaced when it carries spaces", incoming: "req 123"},
		{name: "replaced when oversized", incoming: strings.Repeat("a", 129)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = middleware.GetRequestID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tt.incoming != "" {
				req.Header.Set(middleware.RequestIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			require.NotEmpty(t, seen)
			assert.Equal(t, seen, w.Header().Get(middleware.RequestIDHeader))
			if tt.incoming == "req-123" {
				assert.Equal(t, tt.incoming, seen)
			} else {
				assert.NotEqual(t, tt.incoming, seen)
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	rl := middleware.NewRateLimiter(rate.Limit(1), 1)
	defer rl.Stop()

	handler := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "127.0.0.1:1234"

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))

	resp := decodeError(t, w)
	assert.Equal(t, middleware.ErrorCodeRateLimitExceeded, resp.Error)
	require.NotNil(t, resp.RetryAfter)
	assert.Equal(t, 1, *resp.RetryAfter)

	// Same host on another port shares the bucket.
	other := httptest.NewRequest(http.MethodGet, "/health", nil)
	other.RemoteAddr = "127.0.0.1:5678"
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, other)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	time.Sleep(1100 * time.Millisecond)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name           string
		config         *middleware.CORSConfig
		method         string
		origin         string
		preflight      bool
		expectedStatus int
		expectedOrigin string
	}{
		{
			name:           "preflight with wildcard",
			config:         middleware.DefaultCORSConfig(),
			method:         http.MethodOptions,
			origin:         "http://localhost:3000",
			preflight:      true,
			expectedStatus: http.StatusNoContent,
			expectedOrigin: "*",
		},
		{
			name:           "plain OPTIONS reaches the handler",
			config:         middleware.DefaultCORSConfig(),
			method:         http.MethodOptions,
			origin:         "http://localhost:3000",
			expectedStatus: http.StatusOK,
			expectedOrigin: "*",
		},
		{
			name:           "listed origin is echoed",
			config:         &middleware.CORSConfig{AllowedOrigins: []string{"https://ops.example.com"}, AllowCredentials: true},
			method:         http.MethodGet,
			origin:         "https://ops.example.com",
			expectedStatus: http.StatusOK,
			expectedOrigin: "https://ops.example.com",
		},
		{
			name:           "unlisted origin",
			config:         &middleware.CORSConfig{AllowedOrigins: []string{"https://ops.example.com"}},
			method:         http.MethodGet,
			origin:         "https://evil.example.com",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "no origin header",
			config:         middleware.DefaultCORSConfig(),
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.CORS(tt.config)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(tt.method, "/v1/gateway-clients", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			if tt.preflight {
				assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)

	handler := middleware.Recovery(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, middleware.ErrorCodeInternal, resp.Error)
	assert.NotNil(t, resp.Timestamp)
	assert.Equal(t, 1, logs.FilterMessage("Panic recovered").Len())
}

func TestTimeout(t *testing.T) {
	tests := []struct {
		name           string
		delay          time.Duration
		expectedStatus int
		expectedBody   string
	}{
		{name: "handler finishes in time", expectedStatus: http.StatusCreated, expectedBody: "created"},
		{name: "handler too slow", delay: 200 * time.Millisecond, expectedStatus: http.StatusGatewayTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.Timeout(50*time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(tt.delay)
				w.Header().Set("X-Handler", "done")
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte("created"))
			}))

			req := httptest.NewRequest(http.MethodPost, "/v1/platforms/telegram/sessions", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, w.Body.String())
				assert.Equal(t, "done", w.Header().Get("X-Handler"))
				return
			}
			assert.Equal(t, middleware.ErrorCodeRequestTimeout, decodeError(t, w).Error)
		})
	}
}

func TestChain(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	chain := middleware.Chain(&middleware.Config{
		Logger:         logger,
		CORS:           middleware.DefaultCORSConfig(),
		RateLimit:      rate.Limit(100),
		RateLimitBurst: 10,
		RequestTimeout: time.Second,
	})

	handler := chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, middleware.GetRequestID(r.Context()))
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/gateway-clients/+15550100", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	entries := logs.FilterMessage("HTTP Request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, int64(http.StatusNotFound), entries[0].ContextMap()["status"])
	assert.Equal(t, "/v1/gateway-clients/+****0100", entries[0].ContextMap()["path"])
}

func TestLogger_MasksPhoneNumbers(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{path: "/v1/platforms/telegram/sessions/+15550100/code", expected: "/v1/platforms/telegram/sessions/+****0100/code"},
		{path: "/v1/platforms/telegram/sessions/15550100", expected: "/v1/platforms/telegram/sessions/****0100"},
		{path: "/v1/reliability/tests/42/sent", expected: "/v1/reliability/tests/42/sent"},
		{path: "/health", expected: "/health"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)
			handler := middleware.Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("ok"))
			}))

			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, tt.path, nil))

			entries := logs.All()
			require.Len(t, entries, 1)
			fields := entries[0].ContextMap()
			assert.Equal(t, tt.expected, fields["path"])
			assert.Equal(t, int64(2), fields["bytes"])
		})
	}
}
