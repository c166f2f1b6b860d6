package handler_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/popeskul/pnba-gateway/internal/api"
	"github.com/popeskul/pnba-gateway/internal/handler"
	"github.com/popeskul/pnba-gateway/internal/middleware"
	"github.com/popeskul/pnba-gateway/internal/models"
	"github.com/popeskul/pnba-gateway/internal/pnba"
	"github.com/popeskul/pnba-gateway/internal/publication"
	"github.com/popeskul/pnba-gateway/internal/reliability"
	"github.com/popeskul/pnba-gateway/internal/service"
	"github.com/popeskul/pnba-gateway/internal/service/mocks"
)

type handlerFixture struct {
	auth        *mocks.MockAuthService
	gateway     *mocks.MockGatewayService
	publication *mocks.MockPublicationService
	health      *mocks.MockHealthService
	router      http.Handler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &handlerFixture{
		auth:        mocks.NewMockAuthService(ctrl),
		gateway:     mocks.NewMockGatewayService(ctrl),
		publication: mocks.NewMockPublicationService(ctrl),
		health:      mocks.NewMockHealthService(ctrl),
	}

	svc := &service.Service{
		Auth:        f.auth,
		Gateway:     f.gateway,
		Publication: f.publication,
		Health:      f.health,
	}
	f.router = api.Handler(handler.NewHandler(svc, zap.NewNop()))
	return f
}

func (f *handlerFixture) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req = req.WithContext(middleware.ContextWithRequestID(req.Context(), "test-request-id"))

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHandler_HealthCheck(t *testing.T) {
	tests := []struct {
		name           string
		health         *service.HealthStatus
		expectedStatus int
	}{
		{
			name: "healthy",
			health: &service.HealthStatus{
				Status:              api.Healthy,
				SchedulerStatus:     api.Running,
				DatabaseStatus:      api.HealthResponseDatabaseStatusConnected,
				RedisStatus:         api.HealthResponseRedisStatusConnected,
				CircuitBreakerState: api.Closed,
				ActiveSessions:      2,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "degraded stays in rotation",
			health: &service.HealthStatus{
				Status:              api.Degraded,
				DatabaseStatus:      api.HealthResponseDatabaseStatusConnected,
				RedisStatus:         api.HealthResponseRedisStatusDisconnected,
				CircuitBreakerState: api.Closed,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unhealthy",
			health: &service.HealthStatus{
				Status:         api.Unhealthy,
				DatabaseStatus: api.HealthResponseDatabaseStatusDisconnected,
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.health.EXPECT().GetHealth().Return(tt.health)

			w := f.do(http.MethodGet, "/health", "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decode[api.HealthResponse](t, w)
			assert.Equal(t, tt.health.Status, resp.Status)
			require.NotNil(t, resp.DatabaseStatus)
			assert.Equal(t, tt.health.DatabaseStatus, *resp.DatabaseStatus)
			require.NotNil(t, resp.ActiveSessions)
			assert.Equal(t, tt.health.ActiveSessions, *resp.ActiveSessions)
		})
	}
}

func TestHandler_RequestAuthorization(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "success",
			body: `{"phone_number":"+15550100"}`,
			setupMocks: func(m *mocks.MockAuthService) {
				m.EXPECT().RequestAuthorization(gomock.Any(), "telegram", "+15550100").Return(&service.SessionResult{
					SessionID:   "session-1",
					Platform:    "telegram",
					PhoneNumber: "+15550100",
					State:       pnba.StateCodeRequested,
					Message:     "Successfully sent authorization to your telegram app.",
				}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "malformed body",
			body:           `{"phone_number":`,
			setupMocks:     func(*mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST",
		},
		{
			name:           "missing phone number",
			body:           `{}`,
			setupMocks:     func(*mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST",
		},
		{
			name: "invalid phone number",
			body: `{"phone_number":"call me"}`,
			setupMocks: func(m *mocks.MockAuthService) {
				m.EXPECT().RequestAuthorization(gomock.Any(), "telegram", "call me").
					Return(nil, &pnba.Error{Kind: pnba.KindInvalidPhoneNumber, Err: models.ErrInvalidPhoneNumber})
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_PHONE_NUMBER",
		},
		{
			name: "session already active",
			body: `{"phone_number":"+15550100"}`,
			setupMocks: func(m *mocks.MockAuthService) {
				m.EXPECT().RequestAuthorization(gomock.Any(), "telegram", "+15550100").Return(nil, pnba.ErrSessionAlreadyActive)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "SESSION_ALREADY_ACTIVE",
		},
		{
			name: "unknown platform",
			body: `{"phone_number":"+15550100"}`,
			setupMocks: func(m *mocks.MockAuthService) {
				m.EXPECT().RequestAuthorization(gomock.Any(), "telegram", "+15550100").
					Return(nil, fmt.Errorf("%w: telegram", service.ErrUnknownPlatform))
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "UNKNOWN_PLATFORM",
		},
		{
			name: "provider unavailable",
			body: `{"phone_number":"+15550100"}`,
			setupMocks: func(m *mocks.MockAuthService) {
				m.EXPECT().RequestAuthorization(gomock.Any(), "telegram", "+15550100").
					Return(nil, &pnba.Error{Kind: pnba.KindProviderUnavailable, Err: errors.New("RPC_ERROR: internal")})
			},
			expectedStatus: http.StatusBadGateway,
			expectedCode:   "PROVIDER_UNAVAILABLE",
		},
		{
			name: "provider timeout",
			body: `{"phone_number":"+15550100"}`,
			setupMocks: func(m *mocks.MockAuthService) {
				m.EXPECT().RequestAuthorization(gomock.Any(), "telegram", "+15550100").
					Return(nil, &pnba.Error{Kind: pnba.KindProviderTimeout, Err: context.DeadlineExceeded})
			},
			expectedStatus: http.StatusGatewayTimeout,
			expectedCode:   "PROVIDER_TIMEOUT",
		},
		{
			name: "unexpected error",
			body: `{"phone_number":"+15550100"}`,
			setupMocks: func(m *mocks.MockAuthService) {
				m.EXPECT().RequestAuthorization(gomock.Any(), "telegram", "+15550100").Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   middleware.ErrorCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			tt.setupMocks(f.auth)

			w := f.do(http.MethodPost, "/v1/platforms/telegram/sessions", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				resp := decode[api.ErrorResponse](t, w)
				assert.Equal(t, tt.expectedCode, resp.Error)
				assert.NotEmpty(t, resp.Message)
				return
			}

			resp := decode[api.SessionResponse](t, w)
			assert.Equal(t, api.SessionStateCodeRequested, resp.State)
			assert.Equal(t, "Successfully sent authorization to your telegram app.", resp.Message)
			require.NotNil(t, resp.SessionId)
			assert.Equal(t, "session-1", *resp.SessionId)
			assert.Nil(t, resp.TwoStepVerificationEnabled)
		})
	}
}

func TestHandler_RateLimitedCarriesRetryAfter(t *testing.T) {
	f := newHandlerFixture(t)
	f.auth.EXPECT().RequestAuthorization(gomock.Any(), "telegram", "+15550100").
		Return(nil, &pnba.Error{Kind: pnba.KindRateLimited, RetryAfter: 1500 * time.Millisecond})

	w := f.do(http.MethodPost, "/v1/platforms/telegram/sessions", `{"phone_number":"+15550100"}`)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	resp := decode[api.ErrorResponse](t, w)
	assert.Equal(t, "RATE_LIMITED", resp.Error)
	require.NotNil(t, resp.RetryAfter)
	assert.Equal(t, 2, *resp.RetryAfter)
	assert.Equal(t, "2", w.Header().Get("Retry-After"))
}

func TestHandler_SubmitCode(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
		expectedCode   string
		twoStep        bool
	}{
		{
			name: "second factor required",
			body: `{"code":" 12345 "}`,
			setupMocks: func(m *mocks.MockAuthService) {
				m.EXPECT().SubmitCode(gomock.Any(), "telegram", "+15550100", "12345").Return(&service.SessionResult{
					Platform:             "telegram",
					PhoneNumber:          "+15550100",
					State:                pnba.StatePasswordRequired,
					SecondFactorRequired: true,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			twoStep:        true,
		},
		{
			name: "authenticated",
			body: `{"code":"12345"}`,
			setupMocks: func(m *mocks.MockAuthService) {
				m.EXPECT().SubmitCode(gomock.Any(), "telegram", "+15550100", "12345").Return(&service.SessionResult{
					Platform:    "telegram",
					PhoneNumber: "+15550100",
					State:       pnba.StateAuthenticated,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "invalid code",
			body: `{"code":"12345"}`,
			setupMocks: func(m *mocks.MockAuthService) {
				m.EXPECT().SubmitCode(gomock.Any(), "telegram", "+15550100", "12345").
					Return(nil, &pnba.Error{Kind: pnba.KindInvalidOrExpiredCode})
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "INVALID_OR_EXPIRED_CODE",
		},
		{
			name: "no session",
			body: `{"code":"12345"}`,
			setupMocks: func(m *mocks.MockAuthService) {
				m.EXPECT().SubmitCode(gomock.Any(), "telegram", "+15550100", "12345").Return(nil, service.ErrSessionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "SESSION_NOT_FOUND",
		},
		{
			name: "wrong state",
			body: `{"code":"12345"}`,
			setupMocks: func(m *mocks.MockAuthService) {
				m.EXPECT().SubmitCode(gomock.Any(), "telegram", "+15550100", "12345").
					Return(nil, &pnba.Error{Kind: pnba.KindStateViolation})
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "STATE_VIOLATION",
		},
		{
			name:           "empty code",
			body:           `{"code":"  "}`,
			setupMocks:     func(*mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			tt.setupMocks(f.auth)

			w := f.do(http.MethodPost, "/v1/platforms/telegram/sessions/+15550100/code", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decode[api.ErrorResponse](t, w).Error)
				return
			}

			resp := decode[api.SessionResponse](t, w)
			if tt.twoStep {
				require.NotNil(t, resp.TwoStepVerificationEnabled)
				assert.True(t, *resp.TwoStepVerificationEnabled)
				assert.Equal(t, api.SessionStatePasswordRequired, resp.State)
			} else {
				assert.Nil(t, resp.TwoStepVerificationEnabled)
				assert.Equal(t, api.SessionStateAuthenticated, resp.State)
			}
		})
	}
}

func TestHandler_SecondFactorAndInvalidate(t *testing.T) {
	f := newHandlerFixture(t)

	f.auth.EXPECT().SubmitSecondFactor(gomock.Any(), "telegram", "+15550100", "hunter2").
		Return(nil, &pnba.Error{Kind: pnba.KindInvalidSecondFactor})
	w := f.do(http.MethodPost, "/v1/platforms/telegram/sessions/+15550100/password", `{"password":"hunter2"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_SECOND_FACTOR", decode[api.ErrorResponse](t, w).Error)

	w = f.do(http.MethodPost, "/v1/platforms/telegram/sessions/+15550100/password", `{"password":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	f.auth.EXPECT().Invalidate(gomock.Any(), "telegram", "+15550100").Return(&service.SessionResult{
		Platform:    "telegram",
		PhoneNumber: "+15550100",
		State:       pnba.StateInvalidated,
		Message:     "Successfully revoked access for telegram.",
	}, nil)
	w = f.do(http.MethodDelete, "/v1/platforms/telegram/sessions/+15550100", "")
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[api.SessionResponse](t, w)
	assert.Equal(t, api.SessionStateInvalidated, resp.State)
	assert.Equal(t, "Successfully revoked access for telegram.", resp.Message)
}

func TestHandler_SendMessage(t *testing.T) {
	f := newHandlerFixture(t)

	f.auth.EXPECT().SendMessage(gomock.Any(), "telegram", "+15550100", "+15550199", "hello").Return(&service.SessionResult{
		Platform:    "telegram",
		PhoneNumber: "+15550100",
		State:       pnba.StateAuthenticated,
		Message:     "Successfully sent message to 'telegram' on your behalf at 2024-05-01 10:30:00.",
	}, nil)

	w := f.do(http.MethodPost, "/v1/platforms/telegram/sessions/+15550100/messages", `{"recipient":"+15550199","message":"hello"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode[api.SessionResponse](t, w).Message, "on your behalf at 2024-05-01 10:30:00")

	w = f.do(http.MethodPost, "/v1/platforms/telegram/sessions/+15550100/messages", `{"recipient":"+15550199"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GatewayClients(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	client := &models.GatewayClient{
		MSISDN:          "+15550100",
		Country:         "USA",
		Operator:        "Carrier",
		OperatorCode:    "310-260",
		Protocols:       []string{"https"},
		Reliability:     0.92,
		LastPublishedAt: sql.NullTime{Time: created.Add(time.Hour), Valid: true},
		CreatedAt:       created,
		UpdatedAt:       created,
	}

	t.Run("register", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.gateway.EXPECT().RegisterClient(gomock.Any(), &models.GatewayClient{
			MSISDN:       "+15550100",
			Country:      "USA",
			Operator:     "Carrier",
			OperatorCode: "310-260",
			Protocols:    []string{"https"},
		}).Return(client, nil)

		w := f.do(http.MethodPost, "/v1/gateway-clients",
			`{"msisdn":"+15550100","country":"USA","operator":"Carrier","operator_code":"310-260","protocols":["https"]}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decode[api.GatewayClient](t, w)
		assert.Equal(t, 0.92, resp.Reliability)
		require.NotNil(t, resp.LastPublishedDate)
		assert.True(t, client.LastPublishedAt.Time.Equal(*resp.LastPublishedDate))
	})

	t.Run("register duplicate", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.gateway.EXPECT().RegisterClient(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: +15550100", service.ErrGatewayClientExists))

		w := f.do(http.MethodPost, "/v1/gateway-clients", `{"msisdn":"+15550100","country":"USA","operator":"","operator_code":""}`)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "GATEWAY_CLIENT_EXISTS", decode[api.ErrorResponse](t, w).Error)
	})

	t.Run("list with filters", func(t *testing.T) {
		f := newHandlerFixture(t)
		minReliability := 0.8
		f.gateway.EXPECT().ListClients(gomock.Any(), models.GatewayClientFilter{
			Country:        "USA",
			Protocol:       "https",
			MinReliability: &minReliability,
		}).Return([]*models.GatewayClient{client}, nil)

		w := f.do(http.MethodGet, "/v1/gateway-clients?country=USA&protocol=https&min_reliability=0.8", "")
		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode[api.GatewayClientList](t, w)
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, "+15550100", resp.Clients[0].Msisdn)
	})

	t.Run("list empty renders an empty array", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.gateway.EXPECT().ListClients(gomock.Any(), models.GatewayClientFilter{}).Return(nil, nil)

		w := f.do(http.MethodGet, "/v1/gateway-clients", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"clients":[],"total":0}`, w.Body.String())
	})

	t.Run("list with malformed min_reliability", func(t *testing.T) {
		f := newHandlerFixture(t)

		w := f.do(http.MethodGet, "/v1/gateway-clients?min_reliability=high", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("get unknown", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.gateway.EXPECT().GetClient(gomock.Any(), "+15550199").
			Return(nil, fmt.Errorf("%w: +15550199", reliability.ErrUnknownGatewayClient))

		w := f.do(http.MethodGet, "/v1/gateway-clients/+15550199", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "UNKNOWN_GATEWAY_CLIENT", decode[api.ErrorResponse](t, w).Error)
	})

	t.Run("update", func(t *testing.T) {
		f := newHandlerFixture(t)
		operator := "New Carrier"
		f.gateway.EXPECT().UpdateClient(gomock.Any(), "+15550100", models.GatewayClientUpdate{Operator: &operator}).
			Return(client, nil)

		w := f.do(http.MethodPatch, "/v1/gateway-clients/+15550100", `{"operator":"New Carrier"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("recompute score", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.gateway.EXPECT().RecomputeScore(gomock.Any(), "+15550100").Return(client, nil)

		w := f.do(http.MethodPost, "/v1/gateway-clients/+15550100/score", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0.92, decode[api.GatewayClient](t, w).Reliability)
	})
}

func TestHandler_ReliabilityCallbacks(t *testing.T) {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	sentAt := start.Add(time.Minute)

	test := func(status models.TestStatus) *models.ReliabilityTest {
		return &models.ReliabilityTest{
			ID:          42,
			MSISDN:      "+15550100",
			Status:      status,
			StartTime:   start,
			SMSSentTime: sql.NullTime{Time: sentAt, Valid: status != models.TestStatusPending},
		}
	}

	tests := []struct {
		name           string
		method         string
		target         string
		body           string
		setupMocks     func(*mocks.MockGatewayService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "begin",
			method: http.MethodPost,
			target: "/v1/reliability/tests",
			body:   `{"msisdn":"+15550100"}`,
			setupMocks: func(m *mocks.MockGatewayService) {
				m.EXPECT().BeginTest(gomock.Any(), "+15550100").Return(test(models.TestStatusPending), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "begin for unknown client",
			method: http.MethodPost,
			target: "/v1/reliability/tests",
			body:   `{"msisdn":"+15550199"}`,
			setupMocks: func(m *mocks.MockGatewayService) {
				m.EXPECT().BeginTest(gomock.Any(), "+15550199").Return(nil, reliability.ErrUnknownGatewayClient)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "UNKNOWN_GATEWAY_CLIENT",
		},
		{
			name:   "sent with explicit time",
			method: http.MethodPost,
			target: "/v1/reliability/tests/42/sent",
			body:   `{"at":"2024-05-01T12:01:00+02:00"}`,
			setupMocks: func(m *mocks.MockGatewayService) {
				m.EXPECT().RecordSent(gomock.Any(), int64(42), sentAt).Return(test(models.TestStatusSent), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "received without body",
			method: http.MethodPost,
			target: "/v1/reliability/tests/42/received",
			setupMocks: func(m *mocks.MockGatewayService) {
				m.EXPECT().RecordReceived(gomock.Any(), int64(42), time.Time{}).Return(test(models.TestStatusDelivered), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "routed conflicting",
			method: http.MethodPost,
			target: "/v1/reliability/tests/42/routed",
			body:   `{}`,
			setupMocks: func(m *mocks.MockGatewayService) {
				m.EXPECT().RecordRouted(gomock.Any(), int64(42), time.Time{}).Return(nil, &reliability.TransitionError{
					TestID:  42,
					Current: models.TestStatusSent,
					Target:  models.TestStatusRouted,
				})
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "INVALID_TRANSITION",
		},
		{
			name:   "failed with reason",
			method: http.MethodPost,
			target: "/v1/reliability/tests/42/failed",
			body:   `{"reason":"carrier rejected"}`,
			setupMocks: func(m *mocks.MockGatewayService) {
				m.EXPECT().RecordFailure(gomock.Any(), int64(42), "carrier rejected").Return(test(models.TestStatusFailed), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "failed without body",
			method: http.MethodPost,
			target: "/v1/reliability/tests/42/failed",
			setupMocks: func(m *mocks.MockGatewayService) {
				m.EXPECT().RecordFailure(gomock.Any(), int64(42), "").Return(test(models.TestStatusFailed), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "timeout on missing test",
			method: http.MethodPost,
			target: "/v1/reliability/tests/7/timeout",
			setupMocks: func(m *mocks.MockGatewayService) {
				m.EXPECT().RecordTimeout(gomock.Any(), int64(7)).Return(nil, fmt.Errorf("%w: 7", reliability.ErrTestNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "TEST_NOT_FOUND",
		},
		{
			name:   "get",
			method: http.MethodGet,
			target: "/v1/reliability/tests/42",
			setupMocks: func(m *mocks.MockGatewayService) {
				m.EXPECT().GetTest(gomock.Any(), int64(42)).Return(test(models.TestStatusSent), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "non-numeric id",
			method:         http.MethodGet,
			target:         "/v1/reliability/tests/abc",
			setupMocks:     func(*mocks.MockGatewayService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed timestamp body",
			method:         http.MethodPost,
			target:         "/v1/reliability/tests/42/sent",
			body:           `{"at":"yesterday"}`,
			setupMocks:     func(*mocks.MockGatewayService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			tt.setupMocks(f.gateway)

			w := f.do(tt.method, tt.target, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decode[api.ErrorResponse](t, w).Error)
				return
			}
			if w.Code < http.StatusBadRequest {
				resp := decode[api.ReliabilityTest](t, w)
				assert.Equal(t, int64(42), resp.Id)
				assert.Equal(t, "+15550100", resp.Msisdn)
			}
		})
	}
}

func TestHandler_GetPublicationMetrics(t *testing.T) {
	t.Run("end date is inclusive", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.publication.EXPECT().GetMetrics(gomock.Any(), models.PublicationFilter{
			StartDate:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
			PlatformName: "telegram",
			Status:       models.PublicationStatusPublished,
		}).Return(&publication.Report{
			Totals: models.PublicationTotals{Total: 3, Published: 2, Failed: 1},
			Data: []*models.Publication{{
				ID:           1,
				PlatformName: "telegram",
				Source:       models.PublicationSourcePlatforms,
				Status:       models.PublicationStatusPublished,
				CountryCode:  sql.NullString{String: "USA", Valid: true},
				DateCreated:  time.Date(2024, 5, 2, 23, 59, 0, 0, time.UTC),
			}},
		}, nil)

		w := f.do(http.MethodGet, "/v1/metrics/publications?start_date=2024-05-01&end_date=2024-05-02&platform_name=telegram&status=published", "")

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode[api.PublicationMetricsResponse](t, w)
		assert.Equal(t, int64(3), resp.TotalPublications)
		assert.Equal(t, int64(2), resp.TotalPublished)
		assert.Equal(t, int64(1), resp.TotalFailed)
		require.Len(t, resp.Data, 1)
		require.NotNil(t, resp.Data[0].CountryCode)
		assert.Equal(t, "USA", *resp.Data[0].CountryCode)
		assert.Nil(t, resp.Data[0].GatewayClient)
	})

	t.Run("reversed range", func(t *testing.T) {
		f := newHandlerFixture(t)

		w := f.do(http.MethodGet, "/v1/metrics/publications?start_date=2024-05-02&end_date=2024-05-01", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_DATE_RANGE", decode[api.ErrorResponse](t, w).Error)
	})

	t.Run("missing start date", func(t *testing.T) {
		f := newHandlerFixture(t)

		w := f.do(http.MethodGet, "/v1/metrics/publications?end_date=2024-05-01", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
