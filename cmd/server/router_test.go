package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/popeskul/pnba-gateway/internal/api"
	"github.com/popeskul/pnba-gateway/internal/handler"
	"github.com/popeskul/pnba-gateway/internal/service"
)

func TestRouter_ErrorsAreJSON(t *testing.T) {
	router := setupRouter(handler.NewHandler(&service.Service{}, zap.NewNop()))

	tests := []struct {
		name           string
		method         string
		target         string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "unknown route",
			method:         http.MethodGet,
			target:         "/v2/anything",
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
		{
			name:           "wrong method",
			method:         http.MethodPut,
			target:         "/v1/gateway-clients",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedCode:   "METHOD_NOT_ALLOWED",
		},
		{
			name:           "malformed path parameter",
			method:         http.MethodGet,
			target:         "/v1/reliability/tests/abc",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST",
		},
		{
			name:           "missing required query parameter",
			method:         http.MethodGet,
			target:         "/v1/metrics/publications?end_date=2024-05-01",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			var resp api.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
			assert.Equal(t, tt.expectedCode, resp.Error)
		})
	}
}
