package health_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"todos/infras/otel/mocks"
	"todos/internal/handlers/health"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(_ context.Context) error {
	return s.err
}

func TestHandler_Check(t *testing.T) {
	tests := []struct {
		name     string
		pingErr  error
		wantCode int
		wantBody string
	}{
		{
			name:     "store reachable",
			wantCode: http.StatusOK,
			wantBody: `{"message":"OK"}`,
		},
		{
			name:     "store unreachable",
			pingErr:  errors.New("server selection timeout"),
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"message":"SERVER UNHEALTHY"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := health.New(stubPinger{err: tt.pingErr}, mocks.NewOtel())

			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
