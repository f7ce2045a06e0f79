package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"todos/config"
	"todos/infras/otel/mocks"
	"todos/transport/http/router"

	"github.com/stretchr/testify/assert"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestShutdownGuard(t *testing.T) {
	tests := []struct {
		name     string
		state    ServerState
		path     string
		wantCode int
		wantBody string
	}{
		{
			name:     "ready serves everything",
			state:    ServerStateReady,
			path:     "/health",
			wantCode: http.StatusOK,
		},
		{
			name:     "grace period keeps serving todos",
			state:    ServerStateInGracePeriod,
			path:     "/todos",
			wantCode: http.StatusOK,
		},
		{
			name:     "grace period reports unhealthy",
			state:    ServerStateInGracePeriod,
			path:     "/health",
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"message":"SERVER UNHEALTHY"}`,
		},
		{
			name:     "cleanup period rejects requests",
			state:    ServerStateInCleanupPeriod,
			path:     "/todos",
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"message":"SERVER PREPARING TO SHUT DOWN"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(&config.Config{}, router.Router{}, nil, mocks.NewOtel())
			h.setState(tt.state)

			rec := httptest.NewRecorder()
			h.shutdownGuard(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestShutdown_WithoutListener(t *testing.T) {
	h := New(&config.Config{}, router.Router{}, nil, mocks.NewOtel())

	assert.NotPanics(t, func() {
		h.shutdown(context.Background())
	})
}
