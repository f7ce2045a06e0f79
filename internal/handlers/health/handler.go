package health

import (
	"context"
	"net/http"

	"todos/infras/otel"
	"todos/shared/constant"
	"todos/shared/logger"
	"todos/transport/http/response"

	"github.com/go-chi/chi/v5"
)

// Pinger is satisfied by *mongo.Connection.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	store Pinger
	otel  otel.Otel
}

func New(store Pinger, otel otel.Otel) Handler {
	return Handler{
		store: store,
		otel:  otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get(constant.PathHealth, handler.Check)
}

// Check reports whether the document store is reachable.
// @Summary Health check
// @Description Ping the document store.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message "OK"
// @Failure 503 {object} response.Message "SERVER UNHEALTHY"
// @Router /health [get]
func (handler *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".HealthCheck")
	defer scope.End()

	if err := handler.store.Ping(ctx); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("health check failed")

		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, constant.ResponseMessageHealthy)
}
