package router

import (
	"net/http"

	"todos/config"
	_ "todos/docs" // registers the swagger document
	"todos/internal/handlers/health"
	"todos/internal/handlers/todo"
	"todos/shared/constant"
	"todos/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Todo   todo.Handler
	Health health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
	Config         *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	if r.Config.App.CORS.Enable {
		router.Use(cors.Handler(r.corsOptions()))
	}

	router.Use(r.Middleware.RequestLogger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(r.Middleware.Metrics)
	router.Use(r.Middleware.Tracing)

	r.DomainHandlers.Health.Router(router)
	router.Handle(constant.PathMetrics, promhttp.Handler())

	if r.Config.App.Docs.Enable {
		router.Get(constant.PathDocs+"/*", httpSwagger.Handler(
			httpSwagger.URL(constant.PathDocs+"/doc.json"),
		))
	}

	router.Group(func(routerGroup chi.Router) {
		routerGroup.Use(r.Middleware.RateLimit())

		r.DomainHandlers.Todo.Router(routerGroup)
	})
}

func (r *Router) corsOptions() cors.Options {
	corsConfig := r.Config.App.CORS

	return cors.Options{
		AllowedOrigins:   corsConfig.AllowedOrigins,
		AllowedMethods:   corsConfig.AllowedMethods,
		AllowedHeaders:   corsConfig.AllowedHeaders,
		ExposedHeaders:   []string{constant.RequestHeaderRequestID},
		AllowCredentials: corsConfig.AllowCredentials,
		MaxAge:           corsConfig.MaxAgeSeconds,
	}
}

// Handler builds a fresh chi mux with every route mounted.
func (r *Router) Handler() http.Handler {
	mux := chi.NewRouter()
	r.SetupRoutes(mux)

	return mux
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
		Config:         cfg,
	}
}
