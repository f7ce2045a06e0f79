//go:build wireinject
// +build wireinject

package di

import (
	"todos/config"
	"todos/infras/mongo"
	"todos/infras/otel"
	"todos/infras/redis"
	healthHandler "todos/internal/handlers/health"
	todoHandler "todos/internal/handlers/todo"
	"todos/shared/cache"
	"todos/transport/http"
	"todos/transport/http/middleware"
	"todos/transport/http/router"

	todoRepository "todos/internal/domains/todo/repository"
	todoService "todos/internal/domains/todo/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	mongo.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var domains = wire.NewSet(
	todoDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	wire.Bind(new(healthHandler.Pinger), new(*mongo.Connection)),
	todoHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
