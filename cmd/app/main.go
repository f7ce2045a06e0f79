package main

import (
	"todos/config"
	"todos/di"
	"todos/shared/logger"
)

// @title Todos API
// @version 1.0
// @description A small todo list service backed by MongoDB.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg.Server.Env)

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
