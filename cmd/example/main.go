package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/validation/modules/example"
	"github.com/dmitrymomot/validation/pkg/clientip"
	"github.com/dmitrymomot/validation/pkg/config"
	"github.com/dmitrymomot/validation/pkg/httpserver"
	"github.com/dmitrymomot/validation/pkg/logger"
	"github.com/dmitrymomot/validation/pkg/requestid"
)

func main() {
	var cfg AppConfig
	if err := config.Load(&cfg); err != nil {
		slog.Error("failed to load config", logger.Error(err), logger.ValidationFailure(err))
		os.Exit(1)
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	r := chi.NewRouter()
	r.Use(requestid.Middleware, clientip.Middleware)
	r.Mount("/", example.Router(example.NewController(log), log))

	srv, err := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err != nil {
		log.Error("invalid http server configuration", logger.Error(err), logger.ValidationFailure(err))
		os.Exit(1)
	}

	if err := srv.Run(context.Background(), r); err != nil {
		log.Error("http server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}
