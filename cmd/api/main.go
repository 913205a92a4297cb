package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pdv_pagamentos/internal/adapter/http/routes"
	"pdv_pagamentos/internal/infrastructure/config"
	"pdv_pagamentos/internal/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           PDV Pagamentos API
// @version         1.0
// @description     Payment orchestration for the point of sale: gateway routing, bank connections, split payments and receipts.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("failed to load config")
	}
	logger.Init(logger.Options{
		ServiceName: "pdv-pagamentos",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
	})
	log := logger.Component("main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := routes.NewApp(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to wire application")
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Error().Err(err).Msg("failed to release resources")
		}
	}()

	if err := routes.Run(ctx, cfg.App.Port, app.Router); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return
	}
	log.Info().Msg("server stopped")
}
