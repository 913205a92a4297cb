package routes

import (
	"context"
	"fmt"

	"pdv_pagamentos/internal/adapter/http/handlers"
	"pdv_pagamentos/internal/adapter/persistence/repository"
	"pdv_pagamentos/internal/infrastructure/bank"
	"pdv_pagamentos/internal/infrastructure/config"
	"pdv_pagamentos/internal/infrastructure/database"
	"pdv_pagamentos/internal/infrastructure/handshake"
	"pdv_pagamentos/internal/infrastructure/metrics"
	"pdv_pagamentos/internal/infrastructure/payments"
	"pdv_pagamentos/internal/logger"
	"pdv_pagamentos/internal/usecase"
	"pdv_pagamentos/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"
)

// App holds the wired router and the resources to release on shutdown.
type App struct {
	Router  *gin.Engine
	closers []func() error
}

// Close releases every resource opened by NewApp.
func (a *App) Close() error {
	var err error
	for _, c := range a.closers {
		err = multierr.Append(err, c())
	}
	return err
}

// NewApp connects the stores and wires repositories, use cases and handlers.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.Component("bootstrap")
	app := &App{}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return nil, err
	}
	gatewayRepo := repository.NewPaymentGatewayDynamoRepository(ddb, cfg.AWS.GatewaysTable)
	connectionRepo := repository.NewBankConnectionDynamoRepository(ddb, cfg.AWS.BankConnectionsTable)
	ledgerRepo := repository.NewLedgerDynamoRepository(ddb, cfg.AWS.LedgerTable)

	var store interfaces.IHandshakeStore
	if cfg.Redis.Enabled() {
		rdb, err := handshake.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connecting redis: %w", err)
		}
		app.closers = append(app.closers, rdb.Close)
		store = handshake.NewRedisStore(rdb)
		log.Info().Msg("oauth handshakes stored in redis")
	} else {
		store = handshake.NewMemoryStore()
		log.Warn().Msg("REDIS_URL not set, oauth handshakes kept in memory")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	paymentMetrics := metrics.NewPaymentMetrics(reg)

	bankAPI, err := bank.NewBankAPI(cfg.OAuth)
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	receiptLocation, err := cfg.Receipt.Location()
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	gatewayRegistry := usecase.NewGatewayRegistry(gatewayRepo)
	connections := usecase.NewBankConnectionUseCase(connectionRepo, store, bankAPI, gatewayRegistry, paymentMetrics, usecase.BankConnectionConfig{
		HandshakeTTL:    cfg.OAuth.HandshakeTTL,
		DefaultTokenTTL: cfg.OAuth.DefaultTokenTTL,
		RefreshTimeout:  cfg.OAuth.RequestTimeout,
	})
	dispatcher := usecase.NewPaymentDispatcher(
		gatewayRegistry,
		connections,
		bankAPI,
		payments.NewProviderRegistry(cfg.Payments),
		ledgerRepo,
		paymentMetrics,
		usecase.DispatcherConfig{ExternalTimeout: cfg.Payments.ExternalTimeout},
	)
	split := usecase.NewSplitPaymentUseCase(dispatcher)
	ledger := usecase.NewLedgerUseCase(ledgerRepo, usecase.ReceiptFormatter{
		CompanyName: cfg.Receipt.CompanyName,
		Location:    receiptLocation,
	})

	if cfg.App.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}
	app.Router = NewRouter(Handlers{
		Payments:        handlers.NewPaymentHandler(dispatcher, split, ledger),
		Gateways:        handlers.NewGatewayHandler(gatewayRegistry),
		BankConnections: handlers.NewBankConnectionHandler(connections),
	}, reg)
	return app, nil
}
