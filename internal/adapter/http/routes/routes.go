package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "pdv_pagamentos/docs"
	"pdv_pagamentos/internal/adapter/http/handlers"
	"pdv_pagamentos/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Payments        *handlers.PaymentHandler
	Gateways        *handlers.GatewayHandler
	BankConnections *handlers.BankConnectionHandler
}

// NewRouter mounts the API under /v1 plus swagger and, when gatherer is set,
// the Prometheus endpoint.
func NewRouter(h Handlers, gatherer prometheus.Gatherer) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, h.Payments)
	addSettingsRoutes(v1, h.Gateways, h.BankConnections)
	return router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, port int, router http.Handler) error {
	log := logger.Component("http")
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", port).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setMiddlewares(router *gin.Engine) {
	log := logger.Component("http")
	router.Use(requestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func requestLogger() gin.HandlerFunc {
	log := logger.Component("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		event := log.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("route", path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
