package routes

import (
	"pdv_pagamentos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments        = "/payments"
	PathGateways        = "/gateways"
	PathBankConnections = "/bank-connections"
)

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", h.CreatePayment)
		payments.POST("/split", h.ExecuteSplit)
		payments.POST("/split/reconcile", h.ReconcileSplit)
		payments.GET("/ledger", h.ListLedger)
		payments.GET("/:id", h.GetPayment)
		payments.GET("/:id/receipt", h.GetReceipt)
	}
}

func addSettingsRoutes(rg *gin.RouterGroup, gateways *handlers.GatewayHandler, banks *handlers.BankConnectionHandler) {
	g := rg.Group(PathGateways)
	{
		g.GET("", gateways.ListGateways)
		g.PUT("/:id", gateways.UpsertGateway)
	}

	b := rg.Group(PathBankConnections)
	{
		b.POST("/authorize", banks.Authorize)
		b.GET("/callback", banks.Callback)
		b.GET("", banks.ListConnections)
		b.DELETE("/:id", banks.Disconnect)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
