package handlers

import (
	"net/http"

	"pdv_pagamentos/internal/adapter/http/dto/request"
	"pdv_pagamentos/internal/adapter/http/dto/response"
	"pdv_pagamentos/internal/logger"
	"pdv_pagamentos/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// GatewayHandler exposes the gateway settings.
type GatewayHandler struct {
	registry usecase.IGatewayRegistry
	log      zerolog.Logger
}

func NewGatewayHandler(registry usecase.IGatewayRegistry) *GatewayHandler {
	return &GatewayHandler{registry: registry, log: logger.Component("gateway_handler")}
}

// ListGateways godoc
// @Summary      List payment gateways in registration order
// @Tags         gateways
// @Produce      json
// @Success      200  {array}  response.GatewayResponse
// @Router       /gateways [get]
func (h *GatewayHandler) ListGateways(c *gin.Context) {
	gateways, err := h.registry.List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromGateways(gateways))
}

// UpsertGateway godoc
// @Summary      Create or update a payment gateway
// @Tags         gateways
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Gateway ID"
// @Param        gateway  body      request.GatewayRequest  true  "Gateway"
// @Success      200      {object}  response.GatewayResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /gateways/{id} [put]
func (h *GatewayHandler) UpsertGateway(c *gin.Context) {
	var body request.GatewayRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		invalidRequest(c, err)
		return
	}

	saved, err := h.registry.Save(c.Request.Context(), body.ToEntity(c.Param("id")))
	if err != nil {
		h.log.Warn().Err(err).Str("gateway_id", c.Param("id")).Msg("[gateway][handler] save failed")
		renderError(c, err)
		return
	}
	h.log.Info().Str("gateway_id", saved.ID).Bool("enabled", saved.Enabled).Msg("[gateway][handler] saved")

	c.JSON(http.StatusOK, response.FromGateway(saved))
}
