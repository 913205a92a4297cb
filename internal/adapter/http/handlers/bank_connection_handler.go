package handlers

import (
	"net/http"
	"strings"

	"pdv_pagamentos/internal/adapter/http/dto/request"
	"pdv_pagamentos/internal/adapter/http/dto/response"
	"pdv_pagamentos/internal/domain/entities"
	"pdv_pagamentos/internal/logger"
	"pdv_pagamentos/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// BankConnectionHandler drives the OAuth flow with banks.
type BankConnectionHandler struct {
	usecase usecase.IBankConnectionUseCase
	log     zerolog.Logger
}

func NewBankConnectionHandler(uc usecase.IBankConnectionUseCase) *BankConnectionHandler {
	return &BankConnectionHandler{usecase: uc, log: logger.Component("bank_handler")}
}

// Authorize godoc
// @Summary      Start a bank authorization
// @Tags         bank-connections
// @Accept       json
// @Produce      json
// @Param        body  body      request.AuthorizeBankRequest  true  "Provider"
// @Success      200   {object}  response.AuthorizeBankResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /bank-connections/authorize [post]
func (h *BankConnectionHandler) Authorize(c *gin.Context) {
	var body request.AuthorizeBankRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		invalidRequest(c, err)
		return
	}
	provider := entities.BankProvider(strings.ToLower(strings.TrimSpace(body.Provider)))

	authURL, handshake, err := h.usecase.BeginAuthorization(c.Request.Context(), provider)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.AuthorizeBankResponse{
		AuthorizationURL: authURL,
		State:            handshake.State,
		ExpiresAt:        handshake.ExpiresAt,
	})
}

// Callback godoc
// @Summary      OAuth redirect target
// @Tags         bank-connections
// @Produce      json
// @Param        code   query     string  false  "Authorization code"
// @Param        state  query     string  true   "Handshake state"
// @Success      201    {object}  response.BankConnectionResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      502    {object}  pkg.HTTPError
// @Router       /bank-connections/callback [get]
func (h *BankConnectionHandler) Callback(c *gin.Context) {
	if bankErr := c.Query("error"); bankErr != "" {
		h.log.Warn().Str("error", bankErr).Msg("[bank][handler] authorization denied by bank")
	}

	conn, err := h.usecase.CompleteAuthorization(c.Request.Context(), c.Query("code"), c.Query("state"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromBankConnection(conn))
}

// ListConnections godoc
// @Summary      List bank connections
// @Tags         bank-connections
// @Produce      json
// @Success      200  {array}  response.BankConnectionResponse
// @Router       /bank-connections [get]
func (h *BankConnectionHandler) ListConnections(c *gin.Context) {
	conns, err := h.usecase.List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBankConnections(conns))
}

// Disconnect godoc
// @Summary      Remove a bank connection and disable its gateways
// @Tags         bank-connections
// @Param        id   path  string  true  "Connection ID"
// @Success      204
// @Router       /bank-connections/{id} [delete]
func (h *BankConnectionHandler) Disconnect(c *gin.Context) {
	if err := h.usecase.Disconnect(c.Request.Context(), c.Param("id")); err != nil {
		renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
