package handlers

import (
	"errors"
	"net/http"

	"pdv_pagamentos/internal/adapter/http/dto/response"
	"pdv_pagamentos/internal/domain/entities"
	"pdv_pagamentos/internal/usecase"
	"pdv_pagamentos/pkg"

	"github.com/gin-gonic/gin"
)

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrLedgerAppendFailed):
		return pkg.NewDomainError("LEDGER_APPEND_FAILED", "Payment settled but could not be recorded; do not retry", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrInvalidRequest):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidGatewayConfig):
		return pkg.NewDomainError("INVALID_GATEWAY_CONFIG", "Invalid gateway configuration", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOAuthStateMismatch):
		return pkg.NewDomainError("OAUTH_STATE_MISMATCH", "Authorization state is unknown, expired or already used", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("PAYMENT_PROVIDER_BAD_REQUEST", "Payment provider rejected the request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrExternalGatewayDeclined):
		return pkg.NewDomainError("PAYMENT_DECLINED", "Payment declined", err, http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrBankConnectionNotFound):
		return pkg.NewDomainError("BANK_CONNECTION_NOT_FOUND", "Bank connection not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrLedgerEntryNotFound):
		return pkg.NewDomainError("PAYMENT_NOT_FOUND", "Payment not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrBankConnectionExpired):
		return pkg.NewDomainError("BANK_CONNECTION_EXPIRED", "Bank connection expired; authorize it again", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrNoGatewayAvailable):
		return pkg.NewDomainError("NO_GATEWAY_AVAILABLE", "No enabled gateway supports this payment method", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInsufficientAmountCoverage):
		return pkg.NewDomainError("INSUFFICIENT_AMOUNT", "Collected amounts do not cover the total", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrTransportFailure):
		return pkg.NewDomainError("GATEWAY_UNAVAILABLE", "Payment gateway unavailable", err, http.StatusBadGateway).AsRetryable()
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func invalidRequest(c *gin.Context, err error) {
	appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func renderError(c *gin.Context, err error) {
	appErr := mapPaymentError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// renderSettledError renders a failure that happened after money moved,
// echoing the settled payments so the caller keeps their transaction ids.
func renderSettledError(c *gin.Context, err error, settled []entities.PaymentResponse) {
	appErr := mapPaymentError(err)
	c.JSON(appErr.HTTPStatus, response.SettledErrorResponse{
		HTTPError: appErr.ToHTTPError(),
		Payments:  response.FromPaymentResponses(settled),
	})
}
