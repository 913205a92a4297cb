package handlers

import (
	"errors"
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

// PaymentHandler handles dispatch, split payments and ledger reads.
type PaymentHandler struct {
	dispatcher usecase.IPaymentDispatcher
	split      usecase.ISplitPaymentUseCase
	ledger     usecase.ILedgerUseCase
	log        zerolog.Logger
}

func NewPaymentHandler(dispatcher usecase.IPaymentDispatcher, split usecase.ISplitPaymentUseCase, ledger usecase.ILedgerUseCase) *PaymentHandler {
	return &PaymentHandler{dispatcher: dispatcher, split: split, ledger: ledger, log: logger.Component("payment_handler")}
}

// CreatePayment godoc
// @Summary      Dispatch a payment
// @Description  Routes the payment to the first enabled gateway supporting the method.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment  body      request.PaymentRequest  true  "Payment"
// @Success      201      {object}  response.PaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var body request.PaymentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.log.Warn().Err(err).Msg("[payment][handler] invalid payload")
		invalidRequest(c, err)
		return
	}
	req, err := body.ToEntity()
	if err != nil {
		invalidRequest(c, err)
		return
	}

	resp, err := h.dispatcher.Dispatch(c.Request.Context(), req)
	if err != nil {
		h.log.Warn().Err(err).Str("method", string(req.Method)).Msg("[payment][handler] dispatch failed")
		if errors.Is(err, usecase.ErrLedgerAppendFailed) && resp.ID != "" {
			renderSettledError(c, err, []entities.PaymentResponse{resp})
			return
		}
		renderError(c, err)
		return
	}
	h.log.Info().Str("payment_id", resp.ID).Str("status", string(resp.Status)).Msg("[payment][handler] dispatch success")

	c.JSON(http.StatusCreated, response.FromPaymentResponse(resp))
}

// ExecuteSplit godoc
// @Summary      Pay an order with several methods
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        plan  body      request.SplitPaymentRequest  true  "Split plan"
// @Success      201   {object}  response.SplitPaymentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      402   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /payments/split [post]
func (h *PaymentHandler) ExecuteSplit(c *gin.Context) {
	plan, ok := h.bindSplitPlan(c)
	if !ok {
		return
	}

	result, err := h.split.Execute(c.Request.Context(), plan)
	if err != nil {
		h.log.Warn().Err(err).Str("reference", plan.Reference).Int("dispatched", len(result.Payments)).Msg("[payment][handler] split failed")
		if len(result.Payments) > 0 {
			renderSettledError(c, err, result.Payments)
			return
		}
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromSplitResult(result))
}

// ReconcileSplit godoc
// @Summary      Check a split plan without charging
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        plan  body      request.SplitPaymentRequest  true  "Split plan"
// @Success      200   {object}  response.SplitSummaryResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /payments/split/reconcile [post]
func (h *PaymentHandler) ReconcileSplit(c *gin.Context) {
	plan, ok := h.bindSplitPlan(c)
	if !ok {
		return
	}

	summary, err := h.split.Reconcile(plan)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromSplitSummary(summary))
}

func (h *PaymentHandler) bindSplitPlan(c *gin.Context) (entities.SplitPaymentPlan, bool) {
	var body request.SplitPaymentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.log.Warn().Err(err).Msg("[payment][handler] invalid split payload")
		invalidRequest(c, err)
		return entities.SplitPaymentPlan{}, false
	}
	plan, err := body.ToEntity()
	if err != nil {
		invalidRequest(c, err)
		return entities.SplitPaymentPlan{}, false
	}
	return plan, true
}

// ListLedger godoc
// @Summary      List recorded payments
// @Tags         payments
// @Produce      json
// @Param        reference  query     string  false  "Order reference"
// @Success      200        {array}   response.LedgerEntryResponse
// @Router       /payments/ledger [get]
func (h *PaymentHandler) ListLedger(c *gin.Context) {
	var (
		entries []entities.LedgerEntry
		err     error
	)
	if ref := strings.TrimSpace(c.Query("reference")); ref != "" {
		entries, err = h.ledger.ListByReference(c.Request.Context(), ref)
	} else {
		entries, err = h.ledger.List(c.Request.Context())
	}
	if err != nil {
		h.log.Error().Err(err).Msg("[payment][handler] ledger list failed")
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromLedgerEntries(entries))
}

// GetPayment godoc
// @Summary      Get a recorded payment
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Payment ID"
// @Success      200  {object}  response.LedgerEntryResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	entry, err := h.ledger.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromLedgerEntry(entry))
}

// GetReceipt godoc
// @Summary      Render the receipt of a recorded payment
// @Tags         payments
// @Produce      plain
// @Param        id   path      string  true  "Payment ID"
// @Success      200  {string}  string
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{id}/receipt [get]
func (h *PaymentHandler) GetReceipt(c *gin.Context) {
	text, err := h.ledger.Receipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.String(http.StatusOK, text)
}
