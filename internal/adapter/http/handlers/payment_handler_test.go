package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pdv_pagamentos/internal/adapter/http/handlers/mocks"
	"pdv_pagamentos/internal/domain/entities"
	"pdv_pagamentos/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type paymentHandlerMocks struct {
	dispatcher *mocks.MockIPaymentDispatcher
	split      *mocks.MockISplitPaymentUseCase
	ledger     *mocks.MockILedgerUseCase
}

func newPaymentRouter(t *testing.T) (*gin.Engine, paymentHandlerMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	m := paymentHandlerMocks{
		dispatcher: mocks.NewMockIPaymentDispatcher(ctrl),
		split:      mocks.NewMockISplitPaymentUseCase(ctrl),
		ledger:     mocks.NewMockILedgerUseCase(ctrl),
	}
	h := NewPaymentHandler(m.dispatcher, m.split, m.ledger)

	r := gin.New()
	r.POST("/v1/payments", h.CreatePayment)
	r.POST("/v1/payments/split", h.ExecuteSplit)
	r.POST("/v1/payments/split/reconcile", h.ReconcileSplit)
	r.GET("/v1/payments/ledger", h.ListLedger)
	r.GET("/v1/payments/:id", h.GetPayment)
	r.GET("/v1/payments/:id/receipt", h.GetReceipt)
	return r, m
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPaymentHandler_CreatePayment(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newPaymentRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/payments", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		r, _ := newPaymentRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/payments", `{"amount":"abc","method":"pix"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("mapped dispatch errors", func(t *testing.T) {
		cases := []struct {
			err       error
			status    int
			code      string
			retryable bool
		}{
			{err: &usecase.DispatchError{Kind: usecase.ErrNoGatewayAvailable, Method: "pix"}, status: http.StatusUnprocessableEntity, code: "NO_GATEWAY_AVAILABLE"},
			{err: &usecase.DispatchError{Kind: usecase.ErrBankConnectionExpired, ConnectionID: "c1"}, status: http.StatusConflict, code: "BANK_CONNECTION_EXPIRED"},
			{err: &usecase.DispatchError{Kind: usecase.ErrTransportFailure}, status: http.StatusBadGateway, code: "GATEWAY_UNAVAILABLE", retryable: true},
			{err: &usecase.DispatchError{Kind: usecase.ErrPaymentGatewayUnauthorized}, status: http.StatusUnauthorized, code: "PAYMENT_PROVIDER_UNAUTHORIZED"},
		}
		for _, tc := range cases {
			r, m := newPaymentRouter(t)
			m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(entities.PaymentResponse{}, tc.err)

			w := doJSON(r, http.MethodPost, "/v1/payments", `{"amount":"10.00","method":"pix"}`)
			if w.Code != tc.status {
				t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, w.Code)
			}
			var body map[string]any
			_ = json.Unmarshal(w.Body.Bytes(), &body)
			if body["code"] != tc.code {
				t.Fatalf("expected code %s, got %v", tc.code, body["code"])
			}
			if retry, _ := body["retryable"].(bool); retry != tc.retryable {
				t.Fatalf("expected retryable=%v, got %v", tc.retryable, body["retryable"])
			}
		}
	})

	t.Run("ledger failure returns the settled payment", func(t *testing.T) {
		r, m := newPaymentRouter(t)
		settled := entities.PaymentResponse{ID: "p9", TransactionID: "tx-9", Status: entities.PaymentStatusApproved, Amount: decimal.NewFromInt(10), Method: entities.PaymentMethodPix, GatewayID: "mp"}
		m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(settled, &usecase.DispatchError{Kind: usecase.ErrLedgerAppendFailed, GatewayID: "mp"})

		w := doJSON(r, http.MethodPost, "/v1/payments", `{"amount":"10.00","method":"pix"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body struct {
			Code      string           `json:"code"`
			Retryable bool             `json:"retryable"`
			Payments  []map[string]any `json:"payments"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Code != "LEDGER_APPEND_FAILED" || body.Retryable {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
		if len(body.Payments) != 1 || body.Payments[0]["transaction_id"] != "tx-9" {
			t.Fatalf("expected the settled payment in the body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, m := newPaymentRouter(t)
		m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, req entities.PaymentRequest) (entities.PaymentResponse, error) {
			if !req.Amount.Equal(decimal.RequireFromString("10.5")) || req.Method != entities.PaymentMethodCash {
				t.Fatalf("unexpected request: %+v", req)
			}
			return entities.PaymentResponse{ID: "p1", Status: entities.PaymentStatusApproved, Amount: req.Amount, Method: req.Method, GatewayID: "local", ProcessingDate: time.Now().UTC()}, nil
		})

		w := doJSON(r, http.MethodPost, "/v1/payments", `{"amount":"10.5","method":"cash","customer":{"name":"Ana"}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "p1" || body["amount"] != "10.50" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_Split(t *testing.T) {
	plan := `{"total":"30","legs":[{"method":"cash","amount":"40"}],"received_amount":"40"}`

	t.Run("reconcile", func(t *testing.T) {
		r, m := newPaymentRouter(t)
		m.split.EXPECT().Reconcile(gomock.Any()).Return(usecase.SplitSummary{Total: decimal.NewFromInt(30), Change: decimal.NewFromInt(10)}, nil)

		w := doJSON(r, http.MethodPost, "/v1/payments/split/reconcile", plan)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"change":"10.00"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("insufficient coverage", func(t *testing.T) {
		r, m := newPaymentRouter(t)
		m.split.EXPECT().Reconcile(gomock.Any()).Return(usecase.SplitSummary{}, usecase.ErrInsufficientAmountCoverage)

		w := doJSON(r, http.MethodPost, "/v1/payments/split/reconcile", plan)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("missing legs", func(t *testing.T) {
		r, _ := newPaymentRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/payments/split", `{"total":"30","legs":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("declined leg", func(t *testing.T) {
		r, m := newPaymentRouter(t)
		m.split.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(usecase.SplitPaymentResult{}, &usecase.DispatchError{Kind: usecase.ErrExternalGatewayDeclined, GatewayID: "mp"})

		w := doJSON(r, http.MethodPost, "/v1/payments/split", plan)
		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
	})

	t.Run("paid", func(t *testing.T) {
		r, m := newPaymentRouter(t)
		m.split.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(usecase.SplitPaymentResult{
			Paid:     true,
			Payments: []entities.PaymentResponse{{ID: "p1", Amount: decimal.NewFromInt(30), Status: entities.PaymentStatusApproved}},
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/payments/split", plan)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"paid":true`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_Ledger(t *testing.T) {
	t.Run("list by reference", func(t *testing.T) {
		r, m := newPaymentRouter(t)
		m.ledger.EXPECT().ListByReference(gomock.Any(), "order-7").Return([]entities.LedgerEntry{{ID: "p1"}, {ID: "p2"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/payments/ledger?reference=order-7", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("expected 2 entries, got %s", w.Body.String())
		}
	})

	t.Run("list all", func(t *testing.T) {
		r, m := newPaymentRouter(t)
		m.ledger.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := doJSON(r, http.MethodGet, "/v1/payments/ledger", "")
		if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
			t.Fatalf("expected empty list, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("get not found", func(t *testing.T) {
		r, m := newPaymentRouter(t)
		m.ledger.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.LedgerEntry{}, usecase.ErrLedgerEntryNotFound)

		w := doJSON(r, http.MethodGet, "/v1/payments/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("receipt", func(t *testing.T) {
		r, m := newPaymentRouter(t)
		m.ledger.EXPECT().Receipt(gomock.Any(), "p1").Return("COMPROVANTE DE PAGAMENTO\n", nil)

		w := doJSON(r, http.MethodGet, "/v1/payments/p1/receipt", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain") {
			t.Fatalf("unexpected content type %q", w.Header().Get("Content-Type"))
		}
		if !strings.Contains(w.Body.String(), "COMPROVANTE") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
