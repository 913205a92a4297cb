package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pdv_pagamentos/internal/adapter/http/handlers"
	"pdv_pagamentos/internal/adapter/http/handlers/mocks"
	"pdv_pagamentos/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"
)

type routerMocks struct {
	dispatcher *mocks.MockIPaymentDispatcher
	split      *mocks.MockISplitPaymentUseCase
	ledger     *mocks.MockILedgerUseCase
	registry   *mocks.MockIGatewayRegistry
	banks      *mocks.MockIBankConnectionUseCase
}

func newTestRouter(t *testing.T, gatherer prometheus.Gatherer) (*gin.Engine, routerMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	m := routerMocks{
		dispatcher: mocks.NewMockIPaymentDispatcher(ctrl),
		split:      mocks.NewMockISplitPaymentUseCase(ctrl),
		ledger:     mocks.NewMockILedgerUseCase(ctrl),
		registry:   mocks.NewMockIGatewayRegistry(ctrl),
		banks:      mocks.NewMockIBankConnectionUseCase(ctrl),
	}
	r := NewRouter(Handlers{
		Payments:        handlers.NewPaymentHandler(m.dispatcher, m.split, m.ledger),
		Gateways:        handlers.NewGatewayHandler(m.registry),
		BankConnections: handlers.NewBankConnectionHandler(m.banks),
	}, gatherer)
	return r, m
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Ping(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := serve(r, http.MethodGet, "/v1/ping")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "pong") {
		t.Fatalf("unexpected ping answer: %d %s", w.Code, w.Body.String())
	}
	if w := serve(r, http.MethodGet, "/metrics"); w.Code != http.StatusNotFound {
		t.Fatalf("metrics must not be mounted without a gatherer, got %d", w.Code)
	}
}

func TestRouter_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "pdv_router_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	r, _ := newTestRouter(t, reg)
	w := serve(r, http.MethodGet, "/metrics")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "pdv_router_test_total 1") {
		t.Fatalf("unexpected metrics answer: %d %s", w.Code, w.Body.String())
	}
}

func TestRouter_MountsResourceGroups(t *testing.T) {
	r, m := newTestRouter(t, nil)

	m.registry.EXPECT().List(gomock.Any()).Return(nil, nil)
	m.banks.EXPECT().List(gomock.Any()).Return(nil, nil)
	m.banks.EXPECT().Disconnect(gomock.Any(), "conn-1").Return(nil)
	m.ledger.EXPECT().ListByReference(gomock.Any(), "order-9").Return([]entities.LedgerEntry{}, nil)
	m.ledger.EXPECT().Receipt(gomock.Any(), "pay-1").Return("RECIBO", nil)

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/v1/gateways", http.StatusOK},
		{http.MethodGet, "/v1/bank-connections", http.StatusOK},
		{http.MethodDelete, "/v1/bank-connections/conn-1", http.StatusNoContent},
		{http.MethodGet, "/v1/payments/ledger?reference=order-9", http.StatusOK},
		{http.MethodGet, "/v1/payments/pay-1/receipt", http.StatusOK},
		{http.MethodGet, "/v1/unknown", http.StatusNotFound},
	}
	for _, tc := range cases {
		if w := serve(r, tc.method, tc.path); w.Code != tc.want {
			t.Fatalf("%s %s: expected %d, got %d (%s)", tc.method, tc.path, tc.want, w.Code, w.Body.String())
		}
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, 0, http.NotFoundHandler()) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop")
	}
}
