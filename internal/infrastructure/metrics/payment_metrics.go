package metrics

import (
	"time"

	"pdv_pagamentos/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

// PaymentMetrics records dispatch outcomes and bank token refreshes.
type PaymentMetrics struct {
	dispatchDuration *prometheus.HistogramVec
	dispatchFailures *prometheus.CounterVec
	tokenRefreshes   *prometheus.CounterVec
}

var _ interfaces.IPaymentMetrics = (*PaymentMetrics)(nil)

// NewPaymentMetrics registers the payment metrics on reg. A nil registerer
// yields a no-op recorder.
func NewPaymentMetrics(reg prometheus.Registerer) *PaymentMetrics {
	if reg == nil {
		return &PaymentMetrics{}
	}
	dispatchDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pdv_payment_dispatch_duration_seconds",
		Help:    "Duration of payment dispatches in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"gateway_type", "method", "status"})
	dispatchFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pdv_payment_dispatch_failures_total",
		Help: "Failed payment dispatches by error kind.",
	}, []string{"kind"})
	tokenRefreshes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pdv_bank_token_refresh_total",
		Help: "Bank access token refresh attempts by result.",
	}, []string{"result"})
	reg.MustRegister(dispatchDuration, dispatchFailures, tokenRefreshes)
	return &PaymentMetrics{
		dispatchDuration: dispatchDuration,
		dispatchFailures: dispatchFailures,
		tokenRefreshes:   tokenRefreshes,
	}
}

func (m *PaymentMetrics) ObserveDispatch(gatewayType, method, status string, duration time.Duration) {
	if m == nil || m.dispatchDuration == nil {
		return
	}
	m.dispatchDuration.WithLabelValues(normalizeLabel(gatewayType), normalizeLabel(method), normalizeLabel(status)).Observe(duration.Seconds())
}

func (m *PaymentMetrics) IncDispatchFailure(kind string) {
	if m == nil || m.dispatchFailures == nil {
		return
	}
	m.dispatchFailures.WithLabelValues(normalizeLabel(kind)).Inc()
}

func (m *PaymentMetrics) IncTokenRefresh(result string) {
	if m == nil || m.tokenRefreshes == nil {
		return
	}
	m.tokenRefreshes.WithLabelValues(normalizeLabel(result)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
