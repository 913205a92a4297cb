package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPaymentMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPaymentMetrics(reg)

	m.ObserveDispatch("local", "pix", "approved", 120*time.Millisecond)
	m.IncDispatchFailure("transport_failure")
	m.IncDispatchFailure("transport_failure")
	m.IncTokenRefresh("")

	if got := testutil.ToFloat64(m.dispatchFailures.WithLabelValues("transport_failure")); got != 2 {
		t.Fatalf("expected 2 failures, got %f", got)
	}
	if got := testutil.ToFloat64(m.tokenRefreshes.WithLabelValues("unknown")); got != 1 {
		t.Fatalf("expected empty result normalized to unknown, got %f", got)
	}
	if n := testutil.CollectAndCount(m.dispatchDuration); n != 1 {
		t.Fatalf("expected one histogram series, got %d", n)
	}
}

func TestPaymentMetrics_NilSafe(t *testing.T) {
	var m *PaymentMetrics
	m.ObserveDispatch("local", "pix", "approved", time.Second)
	m.IncDispatchFailure("x")
	NewPaymentMetrics(nil).IncTokenRefresh("success")
}
