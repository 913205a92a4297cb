package interfaces

import "time"

// IPaymentMetrics receives dispatch and token refresh observations.
type IPaymentMetrics interface {
	ObserveDispatch(gatewayType, method, status string, duration time.Duration)
	IncDispatchFailure(kind string)
	IncTokenRefresh(result string)
}
