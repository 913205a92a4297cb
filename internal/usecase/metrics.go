package usecase

import "time"

type noopMetrics struct{}

func (noopMetrics) ObserveDispatch(string, string, string, time.Duration) {}
func (noopMetrics) IncDispatchFailure(string)                             {}
func (noopMetrics) IncTokenRefresh(string)                                {}
