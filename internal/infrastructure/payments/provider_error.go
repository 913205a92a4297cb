package payments

import "fmt"

// ProviderError is a provider API failure with its HTTP status.
type ProviderError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s api error (status=%d): %v", e.Provider, e.StatusCode, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

func (e *ProviderError) HTTPStatus() int { return e.StatusCode }
