package usecase

import (
	"errors"
	"strings"
)

var (
	ErrInvalidRequest             = errors.New("invalid payment request")
	ErrNoGatewayAvailable         = errors.New("no payment gateway available for method")
	ErrOAuthStateMismatch         = errors.New("oauth state mismatch")
	ErrBankConnectionExpired      = errors.New("bank connection expired")
	ErrBankConnectionNotFound     = errors.New("bank connection not found")
	ErrExternalGatewayDeclined    = errors.New("payment declined by gateway")
	ErrTransportFailure           = errors.New("payment gateway transport failure")
	ErrInsufficientAmountCoverage = errors.New("insufficient amount coverage")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
	ErrLedgerEntryNotFound        = errors.New("ledger entry not found")
	ErrInvalidGatewayConfig       = errors.New("invalid payment gateway configuration")
	ErrUnsupportedGatewayType     = errors.New("unsupported payment gateway type")
	// ErrLedgerAppendFailed means the payment settled but was not recorded.
	// It is returned together with the settled response and must not be retried.
	ErrLedgerAppendFailed = errors.New("payment settled but ledger append failed")
)

// DispatchError carries the context of a failed dispatch. It matches its Kind
// and the underlying cause through errors.Is.
type DispatchError struct {
	Kind         error
	GatewayID    string
	ConnectionID string
	Method       string
	Err          error
}

func (e *DispatchError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	var fields []string
	if e.Method != "" {
		fields = append(fields, "method="+e.Method)
	}
	if e.GatewayID != "" {
		fields = append(fields, "gateway="+e.GatewayID)
	}
	if e.ConnectionID != "" {
		fields = append(fields, "connection="+e.ConnectionID)
	}
	if len(fields) > 0 {
		b.WriteString(" (" + strings.Join(fields, " ") + ")")
	}
	if e.Err != nil && e.Err != e.Kind {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e *DispatchError) Unwrap() []error {
	if e.Err == nil || e.Err == e.Kind {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newDispatchError(kind error, method, gatewayID string, err error) *DispatchError {
	return &DispatchError{Kind: kind, Method: method, GatewayID: gatewayID, Err: err}
}

// asDispatchError keeps an existing DispatchError, filling in gateway and
// method when they are still empty, or wraps err under kind.
func asDispatchError(err error, kind error, method, gatewayID string) *DispatchError {
	var de *DispatchError
	if errors.As(err, &de) {
		out := *de
		if out.Method == "" {
			out.Method = method
		}
		if out.GatewayID == "" {
			out.GatewayID = gatewayID
		}
		return &out
	}
	return newDispatchError(kind, method, gatewayID, err)
}

var kindLabels = map[error]string{
	ErrInvalidRequest:             "invalid_request",
	ErrNoGatewayAvailable:         "no_gateway_available",
	ErrOAuthStateMismatch:         "oauth_state_mismatch",
	ErrBankConnectionExpired:      "bank_connection_expired",
	ErrBankConnectionNotFound:     "bank_connection_not_found",
	ErrExternalGatewayDeclined:    "declined",
	ErrTransportFailure:           "transport_failure",
	ErrInsufficientAmountCoverage: "insufficient_amount_coverage",
	ErrPaymentGatewayBadRequest:   "gateway_bad_request",
	ErrPaymentGatewayUnauthorized: "gateway_unauthorized",
	ErrLedgerEntryNotFound:        "ledger_entry_not_found",
	ErrInvalidGatewayConfig:       "invalid_gateway_config",
	ErrUnsupportedGatewayType:     "unsupported_gateway_type",
	ErrLedgerAppendFailed:         "ledger_append_failed",
}

// ErrorKind returns the taxonomy sentinel err belongs to, or nil.
func ErrorKind(err error) error {
	var de *DispatchError
	if errors.As(err, &de) {
		return de.Kind
	}
	for kind := range kindLabels {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

func kindLabel(err error) string {
	if label, ok := kindLabels[ErrorKind(err)]; ok {
		return label
	}
	return "unknown"
}

var _ error = (*DispatchError)(nil)
