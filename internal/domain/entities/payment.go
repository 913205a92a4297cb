package entities

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveAmount   = errors.New("amount must be greater than zero")
	ErrAmountPrecision     = errors.New("amount must have at most two decimal places")
	ErrUnknownMethod       = errors.New("unknown payment method")
	ErrInvalidInstallments = errors.New("invalid installments")
)

// PaymentStatus is the normalized outcome of a dispatch.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusApproved   PaymentStatus = "approved"
	PaymentStatusDeclined   PaymentStatus = "declined"
	PaymentStatusRefunded   PaymentStatus = "refunded"
	PaymentStatusCancelled  PaymentStatus = "cancelled"
)

// CustomerInfo is the optional identity printed on receipts and forwarded to
// external providers.
type CustomerInfo struct {
	Name     string `json:"name,omitempty"`
	Document string `json:"document,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

func (c CustomerInfo) IsZero() bool {
	return c == CustomerInfo{}
}

// PaymentRequest asks for one amount to be charged by one method.
type PaymentRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	Method       PaymentMethod   `json:"method"`
	Description  string          `json:"description"`
	Customer     CustomerInfo    `json:"customer"`
	Installments int             `json:"installments,omitempty"`
	Reference    string          `json:"reference,omitempty"`
}

func (r PaymentRequest) Validate() error {
	if !r.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if !isCents(r.Amount) {
		return ErrAmountPrecision
	}
	if !r.Method.IsValid() {
		return ErrUnknownMethod
	}
	if r.Installments < 0 {
		return ErrInvalidInstallments
	}
	if r.Installments > 1 && r.Method != PaymentMethodCredit {
		return ErrInvalidInstallments
	}
	return nil
}

func isCents(v decimal.Decimal) bool {
	return v.Equal(v.Round(2))
}

// PaymentResponse is the normalized result of a dispatch. It is never
// mutated after creation.
type PaymentResponse struct {
	ID                string          `json:"id"`
	Status            PaymentStatus   `json:"status"`
	Amount            decimal.Decimal `json:"amount"`
	Method            PaymentMethod   `json:"method"`
	AuthorizationCode string          `json:"authorization_code,omitempty"`
	TransactionID     string          `json:"transaction_id"`
	ReceiptURL        string          `json:"receipt_url,omitempty"`
	QRCodePayload     string          `json:"qr_code_payload,omitempty"`
	BankSlipReference string          `json:"bank_slip_reference,omitempty"`
	ProcessingDate    time.Time       `json:"processing_date"`
	GatewayID         string          `json:"gateway_id"`
	GatewayResponse   json.RawMessage `json:"gateway_response,omitempty"`
	ManualNotes       string          `json:"manual_notes,omitempty"`
}

// IsSettled reports whether the response lets an order move forward:
// approved, or accepted as pending by the provider.
func (r PaymentResponse) IsSettled() bool {
	return r.Status == PaymentStatusApproved || r.Status == PaymentStatusPending
}
