package response

import (
	"encoding/json"
	"time"

	"pdv_pagamentos/internal/domain/entities"
	"pdv_pagamentos/internal/usecase"
	"pdv_pagamentos/pkg"
)

type PaymentResponse struct {
	ID                string          `json:"id"`
	Status            string          `json:"status"`
	Amount            string          `json:"amount"`
	Method            string          `json:"method"`
	MethodLabel       string          `json:"method_label"`
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

func FromPaymentResponse(p entities.PaymentResponse) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		Status:            string(p.Status),
		Amount:            p.Amount.StringFixed(2),
		Method:            string(p.Method),
		MethodLabel:       p.Method.Label(),
		AuthorizationCode: p.AuthorizationCode,
		TransactionID:     p.TransactionID,
		ReceiptURL:        p.ReceiptURL,
		QRCodePayload:     p.QRCodePayload,
		BankSlipReference: p.BankSlipReference,
		ProcessingDate:    p.ProcessingDate,
		GatewayID:         p.GatewayID,
		GatewayResponse:   p.GatewayResponse,
		ManualNotes:       p.ManualNotes,
	}
}

type SplitSummaryResponse struct {
	Total       string `json:"total"`
	Collected   string `json:"collected"`
	Remaining   string `json:"remaining"`
	CashPortion string `json:"cash_portion"`
	Received    string `json:"received"`
	Change      string `json:"change"`
}

func FromSplitSummary(s usecase.SplitSummary) SplitSummaryResponse {
	return SplitSummaryResponse{
		Total:       s.Total.StringFixed(2),
		Collected:   s.Collected.StringFixed(2),
		Remaining:   s.Remaining.StringFixed(2),
		CashPortion: s.CashPortion.StringFixed(2),
		Received:    s.Received.StringFixed(2),
		Change:      s.Change.StringFixed(2),
	}
}

type SplitPaymentResponse struct {
	Paid     bool                 `json:"paid"`
	Summary  SplitSummaryResponse `json:"summary"`
	Payments []PaymentResponse    `json:"payments"`
}

func FromSplitResult(r usecase.SplitPaymentResult) SplitPaymentResponse {
	return SplitPaymentResponse{Paid: r.Paid, Summary: FromSplitSummary(r.Summary), Payments: FromPaymentResponses(r.Payments)}
}

func FromPaymentResponses(rs []entities.PaymentResponse) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(rs))
	for _, p := range rs {
		out = append(out, FromPaymentResponse(p))
	}
	return out
}

// SettledErrorResponse is an error body that also lists payments which
// already moved money.
type SettledErrorResponse struct {
	pkg.HTTPError
	Payments []PaymentResponse `json:"payments"`
}

type LedgerEntryResponse struct {
	ID          string                `json:"id"`
	Payment     PaymentResponse       `json:"payment"`
	GatewayID   string                `json:"gateway_id"`
	GatewayType string                `json:"gateway_type"`
	Description string                `json:"description,omitempty"`
	Reference   string                `json:"reference,omitempty"`
	Customer    entities.CustomerInfo `json:"customer"`
	RecordedAt  time.Time             `json:"recorded_at"`
}

func FromLedgerEntry(e entities.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:          e.ID,
		Payment:     FromPaymentResponse(e.Response),
		GatewayID:   e.GatewayID,
		GatewayType: string(e.GatewayType),
		Description: e.Description,
		Reference:   e.Reference,
		Customer:    e.Customer,
		RecordedAt:  e.RecordedAt,
	}
}

func FromLedgerEntries(entries []entities.LedgerEntry) []LedgerEntryResponse {
	out := make([]LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromLedgerEntry(e))
	}
	return out
}
