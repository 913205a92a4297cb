package entities

import "time"

// LedgerEntry records one completed dispatch together with its request
// context. Entries are append-only.
//
// Storage model (DynamoDB):
//   - PK: id (the response id)
//   - GSI1 (reference-index): reference
type LedgerEntry struct {
	ID          string          `json:"id"`
	Response    PaymentResponse `json:"response"`
	GatewayID   string          `json:"gateway_id"`
	GatewayType GatewayType     `json:"gateway_type"`
	Description string          `json:"description,omitempty"`
	Reference   string          `json:"reference,omitempty"`
	Customer    CustomerInfo    `json:"customer"`
	RecordedAt  time.Time       `json:"recorded_at"`
}

func NewLedgerEntry(resp PaymentResponse, req PaymentRequest, gateway PaymentGateway, recordedAt time.Time) LedgerEntry {
	return LedgerEntry{
		ID:          resp.ID,
		Response:    resp,
		GatewayID:   gateway.ID,
		GatewayType: gateway.Type,
		Description: req.Description,
		Reference:   req.Reference,
		Customer:    req.Customer,
		RecordedAt:  recordedAt,
	}
}
