package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"pdv_pagamentos/internal/domain/entities"
)

const sandboxPayerEmail = "test_user_br@testuser.com"

var externalMethodIDs = map[entities.PaymentMethod]string{
	entities.PaymentMethodCredit:   "credit_card",
	entities.PaymentMethodDebit:    "debit_card",
	entities.PaymentMethodPix:      "pix",
	entities.PaymentMethodBankSlip: "bolbradesco",
}

// buildExternalPayload renders the request in the Mercado Pago payment schema,
// which every external provider adapter accepts.
func buildExternalPayload(gateway entities.PaymentGateway, req entities.PaymentRequest) (json.RawMessage, error) {
	methodID, ok := externalMethodIDs[req.Method]
	if !ok {
		methodID = string(req.Method)
	}
	installments := req.Installments
	if installments < 1 {
		installments = 1
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = "Venda PDV"
	}

	m := map[string]any{
		"transaction_amount": req.Amount.InexactFloat64(),
		"description":        description,
		"payment_method_id":  methodID,
		"installments":       installments,
		"payer":              payerFromCustomer(req.Customer),
		"metadata":           map[string]any{"pdv_method": string(req.Method), "gateway_id": gateway.ID},
	}
	if req.Reference != "" {
		m["external_reference"] = req.Reference
	}
	ensurePayerDefaults(m, gateway.TestMode)
	return json.Marshal(m)
}

func payerFromCustomer(c entities.CustomerInfo) map[string]any {
	payer := map[string]any{}
	if c.Email != "" {
		payer["email"] = c.Email
	}
	if c.Name != "" {
		first, last, _ := strings.Cut(strings.TrimSpace(c.Name), " ")
		payer["first_name"] = first
		if last != "" {
			payer["last_name"] = strings.TrimSpace(last)
		}
	}
	if doc := onlyDigits(c.Document); doc != "" {
		docType := "CPF"
		if len(doc) == 14 {
			docType = "CNPJ"
		}
		payer["identification"] = map[string]any{"type": docType, "number": doc}
	}
	return payer
}

// ensurePayerDefaults fills payer.type and, for sandbox gateways, the test
// payer email Mercado Pago requires when no email was given.
func ensurePayerDefaults(m map[string]any, testMode bool) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if testMode && !hasNonEmptyString(payer, "email") {
		payer["email"] = sandboxPayerEmail
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func onlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

type externalDetails struct {
	AuthorizationCode  string `json:"authorization_code"`
	ReceiptURL         string `json:"receipt_url"`
	PointOfInteraction struct {
		TransactionData struct {
			QRCode    string `json:"qr_code"`
			TicketURL string `json:"ticket_url"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
	TransactionDetails struct {
		ExternalResourceURL string `json:"external_resource_url"`
	} `json:"transaction_details"`
}

func (d externalDetails) receiptURL() string {
	for _, u := range []string{d.ReceiptURL, d.PointOfInteraction.TransactionData.TicketURL, d.TransactionDetails.ExternalResourceURL} {
		if u != "" {
			return u
		}
	}
	return ""
}

func parseExternalDetails(raw json.RawMessage) externalDetails {
	var d externalDetails
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &d)
	}
	return d
}

// classifyGatewayError maps a provider call failure onto the taxonomy. Only
// recognized request or credential rejections are non-retryable.
func classifyGatewayError(err error) error {
	var sc interface{ HTTPStatus() int }
	if errors.As(err, &sc) {
		switch sc.HTTPStatus() {
		case 400, 404, 422:
			return ErrPaymentGatewayBadRequest
		case 401, 403:
			return ErrPaymentGatewayUnauthorized
		}
		return ErrTransportFailure
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrTransportFailure
	}
	switch {
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err), isGatewayInvalidUsers(err), isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayBadRequest
	}
	return ErrTransportFailure
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
