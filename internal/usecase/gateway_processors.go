package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"pdv_pagamentos/internal/domain/entities"
	"pdv_pagamentos/internal/domain/pix"
	"pdv_pagamentos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const slipDueDays = 3

// dispatchCall is what a processor receives for one dispatch.
type dispatchCall struct {
	Gateway entities.PaymentGateway
	Request entities.PaymentRequest
	Now     time.Time
}

// gatewayProcessor settles a payment through one kind of gateway. The set of
// implementations is closed: local, bank and external.
type gatewayProcessor interface {
	process(ctx context.Context, call dispatchCall) (entities.PaymentResponse, error)
	gatewayType() entities.GatewayType
}

// localProcessor settles manually: the operator asserts the money was received.
type localProcessor struct{}

func (localProcessor) gatewayType() entities.GatewayType { return entities.GatewayTypeLocal }

func (localProcessor) process(_ context.Context, call dispatchCall) (entities.PaymentResponse, error) {
	req := call.Request
	cfg := call.Gateway.LocalConfig
	txID := uuid.NewString()
	resp := entities.PaymentResponse{
		ID:                txID,
		Status:            entities.PaymentStatusApproved,
		AuthorizationCode: localAuthorizationCode(),
		TransactionID:     txID,
		GatewayResponse:   json.RawMessage(`{"settlement":"manual"}`),
	}

	switch req.Method {
	case entities.PaymentMethodPix:
		if strings.TrimSpace(cfg.PixKey) == "" {
			break
		}
		payload, err := pix.StaticCode{
			Key:          cfg.PixKey,
			MerchantName: cfg.CompanyName,
			MerchantCity: cfg.City,
			Amount:       req.Amount,
			TxID:         txID[:8],
		}.Payload()
		if err != nil {
			return entities.PaymentResponse{}, newDispatchError(ErrInvalidGatewayConfig, string(req.Method), call.Gateway.ID, err)
		}
		resp.QRCodePayload = payload
	case entities.PaymentMethodBankSlip:
		resp.BankSlipReference = slipReference(cfg.SlipBankCode, call.Now.AddDate(0, 0, slipDueDays), req.Amount.Shift(2).IntPart())
	case entities.PaymentMethodWireTransfer:
		resp.ManualNotes = wireTransferNotes(cfg)
	}
	return resp, nil
}

func localAuthorizationCode() string {
	return "LOC-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// slipReference renders bank code, due date and amount in cents followed by a
// modulo-10 check digit, e.g. 001.20260115.0000012550-3.
func slipReference(bankCode string, due time.Time, cents int64) string {
	bankCode = strings.TrimSpace(bankCode)
	if len(bankCode) != 3 || strings.Trim(bankCode, "0123456789") != "" {
		bankCode = "000"
	}
	digits := fmt.Sprintf("%s%s%010d", bankCode, due.Format("20060102"), cents)
	return fmt.Sprintf("%s.%s.%s-%d", digits[:3], digits[3:11], digits[11:], mod10(digits))
}

func mod10(digits string) int {
	sum := 0
	weight := 2
	for i := len(digits) - 1; i >= 0; i-- {
		p := int(digits[i]-'0') * weight
		sum += p/10 + p%10
		if weight == 2 {
			weight = 1
		} else {
			weight = 2
		}
	}
	return (10 - sum%10) % 10
}

func wireTransferNotes(cfg entities.LocalConfig) string {
	t := cfg.BankTransfer
	if t.BankName == "" && t.Agency == "" && t.Account == "" {
		return "Transferência bancária: confirmar recebimento manualmente"
	}
	parts := []string{"Transferência para " + t.BankName}
	if t.Agency != "" {
		parts = append(parts, "Agência "+t.Agency)
	}
	if t.Account != "" {
		parts = append(parts, "Conta "+t.Account)
	}
	holder := t.Holder
	if holder == "" {
		holder = cfg.CompanyName
	}
	if holder != "" {
		parts = append(parts, "Titular "+holder)
	}
	if cfg.CompanyDocument != "" {
		parts = append(parts, "CNPJ/CPF "+cfg.CompanyDocument)
	}
	return strings.Join(parts, " | ")
}

// bankProcessor charges the bank account behind an OAuth connection.
type bankProcessor struct {
	connections IBankConnectionUseCase
	bank        interfaces.IBankAPI
}

func (bankProcessor) gatewayType() entities.GatewayType { return entities.GatewayTypeBank }

func (p bankProcessor) process(ctx context.Context, call dispatchCall) (entities.PaymentResponse, error) {
	req := call.Request
	connID := call.Gateway.BankConnectionID
	conn, err := p.connections.EnsureValid(ctx, connID)
	if err != nil {
		kind := ErrBankConnectionExpired
		if errors.Is(err, ErrBankConnectionNotFound) {
			kind = ErrBankConnectionNotFound
		}
		de := asDispatchError(err, kind, string(req.Method), call.Gateway.ID)
		if de.ConnectionID == "" {
			de.ConnectionID = connID
		}
		return entities.PaymentResponse{}, de
	}

	paymentID := uuid.NewString()
	result, err := p.bank.Charge(ctx, conn, entities.BankCharge{
		IdempotencyKey: paymentID,
		Amount:         req.Amount.StringFixed(2),
		Method:         req.Method,
		Description:    req.Description,
		Reference:      req.Reference,
		PayerName:      req.Customer.Name,
		PayerDoc:       req.Customer.Document,
	})
	if err != nil {
		return entities.PaymentResponse{}, &DispatchError{
			Kind:         ErrTransportFailure,
			GatewayID:    call.Gateway.ID,
			ConnectionID: conn.ID,
			Method:       string(req.Method),
			Err:          err,
		}
	}

	detail := bankGatewayDetail{
		ConnectionID:  conn.ID,
		Provider:      string(conn.Provider),
		BankName:      conn.AccountInfo.BankName,
		Agency:        conn.AccountInfo.Agency,
		AccountNumber: conn.AccountInfo.AccountNumber,
		DeclineReason: result.DeclineReason,
	}
	if len(result.Raw) > 0 && json.Valid(result.Raw) {
		detail.Bank = result.Raw
	}
	raw, err := json.Marshal(detail)
	if err != nil {
		return entities.PaymentResponse{}, err
	}

	resp := entities.PaymentResponse{
		ID:                paymentID,
		Status:            entities.PaymentStatusApproved,
		AuthorizationCode: result.AuthorizationCode,
		TransactionID:     result.TransactionID,
		QRCodePayload:     result.QRCodePayload,
		GatewayResponse:   raw,
	}
	if resp.TransactionID == "" {
		resp.TransactionID = resp.ID
	}
	if !result.Approved {
		resp.Status = entities.PaymentStatusDeclined
		resp.AuthorizationCode = ""
		resp.QRCodePayload = ""
	}
	return resp, nil
}

type bankGatewayDetail struct {
	ConnectionID  string          `json:"connection_id"`
	Provider      string          `json:"provider"`
	BankName      string          `json:"bank_name,omitempty"`
	Agency        string          `json:"agency,omitempty"`
	AccountNumber string          `json:"account_number,omitempty"`
	DeclineReason string          `json:"decline_reason,omitempty"`
	Bank          json.RawMessage `json:"bank,omitempty"`
}

// externalProcessor delegates to a third-party payment API.
type externalProcessor struct {
	providers interfaces.IExternalGatewayProvider
	timeout   time.Duration
}

func (externalProcessor) gatewayType() entities.GatewayType { return entities.GatewayTypeExternal }

func (p externalProcessor) process(ctx context.Context, call dispatchCall) (entities.PaymentResponse, error) {
	req := call.Request
	method := string(req.Method)
	client, err := p.providers.ForGateway(call.Gateway)
	if err != nil {
		return entities.PaymentResponse{}, newDispatchError(ErrInvalidGatewayConfig, method, call.Gateway.ID, err)
	}

	payload, err := buildExternalPayload(call.Gateway, req)
	if err != nil {
		return entities.PaymentResponse{}, newDispatchError(ErrInvalidRequest, method, call.Gateway.ID, err)
	}

	callCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	providerID, providerStatus, providerResp, err := client.CreatePayment(callCtx, payload)
	if err != nil {
		return entities.PaymentResponse{}, newDispatchError(classifyGatewayError(err), method, call.Gateway.ID, err)
	}

	resp := entities.PaymentResponse{
		ID:              uuid.NewString(),
		Status:          normalizeProviderStatus(providerStatus),
		TransactionID:   providerID,
		GatewayResponse: providerResp,
	}
	if resp.TransactionID == "" {
		resp.TransactionID = resp.ID
	}
	details := parseExternalDetails(providerResp)
	resp.AuthorizationCode = details.AuthorizationCode
	resp.ReceiptURL = details.receiptURL()
	resp.QRCodePayload = details.PointOfInteraction.TransactionData.QRCode
	return resp, nil
}

// normalizeProviderStatus maps provider vocabularies (Mercado Pago, Square)
// onto PaymentStatus.
func normalizeProviderStatus(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized", "completed":
		return entities.PaymentStatusApproved
	case "rejected", "failed", "declined":
		return entities.PaymentStatusDeclined
	case "cancelled", "canceled":
		return entities.PaymentStatusCancelled
	}
	return entities.PaymentStatusPending
}
