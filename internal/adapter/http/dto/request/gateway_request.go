package request

import (
	"strings"

	"pdv_pagamentos/internal/domain/entities"
)

type BankTransferRequest struct {
	BankName string `json:"bank_name"`
	Agency   string `json:"agency"`
	Account  string `json:"account"`
	Holder   string `json:"holder"`
}

type LocalConfigRequest struct {
	CompanyName     string              `json:"company_name"`
	CompanyDocument string              `json:"company_document"`
	City            string              `json:"city"`
	PixKey          string              `json:"pix_key"`
	SlipBankCode    string              `json:"slip_bank_code"`
	BankTransfer    BankTransferRequest `json:"bank_transfer"`
}

// GatewayRequest is the body of PUT /v1/gateways/:id. Enabled defaults to
// true; an empty api_key keeps the stored one.
type GatewayRequest struct {
	Name             string             `json:"name"`
	Enabled          *bool              `json:"enabled"`
	Type             string             `json:"type" binding:"required"`
	SupportedMethods []string           `json:"supported_methods" binding:"required,min=1"`
	TestMode         bool               `json:"test_mode"`
	Provider         string             `json:"provider"`
	APIKey           string             `json:"api_key"`
	MerchantID       string             `json:"merchant_id"`
	BankConnectionID string             `json:"bank_connection_id"`
	LocalConfig      LocalConfigRequest `json:"local_config"`
}

func (r GatewayRequest) ToEntity(id string) entities.PaymentGateway {
	enabled := true
	if r.Enabled != nil {
		enabled = *r.Enabled
	}
	methods := make([]entities.PaymentMethod, 0, len(r.SupportedMethods))
	for _, m := range r.SupportedMethods {
		methods = append(methods, entities.PaymentMethod(strings.ToLower(strings.TrimSpace(m))))
	}
	lc := r.LocalConfig
	return entities.PaymentGateway{
		ID:               strings.TrimSpace(id),
		Name:             strings.TrimSpace(r.Name),
		Enabled:          enabled,
		Type:             entities.GatewayType(strings.ToLower(strings.TrimSpace(r.Type))),
		SupportedMethods: methods,
		TestMode:         r.TestMode,
		Provider:         entities.ExternalProvider(strings.ToLower(strings.TrimSpace(r.Provider))),
		APIKey:           strings.TrimSpace(r.APIKey),
		MerchantID:       strings.TrimSpace(r.MerchantID),
		BankConnectionID: strings.TrimSpace(r.BankConnectionID),
		LocalConfig: entities.LocalConfig{
			CompanyName:     lc.CompanyName,
			CompanyDocument: lc.CompanyDocument,
			City:            lc.City,
			PixKey:          strings.TrimSpace(lc.PixKey),
			SlipBankCode:    strings.TrimSpace(lc.SlipBankCode),
			BankTransfer: entities.BankTransferInfo{
				BankName: lc.BankTransfer.BankName,
				Agency:   lc.BankTransfer.Agency,
				Account:  lc.BankTransfer.Account,
				Holder:   lc.BankTransfer.Holder,
			},
		},
	}
}
