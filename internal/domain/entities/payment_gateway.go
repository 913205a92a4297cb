package entities

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"pdv_pagamentos/internal/domain/pix"
)

var ErrInvalidGateway = errors.New("invalid payment gateway")

// GatewayType decides which processing strategy settles a payment.
type GatewayType string

const (
	GatewayTypeLocal    GatewayType = "local"
	GatewayTypeBank     GatewayType = "bank"
	GatewayTypeExternal GatewayType = "external"
)

func (t GatewayType) IsValid() bool {
	switch t {
	case GatewayTypeLocal, GatewayTypeBank, GatewayTypeExternal:
		return true
	}
	return false
}

// ExternalProvider names the third-party API behind an external gateway.
type ExternalProvider string

const (
	ExternalProviderMercadoPago ExternalProvider = "mercadopago"
	ExternalProviderSquare      ExternalProvider = "square"
)

// BankTransferInfo holds the coordinates a customer wires money to.
type BankTransferInfo struct {
	BankName string `json:"bank_name"`
	Agency   string `json:"agency"`
	Account  string `json:"account"`
	Holder   string `json:"holder"`
}

// LocalConfig is the company identity used by manually settled payments.
type LocalConfig struct {
	CompanyName     string           `json:"company_name"`
	CompanyDocument string           `json:"company_document"`
	City            string           `json:"city"`
	PixKey          string           `json:"pix_key"`
	SlipBankCode    string           `json:"slip_bank_code"`
	BankTransfer    BankTransferInfo `json:"bank_transfer"`
}

// PaymentGateway is a configured backend able to settle one or more methods.
//
// Gateways are configuration owned by the settings collaborator. Position
// records registration order and drives selection when several gateways
// support the same method.
type PaymentGateway struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Enabled          bool            `json:"enabled"`
	Type             GatewayType     `json:"type"`
	SupportedMethods []PaymentMethod `json:"supported_methods"`
	Position         int             `json:"position"`

	// external
	TestMode   bool             `json:"test_mode,omitempty"`
	Provider   ExternalProvider `json:"provider,omitempty"`
	APIKey     string           `json:"-"`
	MerchantID string           `json:"merchant_id,omitempty"`

	// bank
	BankConnectionID string `json:"bank_connection_id,omitempty"`

	// local
	LocalConfig LocalConfig `json:"local_config"`
}

func (g PaymentGateway) Supports(method PaymentMethod) bool {
	for _, m := range g.SupportedMethods {
		if m == method {
			return true
		}
	}
	return false
}

// IsUsable reports whether the gateway may be selected for dispatch. A bank
// gateway needs a connection; the connection's state is checked at dispatch.
func (g PaymentGateway) IsUsable() bool {
	if !g.Enabled || len(g.SupportedMethods) == 0 {
		return false
	}
	return g.Type != GatewayTypeBank || strings.TrimSpace(g.BankConnectionID) != ""
}

// Validate checks the type-specific configuration.
func (g PaymentGateway) Validate() error {
	if strings.TrimSpace(g.ID) == "" {
		return errors.Join(ErrInvalidGateway, errors.New("id is required"))
	}
	if !g.Type.IsValid() {
		return errors.Join(ErrInvalidGateway, errors.New("unknown gateway type "+string(g.Type)))
	}
	if len(g.SupportedMethods) == 0 {
		return errors.Join(ErrInvalidGateway, errors.New("at least one supported method is required"))
	}
	for _, m := range g.SupportedMethods {
		if !m.IsValid() {
			return errors.Join(ErrInvalidGateway, errors.New("unknown payment method "+string(m)))
		}
	}
	switch g.Type {
	case GatewayTypeBank:
		if strings.TrimSpace(g.BankConnectionID) == "" {
			return errors.Join(ErrInvalidGateway, errors.New("bank gateway requires bank_connection_id"))
		}
	case GatewayTypeExternal:
		if g.Provider != ExternalProviderMercadoPago && g.Provider != ExternalProviderSquare {
			return errors.Join(ErrInvalidGateway, errors.New("unknown external provider "+string(g.Provider)))
		}
	}
	if key := strings.TrimSpace(g.LocalConfig.PixKey); len(key) > pix.MaxKeyLength {
		return errors.Join(ErrInvalidGateway, fmt.Errorf("pix_key exceeds %d characters", pix.MaxKeyLength))
	}
	return nil
}

// SortGateways orders gateways by registration position, then id.
func SortGateways(gateways []PaymentGateway) {
	sort.SliceStable(gateways, func(i, j int) bool {
		if gateways[i].Position != gateways[j].Position {
			return gateways[i].Position < gateways[j].Position
		}
		return gateways[i].ID < gateways[j].ID
	})
}

// SelectGateway returns the first enabled gateway, in registration order,
// that supports method. The input slice is not modified.
func SelectGateway(gateways []PaymentGateway, method PaymentMethod) (PaymentGateway, bool) {
	ordered := make([]PaymentGateway, len(gateways))
	copy(ordered, gateways)
	SortGateways(ordered)
	for _, g := range ordered {
		if g.IsUsable() && g.Supports(method) {
			return g, true
		}
	}
	return PaymentGateway{}, false
}
