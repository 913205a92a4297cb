package response

import "pdv_pagamentos/internal/domain/entities"

// GatewayResponse never carries the API key, only whether one is stored.
type GatewayResponse struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	Enabled          bool                 `json:"enabled"`
	Type             string               `json:"type"`
	SupportedMethods []string             `json:"supported_methods"`
	Position         int                  `json:"position"`
	TestMode         bool                 `json:"test_mode,omitempty"`
	Provider         string               `json:"provider,omitempty"`
	HasAPIKey        bool                 `json:"has_api_key"`
	MerchantID       string               `json:"merchant_id,omitempty"`
	BankConnectionID string               `json:"bank_connection_id,omitempty"`
	LocalConfig      entities.LocalConfig `json:"local_config"`
}

func FromGateway(g entities.PaymentGateway) GatewayResponse {
	methods := make([]string, 0, len(g.SupportedMethods))
	for _, m := range g.SupportedMethods {
		methods = append(methods, string(m))
	}
	return GatewayResponse{
		ID:               g.ID,
		Name:             g.Name,
		Enabled:          g.Enabled,
		Type:             string(g.Type),
		SupportedMethods: methods,
		Position:         g.Position,
		TestMode:         g.TestMode,
		Provider:         string(g.Provider),
		HasAPIKey:        g.APIKey != "",
		MerchantID:       g.MerchantID,
		BankConnectionID: g.BankConnectionID,
		LocalConfig:      g.LocalConfig,
	}
}

func FromGateways(gateways []entities.PaymentGateway) []GatewayResponse {
	out := make([]GatewayResponse, 0, len(gateways))
	for _, g := range gateways {
		out = append(out, FromGateway(g))
	}
	return out
}
