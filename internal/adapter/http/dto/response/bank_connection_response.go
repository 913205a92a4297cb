package response

import (
	"time"

	"pdv_pagamentos/internal/domain/entities"
)

// BankConnectionResponse exposes a connection without its tokens.
type BankConnectionResponse struct {
	ID           string                   `json:"id"`
	Provider     string                   `json:"provider"`
	ProviderName string                   `json:"provider_name"`
	Name         string                   `json:"name"`
	Connected    bool                     `json:"connected"`
	ExpiresAt    time.Time                `json:"expires_at"`
	AccountInfo  entities.BankAccountInfo `json:"account_info"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

func FromBankConnection(c entities.BankConnection) BankConnectionResponse {
	return BankConnectionResponse{
		ID:           c.ID,
		Provider:     string(c.Provider),
		ProviderName: c.Provider.DisplayName(),
		Name:         c.Name,
		Connected:    c.Connected,
		ExpiresAt:    c.ExpiresAt,
		AccountInfo:  c.AccountInfo,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func FromBankConnections(conns []entities.BankConnection) []BankConnectionResponse {
	out := make([]BankConnectionResponse, 0, len(conns))
	for _, c := range conns {
		out = append(out, FromBankConnection(c))
	}
	return out
}

type AuthorizeBankResponse struct {
	AuthorizationURL string    `json:"authorization_url"`
	State            string    `json:"state"`
	ExpiresAt        time.Time `json:"expires_at"`
}
