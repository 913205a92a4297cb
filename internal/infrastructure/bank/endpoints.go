package bank

import (
	"fmt"
	"strings"

	"pdv_pagamentos/internal/domain/entities"
)

// endpoints are the per-provider URLs of the authorization server and the
// account API.
type endpoints struct {
	AuthURL    string
	TokenURL   string
	AccountURL string
	ChargeURL  string
}

// providerSlugs maps each supported bank onto its path under the Open
// Finance gateway configured in BANK_API_BASE_URL.
var providerSlugs = map[entities.BankProvider]string{
	entities.BankProviderItau:          "itau",
	entities.BankProviderBradesco:      "bradesco",
	entities.BankProviderSantander:     "santander",
	entities.BankProviderBancoDoBrasil: "bb",
	entities.BankProviderCaixa:         "caixa",
	entities.BankProviderNubank:        "nubank",
	entities.BankProviderInter:         "inter",
}

func endpointsFor(baseURL string, provider entities.BankProvider) (endpoints, error) {
	slug, ok := providerSlugs[provider]
	if !ok {
		return endpoints{}, fmt.Errorf("%w: %q", ErrUnsupportedProvider, provider)
	}
	root := strings.TrimRight(strings.TrimSpace(baseURL), "/") + "/" + slug
	return endpoints{
		AuthURL:    root + "/oauth/authorize",
		TokenURL:   root + "/oauth/token",
		AccountURL: root + "/v1/accounts/me",
		ChargeURL:  root + "/v1/charges",
	}, nil
}
