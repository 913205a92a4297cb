package payments

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"pdv_pagamentos/internal/domain/entities"
	"pdv_pagamentos/internal/infrastructure/config"
	"pdv_pagamentos/internal/usecase/interfaces"
)

var ErrUnknownProvider = errors.New("unknown external provider")

var _ interfaces.IExternalGatewayProvider = (*ProviderRegistry)(nil)

type clientKey struct {
	provider entities.ExternalProvider
	token    string
	testMode bool
	merchant string
}

// ProviderRegistry builds and caches provider clients per external gateway
// configuration. A gateway without an API key falls back to the process-wide
// token of its provider.
type ProviderRegistry struct {
	cfg config.PaymentsConfig

	newMercadoPago func(token string, mock bool) (interfaces.IPaymentGateway, error)
	newSquare      func(opts SquareOptions) (interfaces.IPaymentGateway, error)

	mu      sync.Mutex
	clients map[clientKey]interfaces.IPaymentGateway
}

func NewProviderRegistry(cfg config.PaymentsConfig) *ProviderRegistry {
	return &ProviderRegistry{
		cfg: cfg,
		newMercadoPago: func(token string, mock bool) (interfaces.IPaymentGateway, error) {
			return NewMercadoPagoGateway(token, mock)
		},
		newSquare: func(opts SquareOptions) (interfaces.IPaymentGateway, error) {
			return NewSquareGateway(opts)
		},
		clients: make(map[clientKey]interfaces.IPaymentGateway),
	}
}

func (r *ProviderRegistry) ForGateway(gateway entities.PaymentGateway) (interfaces.IPaymentGateway, error) {
	if gateway.Type != entities.GatewayTypeExternal {
		return nil, fmt.Errorf("gateway %s is not external", gateway.ID)
	}

	key := clientKey{
		provider: gateway.Provider,
		token:    strings.TrimSpace(gateway.APIKey),
		testMode: gateway.TestMode,
		merchant: strings.TrimSpace(gateway.MerchantID),
	}
	if key.token == "" {
		key.token = r.fallbackToken(gateway.Provider)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if client, ok := r.clients[key]; ok {
		return client, nil
	}

	client, err := r.build(key)
	if err != nil {
		return nil, fmt.Errorf("gateway %s: %w", gateway.ID, err)
	}
	r.clients[key] = client
	return client, nil
}

func (r *ProviderRegistry) build(key clientKey) (interfaces.IPaymentGateway, error) {
	switch key.provider {
	case entities.ExternalProviderMercadoPago:
		return r.newMercadoPago(key.token, r.cfg.GatewayMock)
	case entities.ExternalProviderSquare:
		env := r.cfg.SquareEnvironment
		if key.testMode {
			env = SquareSandbox
		}
		location := key.merchant
		if location == "" {
			location = r.cfg.SquareLocationID
		}
		return r.newSquare(SquareOptions{
			AccessToken: key.token,
			Environment: env,
			LocationID:  location,
			MockMode:    r.cfg.GatewayMock,
		})
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, key.provider)
}

func (r *ProviderRegistry) fallbackToken(provider entities.ExternalProvider) string {
	switch provider {
	case entities.ExternalProviderMercadoPago:
		return strings.TrimSpace(r.cfg.MercadoPagoAccessToken)
	case entities.ExternalProviderSquare:
		return strings.TrimSpace(r.cfg.SquareAccessToken)
	}
	return ""
}
