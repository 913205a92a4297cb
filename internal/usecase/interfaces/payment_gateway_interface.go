package interfaces

import (
	"context"
	"encoding/json"

	"pdv_pagamentos/internal/domain/entities"
)

// IPaymentGateway abstracts external payment providers (Mercado Pago, Square).
//
// The request payload follows the Mercado Pago payment schema; other providers
// translate it. A recognized decline is a normal return with a provider status
// such as "rejected"; err is reserved for calls that could not complete.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}

// IExternalGatewayProvider resolves the provider client configured for an
// external gateway.
type IExternalGatewayProvider interface {
	ForGateway(gateway entities.PaymentGateway) (IPaymentGateway, error)
}
