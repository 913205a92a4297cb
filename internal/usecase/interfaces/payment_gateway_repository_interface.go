package interfaces

import (
	"context"

	"pdv_pagamentos/internal/domain/entities"
)

// IPaymentGatewayRepository abstracts persistence of the gateway configuration.
//
// GetByID returns a zero-value gateway (empty ID) when nothing is stored.
type IPaymentGatewayRepository interface {
	List(ctx context.Context) ([]entities.PaymentGateway, error)
	GetByID(ctx context.Context, id string) (entities.PaymentGateway, error)
	Save(ctx context.Context, g entities.PaymentGateway) error
	SetEnabled(ctx context.Context, id string, enabled bool) error
}
