package interfaces

import (
	"context"

	"pdv_pagamentos/internal/domain/entities"
)

// IBankConnectionRepository abstracts persistence for BankConnection.
//
// GetByID returns a zero-value connection (empty ID) when nothing is stored.
// Delete of a missing id is not an error.
type IBankConnectionRepository interface {
	GetByID(ctx context.Context, id string) (entities.BankConnection, error)
	List(ctx context.Context) ([]entities.BankConnection, error)
	Save(ctx context.Context, c entities.BankConnection) error
	Delete(ctx context.Context, id string) error
}
