package interfaces

import (
	"context"
	"errors"

	"pdv_pagamentos/internal/domain/entities"
)

var ErrLedgerEntryExists = errors.New("ledger entry already exists")

// ILedgerRepository is the append-only transaction ledger.
//
// Append fails with ErrLedgerEntryExists when the id was already recorded;
// entries are never updated or removed. GetByID returns a zero-value entry
// (empty ID) when nothing is stored.
type ILedgerRepository interface {
	Append(ctx context.Context, e entities.LedgerEntry) error
	GetByID(ctx context.Context, id string) (entities.LedgerEntry, error)
	List(ctx context.Context) ([]entities.LedgerEntry, error)
	ListByReference(ctx context.Context, reference string) ([]entities.LedgerEntry, error)
}
