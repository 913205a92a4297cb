package usecase

import (
	"context"
	"sort"
	"strings"

	"pdv_pagamentos/internal/domain/entities"
	"pdv_pagamentos/internal/usecase/interfaces"
)

// ILedgerUseCase exposes reporting reads over the transaction ledger.
type ILedgerUseCase interface {
	GetByID(ctx context.Context, id string) (entities.LedgerEntry, error)
	List(ctx context.Context) ([]entities.LedgerEntry, error)
	ListByReference(ctx context.Context, reference string) ([]entities.LedgerEntry, error)
	Receipt(ctx context.Context, id string) (string, error)
}

type LedgerUseCase struct {
	repo      interfaces.ILedgerRepository
	formatter ReceiptFormatter
}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)

func NewLedgerUseCase(repo interfaces.ILedgerRepository, formatter ReceiptFormatter) *LedgerUseCase {
	return &LedgerUseCase{repo: repo, formatter: formatter}
}

func (u *LedgerUseCase) GetByID(ctx context.Context, id string) (entities.LedgerEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LedgerEntry{}, ErrInvalidRequest
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.LedgerEntry{}, err
	}
	if e.ID == "" {
		return entities.LedgerEntry{}, ErrLedgerEntryNotFound
	}
	return e, nil
}

func (u *LedgerUseCase) List(ctx context.Context) ([]entities.LedgerEntry, error) {
	entries, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortLedger(entries)
	return entries, nil
}

func (u *LedgerUseCase) ListByReference(ctx context.Context, reference string) ([]entities.LedgerEntry, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, ErrInvalidRequest
	}
	entries, err := u.repo.ListByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	sortLedger(entries)
	return entries, nil
}

// Receipt renders the receipt of a recorded payment.
func (u *LedgerUseCase) Receipt(ctx context.Context, id string) (string, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return u.formatter.Render(e.Response, e.Customer), nil
}

func sortLedger(entries []entities.LedgerEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].RecordedAt.Equal(entries[j].RecordedAt) {
			return entries[i].RecordedAt.Before(entries[j].RecordedAt)
		}
		return entries[i].ID < entries[j].ID
	})
}
