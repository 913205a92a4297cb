package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pdv_pagamentos/internal/domain/entities"
	mock_interfaces "pdv_pagamentos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestLedgerUseCase(t *testing.T) {
	t.Run("list is ordered by record time then id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILedgerRepository(ctrl)
		repo.EXPECT().List(gomock.Any()).Return([]entities.LedgerEntry{
			{ID: "c", RecordedAt: fixedNow.Add(time.Second)},
			{ID: "b", RecordedAt: fixedNow},
			{ID: "a", RecordedAt: fixedNow},
		}, nil)

		got, err := NewLedgerUseCase(repo, ReceiptFormatter{}).List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "c" {
			t.Fatalf("unexpected order %v", got)
		}
	})

	t.Run("get by id not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILedgerRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.LedgerEntry{}, nil)

		_, err := NewLedgerUseCase(repo, ReceiptFormatter{}).GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrLedgerEntryNotFound) {
			t.Fatalf("expected ErrLedgerEntryNotFound, got %v", err)
		}
	})

	t.Run("list by reference requires a reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILedgerRepository(ctrl)

		if _, err := NewLedgerUseCase(repo, ReceiptFormatter{}).ListByReference(context.Background(), " "); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("expected ErrInvalidRequest, got %v", err)
		}
	})

	t.Run("receipt renders the recorded response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILedgerRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.LedgerEntry{
			ID:       "p-1",
			Response: receiptFixture(),
			Customer: entities.CustomerInfo{Name: "Maria Silva"},
		}, nil)

		out, err := NewLedgerUseCase(repo, ReceiptFormatter{CompanyName: "Loja"}).Receipt(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(out, "Loja\n") || !strings.Contains(out, "Cliente: Maria Silva") {
			t.Fatalf("unexpected receipt %q", out)
		}
	})
}
