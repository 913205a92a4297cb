package interfaces

import (
	"context"

	"pdv_pagamentos/internal/domain/entities"
)

// IBankAPI is the contract expected from bank integrations: the OAuth
// authorization server plus the account API behind it.
type IBankAPI interface {
	AuthorizationURL(provider entities.BankProvider, state string) (string, error)
	ExchangeCode(ctx context.Context, provider entities.BankProvider, code string) (entities.BankToken, error)
	RefreshToken(ctx context.Context, provider entities.BankProvider, refreshToken string) (entities.BankToken, error)
	FetchAccountInfo(ctx context.Context, provider entities.BankProvider, accessToken string) (entities.BankAccountInfo, error)
	Charge(ctx context.Context, conn entities.BankConnection, charge entities.BankCharge) (entities.BankChargeResult, error)
}
