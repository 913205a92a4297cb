package bank

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"pdv_pagamentos/internal/domain/entities"
	"pdv_pagamentos/internal/domain/pix"
	"pdv_pagamentos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	mockCode     = "mock-code"
	mockTokenTTL = time.Hour
)

var ErrMockMissingRefreshToken = errors.New("mock bank: refresh token is required")

var _ interfaces.IBankAPI = (*MockAPI)(nil)

// MockAPI stands in for the bank integrations when BANK_API_MOCK is set. Its
// authorization URL points straight at the callback so the full handshake
// can be exercised without a bank.
type MockAPI struct {
	redirectURL string
	now         func() time.Time
}

func NewMockAPI(redirectURL string) *MockAPI {
	return &MockAPI{redirectURL: redirectURL, now: time.Now}
}

func (m *MockAPI) AuthorizationURL(provider entities.BankProvider, state string) (string, error) {
	if _, ok := providerSlugs[provider]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedProvider, provider)
	}
	u, err := url.Parse(m.redirectURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("code", mockCode)
	q.Set("state", state)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (m *MockAPI) ExchangeCode(_ context.Context, provider entities.BankProvider, code string) (entities.BankToken, error) {
	if strings.TrimSpace(code) == "" {
		return entities.BankToken{}, errors.New("mock bank: empty code")
	}
	return m.token(provider), nil
}

func (m *MockAPI) RefreshToken(_ context.Context, provider entities.BankProvider, refreshToken string) (entities.BankToken, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return entities.BankToken{}, ErrMockMissingRefreshToken
	}
	return m.token(provider), nil
}

func (m *MockAPI) token(provider entities.BankProvider) entities.BankToken {
	return entities.BankToken{
		AccessToken:  fmt.Sprintf("mock-access-%s-%s", provider, uuid.NewString()),
		RefreshToken: fmt.Sprintf("mock-refresh-%s-%s", provider, uuid.NewString()),
		ExpiresAt:    m.now().UTC().Add(mockTokenTTL),
	}
}

func (m *MockAPI) FetchAccountInfo(_ context.Context, provider entities.BankProvider, _ string) (entities.BankAccountInfo, error) {
	return entities.BankAccountInfo{
		BankName:      provider.DisplayName(),
		AccountType:   "corrente",
		Agency:        "0001",
		AccountNumber: "12345-6",
		PixKeys:       []string{"pdv@" + string(provider) + ".mock"},
	}, nil
}

// Charge approves every charge. Instant transfers get a BR Code built from
// the account's first key.
func (m *MockAPI) Charge(_ context.Context, conn entities.BankConnection, charge entities.BankCharge) (entities.BankChargeResult, error) {
	txID := uuid.NewString()
	result := entities.BankChargeResult{
		Approved:          true,
		TransactionID:     txID,
		AuthorizationCode: "BNK-" + strings.ToUpper(strings.ReplaceAll(txID, "-", "")[:8]),
		Raw:               []byte(fmt.Sprintf(`{"id":%q,"status":"approved","mock":true}`, txID)),
	}

	if charge.Method == entities.PaymentMethodPix && len(conn.AccountInfo.PixKeys) > 0 {
		amount, err := decimal.NewFromString(charge.Amount)
		if err != nil {
			return entities.BankChargeResult{}, err
		}
		payload, err := pix.StaticCode{
			Key:          conn.AccountInfo.PixKeys[0],
			MerchantName: conn.Name,
			Amount:       amount,
			TxID:         strings.ReplaceAll(txID, "-", ""),
		}.Payload()
		if err != nil {
			return entities.BankChargeResult{}, err
		}
		result.QRCodePayload = payload
	}
	return result, nil
}
