package entities

import "time"

// BankProvider identifies a supported financial institution.
type BankProvider string

const (
	BankProviderItau          BankProvider = "itau"
	BankProviderBradesco      BankProvider = "bradesco"
	BankProviderSantander     BankProvider = "santander"
	BankProviderBancoDoBrasil BankProvider = "banco_do_brasil"
	BankProviderCaixa         BankProvider = "caixa"
	BankProviderNubank        BankProvider = "nubank"
	BankProviderInter         BankProvider = "inter"
)

var bankProviderNames = map[BankProvider]string{
	BankProviderItau:          "Itaú Unibanco",
	BankProviderBradesco:      "Bradesco",
	BankProviderSantander:     "Santander",
	BankProviderBancoDoBrasil: "Banco do Brasil",
	BankProviderCaixa:         "Caixa Econômica Federal",
	BankProviderNubank:        "Nubank",
	BankProviderInter:         "Banco Inter",
}

func (p BankProvider) IsValid() bool {
	_, ok := bankProviderNames[p]
	return ok
}

func (p BankProvider) DisplayName() string {
	if name, ok := bankProviderNames[p]; ok {
		return name
	}
	return string(p)
}

// BankAccountInfo describes the account reached through a bank connection.
type BankAccountInfo struct {
	BankName      string   `json:"bank_name"`
	AccountType   string   `json:"account_type"`
	Agency        string   `json:"agency"`
	AccountNumber string   `json:"account_number"`
	PixKeys       []string `json:"pix_keys,omitempty"`
}

// BankConnection is one OAuth-authorized session with a bank.
//
// Its lifecycle is owned by the bank connection use case; nothing else
// mutates it.
type BankConnection struct {
	ID           string          `json:"id"`
	Provider     BankProvider    `json:"provider"`
	Name         string          `json:"name"`
	Connected    bool            `json:"connected"`
	AccessToken  string          `json:"-"`
	RefreshToken string          `json:"-"`
	ExpiresAt    time.Time       `json:"expires_at"`
	AccountInfo  BankAccountInfo `json:"account_info"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (c BankConnection) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// OAuthHandshake correlates an authorization callback with the request that
// started it. State is single-use.
type OAuthHandshake struct {
	State     string       `json:"state"`
	Provider  BankProvider `json:"provider"`
	CreatedAt time.Time    `json:"created_at"`
	ExpiresAt time.Time    `json:"expires_at"`
}

func (h OAuthHandshake) IsExpired(now time.Time) bool {
	return !now.Before(h.ExpiresAt)
}

// BankToken is the token set returned by a bank's authorization server.
type BankToken struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// BankCharge is a charge issued against a connected bank account.
// IdempotencyKey is sent on every attempt of the same charge.
type BankCharge struct {
	IdempotencyKey string
	Amount         string
	Method         PaymentMethod
	Description    string
	Reference      string
	PayerName      string
	PayerDoc       string
}

// BankChargeResult is the bank's answer to a charge. Approved is false for a
// recognized decline; transport problems are returned as errors instead.
type BankChargeResult struct {
	Approved          bool
	TransactionID     string
	AuthorizationCode string
	QRCodePayload     string
	DeclineReason     string
	Raw               []byte
}
