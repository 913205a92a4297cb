package bank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"pdv_pagamentos/internal/domain/entities"
	"pdv_pagamentos/internal/infrastructure/config"
	"pdv_pagamentos/internal/logger"
	"pdv_pagamentos/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

var (
	ErrUnsupportedProvider = errors.New("unsupported bank provider")
	ErrMissingCredentials  = errors.New("missing BANK_OAUTH_CLIENT_ID or BANK_OAUTH_CLIENT_SECRET")
)

// APIError is a non-success answer from a bank API.
type APIError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bank api %s failed (status=%d): %s", e.Operation, e.StatusCode, e.Body)
}

func (e *APIError) HTTPStatus() int { return e.StatusCode }

var _ interfaces.IBankAPI = (*Client)(nil)

// Client talks to the bank authorization servers through x/oauth2 and to
// the account APIs through resty.
type Client struct {
	cfg  config.OAuthConfig
	http *resty.Client
	log  zerolog.Logger
}

func NewClient(cfg config.OAuthConfig) *Client {
	h := resty.New().
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")
	return &Client{cfg: cfg, http: h, log: logger.Component("bank_api")}
}

// NewBankAPI returns the mock implementation when BANK_API_MOCK is set and
// the real client otherwise.
func NewBankAPI(cfg config.OAuthConfig) (interfaces.IBankAPI, error) {
	if cfg.BankAPIMock {
		log := logger.Component("bank_api")
		log.Info().Msg("[bank] mock mode enabled")
		return NewMockAPI(cfg.RedirectURL), nil
	}
	if strings.TrimSpace(cfg.ClientID) == "" || strings.TrimSpace(cfg.ClientSecret) == "" {
		return nil, ErrMissingCredentials
	}
	return NewClient(cfg), nil
}

func (c *Client) oauthConfig(provider entities.BankProvider) (*oauth2.Config, error) {
	ep, err := endpointsFor(c.cfg.APIBaseURL, provider)
	if err != nil {
		return nil, err
	}
	return &oauth2.Config{
		ClientID:     c.cfg.ClientID,
		ClientSecret: c.cfg.ClientSecret,
		RedirectURL:  c.cfg.RedirectURL,
		Scopes:       c.cfg.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  ep.AuthURL,
			TokenURL: ep.TokenURL,
		},
	}, nil
}

// oauthContext routes token requests through the resty transport so they
// share its timeout.
func (c *Client) oauthContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.http.GetClient())
}

func (c *Client) AuthorizationURL(provider entities.BankProvider, state string) (string, error) {
	conf, err := c.oauthConfig(provider)
	if err != nil {
		return "", err
	}
	return conf.AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

func (c *Client) ExchangeCode(ctx context.Context, provider entities.BankProvider, code string) (entities.BankToken, error) {
	conf, err := c.oauthConfig(provider)
	if err != nil {
		return entities.BankToken{}, err
	}
	tok, err := conf.Exchange(c.oauthContext(ctx), code)
	if err != nil {
		c.log.Warn().Err(err).Str("provider", string(provider)).Msg("[bank] code exchange failed")
		return entities.BankToken{}, fmt.Errorf("exchange code: %w", err)
	}
	return toBankToken(tok), nil
}

func (c *Client) RefreshToken(ctx context.Context, provider entities.BankProvider, refreshToken string) (entities.BankToken, error) {
	conf, err := c.oauthConfig(provider)
	if err != nil {
		return entities.BankToken{}, err
	}
	src := conf.TokenSource(c.oauthContext(ctx), &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	if err != nil {
		c.log.Warn().Err(err).Str("provider", string(provider)).Msg("[bank] token refresh failed")
		return entities.BankToken{}, fmt.Errorf("refresh token: %w", err)
	}
	return toBankToken(tok), nil
}

type accountResponse struct {
	BankName      string   `json:"bank_name"`
	AccountType   string   `json:"account_type"`
	Agency        string   `json:"agency"`
	AccountNumber string   `json:"account_number"`
	PixKeys       []string `json:"pix_keys"`
}

func (c *Client) FetchAccountInfo(ctx context.Context, provider entities.BankProvider, accessToken string) (entities.BankAccountInfo, error) {
	ep, err := endpointsFor(c.cfg.APIBaseURL, provider)
	if err != nil {
		return entities.BankAccountInfo{}, err
	}

	var out accountResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&out).
		Get(ep.AccountURL)
	if err != nil {
		return entities.BankAccountInfo{}, err
	}
	if resp.IsError() {
		return entities.BankAccountInfo{}, &APIError{Operation: "account info", StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	info := entities.BankAccountInfo{
		BankName:      out.BankName,
		AccountType:   out.AccountType,
		Agency:        out.Agency,
		AccountNumber: out.AccountNumber,
		PixKeys:       out.PixKeys,
	}
	if info.BankName == "" {
		info.BankName = provider.DisplayName()
	}
	return info, nil
}

type chargeRequest struct {
	Amount      string      `json:"amount"`
	Currency    string      `json:"currency"`
	Method      string      `json:"method"`
	Description string      `json:"description,omitempty"`
	Reference   string      `json:"reference,omitempty"`
	Payer       chargePayer `json:"payer"`
}

type chargePayer struct {
	Name     string `json:"name,omitempty"`
	Document string `json:"document,omitempty"`
}

type chargeResponse struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	AuthorizationCode string `json:"authorization_code"`
	QRCode            string `json:"qr_code"`
	DeclineReason     string `json:"decline_reason"`
}

// Charge posts a charge against the connected account. 402 and 422 answers
// carrying a charge body are declines, not errors.
func (c *Client) Charge(ctx context.Context, conn entities.BankConnection, charge entities.BankCharge) (entities.BankChargeResult, error) {
	ep, err := endpointsFor(c.cfg.APIBaseURL, conn.Provider)
	if err != nil {
		return entities.BankChargeResult{}, err
	}

	key := charge.IdempotencyKey
	if key == "" {
		key = uuid.NewString()
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(conn.AccessToken).
		SetHeader("X-Idempotency-Key", key).
		SetBody(chargeRequest{
			Amount:      charge.Amount,
			Currency:    "BRL",
			Method:      string(charge.Method),
			Description: charge.Description,
			Reference:   charge.Reference,
			Payer:       chargePayer{Name: charge.PayerName, Document: charge.PayerDoc},
		}).
		Post(ep.ChargeURL)
	if err != nil {
		return entities.BankChargeResult{}, err
	}

	var out chargeResponse
	decodeErr := json.Unmarshal(resp.Body(), &out)
	switch {
	case resp.IsSuccess() && decodeErr == nil:
	case (resp.StatusCode() == http.StatusPaymentRequired || resp.StatusCode() == http.StatusUnprocessableEntity) && decodeErr == nil:
		if out.Status == "" {
			out.Status = "declined"
		}
	default:
		return entities.BankChargeResult{}, &APIError{Operation: "charge", StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	result := entities.BankChargeResult{
		Approved:          isApprovedStatus(out.Status),
		TransactionID:     out.ID,
		AuthorizationCode: out.AuthorizationCode,
		QRCodePayload:     out.QRCode,
		DeclineReason:     out.DeclineReason,
		Raw:               resp.Body(),
	}
	c.log.Info().
		Str("connection_id", conn.ID).
		Str("transaction_id", out.ID).
		Str("status", out.Status).
		Msg("[bank] charge finished")
	return result, nil
}

func isApprovedStatus(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "completed", "settled", "accepted":
		return true
	}
	return false
}

func toBankToken(tok *oauth2.Token) entities.BankToken {
	return entities.BankToken{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    tok.Expiry.UTC(),
	}
}
