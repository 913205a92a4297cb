package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pdv_pagamentos/internal/logger"
	"pdv_pagamentos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	sq "github.com/square/square-go-sdk"
	sqclient "github.com/square/square-go-sdk/client"
	sqcore "github.com/square/square-go-sdk/core"
	sqoption "github.com/square/square-go-sdk/option"
)

const (
	SquareSandbox    = "sandbox"
	SquareProduction = "production"

	squareCurrency = "BRL"
	// Square sandbox test nonce for an approved card.
	squareSandboxNonce = "cnon:card-nonce-ok"
)

var (
	ErrMissingSquareAccessToken = errors.New("missing SQUARE_ACCESS_TOKEN")
	ErrInvalidSquareEnvironment = fmt.Errorf("square environment must be %q or %q", SquareSandbox, SquareProduction)
	ErrMissingSquareSource      = errors.New("square payment requires a card token")
)

var squareBaseURLs = map[string]string{
	SquareSandbox:    "https://connect.squareupsandbox.com",
	SquareProduction: "https://connect.squareup.com",
}

var _ interfaces.IPaymentGateway = (*SquareGateway)(nil)

// SquareOptions configures one Square client.
type SquareOptions struct {
	AccessToken string
	Environment string
	LocationID  string
	MockMode    bool
}

type squareCreateFunc func(ctx context.Context, req *sq.CreatePaymentRequest) (*sq.Payment, error)

// SquareGateway accepts the Mercado Pago shaped payload and translates it
// into a Square CreatePayment call.
type SquareGateway struct {
	create      squareCreateFunc
	environment string
	locationID  string
	mockMode    bool
	now         func() time.Time
}

func NewSquareGateway(opts SquareOptions) (*SquareGateway, error) {
	log := logger.Component("square")
	env, err := normalizeSquareEnv(opts.Environment)
	if err != nil {
		return nil, err
	}
	if opts.MockMode {
		log.Info().Msg("[payment][gateway] square mock mode enabled")
		return &SquareGateway{mockMode: true, environment: env, now: time.Now}, nil
	}

	token := strings.TrimSpace(opts.AccessToken)
	if token == "" {
		log.Warn().Msg("[payment][gateway] missing SQUARE_ACCESS_TOKEN")
		return nil, ErrMissingSquareAccessToken
	}

	sdk := sqclient.NewClient(
		sqoption.WithBaseURL(squareBaseURLs[env]),
		sqoption.WithToken(token),
	)
	log.Info().Str("environment", env).Msg("[payment][gateway] Square client initialized")

	return &SquareGateway{
		create: func(ctx context.Context, req *sq.CreatePaymentRequest) (*sq.Payment, error) {
			resp, err := sdk.Payments.Create(ctx, req)
			if err != nil {
				return nil, err
			}
			return resp.GetPayment(), nil
		},
		environment: env,
		locationID:  strings.TrimSpace(opts.LocationID),
		now:         time.Now,
	}, nil
}

// squarePayload is the subset of the Mercado Pago payment schema Square needs.
type squarePayload struct {
	TransactionAmount float64 `json:"transaction_amount"`
	Description       string  `json:"description"`
	ExternalReference string  `json:"external_reference"`
	Token             string  `json:"token"`
}

func (g *SquareGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	log := logger.Component("square")
	if g != nil && g.mockMode {
		log.Debug().Int("payload_len", len(requestPayload)).Msg("[payment][gateway] square mock create start")
		return mockApproval(g.now(), requestPayload)
	}
	if g == nil || g.create == nil {
		return "", "", nil, errors.New("square gateway not configured")
	}

	var in squarePayload
	if err := json.Unmarshal(requestPayload, &in); err != nil {
		log.Error().Err(err).Msg("[payment][gateway] payload unmarshal failed")
		return "", "", nil, err
	}

	req, err := g.buildRequest(in)
	if err != nil {
		return "", "", nil, err
	}
	log.Debug().
		Str("location_id", g.locationID).
		Int64("amount_cents", *req.AmountMoney.Amount).
		Msg("[payment][gateway] square create start")

	p, err := g.create(ctx, req)
	if err != nil {
		log.Warn().Err(err).Msg("[payment][gateway] square create failed")
		return "", "", nil, mapSquareError(err)
	}
	if p == nil {
		return "", "", nil, errors.New("square returned an empty payment")
	}

	b, err := json.Marshal(p)
	if err != nil {
		return "", "", nil, err
	}
	id, status := stringValue(p.GetID()), stringValue(p.GetStatus())
	log.Info().
		Str("provider_payment_id", id).
		Str("provider_status", status).
		Msg("[payment][gateway] square create success")
	return id, status, b, nil
}

func (g *SquareGateway) buildRequest(in squarePayload) (*sq.CreatePaymentRequest, error) {
	cents := decimal.NewFromFloat(in.TransactionAmount).Shift(2).Round(0).IntPart()
	if cents <= 0 {
		return nil, &ProviderError{Provider: "square", StatusCode: http.StatusBadRequest, Err: errors.New("amount must be positive")}
	}

	source := strings.TrimSpace(in.Token)
	if source == "" && g.environment == SquareSandbox {
		source = squareSandboxNonce
	}
	if source == "" {
		return nil, &ProviderError{Provider: "square", StatusCode: http.StatusBadRequest, Err: ErrMissingSquareSource}
	}

	currency := sq.Currency(squareCurrency)
	req := &sq.CreatePaymentRequest{
		IdempotencyKey: "pdv-" + uuid.NewString(),
		SourceID:       source,
		AmountMoney:    &sq.Money{Amount: &cents, Currency: &currency},
		LocationID:     ptrString(g.locationID),
		Note:           ptrString(in.Description),
		ReferenceID:    ptrString(in.ExternalReference),
	}
	return req, nil
}

// mapSquareError keeps the API status so callers can tell rejected requests
// from transport problems.
func mapSquareError(err error) error {
	var apiErr *sqcore.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{Provider: "square", StatusCode: apiErr.StatusCode, Err: err}
	}
	return err
}

func normalizeSquareEnv(raw string) (string, error) {
	env := strings.ToLower(strings.TrimSpace(raw))
	if env == "" {
		env = SquareSandbox
	}
	if _, ok := squareBaseURLs[env]; !ok {
		return "", ErrInvalidSquareEnvironment
	}
	return env, nil
}

func ptrString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

func stringValue(ptr *string) string {
	if ptr == nil {
		return ""
	}
	return *ptr
}
