package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pdv_pagamentos/internal/domain/entities"
	"pdv_pagamentos/internal/logger"
	"pdv_pagamentos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultHandshakeTTL = 10 * time.Minute
	DefaultTokenTTL     = time.Hour
	DefaultRefreshTTL   = 30 * time.Second
)

// IBankConnectionUseCase owns the lifecycle of bank connections:
// Disconnected -> HandshakePending -> Connected -> Expired -> Connected or Disconnected.
type IBankConnectionUseCase interface {
	BeginAuthorization(ctx context.Context, provider entities.BankProvider) (string, entities.OAuthHandshake, error)
	CompleteAuthorization(ctx context.Context, code, state string) (entities.BankConnection, error)
	EnsureValid(ctx context.Context, connectionID string) (entities.BankConnection, error)
	Disconnect(ctx context.Context, connectionID string) error
	List(ctx context.Context) ([]entities.BankConnection, error)
	GetByID(ctx context.Context, connectionID string) (entities.BankConnection, error)
}

type BankConnectionConfig struct {
	HandshakeTTL    time.Duration
	DefaultTokenTTL time.Duration
	// RefreshTimeout bounds a shared token refresh. It is independent of the
	// callers' deadlines.
	RefreshTimeout time.Duration
}

type BankConnectionUseCase struct {
	repo       interfaces.IBankConnectionRepository
	handshakes interfaces.IHandshakeStore
	bank       interfaces.IBankAPI
	registry   IGatewayRegistry
	metrics    interfaces.IPaymentMetrics
	cfg        BankConnectionConfig
	refreshes  singleflight.Group
	now        func() time.Time
	log        zerolog.Logger
}

var _ IBankConnectionUseCase = (*BankConnectionUseCase)(nil)

func NewBankConnectionUseCase(repo interfaces.IBankConnectionRepository, handshakes interfaces.IHandshakeStore, bank interfaces.IBankAPI, registry IGatewayRegistry, metrics interfaces.IPaymentMetrics, cfg BankConnectionConfig) *BankConnectionUseCase {
	if cfg.HandshakeTTL <= 0 {
		cfg.HandshakeTTL = DefaultHandshakeTTL
	}
	if cfg.DefaultTokenTTL <= 0 {
		cfg.DefaultTokenTTL = DefaultTokenTTL
	}
	if cfg.RefreshTimeout <= 0 {
		cfg.RefreshTimeout = DefaultRefreshTTL
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &BankConnectionUseCase{
		repo:       repo,
		handshakes: handshakes,
		bank:       bank,
		registry:   registry,
		metrics:    metrics,
		cfg:        cfg,
		now:        func() time.Time { return time.Now().UTC() },
		log:        logger.Component("bank_connection"),
	}
}

// BeginAuthorization stores a fresh single-use handshake and returns the URL
// the operator must visit to grant access.
func (u *BankConnectionUseCase) BeginAuthorization(ctx context.Context, provider entities.BankProvider) (string, entities.OAuthHandshake, error) {
	if !provider.IsValid() {
		return "", entities.OAuthHandshake{}, fmt.Errorf("%w: unknown bank provider %q", ErrInvalidRequest, provider)
	}

	now := u.now()
	h := entities.OAuthHandshake{
		State:     uuid.NewString(),
		Provider:  provider,
		CreatedAt: now,
		ExpiresAt: now.Add(u.cfg.HandshakeTTL),
	}
	authURL, err := u.bank.AuthorizationURL(provider, h.State)
	if err != nil {
		u.log.Error().Err(err).Str("provider", string(provider)).Msg("[bank] authorization url failed")
		return "", entities.OAuthHandshake{}, err
	}
	if err := u.handshakes.Save(ctx, h, u.cfg.HandshakeTTL); err != nil {
		u.log.Error().Err(err).Str("provider", string(provider)).Msg("[bank] handshake save failed")
		return "", entities.OAuthHandshake{}, err
	}
	u.log.Info().Str("provider", string(provider)).Time("expires_at", h.ExpiresAt).Msg("[bank] authorization started")
	return authURL, h, nil
}

// CompleteAuthorization redeems the handshake identified by state and, on
// success, persists a connected BankConnection.
func (u *BankConnectionUseCase) CompleteAuthorization(ctx context.Context, code, state string) (entities.BankConnection, error) {
	state = strings.TrimSpace(state)
	if state == "" {
		return entities.BankConnection{}, ErrOAuthStateMismatch
	}
	h, found, err := u.handshakes.Consume(ctx, state)
	if err != nil {
		u.log.Error().Err(err).Msg("[bank] handshake consume failed")
		return entities.BankConnection{}, err
	}
	if !found || h.IsExpired(u.now()) {
		u.log.Warn().Bool("found", found).Msg("[bank] oauth state rejected")
		return entities.BankConnection{}, ErrOAuthStateMismatch
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.BankConnection{}, fmt.Errorf("%w: authorization code is required", ErrInvalidRequest)
	}

	token, err := u.bank.ExchangeCode(ctx, h.Provider, code)
	if err != nil {
		u.log.Error().Err(err).Str("provider", string(h.Provider)).Msg("[bank] code exchange failed")
		return entities.BankConnection{}, fmt.Errorf("%w: %w", ErrTransportFailure, err)
	}
	info, err := u.bank.FetchAccountInfo(ctx, h.Provider, token.AccessToken)
	if err != nil {
		u.log.Error().Err(err).Str("provider", string(h.Provider)).Msg("[bank] account info failed")
		return entities.BankConnection{}, fmt.Errorf("%w: %w", ErrTransportFailure, err)
	}
	if info.BankName == "" {
		info.BankName = h.Provider.DisplayName()
	}

	now := u.now()
	conn := entities.BankConnection{
		ID:           uuid.NewString(),
		Provider:     h.Provider,
		Name:         connectionName(h.Provider, info),
		Connected:    true,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    u.expiry(token, now),
		AccountInfo:  info,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.repo.Save(ctx, conn); err != nil {
		u.log.Error().Err(err).Str("connection_id", conn.ID).Msg("[bank] connection save failed")
		return entities.BankConnection{}, err
	}
	u.log.Info().Str("connection_id", conn.ID).Str("provider", string(conn.Provider)).Time("expires_at", conn.ExpiresAt).Msg("[bank] connection established")
	return conn, nil
}

// EnsureValid returns a connection whose access token is valid now, refreshing
// it when expired. Concurrent calls for the same id share one refresh, which
// runs detached from any single caller's cancellation. A caller that gives up
// while waiting gets ErrTransportFailure; the refresh keeps going for the rest.
func (u *BankConnectionUseCase) EnsureValid(ctx context.Context, connectionID string) (entities.BankConnection, error) {
	connectionID = strings.TrimSpace(connectionID)
	if connectionID == "" {
		return entities.BankConnection{}, ErrBankConnectionNotFound
	}
	detached := context.WithoutCancel(ctx)
	ch := u.refreshes.DoChan(connectionID, func() (any, error) {
		refreshCtx, cancel := context.WithTimeout(detached, u.cfg.RefreshTimeout)
		defer cancel()
		return u.ensureValid(refreshCtx, connectionID)
	})

	select {
	case <-ctx.Done():
		u.log.Warn().Err(ctx.Err()).Str("connection_id", connectionID).Msg("[bank] caller gave up waiting for validation")
		return entities.BankConnection{}, &DispatchError{Kind: ErrTransportFailure, ConnectionID: connectionID, Err: ctx.Err()}
	case res := <-ch:
		if res.Shared {
			u.log.Debug().Str("connection_id", connectionID).Msg("[bank] shared in-flight validation")
		}
		if res.Err != nil {
			return entities.BankConnection{}, res.Err
		}
		return res.Val.(entities.BankConnection), nil
	}
}

func (u *BankConnectionUseCase) ensureValid(ctx context.Context, connectionID string) (entities.BankConnection, error) {
	conn, err := u.repo.GetByID(ctx, connectionID)
	if err != nil {
		return entities.BankConnection{}, err
	}
	if conn.ID == "" {
		return entities.BankConnection{}, ErrBankConnectionNotFound
	}
	if !conn.Connected {
		return entities.BankConnection{}, ErrBankConnectionExpired
	}
	now := u.now()
	if !conn.IsExpired(now) {
		return conn, nil
	}

	u.log.Info().Str("connection_id", conn.ID).Time("expired_at", conn.ExpiresAt).Msg("[bank] refreshing access token")
	if conn.RefreshToken == "" {
		return entities.BankConnection{}, u.expire(ctx, conn, errors.New("no refresh token"))
	}
	token, err := u.bank.RefreshToken(ctx, conn.Provider, conn.RefreshToken)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		// The bank never answered; the refresh token may still be good.
		u.metrics.IncTokenRefresh("error")
		u.log.Warn().Err(err).Str("connection_id", conn.ID).Msg("[bank] refresh timed out; keeping connection")
		return entities.BankConnection{}, &DispatchError{Kind: ErrTransportFailure, ConnectionID: conn.ID, Err: err}
	}
	if err != nil {
		return entities.BankConnection{}, u.expire(ctx, conn, err)
	}

	conn.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		conn.RefreshToken = token.RefreshToken
	}
	conn.ExpiresAt = u.expiry(token, now)
	conn.UpdatedAt = now
	if err := u.repo.Save(ctx, conn); err != nil {
		u.metrics.IncTokenRefresh("error")
		return entities.BankConnection{}, err
	}
	u.metrics.IncTokenRefresh("success")
	u.log.Info().Str("connection_id", conn.ID).Time("expires_at", conn.ExpiresAt).Msg("[bank] access token refreshed")
	return conn, nil
}

// expire moves a connection whose refresh failed to Disconnected and disables
// the gateways bound to it.
func (u *BankConnectionUseCase) expire(ctx context.Context, conn entities.BankConnection, cause error) error {
	u.metrics.IncTokenRefresh("failure")
	u.log.Warn().Err(cause).Str("connection_id", conn.ID).Msg("[bank] refresh failed; disconnecting")

	conn.Connected = false
	conn.AccessToken = ""
	conn.RefreshToken = ""
	conn.UpdatedAt = u.now()
	var errs []error
	if err := u.repo.Save(ctx, conn); err != nil {
		errs = append(errs, err)
	}
	if u.registry != nil {
		if _, err := u.registry.DisableByConnection(ctx, conn.ID); err != nil {
			errs = append(errs, err)
		}
	}
	return &DispatchError{
		Kind:         ErrBankConnectionExpired,
		ConnectionID: conn.ID,
		Err:          errors.Join(append([]error{cause}, errs...)...),
	}
}

// Disconnect removes the connection and disables the gateways bound to it.
// Disconnecting an unknown id succeeds.
func (u *BankConnectionUseCase) Disconnect(ctx context.Context, connectionID string) error {
	connectionID = strings.TrimSpace(connectionID)
	if connectionID == "" {
		return fmt.Errorf("%w: connection id is required", ErrInvalidRequest)
	}
	if err := u.repo.Delete(ctx, connectionID); err != nil {
		u.log.Error().Err(err).Str("connection_id", connectionID).Msg("[bank] delete failed")
		return err
	}
	if u.registry != nil {
		if _, err := u.registry.DisableByConnection(ctx, connectionID); err != nil {
			return err
		}
	}
	u.log.Info().Str("connection_id", connectionID).Msg("[bank] disconnected")
	return nil
}

func (u *BankConnectionUseCase) List(ctx context.Context) ([]entities.BankConnection, error) {
	return u.repo.List(ctx)
}

func (u *BankConnectionUseCase) GetByID(ctx context.Context, connectionID string) (entities.BankConnection, error) {
	connectionID = strings.TrimSpace(connectionID)
	if connectionID == "" {
		return entities.BankConnection{}, fmt.Errorf("%w: connection id is required", ErrInvalidRequest)
	}
	conn, err := u.repo.GetByID(ctx, connectionID)
	if err != nil {
		return entities.BankConnection{}, err
	}
	if conn.ID == "" {
		return entities.BankConnection{}, ErrBankConnectionNotFound
	}
	return conn, nil
}

func (u *BankConnectionUseCase) expiry(token entities.BankToken, now time.Time) time.Time {
	if token.ExpiresAt.IsZero() {
		return now.Add(u.cfg.DefaultTokenTTL)
	}
	return token.ExpiresAt.UTC()
}

func connectionName(provider entities.BankProvider, info entities.BankAccountInfo) string {
	name := provider.DisplayName()
	if info.Agency != "" && info.AccountNumber != "" {
		name = fmt.Sprintf("%s %s/%s", name, info.Agency, info.AccountNumber)
	}
	return name
}
