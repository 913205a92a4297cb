package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pdv_pagamentos/internal/domain/entities"
	"pdv_pagamentos/internal/logger"
	"pdv_pagamentos/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// IGatewayRegistry answers which gateway handles a payment method and lets the
// settings collaborator maintain the configured gateways.
type IGatewayRegistry interface {
	SelectGateway(ctx context.Context, method entities.PaymentMethod) (entities.PaymentGateway, error)
	List(ctx context.Context) ([]entities.PaymentGateway, error)
	Save(ctx context.Context, g entities.PaymentGateway) (entities.PaymentGateway, error)
	DisableByConnection(ctx context.Context, connectionID string) ([]string, error)
}

type GatewayRegistry struct {
	repo interfaces.IPaymentGatewayRepository
	log  zerolog.Logger
}

var _ IGatewayRegistry = (*GatewayRegistry)(nil)

func NewGatewayRegistry(repo interfaces.IPaymentGatewayRepository) *GatewayRegistry {
	return &GatewayRegistry{repo: repo, log: logger.Component("gateway_registry")}
}

// SelectGateway returns the first enabled gateway, in registration order, that
// supports method.
func (r *GatewayRegistry) SelectGateway(ctx context.Context, method entities.PaymentMethod) (entities.PaymentGateway, error) {
	gateways, err := r.repo.List(ctx)
	if err != nil {
		r.log.Error().Err(err).Str("method", string(method)).Msg("[registry] failed loading gateways")
		return entities.PaymentGateway{}, err
	}
	g, ok := entities.SelectGateway(gateways, method)
	if !ok {
		r.log.Warn().Str("method", string(method)).Int("gateways", len(gateways)).Msg("[registry] no gateway available")
		return entities.PaymentGateway{}, newDispatchError(ErrNoGatewayAvailable, string(method), "", nil)
	}
	r.log.Debug().Str("method", string(method)).Str("gateway_id", g.ID).Str("gateway_type", string(g.Type)).Msg("[registry] gateway selected")
	return g, nil
}

func (r *GatewayRegistry) List(ctx context.Context) ([]entities.PaymentGateway, error) {
	gateways, err := r.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	entities.SortGateways(gateways)
	return gateways, nil
}

// Save upserts a gateway. New ids are appended after every registered gateway;
// existing ids keep their position.
func (r *GatewayRegistry) Save(ctx context.Context, g entities.PaymentGateway) (entities.PaymentGateway, error) {
	g.ID = strings.TrimSpace(g.ID)
	if err := g.Validate(); err != nil {
		return entities.PaymentGateway{}, fmt.Errorf("%w: %w", ErrInvalidGatewayConfig, err)
	}

	gateways, err := r.repo.List(ctx)
	if err != nil {
		return entities.PaymentGateway{}, err
	}
	next := 0
	found := false
	for _, existing := range gateways {
		if existing.Position >= next {
			next = existing.Position + 1
		}
		if existing.ID == g.ID {
			g.Position = existing.Position
			if g.APIKey == "" {
				g.APIKey = existing.APIKey
			}
			found = true
		}
	}
	if !found {
		g.Position = next
	}

	if err := r.repo.Save(ctx, g); err != nil {
		r.log.Error().Err(err).Str("gateway_id", g.ID).Msg("[registry] save failed")
		return entities.PaymentGateway{}, err
	}
	r.log.Info().Str("gateway_id", g.ID).Str("gateway_type", string(g.Type)).Bool("enabled", g.Enabled).Int("position", g.Position).Bool("created", !found).Msg("[registry] gateway saved")
	return g, nil
}

// DisableByConnection disables every bank gateway bound to connectionID and
// returns the ids it disabled.
func (r *GatewayRegistry) DisableByConnection(ctx context.Context, connectionID string) ([]string, error) {
	gateways, err := r.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var disabled []string
	var errs []error
	for _, g := range gateways {
		if g.Type != entities.GatewayTypeBank || g.BankConnectionID != connectionID || !g.Enabled {
			continue
		}
		if err := r.repo.SetEnabled(ctx, g.ID, false); err != nil {
			errs = append(errs, fmt.Errorf("disable gateway %s: %w", g.ID, err))
			continue
		}
		disabled = append(disabled, g.ID)
	}
	if len(disabled) > 0 {
		r.log.Info().Str("connection_id", connectionID).Strs("gateway_ids", disabled).Msg("[registry] bank gateways disabled")
	}
	return disabled, errors.Join(errs...)
}
