package interfaces

import (
	"context"
	"time"

	"pdv_pagamentos/internal/domain/entities"
)

// IHandshakeStore keeps pending OAuth handshakes keyed by their state nonce.
//
// Consume must be atomic: it returns the handshake and removes it in one step,
// so a state can be redeemed at most once. found is false for unknown or
// expired states.
type IHandshakeStore interface {
	Save(ctx context.Context, h entities.OAuthHandshake, ttl time.Duration) error
	Consume(ctx context.Context, state string) (h entities.OAuthHandshake, found bool, err error)
}
