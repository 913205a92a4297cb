// Package handshake stores pending OAuth handshakes until their callback
// redeems them.
package handshake

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pdv_pagamentos/internal/domain/entities"
	"pdv_pagamentos/internal/infrastructure/config"
	"pdv_pagamentos/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "pdv:oauth_handshake:"

type cmdable interface {
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
	GetDel(context.Context, string) *redis.StringCmd
}

// RedisStore keeps handshakes as JSON values whose TTL matches the handshake
// expiry. GETDEL makes Consume atomic across replicas.
type RedisStore struct {
	store cmdable
}

var _ interfaces.IHandshakeStore = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{store: client}
}

// NewRedisClient opens a client from config and verifies connectivity.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func optionsFromConfig(cfg config.RedisConfig) (*redis.Options, error) {
	if !cfg.Enabled() {
		return nil, errors.New("redis url or address is required")
	}
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}
	if opts.DB == 0 {
		opts.DB = cfg.DB
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	return opts, nil
}

func (s *RedisStore) Save(ctx context.Context, h entities.OAuthHandshake, ttl time.Duration) error {
	if s.store == nil {
		return errors.New("redis client not initialized")
	}
	if ttl <= 0 {
		return fmt.Errorf("handshake ttl must be positive, got %s", ttl)
	}
	b, err := json.Marshal(h)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, keyPrefix+h.State, b, ttl).Err()
}

func (s *RedisStore) Consume(ctx context.Context, state string) (entities.OAuthHandshake, bool, error) {
	if s.store == nil {
		return entities.OAuthHandshake{}, false, errors.New("redis client not initialized")
	}
	raw, err := s.store.GetDel(ctx, keyPrefix+state).Result()
	if errors.Is(err, redis.Nil) {
		return entities.OAuthHandshake{}, false, nil
	}
	if err != nil {
		return entities.OAuthHandshake{}, false, err
	}
	var h entities.OAuthHandshake
	if err := json.Unmarshal([]byte(raw), &h); err != nil {
		return entities.OAuthHandshake{}, false, fmt.Errorf("decoding handshake: %w", err)
	}
	return h, true, nil
}
