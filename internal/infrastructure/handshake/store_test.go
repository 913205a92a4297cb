package handshake

import (
	"context"
	"sync"
	"testing"
	"time"

	"pdv_pagamentos/internal/domain/entities"
	"pdv_pagamentos/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttls[key] = ttl
	cmd := redis.NewStatusCmd(ctx)
	cmd.SetVal("OK")
	return cmd
}

func (f *fakeRedis) GetDel(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	cmd := redis.NewStringCmd(ctx)
	v, ok := f.data[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	delete(f.data, key)
	cmd.SetVal(v)
	return cmd
}

func sampleHandshake() entities.OAuthHandshake {
	now := time.Date(2026, 1, 15, 13, 30, 0, 0, time.UTC)
	return entities.OAuthHandshake{State: "state-1", Provider: entities.BankProviderItau, CreatedAt: now, ExpiresAt: now.Add(10 * time.Minute)}
}

func TestRedisStore_ConsumeIsSingleUse(t *testing.T) {
	fake := newFakeRedis()
	store := &RedisStore{store: fake}
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleHandshake(), 10*time.Minute))
	assert.Equal(t, 10*time.Minute, fake.ttls[keyPrefix+"state-1"])

	h, found, err := store.Consume(ctx, "state-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, entities.BankProviderItau, h.Provider)
	assert.True(t, h.ExpiresAt.Equal(sampleHandshake().ExpiresAt))

	_, found, err = store.Consume(ctx, "state-1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStore_RejectsNonPositiveTTL(t *testing.T) {
	store := &RedisStore{store: newFakeRedis()}
	assert.Error(t, store.Save(context.Background(), sampleHandshake(), 0))
}

func TestOptionsFromConfig(t *testing.T) {
	_, err := optionsFromConfig(config.RedisConfig{})
	assert.Error(t, err)

	opts, err := optionsFromConfig(config.RedisConfig{URL: "redis://:secret@localhost:6380/2", DialTimeout: time.Second})
	require.NoError(t, err)
	assert.Equal(t, "localhost:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, time.Second, opts.DialTimeout)

	opts, err = optionsFromConfig(config.RedisConfig{Address: "redis:6379", DB: 1})
	require.NoError(t, err)
	assert.Equal(t, "redis:6379", opts.Addr)
	assert.Equal(t, 1, opts.DB)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2026, 1, 15, 13, 30, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleHandshake(), time.Minute))
	_, found, _ := store.Consume(ctx, "unknown")
	assert.False(t, found)

	h, found, err := store.Consume(ctx, "state-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "state-1", h.State)

	_, found, _ = store.Consume(ctx, "state-1")
	assert.False(t, found, "state must be single use")

	require.NoError(t, store.Save(ctx, sampleHandshake(), time.Minute))
	now = now.Add(2 * time.Minute)
	_, found, _ = store.Consume(ctx, "state-1")
	assert.False(t, found, "expired handshakes are not returned")
}
