package handshake

import (
	"context"
	"sync"
	"time"

	"pdv_pagamentos/internal/domain/entities"
	"pdv_pagamentos/internal/usecase/interfaces"
)

// MemoryStore is the single-process fallback used when no Redis is configured.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]memoryEntry
	now   func() time.Time
}

type memoryEntry struct {
	handshake entities.OAuthHandshake
	deadline  time.Time
}

var _ interfaces.IHandshakeStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: map[string]memoryEntry{}, now: time.Now}
}

func (s *MemoryStore) Save(_ context.Context, h entities.OAuthHandshake, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for state, e := range s.items {
		if !now.Before(e.deadline) {
			delete(s.items, state)
		}
	}
	s.items[h.State] = memoryEntry{handshake: h, deadline: now.Add(ttl)}
	return nil
}

func (s *MemoryStore) Consume(_ context.Context, state string) (entities.OAuthHandshake, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[state]
	if !ok {
		return entities.OAuthHandshake{}, false, nil
	}
	delete(s.items, state)
	if !s.now().Before(e.deadline) {
		return entities.OAuthHandshake{}, false, nil
	}
	return e.handshake, true, nil
}
