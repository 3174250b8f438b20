package store

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu          sync.RWMutex
	collections map[string][]byte
}

// NewMemory builds an in-process store used for tests and for running without
// Redis or Postgres configured.
func NewMemory() Store {
	return &memoryStore{collections: make(map[string][]byte)}
}

func (s *memoryStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.collections[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(payload))
	copy(cp, payload)
	return cp, true, nil
}

func (s *memoryStore) Save(_ context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(payload))
	copy(cp, payload)
	s.collections[key] = cp
	return nil
}

func (s *memoryStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collections, key)
	return nil
}
