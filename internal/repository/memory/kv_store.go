// Package memory is a process-local repository.KVStore, used for tests and
// ephemeral runs.
package memory

import (
	"context"
	"sync"

	"github.com/Click-facil/fitclick/internal/repository"
)

type kvStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewKVStore creates an empty in-memory store.
func NewKVStore() repository.KVStore {
	return &kvStore{values: make(map[string][]byte)}
}

func (s *kvStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, repository.ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *kvStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
	return nil
}

func (s *kvStore) Close() error { return nil }
