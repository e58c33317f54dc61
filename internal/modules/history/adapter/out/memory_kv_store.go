package out

import (
	"context"
	"sync"

	historyout "github.com/teamit2026-cmd/cgpatracker/internal/modules/history/port/out"
)

// MemoryKVStore is process-local; results vanish on exit.
type MemoryKVStore struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ historyout.KVStore = (*MemoryKVStore)(nil)

func NewMemoryKVStore() *MemoryKVStore {
	return &MemoryKVStore{values: map[string]string{}}
}

func (s *MemoryKVStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *MemoryKVStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
