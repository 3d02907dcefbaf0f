package storage

import (
	"context"
	"sync"

	"github.com/osse101/PlotFarm_Go/internal/domain"
)

// MemoryStore keeps the snapshot in process memory. Used by tests and
// throwaway runs.
type MemoryStore struct {
	mu   sync.RWMutex
	data []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Read(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil, domain.ErrNoSave
	}
	return append([]byte(nil), s.data...), nil
}

func (s *MemoryStore) Write(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append(make([]byte, 0, len(data)), data...)
	return nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }
func (s *MemoryStore) Close() error               { return nil }
func (s *MemoryStore) Driver() Driver             { return DriverMemory }
