package cart

import (
	"context"
	"sync"
)

// MemoryStore keeps the snapshot in process memory. Used in tests and
// whenever no database is configured.
type MemoryStore struct {
	mu       sync.Mutex
	snapshot []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(ctx context.Context, snapshot []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = append([]byte(nil), snapshot...)
	return nil
}

func (s *MemoryStore) Load(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return nil, nil
	}
	return append([]byte(nil), s.snapshot...), nil
}
