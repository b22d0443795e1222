package store

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemory creates a process-lifetime in-memory Store.
func NewMemory() Store {
	return &memoryStore{
		records: make(map[string]Record),
	}
}

func (s *memoryStore) Save(ctx context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.Name] = *rec
	return nil
}

func (s *memoryStore) Get(ctx context.Context, name string) (*Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[name]
	if !ok {
		return nil, false, nil
	}
	return &rec, true, nil
}

func (s *memoryStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}
