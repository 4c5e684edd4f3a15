package repository

import (
	"sync"
	"time"

	"github.com/reshetovitsme/approval-relay/internal/modules/forward/domain"
)

// MemoryStorage keeps forward records for the lifetime of the process.
type MemoryStorage struct {
	records map[domain.Key]time.Time
	mu      sync.RWMutex
}

// NewMemoryStorage creates an empty in-memory forward repository
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{records: make(map[domain.Key]time.Time)}
}

func (s *MemoryStorage) Has(key domain.Key) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[key]
	return ok, nil
}

func (s *MemoryStorage) Record(record *domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.Key] = record.ForwardedAt
	return nil
}

func (s *MemoryStorage) Prune(before time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, forwardedAt := range s.records {
		if forwardedAt.Before(before) {
			delete(s.records, key)
			removed++
		}
	}
	return removed, nil
}

func (s *MemoryStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *MemoryStorage) Close() error {
	return nil
}
