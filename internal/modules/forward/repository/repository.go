package repository

import (
	"time"

	"github.com/reshetovitsme/approval-relay/internal/modules/forward/domain"
)

// Repository defines the interface for forward record persistence
type Repository interface {
	Has(key domain.Key) (bool, error)
	Record(record *domain.Record) error
	Prune(before time.Time) (int, error)
	Close() error
}

var (
	_ Repository = (*MemoryStorage)(nil)
	_ Repository = (*FileStorage)(nil)
	_ Repository = (*BadgerStorage)(nil)
)
