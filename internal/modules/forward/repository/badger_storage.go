package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/reshetovitsme/approval-relay/internal/modules/forward/domain"
	"github.com/samber/oops"
)

const recordPrefix = "forwarded:"

// BadgerStorage implements Repository on top of an embedded BadgerDB so that
// forward records survive restarts.
type BadgerStorage struct {
	db *badger.DB
}

// OpenBadger opens (or creates) a BadgerDB directory at path.
func OpenBadger(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, oops.With("path", path, "context", "failed to open badger").Wrap(err)
	}
	return db, nil
}

// NewBadgerStorage wraps an open database. Close closes the database.
func NewBadgerStorage(db *badger.DB) *BadgerStorage {
	return &BadgerStorage{db: db}
}

func recordKey(key domain.Key) []byte {
	return []byte(recordPrefix + key.String())
}

func (s *BadgerStorage) Has(key domain.Key) (bool, error) {
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(recordKey(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil {
		return false, oops.With("key", key.String(), "context", "failed to read record").Wrap(err)
	}
	return found, nil
}

func (s *BadgerStorage) Record(record *domain.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return oops.With("key", record.Key.String(), "context", "failed to marshal record").Wrap(err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(recordKey(record.Key), data)
	})
}

func (s *BadgerStorage) Prune(before time.Time) (int, error) {
	var stale [][]byte

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(recordPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				var record domain.Record
				if err := json.Unmarshal(val, &record); err != nil {
					return nil
				}
				if record.ForwardedAt.Before(before) {
					stale = append(stale, item.KeyCopy(nil))
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, oops.With("context", "failed to scan records").Wrap(err)
	}

	if len(stale) == 0 {
		return 0, nil
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for _, key := range stale {
		if err := wb.Delete(key); err != nil {
			return 0, oops.With("context", "failed to delete record").Wrap(err)
		}
	}
	if err := wb.Flush(); err != nil {
		return 0, oops.With("context", "failed to flush deletions").Wrap(err)
	}

	return len(stale), nil
}

func (s *BadgerStorage) Close() error {
	return s.db.Close()
}
