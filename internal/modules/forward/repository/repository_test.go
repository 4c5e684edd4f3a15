package repository

import (
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/reshetovitsme/approval-relay/internal/modules/forward/domain"
	"github.com/stretchr/testify/require"
)

func setupBadger(t *testing.T) *BadgerStorage {
	t.Helper()
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	return NewBadgerStorage(db)
}

func backends(t *testing.T) map[string]Repository {
	t.Helper()
	fileStorage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	return map[string]Repository{
		"memory": NewMemoryStorage(),
		"file":   fileStorage,
		"badger": setupBadger(t),
	}
}

func TestRepository_RecordAndHas(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			defer repo.Close()

			key := domain.Key{ChatID: -1001111111111, MessageID: 42}

			found, err := repo.Has(key)
			req.NoError(err)
			req.False(found)

			req.NoError(repo.Record(&domain.Record{Key: key, ForwardedAt: time.Now()}))

			found, err = repo.Has(key)
			req.NoError(err)
			req.True(found)

			// Same message id in another chat is a different key.
			found, err = repo.Has(domain.Key{ChatID: -1002222222222, MessageID: 42})
			req.NoError(err)
			req.False(found)

			// Recording twice is harmless.
			req.NoError(repo.Record(&domain.Record{Key: key, ForwardedAt: time.Now()}))
		})
	}
}

func TestRepository_Prune(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			defer repo.Close()

			now := time.Now()
			old := domain.Key{ChatID: -1001, MessageID: 1}
			fresh := domain.Key{ChatID: -1001, MessageID: 2}
			other := domain.Key{ChatID: -1002, MessageID: 1}

			req.NoError(repo.Record(&domain.Record{Key: old, ForwardedAt: now.Add(-48 * time.Hour)}))
			req.NoError(repo.Record(&domain.Record{Key: other, ForwardedAt: now.Add(-25 * time.Hour)}))
			req.NoError(repo.Record(&domain.Record{Key: fresh, ForwardedAt: now}))

			removed, err := repo.Prune(now.Add(-24 * time.Hour))
			req.NoError(err)
			req.Equal(2, removed)

			for _, key := range []domain.Key{old, other} {
				found, err := repo.Has(key)
				req.NoError(err)
				req.False(found, key.String())
			}
			found, err := repo.Has(fresh)
			req.NoError(err)
			req.True(found)

			removed, err = repo.Prune(now.Add(-24 * time.Hour))
			req.NoError(err)
			req.Zero(removed)
		})
	}
}

func TestFileStorage_SurvivesReopen(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	key := domain.Key{ChatID: -1003309759576, MessageID: 9}

	first, err := NewFileStorage(dir)
	req.NoError(err)
	req.NoError(first.Record(&domain.Record{Key: key, ForwardedAt: time.Now()}))

	second, err := NewFileStorage(dir)
	req.NoError(err)
	found, err := second.Has(key)
	req.NoError(err)
	req.True(found)
}

func TestBadgerStorage_SurvivesReopen(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	key := domain.Key{ChatID: -1003309759576, MessageID: 9}

	db, err := OpenBadger(dir)
	req.NoError(err)
	first := NewBadgerStorage(db)
	req.NoError(first.Record(&domain.Record{Key: key, ForwardedAt: time.Now()}))
	req.NoError(first.Close())

	db, err = OpenBadger(dir)
	req.NoError(err)
	second := NewBadgerStorage(db)
	defer second.Close()

	found, err := second.Has(key)
	req.NoError(err)
	req.True(found)
}

func TestMemoryStorage_Len(t *testing.T) {
	repo := NewMemoryStorage()
	require.NoError(t, repo.Record(&domain.Record{Key: domain.Key{ChatID: 1, MessageID: 1}}))
	require.NoError(t, repo.Record(&domain.Record{Key: domain.Key{ChatID: 1, MessageID: 1}}))
	require.Equal(t, 1, repo.Len())
}
