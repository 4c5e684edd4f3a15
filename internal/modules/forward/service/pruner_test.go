package service

import (
	"testing"
	"time"

	"github.com/reshetovitsme/approval-relay/internal/modules/forward/domain"
	forwardRepo "github.com/reshetovitsme/approval-relay/internal/modules/forward/repository"
	"github.com/stretchr/testify/require"
)

func TestPruner_PruneOnce(t *testing.T) {
	req := require.New(t)
	records := forwardRepo.NewMemoryStorage()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	req.NoError(records.Record(&domain.Record{Key: domain.Key{ChatID: 1, MessageID: 1}, ForwardedAt: now.Add(-3 * time.Hour)}))
	req.NoError(records.Record(&domain.Record{Key: domain.Key{ChatID: 1, MessageID: 2}, ForwardedAt: now.Add(-30 * time.Minute)}))

	pruner, err := NewPruner(records, time.Hour, "@every 10m")
	req.NoError(err)
	req.True(pruner.Enabled())
	pruner.now = func() time.Time { return now }

	removed, err := pruner.PruneOnce()
	req.NoError(err)
	req.Equal(1, removed)
	req.Equal(1, records.Len())
}

func TestPruner_DisabledWithoutTTL(t *testing.T) {
	req := require.New(t)
	records := forwardRepo.NewMemoryStorage()
	req.NoError(records.Record(&domain.Record{Key: domain.Key{ChatID: 1, MessageID: 1}}))

	pruner, err := NewPruner(records, 0, "not a schedule")
	req.NoError(err)
	req.False(pruner.Enabled())

	pruner.Start()
	removed, err := pruner.PruneOnce()
	req.NoError(err)
	req.Zero(removed)
	req.Equal(1, records.Len())
	pruner.Stop()
}

func TestPruner_InvalidSchedule(t *testing.T) {
	_, err := NewPruner(forwardRepo.NewMemoryStorage(), time.Hour, "every now and then")
	require.Error(t, err)
}

func TestPruner_StartStop(t *testing.T) {
	pruner, err := NewPruner(forwardRepo.NewMemoryStorage(), time.Hour, "@every 1h")
	require.NoError(t, err)

	pruner.Start()
	pruner.Stop()
}
