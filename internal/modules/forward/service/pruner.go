package service

import (
	"log/slog"
	"time"

	forwardRepo "github.com/reshetovitsme/approval-relay/internal/modules/forward/repository"
	"github.com/robfig/cron/v3"
	"github.com/samber/oops"
)

// Pruner evicts forward records older than the configured TTL on a cron
// schedule. A zero TTL disables eviction and Start does nothing.
type Pruner struct {
	records forwardRepo.Repository
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
	now     func() time.Time
}

// NewPruner validates the schedule and prepares the job.
func NewPruner(records forwardRepo.Repository, ttl time.Duration, schedule string) (*Pruner, error) {
	p := &Pruner{
		records: records,
		ttl:     ttl,
		logger:  slog.Default(),
		now:     time.Now,
	}
	if ttl <= 0 {
		return p, nil
	}

	p.cron = cron.New()
	if _, err := p.cron.AddFunc(schedule, p.run); err != nil {
		return nil, oops.With("schedule", schedule, "context", "invalid prune schedule").Wrap(err)
	}
	return p, nil
}

// SetLogger sets the logger
func (p *Pruner) SetLogger(logger *slog.Logger) {
	p.logger = logger
}

func (p *Pruner) Enabled() bool {
	return p.cron != nil
}

func (p *Pruner) Start() {
	if p.cron == nil {
		return
	}
	p.cron.Start()
	p.logger.Info("Forward record pruning enabled", "ttl", p.ttl)
}

// Stop waits for a running prune to finish.
func (p *Pruner) Stop() {
	if p.cron == nil {
		return
	}
	<-p.cron.Stop().Done()
}

// PruneOnce removes records forwarded more than ttl ago.
func (p *Pruner) PruneOnce() (int, error) {
	if p.ttl <= 0 {
		return 0, nil
	}
	return p.records.Prune(p.now().Add(-p.ttl))
}

func (p *Pruner) run() {
	removed, err := p.PruneOnce()
	if err != nil {
		p.logger.Error("Failed to prune forward records", "error", err)
		return
	}
	if removed > 0 {
		p.logger.Info("Pruned forward records", "removed", removed)
	}
}
