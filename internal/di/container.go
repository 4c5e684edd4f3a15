package di

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-telegram/bot"
	"github.com/panjf2000/ants/v2"
	approvalService "github.com/reshetovitsme/approval-relay/internal/modules/approval/service"
	forwardRepo "github.com/reshetovitsme/approval-relay/internal/modules/forward/repository"
	forwardService "github.com/reshetovitsme/approval-relay/internal/modules/forward/service"
	sourceDomain "github.com/reshetovitsme/approval-relay/internal/modules/source/domain"
	"github.com/reshetovitsme/approval-relay/internal/shared/config"
	apperrors "github.com/reshetovitsme/approval-relay/internal/shared/errors"
	httpServer "github.com/reshetovitsme/approval-relay/internal/transport/http"
	"github.com/reshetovitsme/approval-relay/internal/transport/telegram"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

const poolReleaseTimeout = 10 * time.Second

// Setup initializes the dependency injection container. configPath may be
// empty, in which case the default config file lookup applies.
func Setup(configPath string) (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register monitored sources
	do.Provide(injector, func(i do.Injector) (*sourceDomain.Set, error) {
		cfg := do.MustInvoke[*config.Config](i)
		set, err := sourceDomain.NewSet(cfg.MonitoredGroups)
		if err != nil {
			return nil, oops.With("context", "invalid monitored groups").Wrap(err)
		}
		return set, nil
	})

	// Register Classifier
	do.Provide(injector, func(i do.Injector) (*approvalService.Classifier, error) {
		cfg := do.MustInvoke[*config.Config](i)
		classifier, err := approvalService.NewClassifier(cfg.ApprovedKeywords)
		if err != nil {
			return nil, oops.With("context", "failed to build keyword classifier").Wrap(err)
		}
		return classifier, nil
	})

	// Register forward record repository
	do.Provide(injector, func(i do.Injector) (forwardRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return openRepository(cfg)
	})

	// Register worker pool
	do.Provide(injector, func(i do.Injector) (*ants.Pool, error) {
		cfg := do.MustInvoke[*config.Config](i)
		pool, err := ants.NewPool(cfg.Workers, ants.WithPanicHandler(func(p interface{}) {
			slog.Error("Handler panic recovered", "panic", p)
		}))
		if err != nil {
			return nil, oops.With("workers", cfg.Workers, "context", "failed to create worker pool").Wrap(err)
		}
		return pool, nil
	})

	// Register Poller
	do.Provide(injector, func(i do.Injector) (*telegram.Poller, error) {
		poller := telegram.NewPoller()
		poller.SetLogger(slog.Default())
		return poller, nil
	})

	// Register Bot. The Listener provider attaches the message handler;
	// everything it does not match falls through to the poller.
	do.Provide(injector, func(i do.Injector) (*bot.Bot, error) {
		cfg := do.MustInvoke[*config.Config](i)
		poller := do.MustInvoke[*telegram.Poller](i)

		opts := []bot.Option{
			bot.WithServerURL(cfg.TelegramAPIURL),
			bot.WithAllowedUpdates(telegram.AllowedUpdates),
			bot.WithDefaultHandler(poller.IgnoreUpdate),
			bot.WithErrorsHandler(poller.HandleError),
		}

		b, err := bot.New(cfg.TelegramBotToken, opts...)
		if err != nil {
			return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
		}
		return b, nil
	})

	// Register Sender
	do.Provide(injector, func(i do.Injector) (*telegram.Sender, error) {
		cfg := do.MustInvoke[*config.Config](i)
		b := do.MustInvoke[*bot.Bot](i)

		target, err := sourceDomain.ParseChatRef(cfg.TargetChannel)
		if err != nil {
			return nil, oops.With("target_channel", cfg.TargetChannel).Wrap(err)
		}
		return telegram.NewSender(b, target), nil
	})

	// Register Identity
	do.Provide(injector, func(i do.Injector) (*telegram.Identity, error) {
		return telegram.NewIdentity(do.MustInvoke[*bot.Bot](i)), nil
	})

	// Register Forward Service
	do.Provide(injector, func(i do.Injector) (*forwardService.Service, error) {
		svc := forwardService.New(
			do.MustInvoke[*approvalService.Classifier](i),
			do.MustInvoke[forwardRepo.Repository](i),
			do.MustInvoke[*telegram.Sender](i),
			do.MustInvoke[*telegram.Identity](i),
		)
		svc.SetLogger(slog.Default())
		return svc, nil
	})

	// Register Pruner
	do.Provide(injector, func(i do.Injector) (*forwardService.Pruner, error) {
		cfg := do.MustInvoke[*config.Config](i)
		pruner, err := forwardService.NewPruner(do.MustInvoke[forwardRepo.Repository](i), cfg.DedupTTL, cfg.DedupPruneSchedule)
		if err != nil {
			return nil, err
		}
		pruner.SetLogger(slog.Default())
		return pruner, nil
	})

	// Register Listener and attach it to the bot
	do.Provide(injector, func(i do.Injector) (*telegram.Listener, error) {
		listener := telegram.NewListener(
			do.MustInvoke[*sourceDomain.Set](i),
			do.MustInvoke[*forwardService.Service](i),
			do.MustInvoke[*ants.Pool](i),
		)
		listener.SetLogger(slog.Default())
		listener.Register(do.MustInvoke[*bot.Bot](i))
		return listener, nil
	})

	// Register liveness endpoint
	do.Provide(injector, func(i do.Injector) (httpServer.Liveness, error) {
		cfg := do.MustInvoke[*config.Config](i)
		switch cfg.HealthMode {
		case config.HealthModeRaw:
			responder := httpServer.NewResponder(cfg.Port)
			responder.SetLogger(slog.Default())
			return responder, nil
		case config.HealthModeHttp:
			server := httpServer.New(cfg.Port)
			server.SetLogger(slog.Default())
			return server, nil
		default:
			return nil, oops.With("health_mode", cfg.HealthMode).Wrap(apperrors.ErrUnknownHealthMode)
		}
	})

	return injector, nil
}

func openRepository(cfg *config.Config) (forwardRepo.Repository, error) {
	switch cfg.DedupBackend {
	case config.DedupBackendMemory:
		return forwardRepo.NewMemoryStorage(), nil
	case config.DedupBackendFile:
		repo, err := forwardRepo.NewFileStorage(cfg.DataDir)
		if err != nil {
			return nil, oops.With("data_dir", cfg.DataDir, "context", "failed to initialize forward repository").Wrap(err)
		}
		return repo, nil
	case config.DedupBackendBadger:
		path := filepath.Join(cfg.DataDir, "badger")
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, oops.With("path", path).Wrap(err)
		}
		db, err := forwardRepo.OpenBadger(path)
		if err != nil {
			return nil, oops.With("path", path, "context", "failed to open badger").Wrap(err)
		}
		return forwardRepo.NewBadgerStorage(db), nil
	default:
		return nil, oops.With("dedup_backend", cfg.DedupBackend).Wrap(apperrors.ErrUnknownDedupBackend)
	}
}

// Shutdown gracefully shuts down all services that were started. Polling
// itself stops when its context is cancelled.
func Shutdown(injector do.Injector) error {
	if pruner, err := do.Invoke[*forwardService.Pruner](injector); err == nil && pruner != nil {
		pruner.Stop()
	}

	if pool, err := do.Invoke[*ants.Pool](injector); err == nil && pool != nil {
		if err := pool.ReleaseTimeout(poolReleaseTimeout); err != nil {
			slog.Warn("Worker pool did not drain in time", "error", err)
		}
	}

	if repo, err := do.Invoke[forwardRepo.Repository](injector); err == nil && repo != nil {
		if err := repo.Close(); err != nil {
			return oops.With("context", "failed to close forward repository").Wrap(err)
		}
	}

	return nil
}
