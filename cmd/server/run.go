package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-telegram/bot"
	"github.com/reshetovitsme/approval-relay/internal/di"
	forwardService "github.com/reshetovitsme/approval-relay/internal/modules/forward/service"
	"github.com/reshetovitsme/approval-relay/internal/shared/config"
	"github.com/reshetovitsme/approval-relay/internal/shared/logging"
	httpServer "github.com/reshetovitsme/approval-relay/internal/transport/http"
	"github.com/reshetovitsme/approval-relay/internal/transport/telegram"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
	"golang.org/x/sync/errgroup"
)

func run(ctx context.Context, configPath string) error {
	slog.SetDefault(logging.Bootstrap())

	injector, err := di.Setup(configPath)
	if err != nil {
		return oops.With("context", "failed to setup dependency injection").Wrap(err)
	}

	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return err
	}

	logger, closer, err := logging.Setup(cfg.SlogLevel(), cfg.LogFile)
	if err != nil {
		return oops.With("log_file", cfg.LogFile).Wrap(err)
	}
	defer closer.Close()
	slog.SetDefault(logger)

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return oops.With("data_dir", cfg.DataDir).Wrap(err)
	}

	defer func() {
		if err := di.Shutdown(injector); err != nil {
			slog.Error("Error during shutdown", "error", err)
		}
	}()

	// Get services from DI container
	b, err := do.Invoke[*bot.Bot](injector)
	if err != nil {
		return err
	}
	if _, err := do.Invoke[*telegram.Listener](injector); err != nil {
		return err
	}
	poller, err := do.Invoke[*telegram.Poller](injector)
	if err != nil {
		return err
	}
	pruner, err := do.Invoke[*forwardService.Pruner](injector)
	if err != nil {
		return err
	}
	liveness, err := do.Invoke[httpServer.Liveness](injector)
	if err != nil {
		return err
	}

	pruner.Start()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return liveness.Serve(gctx)
	})
	g.Go(func() error {
		return poller.Run(gctx, b)
	})

	slog.Info("Relay started",
		"monitored_groups", cfg.MonitoredGroups,
		"target_channel", cfg.TargetChannel,
		"dedup_backend", cfg.DedupBackend,
		"port", cfg.Port,
	)

	err = g.Wait()
	slog.Info("Shutting down...")
	return err
}

func printConfig(w io.Writer, cfg config.Config) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}
