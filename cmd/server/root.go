package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/reshetovitsme/approval-relay/internal/shared/config"
	"github.com/spf13/cobra"
)

func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "approval-relay",
		Short:         "Forward approved messages from monitored Telegram groups to a target channel",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd.Context(), configPath)
			if err != nil {
				slog.Error("Relay stopped", "error", err)
			}
			return err
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (optional).")
	cmd.AddCommand(newConfigCmd(&configPath))

	return cmd
}

func newConfigCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration with secrets redacted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
				return err
			}
			return printConfig(cmd.OutOrStdout(), cfg.Redacted())
		},
	}
}
