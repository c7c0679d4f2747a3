package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomobar/internal/adapters/notification"
	"github.com/xvierd/pomobar/internal/config"
)

// appDeps groups all dependencies initialized at startup.
type appDeps struct {
	config   *config.Config
	logger   *slog.Logger
	notifier *notification.Notifier
}

// app holds all initialized dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices loads and validates the configuration and sets up the
// logger and notifier.
func initializeServices(cmd *cobra.Command) error {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}

	// stdout belongs to the status bar, so diagnostics go to stderr.
	app.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	app.notifier = notification.New(&cfg.Notifications)
	app.config = cfg

	return nil
}
