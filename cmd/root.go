// Package cmd provides the CLI commands for pomobar.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/xvierd/pomobar/internal/adapters/blocks"
	"github.com/xvierd/pomobar/internal/domain"
	"github.com/xvierd/pomobar/internal/services"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	configPath string
)

// rootCmd runs the widget when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pomobar",
	Short: "pomobar - a pomodoro timer block for your status bar",
	Long: `pomobar is a pomodoro timer for i3blocks and other status bars that
speak the JSON click protocol.

It prints one {"full_text": ...} line per tick on stdout and reads click
events from stdin: left click starts the next interval, right click pauses
or resumes the running one.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices(cmd)
	},
	RunE: runWidget,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: $XDG_CONFIG_HOME/pomobar/config.toml)")
	rootCmd.PersistentFlags().IntP("count", "c", 5, "Number of focus intervals per cycle")
	rootCmd.PersistentFlags().DurationP("focus", "f", 25*time.Minute, "Duration of the focus intervals")
	rootCmd.PersistentFlags().DurationP("pause", "p", 5*time.Minute, "Duration of the pause intervals")
	rootCmd.PersistentFlags().DurationP("long-pause", "l", 15*time.Minute, "Duration of the long pause interval")
	rootCmd.PersistentFlags().Duration("tick", services.DefaultTick, "Refresh period of the status line")
	rootCmd.PersistentFlags().Bool("notify", false, "Send a desktop notification when an interval ends")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level on stderr: debug, info, warn, error")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("pomobar\nVersion: {{.Version}}\n")

	// Add subcommands
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(previewCmd)
}

// runWidget is the status bar mode: clicks on stdin, status lines on stdout.
func runWidget(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	timer, err := newTimer()
	if err != nil {
		return err
	}

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(f.Fd()) {
		app.logger.Info(`reading clicks from a terminal; type {"button":1} to start or {"button":3} to pause`)
	}

	listener := blocks.NewListener(cmd.InOrStdin(), app.logger)
	listener.Start()

	writer := blocks.NewWriter(cmd.OutOrStdout(), blocks.NewRenderer(themeFromConfig()))

	svc := services.NewWidgetService(timer, listener, writer)
	svc.SetTick(app.config.TickPeriod())
	svc.SetLogger(app.logger)
	if app.notifier.IsEnabled() {
		svc.SetNotifier(app.notifier)
	}

	return svc.Run(ctx)
}

// newTimer builds a fresh timer from the loaded configuration.
func newTimer() (*domain.Timer, error) {
	schedule, err := app.config.BuildSchedule()
	if err != nil {
		return nil, err
	}
	return domain.NewTimer(schedule, time.Now())
}

// themeFromConfig converts the configured colors for the renderer.
func themeFromConfig() blocks.Theme {
	t := app.config.Theme
	return blocks.Theme{
		Focus:  t.ColorFocus,
		Pause:  t.ColorPause,
		Paused: t.ColorPaused,
		Ready:  t.ColorReady,
	}
}

// formatMinutes formats a duration in compact form like "25m" or "1h30m".
func formatMinutes(d time.Duration) string {
	if d < time.Minute || d%time.Minute != 0 {
		return d.String()
	}
	if d >= time.Hour {
		h := int(d.Hours())
		m := int(d.Minutes()) % 60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%dm", h, m)
	}
	return fmt.Sprintf("%dm", int(d.Minutes()))
}
