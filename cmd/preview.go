package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xvierd/pomobar/internal/adapters/preview"
)

// previewCmd runs the widget in the terminal, with keys instead of clicks.
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Try the widget in the terminal",
	Long: `Run the timer in the terminal and show the status line as the bar would.
Press s or enter for a left click, p or space for a right click, q to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		timer, err := newTimer()
		if err != nil {
			return err
		}

		m := preview.NewModel(timer, themeFromConfig(), app.config.TickPeriod())
		if app.notifier.IsEnabled() {
			m.SetNotifier(app.notifier)
		}
		return preview.Run(m)
	},
}
