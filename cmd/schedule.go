package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/xvierd/pomobar/internal/adapters/preview"
	"github.com/xvierd/pomobar/internal/domain"
)

var scheduleJSON bool

// scheduleCmd prints the interval cycle the widget will run through.
var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show the interval schedule",
	Long:  `Print every focus and pause interval of one cycle with its offset from the start of the cycle.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		schedule, err := app.config.BuildSchedule()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if scheduleJSON {
			return outputScheduleJSON(out, schedule)
		}

		styled := false
		if f, ok := out.(*os.File); ok {
			styled = term.IsTerminal(f.Fd())
		}
		fmt.Fprint(out, renderSchedule(schedule, styled))
		return nil
	},
}

func init() {
	scheduleCmd.Flags().BoolVar(&scheduleJSON, "json", false, "Output the schedule in JSON format")
}

type scheduleEntry struct {
	Index    int    `json:"index"`
	Round    int    `json:"round"`
	Kind     string `json:"kind"`
	Duration string `json:"duration"`
	Offset   string `json:"offset"`
}

// scheduleEntries lists the intervals with their round number and offset.
func scheduleEntries(schedule domain.Schedule) []scheduleEntry {
	entries := make([]scheduleEntry, 0, schedule.Len())
	var offset time.Duration
	for i, iv := range schedule.Intervals() {
		entries = append(entries, scheduleEntry{
			Index:    i,
			Round:    i/2 + 1,
			Kind:     string(iv.Kind),
			Duration: iv.Duration.String(),
			Offset:   offset.String(),
		})
		offset += iv.Duration
	}
	return entries
}

// outputScheduleJSON outputs the schedule in JSON format
func outputScheduleJSON(out io.Writer, schedule domain.Schedule) error {
	result := map[string]interface{}{
		"cycles":    schedule.Cycles(),
		"total":     schedule.Total().String(),
		"intervals": scheduleEntries(schedule),
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schedule: %w", err)
	}
	fmt.Fprintln(out, string(jsonData))
	return nil
}

// renderSchedule formats the schedule as a table, colored when styled.
func renderSchedule(schedule domain.Schedule, styled bool) string {
	theme := preview.WithDefaults(themeFromConfig())

	plain := lipgloss.NewStyle()
	titleStyle, focusStyle, pauseStyle, dimStyle := plain, plain, plain, plain
	if styled {
		titleStyle = lipgloss.NewStyle().Bold(true)
		focusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Focus)).Bold(true)
		pauseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Pause))
		dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#95A5A6"))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d rounds, %s per cycle", schedule.Cycles(), formatMinutes(schedule.Total()))))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %-5s %-6s %-8s %s", "ROUND", "KIND", "LENGTH", "STARTS")))
	b.WriteString("\n")

	var offset time.Duration
	for i, iv := range schedule.Intervals() {
		style := focusStyle
		label := iv.Kind.Label()
		if iv.Kind == domain.IntervalPause {
			style = pauseStyle
			if i == schedule.Len()-1 {
				label = "Long"
			}
		}
		round := ""
		if i%2 == 0 {
			round = fmt.Sprintf("%d", i/2+1)
		}
		b.WriteString(fmt.Sprintf("  %-5s %s %-8s %s\n",
			round,
			style.Render(fmt.Sprintf("%-6s", label)),
			formatMinutes(iv.Duration),
			dimStyle.Render("+"+formatMinutes(offset)),
		))
		offset += iv.Duration
	}
	return b.String()
}
