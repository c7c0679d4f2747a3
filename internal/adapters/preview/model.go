// Package preview runs the widget in a terminal so the status line can be
// tried out without a status bar. Key presses stand in for mouse clicks.
package preview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/pomobar/internal/adapters/blocks"
	"github.com/xvierd/pomobar/internal/domain"
	"github.com/xvierd/pomobar/internal/ports"
)

// DefaultTheme is used for colors the user left empty.
var DefaultTheme = blocks.Theme{
	Focus:  "#7C6FE0",
	Pause:  "#4ECDC4",
	Paused: "#6B7280",
	Ready:  "#A0AEC0",
}

// WithDefaults fills empty colors of theme from DefaultTheme.
func WithDefaults(theme blocks.Theme) blocks.Theme {
	if theme.Focus == "" {
		theme.Focus = DefaultTheme.Focus
	}
	if theme.Pause == "" {
		theme.Pause = DefaultTheme.Pause
	}
	if theme.Paused == "" {
		theme.Paused = DefaultTheme.Paused
	}
	if theme.Ready == "" {
		theme.Ready = DefaultTheme.Ready
	}
	return theme
}

type keyMap struct {
	Start key.Binding
	Pause key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Start: key.NewBinding(
		key.WithKeys("s", "enter"),
		key.WithHelp("s", "left click (start)"),
	),
	Pause: key.NewBinding(
		key.WithKeys("p", " "),
		key.WithHelp("p/space", "right click (pause)"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

type tickMsg time.Time

// Model is the bubbletea model of the preview.
type Model struct {
	timer    *domain.Timer
	renderer blocks.Renderer
	palette  blocks.Renderer
	notifier ports.Notifier
	tick     time.Duration
	now      func() time.Time
	keys     keyMap
	help     help.Model
	event    string
	width    int
}

// NewModel creates a preview of timer refreshed every tick. The status
// record is rendered with theme exactly as the widget would emit it; the
// terminal colors fall back to DefaultTheme.
func NewModel(timer *domain.Timer, theme blocks.Theme, tick time.Duration) Model {
	if tick <= 0 {
		tick = time.Second
	}
	return Model{
		timer:    timer,
		renderer: blocks.NewRenderer(theme),
		palette:  blocks.NewRenderer(WithDefaults(theme)),
		tick:     tick,
		now:      time.Now,
		keys:     keys,
		help:     help.New(),
	}
}

// SetNotifier sets the notifier told about finished intervals.
func (m *Model) SetNotifier(n ports.Notifier) {
	m.notifier = n
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles key presses and ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Start):
			m.click(domain.ButtonLeft)
		case key.Matches(msg, m.keys.Pause):
			m.click(domain.ButtonRight)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.width = msg.Width
		return m, nil

	case tickMsg:
		tr := m.timer.Tick(time.Time(msg))
		if tr.Advanced {
			next := m.timer.Current()
			m.event = fmt.Sprintf("%s finished, %s is ready", tr.Completed.Kind.Label(), strings.ToLower(next.Kind.Label()))
			if m.notifier != nil {
				// Preview only; a failed notification is not worth surfacing.
				_ = m.notifier.NotifyIntervalComplete(tr.Completed, next)
			}
		}
		return m, m.tickCmd()
	}
	return m, nil
}

func (m *Model) click(button int) {
	tr, ok := domain.ClickCommand{Button: button}.Apply(m.timer, m.now())
	if !ok {
		return
	}
	if tr.Changed() {
		m.event = fmt.Sprintf("%s → %s", tr.From.Label(), tr.To.Label())
	} else {
		m.event = fmt.Sprintf("%s: no effect while %s", tr.Event, strings.ToLower(tr.From.Label()))
	}
}

// View renders the status line as the bar would show it, plus the raw record.
func (m Model) View() string {
	color := lipgloss.Color(m.palette.Color(m.timer))
	statusStyle := lipgloss.NewStyle().Bold(true).Foreground(color).Padding(0, 1)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#95A5A6"))

	var b strings.Builder
	b.WriteString("\n")
	if m.width >= minBigClockWidth {
		b.WriteString(bigClock(blocks.FormatClock(m.timer.Remaining()), lipgloss.NewStyle().Bold(true).Foreground(color), m.width))
		b.WriteString("\n\n")
	}
	b.WriteString("  ")
	b.WriteString(statusStyle.Render(m.renderer.Text(m.timer)))
	b.WriteString("\n\n  ")
	current := m.timer.Current()
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s · %s · interval %d of %d",
		m.timer.State().Label(),
		current.Kind.Label(),
		m.timer.Index()+1,
		m.timer.Schedule().Len(),
	)))
	b.WriteString("\n")

	if line, err := blocks.Encode(m.renderer.Record(m.timer)); err == nil {
		b.WriteString("  ")
		b.WriteString(dimStyle.Render(strings.TrimSpace(string(line))))
		b.WriteString("\n")
	}

	if m.event != "" {
		b.WriteString("\n  ")
		b.WriteString(m.event)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// Run shows the preview until the user quits.
func Run(m Model) error {
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}
	return nil
}
