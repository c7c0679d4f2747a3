package preview

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/pomobar/internal/adapters/blocks"
	"github.com/xvierd/pomobar/internal/domain"
)

var epoch = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

type countingNotifier struct {
	calls int
}

func (c *countingNotifier) NotifyIntervalComplete(completed, next domain.Interval) error {
	c.calls++
	return nil
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	schedule, err := domain.BuildSchedule(2, 10*time.Second, 5*time.Second, 7*time.Second)
	if err != nil {
		t.Fatalf("BuildSchedule() error = %v", err)
	}
	timer, err := domain.NewTimer(schedule, epoch)
	if err != nil {
		t.Fatalf("NewTimer() error = %v", err)
	}
	m := NewModel(timer, blocks.Theme{}, time.Second)
	m.now = func() time.Time { return epoch }
	return m
}

func press(m Model, k string) (Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch k {
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func TestModel_StartAndPauseKeys(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(m, "s")
	if m.timer.State() != domain.TimerStarted {
		t.Fatalf("state after s = %v, want started", m.timer.State())
	}

	m, _ = press(m, "p")
	if m.timer.State() != domain.TimerPaused {
		t.Fatalf("state after p = %v, want paused", m.timer.State())
	}

	m, _ = press(m, " ")
	if m.timer.State() != domain.TimerStarted {
		t.Fatalf("state after space = %v, want started", m.timer.State())
	}
	if !strings.Contains(m.event, "Paused → Running") {
		t.Errorf("event = %q", m.event)
	}
}

func TestModel_EnterStarts(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, "enter")
	if m.timer.State() != domain.TimerStarted {
		t.Errorf("state after enter = %v, want started", m.timer.State())
	}
}

func TestModel_PauseWhileReady(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, "p")
	if m.timer.State() != domain.TimerReady {
		t.Errorf("state = %v, want ready", m.timer.State())
	}
	if !strings.Contains(m.event, "no effect") {
		t.Errorf("event = %q, want no effect message", m.event)
	}
}

func TestModel_TickCountsDownAndAdvances(t *testing.T) {
	m := newTestModel(t)
	notifier := &countingNotifier{}
	m.SetNotifier(notifier)
	m, _ = press(m, "s")

	updated, cmd := m.Update(tickMsg(epoch.Add(4 * time.Second)))
	m = updated.(Model)
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.timer.Remaining() != 6*time.Second {
		t.Errorf("Remaining() = %v, want 6s", m.timer.Remaining())
	}
	if !strings.Contains(m.View(), "0/2 00:06 F") {
		t.Errorf("View() missing status text:\n%s", m.View())
	}

	updated, _ = m.Update(tickMsg(epoch.Add(10 * time.Second)))
	m = updated.(Model)
	if m.timer.State() != domain.TimerReady || m.timer.Index() != 1 {
		t.Errorf("after expiry state = %v index = %d", m.timer.State(), m.timer.Index())
	}
	if notifier.calls != 1 {
		t.Errorf("notifier called %d times, want 1", notifier.calls)
	}
	if !strings.Contains(m.event, "Focus finished") {
		t.Errorf("event = %q", m.event)
	}
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := press(m, "q")
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
}

func TestModel_ViewShowsRecord(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	for _, want := range []string{"0/2 00:10 F", `{"full_text":"<span>0/2 00:10 F</span>"}`, "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestWithDefaults(t *testing.T) {
	theme := WithDefaults(blocks.Theme{Focus: "#FF0000"})
	if theme.Focus != "#FF0000" {
		t.Errorf("Focus = %q, want user color kept", theme.Focus)
	}
	if theme.Pause != DefaultTheme.Pause || theme.Paused != DefaultTheme.Paused || theme.Ready != DefaultTheme.Ready {
		t.Errorf("WithDefaults() = %+v", theme)
	}
}

func TestBigClock(t *testing.T) {
	style := lipgloss.NewStyle()

	if got := bigClock("25:00", style, 20); got != "25:00" {
		t.Errorf("bigClock() narrow = %q, want plain text", got)
	}

	got := bigClock("10:00", style, 80)
	rows := strings.Split(got, "\n")
	if len(rows) != glyphHeight {
		t.Fatalf("bigClock() rows = %d, want %d", len(rows), glyphHeight)
	}
	if !strings.Contains(rows[0], "██") {
		t.Errorf("bigClock() first row = %q", rows[0])
	}
}

func TestModel_WideViewShowsBigClock(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	view := m.View()
	if !strings.Contains(view, "████") {
		t.Errorf("View() lacks the large clock:\n%s", view)
	}
	if !strings.Contains(view, "0/2 00:10 F") {
		t.Errorf("View() lacks the status text:\n%s", view)
	}
}
