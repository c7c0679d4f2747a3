package domain

import "time"

// Mouse buttons reported by the host status bar.
const (
	ButtonLeft  = 1
	ButtonRight = 3
)

// ClickCommand is a single click on the widget as reported by the status bar.
type ClickCommand struct {
	Button int
}

// Apply performs the action bound to the clicked button. Buttons without a
// binding leave the timer alone; ok is false in that case.
func (c ClickCommand) Apply(t *Timer, now time.Time) (tr Transition, ok bool) {
	switch c.Button {
	case ButtonLeft:
		return t.Start(now), true
	case ButtonRight:
		return t.TogglePause(now), true
	default:
		return Transition{}, false
	}
}
