// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"
	"strings"

	"github.com/gen2brain/beeep"
	"github.com/xvierd/pomobar/internal/config"
	"github.com/xvierd/pomobar/internal/domain"
)

// Overridden in tests.
var (
	notifyFunc = func(title, message string) error { return beeep.Notify(title, message, "") }
	alertFunc  = func(title, message string) error { return beeep.Alert(title, message, "") }
)

// Notifier handles desktop notifications.
type Notifier struct {
	cfg *config.NotificationConfig
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// Notify displays a desktop notification if enabled. With sound turned on
// the notification is sent as an alert.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}

	if n.cfg.Sound {
		return alertFunc(title, message)
	}
	return notifyFunc(title, message)
}

// NotifyIntervalComplete displays a notification when an interval runs out.
func (n *Notifier) NotifyIntervalComplete(completed, next domain.Interval) error {
	var title string
	switch completed.Kind {
	case domain.IntervalFocus:
		title = "🍅 Focus complete!"
	default:
		title = "☕ Pause over!"
	}
	message := fmt.Sprintf("%s of %s done. Click to start the %s (%s).",
		completed.Kind.Label(),
		completed.Duration,
		strings.ToLower(next.Kind.Label()),
		next.Duration,
	)
	return n.Notify(title, message)
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
