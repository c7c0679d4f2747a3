// Package ports defines the interfaces (driven and driving ports) between the
// widget loop and the outside world: the status bar that clicks on the
// widget, the status bar that displays it, and the desktop notifier.
package ports

import (
	"github.com/xvierd/pomobar/internal/domain"
)

// CommandSource delivers click commands from the host status bar.
// This is a driving port (implemented by adapters).
type CommandSource interface {
	// Commands returns the queue of decoded clicks. The channel is closed
	// once no further clicks can arrive.
	Commands() <-chan domain.ClickCommand

	// Err returns the error that ended the source, if any. It is only
	// meaningful after the Commands channel has been closed.
	Err() error
}

// StatusSink displays the timer on the host status bar.
// This is a driven port (implemented by adapters).
type StatusSink interface {
	// Emit renders the timer and writes one status record.
	Emit(timer *domain.Timer) error
}

// Notifier tells the user an interval is over.
// This is a driven port (implemented by adapters).
type Notifier interface {
	// NotifyIntervalComplete is called after completed ran out and the
	// timer moved on to next.
	NotifyIntervalComplete(completed, next domain.Interval) error
}
