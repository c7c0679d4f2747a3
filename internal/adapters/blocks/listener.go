// Package blocks speaks the status bar side of the widget: it decodes click
// events read from the host bar and encodes the status records it displays.
// The wire format is the JSON-per-line protocol used by i3blocks and
// compatible bars.
package blocks

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/xvierd/pomobar/internal/domain"
)

// clickEvent is the subset of a click record the widget cares about. Other
// fields (name, instance, x, y, modifiers...) are ignored.
type clickEvent struct {
	Button *int `json:"button"`
}

// ParseClick decodes one line of click input.
func ParseClick(line string) (domain.ClickCommand, error) {
	var ev clickEvent
	if err := json.Unmarshal([]byte(line), &ev); err != nil {
		return domain.ClickCommand{}, fmt.Errorf("%w: %v", domain.ErrMalformedCommand, err)
	}
	if ev.Button == nil {
		return domain.ClickCommand{}, fmt.Errorf("%w: missing button field", domain.ErrMalformedCommand)
	}
	return domain.ClickCommand{Button: *ev.Button}, nil
}

// Listener reads click events from the status bar on its own goroutine and
// queues them for the widget loop.
type Listener struct {
	r      io.Reader
	logger *slog.Logger
	queue  *commandQueue

	once sync.Once
	mu   sync.Mutex
	err  error
}

// NewListener creates a listener reading from r. Call Start to begin
// reading.
func NewListener(r io.Reader, logger *slog.Logger) *Listener {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Listener{
		r:      r,
		logger: logger,
		queue:  newCommandQueue(),
	}
}

// Start launches the read loop. Calling it more than once has no effect.
func (l *Listener) Start() {
	l.once.Do(func() {
		go l.run()
	})
}

// Commands returns the queue of decoded clicks. It is closed after the input
// ends or fails.
func (l *Listener) Commands() <-chan domain.ClickCommand {
	return l.queue.out
}

// Err returns why the listener stopped, wrapping
// domain.ErrListenerTerminated. It is nil while the listener is running.
func (l *Listener) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

func (l *Listener) run() {
	reader := bufio.NewReader(l.r)
	for {
		line, readErr := reader.ReadString('\n')
		if line != "" {
			l.handleLine(line)
		}
		if readErr != nil {
			l.stop(readErr)
			return
		}
	}
}

func (l *Listener) handleLine(line string) {
	line = strings.TrimSpace(line)
	// i3bar wraps click events in an endless JSON array.
	line = strings.TrimPrefix(line, ",")
	if line == "" || line == "[" {
		return
	}

	cmd, err := ParseClick(line)
	if err != nil {
		l.logger.Warn("discarding click event", "line", line, "error", err)
		return
	}
	l.logger.Debug("click received", "button", cmd.Button)
	l.queue.in <- cmd
}

func (l *Listener) stop(readErr error) {
	err := fmt.Errorf("%w: %v", domain.ErrListenerTerminated, readErr)
	if errors.Is(readErr, io.EOF) {
		err = fmt.Errorf("%w: end of input", domain.ErrListenerTerminated)
	}

	l.mu.Lock()
	l.err = err
	l.mu.Unlock()

	l.logger.Debug("listener stopped", "error", err)
	close(l.queue.in)
}
