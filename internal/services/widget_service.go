package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/xvierd/pomobar/internal/domain"
	"github.com/xvierd/pomobar/internal/ports"
)

// DefaultTick is the refresh period of the status line.
const DefaultTick = time.Second

// WidgetService drives the timer: it applies clicks, emits the status line
// and advances the countdown once per tick. It is the only owner of the
// timer.
type WidgetService struct {
	timer    *domain.Timer
	source   ports.CommandSource
	sink     ports.StatusSink
	notifier ports.Notifier
	logger   *slog.Logger
	tick     time.Duration
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewWidgetService creates a widget loop for the given timer.
func NewWidgetService(timer *domain.Timer, source ports.CommandSource, sink ports.StatusSink) *WidgetService {
	return &WidgetService{
		timer:  timer,
		source: source,
		sink:   sink,
		logger: slog.New(slog.DiscardHandler),
		tick:   DefaultTick,
		now:    time.Now,
		sleep:  sleepContext,
	}
}

// SetTick changes the refresh period. Non-positive values are ignored.
func (s *WidgetService) SetTick(d time.Duration) {
	if d > 0 {
		s.tick = d
	}
}

// SetNotifier sets the notifier told about finished intervals.
func (s *WidgetService) SetNotifier(n ports.Notifier) {
	s.notifier = n
}

// SetLogger sets the logger for loop diagnostics.
func (s *WidgetService) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// SetClock replaces the wall clock and the sleep between ticks.
func (s *WidgetService) SetClock(now func() time.Time, sleep func(ctx context.Context, d time.Duration) error) {
	s.now = now
	s.sleep = sleep
}

// Timer returns the timer driven by the service.
func (s *WidgetService) Timer() *domain.Timer {
	return s.timer
}

// Run loops until ctx is cancelled or a fatal error occurs. Cancellation is
// a clean stop and returns nil.
func (s *WidgetService) Run(ctx context.Context) error {
	s.logger.Info("widget started",
		"intervals", s.timer.Schedule().Len(),
		"tick", s.tick,
	)
	for {
		if err := s.Step(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				s.logger.Info("widget stopped")
				return nil
			}
			return err
		}
	}
}

// Step runs one iteration: apply at most one pending click, emit the status
// line, sleep for a tick, then advance the timer. The status line therefore
// shows the timer before the tick's countdown is applied.
func (s *WidgetService) Step(ctx context.Context) error {
	select {
	case cmd, ok := <-s.source.Commands():
		if !ok {
			if err := s.source.Err(); err != nil {
				return err
			}
			return domain.ErrListenerTerminated
		}
		s.applyCommand(cmd)
	default:
	}

	if err := s.sink.Emit(s.timer); err != nil {
		return fmt.Errorf("failed to emit status: %w", err)
	}

	if err := s.sleep(ctx, s.tick); err != nil {
		return err
	}

	tr := s.timer.Tick(s.now())
	if tr.Advanced {
		next := s.timer.Current()
		s.logger.Info("interval complete",
			"completed", tr.Completed.Kind,
			"next", next.Kind,
			"index", s.timer.Index(),
		)
		if s.notifier != nil {
			if err := s.notifier.NotifyIntervalComplete(tr.Completed, next); err != nil {
				s.logger.Warn("notification failed", "error", err)
			}
		}
	}
	return nil
}

func (s *WidgetService) applyCommand(cmd domain.ClickCommand) {
	tr, ok := cmd.Apply(s.timer, s.now())
	if !ok {
		s.logger.Debug("ignoring click", "button", cmd.Button)
		return
	}
	s.logger.Debug("click applied",
		"button", cmd.Button,
		"event", tr.Event,
		"from", tr.From,
		"to", tr.To,
	)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
