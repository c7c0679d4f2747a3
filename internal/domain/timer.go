package domain

import (
	"fmt"
	"time"
)

// TimerState is the position of the timer in its start/pause lifecycle.
type TimerState string

const (
	TimerReady   TimerState = "ready"
	TimerStarted TimerState = "started"
	TimerPaused  TimerState = "paused"
)

// Label returns a human-readable label for the timer state.
func (s TimerState) Label() string {
	switch s {
	case TimerReady:
		return "Ready"
	case TimerStarted:
		return "Running"
	case TimerPaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// TimerEvent is something that can happen to a timer.
type TimerEvent string

const (
	EventStart       TimerEvent = "start"
	EventTogglePause TimerEvent = "toggle_pause"
	EventTick        TimerEvent = "tick"
	// EventExpire is raised by a tick that used up the current interval.
	EventExpire TimerEvent = "expire"
)

// transition is the timer's complete transition table. Events that are
// accepted but change nothing map back to the current state.
func transition(from TimerState, event TimerEvent) (TimerState, error) {
	switch event {
	case EventStart:
		switch from {
		case TimerReady:
			return TimerStarted, nil
		case TimerStarted, TimerPaused:
			return from, nil
		}
	case EventTogglePause:
		switch from {
		case TimerStarted:
			return TimerPaused, nil
		case TimerPaused:
			return TimerStarted, nil
		case TimerReady:
			return TimerReady, nil
		}
	case EventTick:
		switch from {
		case TimerReady, TimerStarted, TimerPaused:
			return from, nil
		}
	case EventExpire:
		if from == TimerStarted {
			return TimerReady, nil
		}
	}
	return from, fmt.Errorf("%w: %s while %s", ErrIllegalTransition, event, from)
}

// Transition describes the effect of one event on the timer.
type Transition struct {
	Event TimerEvent
	From  TimerState
	To    TimerState
	// Advanced is set when the current interval ran out and the timer moved
	// on to the next one. Completed then holds the finished interval.
	Advanced  bool
	Completed Interval
}

// Changed reports whether the timer state differs after the event.
func (t Transition) Changed() bool {
	return t.From != t.To
}

// Timer counts down the intervals of a schedule. It is not safe for
// concurrent use; a single owner drives it.
type Timer struct {
	state     TimerState
	lastTick  time.Time
	remaining time.Duration
	index     int
	schedule  Schedule
}

// NewTimer creates a timer in the Ready state at the first interval.
func NewTimer(schedule Schedule, now time.Time) (*Timer, error) {
	if schedule.Len() == 0 {
		return nil, fmt.Errorf("%w: empty schedule", ErrInvalidConfiguration)
	}
	return &Timer{
		state:     TimerReady,
		lastTick:  now,
		remaining: schedule.At(0).Duration,
		schedule:  schedule,
	}, nil
}

// State returns the current timer state.
func (t *Timer) State() TimerState {
	return t.state
}

// Remaining returns the time left in the current interval.
func (t *Timer) Remaining() time.Duration {
	return t.remaining
}

// Index returns the zero-based position in the schedule.
func (t *Timer) Index() int {
	return t.index
}

// Current returns the interval the timer is in.
func (t *Timer) Current() Interval {
	return t.schedule.At(t.index)
}

// Schedule returns the schedule the timer walks through.
func (t *Timer) Schedule() Schedule {
	return t.schedule
}

// LastTick returns when the timer was last updated.
func (t *Timer) LastTick() time.Time {
	return t.lastTick
}

// Start begins counting down the current interval. It only has an effect
// when the timer is Ready.
func (t *Timer) Start(now time.Time) Transition {
	tr := Transition{Event: EventStart, From: t.state}
	if t.state == TimerReady {
		t.remaining = t.schedule.At(t.index).Duration
		t.lastTick = now
	}
	t.state = t.apply(EventStart)
	tr.To = t.state
	return tr
}

// TogglePause pauses a running timer or resumes a paused one. The remaining
// time is left untouched so no time is lost while paused.
func (t *Timer) TogglePause(now time.Time) Transition {
	tr := Transition{Event: EventTogglePause, From: t.state}
	t.state = t.apply(EventTogglePause)
	if tr.From != TimerReady {
		t.lastTick = now
	}
	tr.To = t.state
	return tr
}

// Tick advances the countdown by the time elapsed since the last tick. If
// the elapsed time covers the rest of the interval the timer moves to the
// next interval and waits in Ready. At most one interval is completed per
// call; any surplus elapsed time is dropped.
func (t *Timer) Tick(now time.Time) Transition {
	elapsed := now.Sub(t.lastTick)
	if elapsed < 0 {
		elapsed = 0
	}
	t.lastTick = now

	tr := Transition{Event: EventTick, From: t.state}
	if t.state != TimerStarted {
		tr.To = t.apply(EventTick)
		return tr
	}

	if elapsed >= t.remaining {
		tr.Event = EventExpire
		tr.Advanced = true
		tr.Completed = t.Current()
		t.advance()
	} else {
		t.remaining -= elapsed
	}
	tr.To = t.state
	return tr
}

// advance moves to the next interval, wrapping around at the end of the
// schedule.
func (t *Timer) advance() {
	t.state = t.apply(EventExpire)
	t.index = (t.index + 1) % t.schedule.Len()
	t.remaining = t.schedule.At(t.index).Duration
}

func (t *Timer) apply(event TimerEvent) TimerState {
	next, err := transition(t.state, event)
	if err != nil {
		// Only reachable through a bug in Timer itself.
		panic(err)
	}
	return next
}
