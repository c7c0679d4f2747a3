package domain

import (
	"fmt"
	"time"
)

// IntervalKind labels a schedule entry as focus time or a pause.
type IntervalKind string

const (
	IntervalFocus IntervalKind = "focus"
	IntervalPause IntervalKind = "pause"
)

// Label returns a human-readable label for the interval kind.
func (k IntervalKind) Label() string {
	switch k {
	case IntervalFocus:
		return "Focus"
	case IntervalPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Abbrev returns the one-letter form shown in the status line.
func (k IntervalKind) Abbrev() string {
	switch k {
	case IntervalFocus:
		return "F"
	case IntervalPause:
		return "P"
	default:
		return "?"
	}
}

// Interval is one labeled span of time in the schedule.
type Interval struct {
	Kind     IntervalKind
	Duration time.Duration
}

// Schedule is the ordered cycle of intervals for one pomodoro session.
// It is immutable once built.
type Schedule struct {
	intervals []Interval
}

// BuildSchedule creates the focus/pause cycle. Each of the count rounds is a
// focus interval followed by a pause; the pause of the last round is the long
// pause.
func BuildSchedule(count int, focus, pause, longPause time.Duration) (Schedule, error) {
	if count < 1 {
		return Schedule{}, fmt.Errorf("%w: interval count must be at least 1, got %d", ErrInvalidConfiguration, count)
	}
	durations := []struct {
		name string
		d    time.Duration
	}{
		{"focus", focus},
		{"pause", pause},
		{"long pause", longPause},
	}
	for _, v := range durations {
		if v.d <= 0 {
			return Schedule{}, fmt.Errorf("%w: %s duration must be positive, got %s", ErrInvalidConfiguration, v.name, v.d)
		}
	}

	intervals := make([]Interval, 0, count*2)
	for i := 0; i < count; i++ {
		intervals = append(intervals, Interval{Kind: IntervalFocus, Duration: focus})
		if i == count-1 {
			intervals = append(intervals, Interval{Kind: IntervalPause, Duration: longPause})
		} else {
			intervals = append(intervals, Interval{Kind: IntervalPause, Duration: pause})
		}
	}

	return Schedule{intervals: intervals}, nil
}

// Len returns the number of intervals, always twice the round count.
func (s Schedule) Len() int {
	return len(s.intervals)
}

// Cycles returns the number of focus/pause rounds.
func (s Schedule) Cycles() int {
	return len(s.intervals) / 2
}

// At returns the interval at position i.
func (s Schedule) At(i int) Interval {
	return s.intervals[i]
}

// Intervals returns a copy of the schedule entries.
func (s Schedule) Intervals() []Interval {
	out := make([]Interval, len(s.intervals))
	copy(out, s.intervals)
	return out
}

// Total returns the length of one full cycle.
func (s Schedule) Total() time.Duration {
	var total time.Duration
	for _, iv := range s.intervals {
		total += iv.Duration
	}
	return total
}
