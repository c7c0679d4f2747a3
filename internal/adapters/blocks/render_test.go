package blocks

import (
	"testing"
	"time"

	"github.com/xvierd/pomobar/internal/domain"
)

var epoch = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newTimer(t *testing.T, count int, focus, pause, longPause time.Duration) *domain.Timer {
	t.Helper()
	s, err := domain.BuildSchedule(count, focus, pause, longPause)
	if err != nil {
		t.Fatalf("BuildSchedule() error = %v", err)
	}
	timer, err := domain.NewTimer(s, epoch)
	if err != nil {
		t.Fatalf("NewTimer() error = %v", err)
	}
	return timer
}

func TestRenderer_Text(t *testing.T) {
	r := NewRenderer(Theme{})

	t.Run("fresh timer", func(t *testing.T) {
		timer := newTimer(t, 4, 25*time.Minute, 5*time.Minute, 15*time.Minute)
		if got, want := r.Text(timer), "0/4 25:00 F"; got != want {
			t.Errorf("Text() = %q, want %q", got, want)
		}
	})

	t.Run("counting down", func(t *testing.T) {
		timer := newTimer(t, 4, 25*time.Minute, 5*time.Minute, 15*time.Minute)
		timer.Start(epoch)
		timer.Tick(epoch.Add(13 * time.Second))
		if got, want := r.Text(timer), "0/4 24:47 F"; got != want {
			t.Errorf("Text() = %q, want %q", got, want)
		}
	})

	t.Run("pause interval", func(t *testing.T) {
		timer := newTimer(t, 4, 25*time.Minute, 5*time.Minute, 15*time.Minute)
		timer.Start(epoch)
		timer.Tick(epoch.Add(25 * time.Minute))
		if got, want := r.Text(timer), "0/4 05:00 P"; got != want {
			t.Errorf("Text() = %q, want %q", got, want)
		}
	})

	t.Run("second round", func(t *testing.T) {
		timer := newTimer(t, 2, 2*time.Second, time.Second, 3*time.Second)
		now := epoch
		for i := 0; i < 2; i++ {
			timer.Start(now)
			now = now.Add(time.Minute)
			timer.Tick(now)
		}
		if got, want := r.Text(timer), "1/2 00:02 F"; got != want {
			t.Errorf("Text() = %q, want %q", got, want)
		}
	})

	t.Run("sub-second remainder is truncated", func(t *testing.T) {
		timer := newTimer(t, 1, time.Minute, time.Second, time.Second)
		timer.Start(epoch)
		timer.Tick(epoch.Add(1500 * time.Millisecond))
		if got, want := r.Text(timer), "0/1 00:58 F"; got != want {
			t.Errorf("Text() = %q, want %q", got, want)
		}
	})
}

func TestRenderer_Idempotent(t *testing.T) {
	r := NewRenderer(Theme{Focus: "#7C6FE0"})
	timer := newTimer(t, 3, 25*time.Minute, 5*time.Minute, 15*time.Minute)
	timer.Start(epoch)

	if first, second := r.Markup(timer), r.Markup(timer); first != second {
		t.Errorf("Markup() not stable: %q then %q", first, second)
	}
}

func TestRenderer_Markup(t *testing.T) {
	theme := Theme{Focus: "#7C6FE0", Pause: "#4ECDC4", Paused: "#6B7280"}
	r := NewRenderer(theme)

	timer := newTimer(t, 1, time.Minute, time.Second, 30*time.Second)
	if got, want := r.Markup(timer), "<span>0/1 01:00 F</span>"; got != want {
		t.Errorf("ready Markup() = %q, want %q", got, want)
	}

	timer.Start(epoch)
	if got, want := r.Markup(timer), `<span foreground="#7C6FE0">0/1 01:00 F</span>`; got != want {
		t.Errorf("focus Markup() = %q, want %q", got, want)
	}

	timer.TogglePause(epoch)
	if got, want := r.Markup(timer), `<span foreground="#6B7280">0/1 01:00 F</span>`; got != want {
		t.Errorf("paused Markup() = %q, want %q", got, want)
	}

	timer.TogglePause(epoch)
	timer.Tick(epoch.Add(time.Minute))
	timer.Start(epoch.Add(time.Minute))
	if got, want := r.Markup(timer), `<span foreground="#4ECDC4">0/1 00:30 P</span>`; got != want {
		t.Errorf("pause Markup() = %q, want %q", got, want)
	}
}

func TestRenderer_MarkupEscapesColor(t *testing.T) {
	r := NewRenderer(Theme{Ready: `red"><b>`})
	timer := newTimer(t, 1, time.Minute, time.Second, time.Second)

	want := `<span foreground="red&#34;&gt;&lt;b&gt;">0/1 01:00 F</span>`
	if got := r.Markup(timer); got != want {
		t.Errorf("Markup() = %q, want %q", got, want)
	}
}

func TestEncode(t *testing.T) {
	r := NewRenderer(Theme{})
	timer := newTimer(t, 5, 25*time.Minute, 5*time.Minute, 15*time.Minute)

	line, err := Encode(r.Record(timer))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if got, want := string(line), `{"full_text":"<span>0/5 25:00 F</span>"}`+"\n"; got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "00:00"},
		{"seconds", 59 * time.Second, "00:59"},
		{"minutes and seconds", 5*time.Minute + 30*time.Second, "05:30"},
		{"pomodoro", 25 * time.Minute, "25:00"},
		{"over an hour", 90 * time.Minute, "90:00"},
		{"negative", -time.Second, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatClock(tt.d); got != tt.want {
				t.Errorf("FormatClock(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
