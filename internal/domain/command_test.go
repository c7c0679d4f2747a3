package domain

import (
	"testing"
	"time"
)

func TestClickCommand_Apply(t *testing.T) {
	tests := []struct {
		name      string
		button    int
		wantOK    bool
		wantState TimerState
	}{
		{"left click starts", ButtonLeft, true, TimerStarted},
		{"right click on ready is ignored", ButtonRight, true, TimerReady},
		{"middle click is unbound", 2, false, TimerReady},
		{"scroll is unbound", 4, false, TimerReady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := newTestTimer(t, 1, time.Minute, time.Second, time.Second)

			_, ok := ClickCommand{Button: tt.button}.Apply(timer, epoch)
			if ok != tt.wantOK {
				t.Errorf("Apply() ok = %v, want %v", ok, tt.wantOK)
			}
			if timer.State() != tt.wantState {
				t.Errorf("State() = %v, want %v", timer.State(), tt.wantState)
			}
		})
	}
}

func TestClickCommand_RightClickTogglesRunningTimer(t *testing.T) {
	timer := newTestTimer(t, 1, time.Minute, time.Second, time.Second)
	ClickCommand{Button: ButtonLeft}.Apply(timer, epoch)

	tr, _ := ClickCommand{Button: ButtonRight}.Apply(timer, epoch)
	if tr.To != TimerPaused {
		t.Errorf("first right click = %+v, want paused", tr)
	}
	tr, _ = ClickCommand{Button: ButtonRight}.Apply(timer, epoch)
	if tr.To != TimerStarted {
		t.Errorf("second right click = %+v, want started", tr)
	}
}
