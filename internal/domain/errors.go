// Package domain contains the pomodoro widget's core entities: the interval
// schedule, the timer state machine and the click commands that drive it.
// Nothing in here knows about stdin, stdout or the host status bar.
package domain

import "errors"

// Common domain errors.
var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrMalformedCommand     = errors.New("malformed command")
	ErrListenerTerminated   = errors.New("input listener terminated")
	ErrRenderEncoding       = errors.New("failed to encode status record")
	ErrIllegalTransition    = errors.New("illegal timer transition")
)
