package motion

import "time"

// Clock supplies the current time to the frame pump. Transitions
// timestamp their start through it and measure progress against it on
// every Step.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

var clock Clock = systemClock{}

// SetClock installs a replacement time source and returns the one it
// displaced. Tests install a fixed clock to advance transitions by hand
// and restore the previous clock in cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now reads the current time from the installed clock.
func Now() time.Time { return clock.Now() }
