package service

import "time"

// Clock supplies the current instant. It is injected so tests control
// "today" for the daily quota and record timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current wall clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Ensure concrete types implement interfaces
var _ Clock = SystemClock{}
