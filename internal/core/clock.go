package core

import "time"

// Clock supplies timestamps to the session state machine. Reaction times
// are computed by subtracting two Clock readings; time.Time values from
// the real clock carry a monotonic reading, so the difference is immune
// to wall-clock adjustments.
type Clock interface {
	Now() time.Time
}

// SystemClock is the real clock backed by time.Now.
type SystemClock struct{}

// Now returns the current time with a monotonic reading.
func (SystemClock) Now() time.Time {
	return time.Now()
}
