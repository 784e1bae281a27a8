package clock

import "time"

// Clock abstracts time so that chat timestamps are deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

// New creates a RealClock.
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time.
func (c *RealClock) Now() time.Time {
	return time.Now()
}
