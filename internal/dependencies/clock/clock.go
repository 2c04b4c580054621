package clock

import "time"

// Clock is the time source for step timings; tests substitute a mock
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// RealClock reads the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t
func (c *RealClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// Measure runs fn and reports how long it took on c
func Measure(c Clock, fn func() error) (time.Duration, error) {
	start := c.Now()
	err := fn()
	return c.Since(start), err
}
