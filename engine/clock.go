package engine

import "time"

// Timer is a pending callback that can be cancelled
type Timer interface {
	// Stop prevents the callback from firing, returns false if it already fired or was stopped
	Stop() bool
}

// Clock provides time and delayed callbacks to the sequencer
// Production code uses RealClock, tests drive MockClock by hand
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// RealClock provides the real system time with monotonic clock readings
// Callbacks run on runtime timer goroutines
type RealClock struct{}

// NewRealClock creates a new monotonic clock
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current time with monotonic clock reading
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules f on its own goroutine after d
func (c *RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
