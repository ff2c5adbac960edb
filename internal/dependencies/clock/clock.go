package clock

import "time"

// Clock provides the current time and can be replaced in tests
type Clock interface {
	Now() time.Time
}

// System reads the wall clock
type System struct{}

// New creates a wall clock
func New() *System {
	return &System{}
}

// Now returns the current wall clock time
func (System) Now() time.Time {
	return time.Now()
}
