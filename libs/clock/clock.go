// Package clock abstracts the reading of wall time so that components
// depending on it can be driven deterministically in tests.
package clock

import "time"

// Clock reads the current time.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

// New returns a Clock backed by the system wall clock.
func New() Clock {
	return wallClock{}
}

func (wallClock) Now() time.Time {
	return time.Now()
}

// ManagedClock is a Clock whose time only moves when told to.
// Intended for tests.
type ManagedClock struct {
	startTime time.Time
	offset    time.Duration
}

// NewManaged returns a ManagedClock frozen at startTime.
func NewManaged(startTime time.Time) *ManagedClock {
	return &ManagedClock{startTime: startTime}
}

// Now returns the current managed time.
func (c *ManagedClock) Now() time.Time {
	return c.startTime.Add(c.offset)
}

// WarpForward moves the managed time forward by offset and returns the new time.
// There is deliberately no WarpBackward; time never goes backwards, especially in tests.
func (c *ManagedClock) WarpForward(offset time.Duration) time.Time {
	c.offset += offset
	return c.startTime.Add(c.offset)
}
