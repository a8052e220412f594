package clock

import "time"

// Ticker delivers periodic ticks. It mirrors time.Ticker behind an
// interface so that cadence can be driven deterministically in tests.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type wallTicker struct {
	t *time.Ticker
}

// NewTicker returns a Ticker backed by the system time.Ticker.
func NewTicker(d time.Duration) Ticker {
	return wallTicker{t: time.NewTicker(d)}
}

func (t wallTicker) C() <-chan time.Time {
	return t.t.C
}

func (t wallTicker) Stop() {
	t.t.Stop()
}

// ManagedTicker is a Ticker that only ticks when told to.
// Intended for tests.
type ManagedTicker struct {
	ch chan time.Time
}

// NewManagedTicker returns a ManagedTicker with no pending ticks.
func NewManagedTicker() *ManagedTicker {
	return &ManagedTicker{ch: make(chan time.Time)}
}

// C returns the channel ticks are delivered on.
func (t *ManagedTicker) C() <-chan time.Time {
	return t.ch
}

// Stop is a no-op; a ManagedTicker only ticks when told to.
func (t *ManagedTicker) Stop() {}

// Tick delivers a single tick, blocking until the consumer receives it.
func (t *ManagedTicker) Tick(at time.Time) {
	t.ch <- at
}
