package kernel

import "time"

// Clock supplies the current instant to lifecycle rules that compare against
// "now" (future pickup, cancellation cutoff, fee window).
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same instant. Used by tests and replays.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At.UTC()
}
