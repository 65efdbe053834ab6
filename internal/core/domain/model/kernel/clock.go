package kernel

import "time"

// Clock supplies the current instant to command handlers.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock and reports it in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always reports the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At.UTC()
}
