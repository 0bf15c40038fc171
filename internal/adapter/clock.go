package adapter

import "time"

// Clock is the time source of the executors, limiter and sweeper
//
//go:generate mockgen -source=clock.go -destination=../mocks/clock.go -package=mocks -mock_names=Clock=MockClock
type Clock interface {
	// Now returns the current UTC time at PostgreSQL timestamp precision
	Now() time.Time
	After(d time.Duration) <-chan time.Time
	NewTicker(d time.Duration) *time.Ticker
}

type systemClock struct{}

// NewClock creates a clock backed by the system time
func NewClock() Clock {
	return systemClock{}
}

// Now truncates to microseconds so values read back from the database compare equal
func (systemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (systemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

func (systemClock) NewTicker(d time.Duration) *time.Ticker {
	return time.NewTicker(d)
}
