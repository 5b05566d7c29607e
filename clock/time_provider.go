// Package clock provides the time sources motion state measures elapsed time against.
// Production code reads the monotonic wall clock; tests inject MockTimeProvider.
package clock

import "time"

// TimeProvider is the source of "now" for a Stopwatch
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// Default is shared by zero-value stopwatches
var Default TimeProvider = NewMonotonicTimeProvider()
