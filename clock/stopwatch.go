package clock

import (
	"fmt"
	"time"
)

// Stopwatch measures time since a reference instant taken from its TimeProvider
// The zero value reads the monotonic clock and starts at the first Reset
type Stopwatch struct {
	provider TimeProvider
	start    time.Time
}

// NewStopwatch creates a stopwatch on the given provider, referenced at its current time
func NewStopwatch(provider TimeProvider) Stopwatch {
	if provider == nil {
		provider = Default
	}
	return Stopwatch{provider: provider, start: provider.Now()}
}

func (s *Stopwatch) source() TimeProvider {
	if s.provider == nil {
		return Default
	}
	return s.provider
}

// Reset moves the reference instant to now
func (s *Stopwatch) Reset() {
	s.start = s.source().Now()
}

// Elapsed returns time since the last Reset, never negative
func (s *Stopwatch) Elapsed() time.Duration {
	if s.start.IsZero() {
		return 0
	}
	d := s.source().Now().Sub(s.start)
	if d < 0 {
		return 0
	}
	return d
}

// SetProvider swaps the time source and re-references to its current time
func (s *Stopwatch) SetProvider(provider TimeProvider) {
	s.provider = provider
	s.Reset()
}

func (s Stopwatch) String() string {
	return fmt.Sprintf("Stopwatch(%v)", s.Elapsed())
}
