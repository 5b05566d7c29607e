package clock

import (
	"sync"
	"time"
)

// MockTimeProvider is a manually driven clock
// Tests move it with SetTime or Advance; headless runs step it by a fixed frame with Tick
type MockTimeProvider struct {
	mu    sync.RWMutex
	start time.Time
	now   time.Time
	frame time.Duration // Tick step, zero until NewSteppedClock sets it
}

// NewMockTimeProvider starts a clock frozen at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start, now: start}
}

// NewSteppedClock starts a clock at start that Tick moves by frame
func NewSteppedClock(start time.Time, frame time.Duration) *MockTimeProvider {
	return &MockTimeProvider{start: start, now: start, frame: frame}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// SetTime jumps to t, which may be earlier than the current time
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// Tick advances one frame and returns the time since the clock was created
func (m *MockTimeProvider) Tick() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(m.frame)
	return m.now.Sub(m.start)
}

// Since returns the time since the clock was created
func (m *MockTimeProvider) Since() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now.Sub(m.start)
}
