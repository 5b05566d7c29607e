package clock

import (
	"testing"
	"time"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)

	if now := mock.Now(); !now.Equal(testEpoch) {
		t.Errorf("Expected initial time to be %v, got %v", testEpoch, now)
	}

	newTime := testEpoch.Add(24 * time.Hour)
	mock.SetTime(newTime)
	if now := mock.Now(); !now.Equal(newTime) {
		t.Errorf("Expected time to be %v after SetTime, got %v", newTime, now)
	}

	mock.Advance(30 * time.Minute)
	mock.Advance(15 * time.Minute)
	expected := newTime.Add(45 * time.Minute)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after advances, got %v", expected, now)
	}
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	done := make(chan bool)

	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
			done <- true
		}()
	}

	for i := 0; i < 5; i++ {
		go func() {
			for j := 0; j < 50; j++ {
				mock.Advance(time.Millisecond)
			}
			done <- true
		}()
	}

	for i := 0; i < 15; i++ {
		<-done
	}

	expected := testEpoch.Add(250 * time.Millisecond)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after concurrent operations, got %v", expected, now)
	}
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
	var _ TimeProvider = &PausableClock{}
}

func TestSteppedClockTick(t *testing.T) {
	sc := NewSteppedClock(testEpoch, 16*time.Millisecond)

	var since time.Duration
	for i := 0; i < 3; i++ {
		since = sc.Tick()
	}
	if since != 48*time.Millisecond {
		t.Errorf("Expected 48ms after three ticks, got %v", since)
	}
	if now := sc.Now(); !now.Equal(testEpoch.Add(48 * time.Millisecond)) {
		t.Errorf("Expected now at epoch+48ms, got %v", now)
	}

	sc.Advance(2 * time.Millisecond)
	if got := sc.Since(); got != 50*time.Millisecond {
		t.Errorf("Expected Since 50ms after a manual advance, got %v", got)
	}
}

func TestMockTimeProviderTickWithoutFrame(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	if got := mock.Tick(); got != 0 {
		t.Errorf("Expected Tick to stand still without a frame, got %v", got)
	}
}
