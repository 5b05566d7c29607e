package clock

import (
	"testing"
	"time"
)

func TestPausableClockFreezes(t *testing.T) {
	wall := NewMockTimeProvider(testEpoch)
	pc := NewPausableClock(wall)

	wall.Advance(time.Second)
	before := pc.Now()
	if !before.Equal(testEpoch.Add(time.Second)) {
		t.Fatalf("Expected %v before pause, got %v", testEpoch.Add(time.Second), before)
	}

	pc.Pause()
	wall.Advance(5 * time.Second)
	if got := pc.Now(); !got.Equal(before) {
		t.Errorf("Expected time frozen at %v while paused, got %v", before, got)
	}
	if got := pc.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("Expected 5s pause in progress, got %v", got)
	}

	pc.Resume()
	wall.Advance(time.Second)
	expected := before.Add(time.Second)
	if got := pc.Now(); !got.Equal(expected) {
		t.Errorf("Expected %v after resume, got %v", expected, got)
	}
}

func TestPausableClockToggle(t *testing.T) {
	pc := NewPausableClock(NewMockTimeProvider(testEpoch))

	if !pc.Toggle() {
		t.Error("Expected first Toggle to pause")
	}
	if !pc.IsPaused() {
		t.Error("Expected clock to report paused")
	}
	if pc.Toggle() {
		t.Error("Expected second Toggle to resume")
	}

	// Redundant calls are no-ops
	pc.Resume()
	pc.Pause()
	pc.Pause()
	if !pc.IsPaused() {
		t.Error("Expected clock paused after repeated Pause")
	}
}

func TestStopwatchOnPausableClock(t *testing.T) {
	wall := NewMockTimeProvider(testEpoch)
	pc := NewPausableClock(wall)
	sw := NewStopwatch(pc)

	wall.Advance(100 * time.Millisecond)
	pc.Pause()
	wall.Advance(time.Minute)
	pc.Resume()
	wall.Advance(100 * time.Millisecond)

	if got := sw.Elapsed(); got != 200*time.Millisecond {
		t.Errorf("Expected 200ms elapsed excluding pause, got %v", got)
	}
}
