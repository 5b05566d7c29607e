package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/glbb/clock"
)

func TestPlayerRateLimit(t *testing.T) {
	mc := clock.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	played := 0
	p := newSinkPlayer(DefaultConfig(), mc, func(beep.Streamer) { played++ })

	p.Bounce(400)
	p.Bounce(400)
	if played != 1 {
		t.Errorf("Expected second click dropped inside the gap, played %d", played)
	}

	mc.Advance(100 * time.Millisecond)
	p.Bounce(200)
	if played != 2 {
		t.Errorf("Expected click after the gap, played %d", played)
	}
}

func TestPlayerDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false

	p, err := NewPlayer(cfg)
	if err != nil {
		t.Fatalf("Expected no error for disabled audio, got %v", err)
	}
	if p.Ready() {
		t.Error("Expected disabled player not ready")
	}

	// Silent player accepts calls
	p.Bounce(400)
	p.Close()
	p.Close()
}

func TestPlayerClose(t *testing.T) {
	closed := 0
	p := newSinkPlayer(DefaultConfig(), clock.NewMonotonicTimeProvider(), func(beep.Streamer) {})
	p.close = func() { closed++ }

	p.Close()
	p.Close()
	if closed != 1 {
		t.Errorf("Expected speaker closed once, got %d", closed)
	}
	if p.Ready() {
		t.Error("Expected player not ready after Close")
	}
}
