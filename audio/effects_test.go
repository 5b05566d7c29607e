package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestEnvelopeEdges(t *testing.T) {
	rate := beep.SampleRate(1000)
	ones := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})

	env := NewEnvelope(beep.Take(100, ones), 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)
	samples := drain(env)

	if len(samples) != 100 {
		t.Fatalf("Expected 100 samples, got %d", len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected attack to start silent, got %v", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Expected full level mid-sustain, got %v", samples[50][0])
	}
	if samples[99][0] >= samples[90][0] {
		t.Errorf("Expected release to fade, got %v then %v", samples[90][0], samples[99][0])
	}
}
