package trace

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/glbb/physics"
)

func TestRunDropSettles(t *testing.T) {
	opts := DefaultOptions()
	opts.Direction = physics.SignNone
	opts.StartY = 100

	res, err := Run(physics.DefaultConfig(), opts)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !res.Settled {
		t.Fatalf("Expected drop to settle within %d frames", opts.Frames)
	}
	if res.Bounces == 0 {
		t.Error("Expected at least one bounce")
	}
	if res.Reflections != 0 {
		t.Errorf("Expected no reflections without horizontal motion, got %d", res.Reflections)
	}

	last := res.Samples[len(res.Samples)-1]
	if last.Y > 0.5 || last.Moving {
		t.Errorf("Expected final sample at rest near the floor, got y=%v moving=%v", last.Y, last.Moving)
	}
	if res.SettledAt != time.Duration(len(res.Samples))*opts.DT {
		t.Errorf("Expected settle time %v, got %v", time.Duration(len(res.Samples))*opts.DT, res.SettledAt)
	}
}

func TestRunHeightsNeverNegative(t *testing.T) {
	res, err := Run(physics.DefaultConfig(), DefaultOptions())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for i, y := range res.Heights() {
		if y < 0 {
			t.Fatalf("Frame %d: expected non-negative height, got %v", i, y)
		}
	}
}

func TestRunHorizontalReflects(t *testing.T) {
	opts := DefaultOptions()
	opts.StartY = 0
	opts.Width = 200
	opts.Velocity = 400
	opts.Deceleration = 50

	res, err := Run(physics.DefaultConfig(), opts)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if res.Reflections == 0 {
		t.Error("Expected reflections in a narrow area")
	}
	if res.Bounces != 0 {
		t.Errorf("Expected no floor bounces without a drop, got %d", res.Bounces)
	}
	// 400/50 = 8s of travel
	if !res.Settled || res.SettledAt < 7*time.Second || res.SettledAt > 9*time.Second {
		t.Errorf("Expected to stop near 8s, got settled=%v at %v", res.Settled, res.SettledAt)
	}
	for i, x := range res.Positions() {
		if x < 0 || x > 200 {
			t.Fatalf("Frame %d: expected x inside the area, got %v", i, x)
		}
	}
}

func TestRunFrameLimit(t *testing.T) {
	opts := DefaultOptions()
	opts.Frames = 10

	res, err := Run(physics.DefaultConfig(), opts)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(res.Samples) != 10 {
		t.Errorf("Expected 10 samples, got %d", len(res.Samples))
	}
	if res.Settled {
		t.Error("Expected run to be cut short")
	}
}

func TestRunIdleBall(t *testing.T) {
	opts := DefaultOptions()
	opts.StartY = 0
	opts.Direction = physics.SignNone

	res, err := Run(physics.DefaultConfig(), opts)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(res.Samples) != 0 || !res.Settled {
		t.Errorf("Expected no frames for a resting ball, got %d settled=%v", len(res.Samples), res.Settled)
	}
}

func TestRunErrors(t *testing.T) {
	opts := DefaultOptions()
	opts.Frames = 0
	if _, err := Run(physics.DefaultConfig(), opts); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("Expected ErrInvalidOptions, got %v", err)
	}

	opts = DefaultOptions()
	opts.Deceleration = 0
	if _, err := Run(physics.DefaultConfig(), opts); !errors.Is(err, physics.ErrZeroDeceleration) {
		t.Errorf("Expected ErrZeroDeceleration, got %v", err)
	}

	cfg := physics.DefaultConfig()
	cfg.StepSize = 0
	if _, err := Run(cfg, DefaultOptions()); !errors.Is(err, physics.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestPlot(t *testing.T) {
	res, err := Run(physics.DefaultConfig(), DefaultOptions())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var buf bytes.Buffer
	if err := Plot(&buf, res, 60, 10); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	out := buf.String()
	for _, want := range []string{"GLBB trace", "height (y)", "position (x)", "Frames", "Settled", "Bounces"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected plot to contain %q", want)
		}
	}
}

func TestPlotEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Plot(&buf, &Result{Settled: true}, 60, 10); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(buf.String(), "no frames") {
		t.Errorf("Expected empty notice, got %q", buf.String())
	}
}

func TestPlotFlatSeries(t *testing.T) {
	opts := DefaultOptions()
	opts.Direction = physics.SignNone
	opts.StartX = 40

	res, err := Run(physics.DefaultConfig(), opts)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var buf bytes.Buffer
	if err := Plot(&buf, res, 60, 10); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(buf.String(), "position (x): constant at 40.0") {
		t.Errorf("Expected constant position note, got %q", buf.String())
	}
}
