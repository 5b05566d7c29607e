package physics

import (
	"math"

	"github.com/lixenwraith/glbb/clock"
)

// VerticalMotion drops from rest, bounces off the floor at position 0 and settles there
// It integrates frame by frame: every Advance re-bases elapsed time to zero.
// Accel stays constant during motion; a floor contact only scales Velocity by Restitution
type VerticalMotion struct {
	Accel    float64 // Acceleration magnitude
	Velocity float64

	cfg       Config
	playing   bool
	direction float64 // Acceleration sign: -1 towards the floor, +1 away from it
	heading   float32 // Sign of the last nonzero per-frame displacement
	watch     clock.Stopwatch
}

// NewVerticalMotion creates a resting motion timed by provider
func NewVerticalMotion(cfg Config, provider clock.TimeProvider) *VerticalMotion {
	return &VerticalMotion{
		cfg:   cfg,
		watch: clock.NewStopwatch(provider),
	}
}

// IsMoving reports whether the motion is playing
func (v *VerticalMotion) IsMoving() bool {
	return v.playing
}

// IsDropping reports whether the acceleration currently points at the floor
// After a bounce it stays false through the descent; use IsRising for the travel heading
func (v *VerticalMotion) IsDropping() bool {
	return math.Signbit(v.direction)
}

// IsRising reports whether the last frame moved the ball up
func (v *VerticalMotion) IsRising() bool {
	return v.heading > 0
}

// Fall starts a drop from rest
func (v *VerticalMotion) Fall() {
	cfg := v.cfg.orDefault()
	v.Accel = cfg.Gravity
	v.Velocity = 0
	v.direction = -1
	v.heading = -1
	v.playing = true
	v.watch.Reset()
}

// Stop halts motion; safe to call repeatedly
func (v *VerticalMotion) Stop() {
	v.playing = false
}

// Advance moves pos by the displacement since the previous call
// A floor contact (pos <= 0) flips direction, scales Velocity by Restitution and discards the
// rest of this frame's displacement. The ceiling argument is accepted for symmetry with the
// horizontal axis and not used. Returns whether a floor contact happened
func (v *VerticalMotion) Advance(pos *float32, ceiling float32) bool {
	if !v.playing {
		return false
	}
	cfg := v.cfg.orDefault()

	t := v.watch.Elapsed().Seconds()
	accel := v.Accel * v.direction

	v.Velocity = Velocity(v.Velocity, accel, t)
	distance := Distance(v.Velocity, accel, t)

	remaining := distance
	if !finite(remaining) {
		remaining = 0
	}

	start := *pos
	bounced := false
	for remaining != 0 {
		moveBy := remaining
		if math.Abs(moveBy) > cfg.StepSize {
			moveBy = math.Copysign(cfg.StepSize, remaining)
		}
		remaining -= moveBy
		*pos -= float32(moveBy) * float32(v.direction)

		if *pos <= 0 {
			v.direction = -v.direction
			v.Velocity *= cfg.Restitution
			bounced = true
			break
		}
	}

	switch d := *pos - start; {
	case d > 0:
		v.heading = 1
	case d < 0:
		v.heading = -1
	}

	v.watch.Reset()

	if math.Abs(distance) <= cfg.SettleDistance && math.Abs(float64(*pos)) <= cfg.SettlePosition {
		v.playing = false
	}
	return bounced
}

// SetProvider rebinds the motion clock, used after restoring persisted state
func (v *VerticalMotion) SetProvider(provider clock.TimeProvider) {
	v.watch.SetProvider(provider)
}

// Config returns the effective tuning constants
func (v *VerticalMotion) Config() Config {
	return v.cfg.orDefault()
}

// SetConfig replaces the tuning constants
func (v *VerticalMotion) SetConfig(cfg Config) {
	v.cfg = cfg
}
