package physics

import (
	"math"
	"time"

	"github.com/lixenwraith/glbb/clock"
)

// Sign is the travel direction of horizontal motion; SignNone means stopped
type Sign int8

const (
	SignLeft  Sign = -1
	SignNone  Sign = 0
	SignRight Sign = 1
)

func (s Sign) String() string {
	switch s {
	case SignLeft:
		return "left"
	case SignRight:
		return "right"
	default:
		return "stopped"
	}
}

// HorizontalMotion decelerates from Velocity to rest, reflecting at the bounds passed to Advance
// State is always evaluated in closed form from the last (re)start, which happens every frame
type HorizontalMotion struct {
	Velocity     float64 // Speed magnitude; direction carries the sign
	Deceleration float64 // Deceleration magnitude, must be non-zero to start

	cfg       Config
	direction Sign
	watch     clock.Stopwatch
	duration  time.Duration // Time until Velocity decays to zero, valid while moving
}

// NewHorizontalMotion creates a stopped motion timed by provider
func NewHorizontalMotion(cfg Config, provider clock.TimeProvider) *HorizontalMotion {
	return &HorizontalMotion{
		cfg:   cfg,
		watch: clock.NewStopwatch(provider),
	}
}

// IsMoving reports whether a direction is set
func (h *HorizontalMotion) IsMoving() bool {
	return h.direction != SignNone
}

// Direction returns the current travel sign, SignNone when stopped
func (h *HorizontalMotion) Direction() Sign {
	return h.direction
}

// PlannedDuration returns the stopping time computed at the last (re)start
func (h *HorizontalMotion) PlannedDuration() time.Duration {
	return h.duration
}

// Stop halts motion; safe to call repeatedly
func (h *HorizontalMotion) Stop() {
	h.direction = SignNone
}

// PlayLeft starts travel towards Min
func (h *HorizontalMotion) PlayLeft() error {
	return h.start(SignLeft)
}

// PlayRight starts travel towards Max
func (h *HorizontalMotion) PlayRight() error {
	return h.start(SignRight)
}

func (h *HorizontalMotion) start(dir Sign) error {
	if h.Deceleration == 0 {
		h.Stop()
		return ErrZeroDeceleration
	}
	h.watch.Reset()
	h.direction = dir
	h.duration = secondsToDuration(math.Abs(h.Velocity) / math.Abs(h.Deceleration))
	return nil
}

// VelocityAt returns the speed t seconds after the last (re)start
func (h *HorizontalMotion) VelocityAt(t float64) float64 {
	return Velocity(h.Velocity, -h.Deceleration, t)
}

// DistanceAt returns the displacement t seconds after the last (re)start
func (h *HorizontalMotion) DistanceAt(t float64) float64 {
	return Distance(h.Velocity, -h.Deceleration, t)
}

// Advance moves pos by the displacement due since the last (re)start and re-arms the motion
// Displacement is consumed in StepSize steps; every step that leaves bound flips the direction,
// so one call may reflect several times. Returns the number of reflections
func (h *HorizontalMotion) Advance(pos *float32, bound Bound) int {
	if h.direction == SignNone {
		return 0
	}
	cfg := h.cfg.orDefault()

	elapsed := h.watch.Elapsed()
	t := min(elapsed, h.duration).Seconds()

	h.Velocity = h.VelocityAt(t)
	distance := h.DistanceAt(t)
	if !finite(distance) {
		distance = 0
	}

	dir := h.direction
	reflections := 0
	for distance > 0 {
		moveBy := math.Min(distance, cfg.StepSize)
		distance -= moveBy
		*pos += float32(moveBy) * float32(dir)

		if !bound.Contains(*pos) {
			dir = -dir
			reflections++
		}
	}
	h.direction = dir

	if elapsed < h.duration {
		if err := h.start(dir); err != nil {
			return reflections
		}
	} else {
		h.Stop()
	}
	return reflections
}

// SetProvider rebinds the motion clock, used after restoring persisted state
func (h *HorizontalMotion) SetProvider(provider clock.TimeProvider) {
	h.watch.SetProvider(provider)
}

// SetConfig replaces the tuning constants
func (h *HorizontalMotion) SetConfig(cfg Config) {
	h.cfg = cfg
}
