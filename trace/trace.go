// Package trace runs the ball headless on a simulated clock and renders the recorded
// trajectory as terminal charts.
package trace

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/glbb/ball"
	"github.com/lixenwraith/glbb/clock"
	"github.com/lixenwraith/glbb/physics"
)

// ErrInvalidOptions wraps Options validation failures
var ErrInvalidOptions = errors.New("trace: invalid options")

// Options describes one simulated run
type Options struct {
	Frames       int           // Upper bound on simulated frames
	DT           time.Duration // Simulated frame interval
	Width        float32       // Play area
	Height       float32
	StartX       float32
	StartY       float32 // A positive start height drops the ball
	Velocity     float64
	Deceleration float64
	Direction    physics.Sign // SignNone leaves the horizontal axis idle
}

// DefaultOptions returns a drop from 300 with a rightward launch in an 800x600 area
func DefaultOptions() Options {
	return Options{
		Frames:       2000,
		DT:           16 * time.Millisecond,
		Width:        800,
		Height:       600,
		StartY:       300,
		Velocity:     300,
		Deceleration: 60,
		Direction:    physics.SignRight,
	}
}

// Sample is the ball state after one frame
type Sample struct {
	T           time.Duration
	X, Y        float32
	Moving      bool
	Bounced     bool
	Reflections int
}

// Result is a recorded run
type Result struct {
	Samples     []Sample
	Settled     bool          // Both axes came to rest before the frame limit
	SettledAt   time.Duration // Simulated time of the last moving frame
	Bounces     int
	Reflections int
}

func (o Options) validate() error {
	switch {
	case o.Frames <= 0:
		return fmt.Errorf("%w: frames %d must be positive", ErrInvalidOptions, o.Frames)
	case o.DT <= 0:
		return fmt.Errorf("%w: dt %v must be positive", ErrInvalidOptions, o.DT)
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("%w: area %vx%v must be positive", ErrInvalidOptions, o.Width, o.Height)
	}
	return nil
}

// Run steps a ball on a mock clock advanced by DT per frame until both axes rest or Frames is reached
func Run(cfg physics.Config, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mc := clock.NewSteppedClock(time.Unix(0, 0), opts.DT)
	b := ball.New(cfg, mc)
	b.Resize(opts.Width, opts.Height)
	b.X, b.Y = opts.StartX, opts.StartY
	b.Clamp()
	b.Horizontal.Velocity = opts.Velocity
	b.Horizontal.Deceleration = opts.Deceleration

	switch opts.Direction {
	case physics.SignLeft:
		if err := b.Horizontal.PlayLeft(); err != nil {
			return nil, err
		}
	case physics.SignRight:
		if err := b.Horizontal.PlayRight(); err != nil {
			return nil, err
		}
	}
	if b.Y > 0 {
		b.Vertical.Fall()
	}

	res := &Result{Samples: make([]Sample, 0, min(opts.Frames, 4096))}
	for i := 0; i < opts.Frames && b.IsMoving(); i++ {
		now := mc.Tick()

		step := b.Step()
		res.Samples = append(res.Samples, Sample{
			T:           now,
			X:           b.X,
			Y:           b.Y,
			Moving:      step.Moving,
			Bounced:     step.Bounced,
			Reflections: step.Reflections,
		})
		if step.Bounced {
			res.Bounces++
		}
		res.Reflections += step.Reflections
		res.SettledAt = now
	}

	res.Settled = !b.IsMoving()
	log.Printf("trace: %d frames, settled=%v at %v, %d bounces, %d reflections",
		len(res.Samples), res.Settled, res.SettledAt, res.Bounces, res.Reflections)
	return res, nil
}

// Heights returns the vertical series
func (r *Result) Heights() []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = float64(s.Y)
	}
	return out
}

// Positions returns the horizontal series
func (r *Result) Positions() []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = float64(s.X)
	}
	return out
}
