// Package ball holds the state of the simulated ball: its position inside a play area,
// its apparent radius, and the two independent per-axis motions that move it each frame.
package ball

import (
	"math"

	"github.com/lixenwraith/glbb/clock"
	"github.com/lixenwraith/glbb/constant"
	"github.com/lixenwraith/glbb/physics"
)

// Ball is positioned from the bottom-left corner of its area; Y is height above the floor
type Ball struct {
	X, Y           float32
	Width, Height  float32 // Play area
	OriginalRadius float32 // Radius at floor level

	Horizontal *physics.HorizontalMotion
	Vertical   *physics.VerticalMotion
}

// StepResult reports what happened during one frame
type StepResult struct {
	Moving      bool    // Another frame is needed
	Reflections int     // Horizontal bound reflections
	Bounced     bool    // Vertical floor contact
	ImpactSpeed float64 // Vertical speed at the floor contact
}

// New creates a resting ball whose motions are timed by provider
func New(cfg physics.Config, provider clock.TimeProvider) *Ball {
	h := physics.NewHorizontalMotion(cfg, provider)
	h.Velocity = constant.BallInitialVelocity
	h.Deceleration = constant.BallInitialDeceleration

	return &Ball{
		OriginalRadius: constant.BallOriginalRadius,
		Horizontal:     h,
		Vertical:       physics.NewVerticalMotion(cfg, provider),
	}
}

// Radius returns the apparent radius, shrinking with height to suggest depth
func (b *Ball) Radius() float32 {
	shrink := float32(constant.BallMaxShrink)
	if b.Height > 0 {
		rel := max(b.Y, 0) / b.Height
		shrink = min(constant.BallShrinkFactor*rel, constant.BallMaxShrink)
	}
	return b.OriginalRadius * (1 - shrink)
}

// PosMax returns the largest position on each axis that keeps the ball inside the area
func (b *Ball) PosMax() (x, y float32) {
	d := 2 * b.Radius()
	return max(b.Width-d, constant.BallPosMaxFloor), max(b.Height-d, constant.BallPosMaxFloor)
}

// Clamp keeps the position inside [0, PosMax]
func (b *Ball) Clamp() {
	mx, my := b.PosMax()
	b.X = physics.Bound{Min: 0, Max: mx}.Clamp(b.X)
	b.Y = physics.Bound{Min: 0, Max: my}.Clamp(b.Y)
}

// IsMoving reports whether either axis is in motion
func (b *Ball) IsMoving() bool {
	return b.Horizontal.IsMoving() || b.Vertical.IsMoving()
}

// Step advances both axes by one frame against the current area
// Bounds are recomputed every frame because the radius depends on height
func (b *Ball) Step() StepResult {
	b.Clamp()
	mx, my := b.PosMax()

	var res StepResult
	res.Reflections = b.Horizontal.Advance(&b.X, physics.Bound{Min: 0, Max: mx})
	if b.Vertical.Advance(&b.Y, my) {
		res.Bounced = true
		res.ImpactSpeed = math.Abs(b.Vertical.Velocity) / b.restitution()
	}

	b.Clamp()
	res.Moving = b.IsMoving()
	return res
}

// Nudge shifts the ball on axes that are not in motion
func (b *Ball) Nudge(dx, dy float32) {
	if !b.Horizontal.IsMoving() {
		b.X += dx
	}
	if !b.Vertical.IsMoving() {
		b.Y += dy
	}
	b.Clamp()
}

// MoveTo places the ball when both axes are idle, reporting whether it moved
func (b *Ball) MoveTo(x, y float32) bool {
	if b.IsMoving() {
		return false
	}
	b.X, b.Y = x, y
	b.Clamp()
	return true
}

// Resize sets the play area and pulls the ball back inside
func (b *Ball) Resize(width, height float32) {
	b.Width, b.Height = width, height
	b.Clamp()
}

// Stop halts both axes
func (b *Ball) Stop() {
	b.Horizontal.Stop()
	b.Vertical.Stop()
}

// SetConfig applies new tuning to both axes
func (b *Ball) SetConfig(cfg physics.Config) {
	b.Horizontal.SetConfig(cfg)
	b.Vertical.SetConfig(cfg)
}

func (b *Ball) restitution() float64 {
	return b.Vertical.Config().Restitution
}
