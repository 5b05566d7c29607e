package constant

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameInterval bounds the configurable frame period
	// Longer frames can lock the vertical bounce into a cycle that never meets the settle thresholds
	MaxFrameInterval = 20 * time.Millisecond

	// EventChannelSize is the buffered capacity between the poller and the frame loop
	EventChannelSize = 64
)

// Ball Defaults
const (
	// BallOriginalRadius is the radius at floor level in world units
	BallOriginalRadius = 30.0

	// BallMaxShrink caps how much the ball shrinks near the ceiling
	BallMaxShrink = 0.9

	// BallShrinkFactor scales the relative height into the shrink amount
	BallShrinkFactor = 0.5

	// BallPosMaxFloor keeps the travel range non-empty when the area is smaller than the ball
	BallPosMaxFloor = 1.0

	// BallNudgeDistance is the offset applied by the nudge keys
	BallNudgeDistance = 100.0

	// BallInitialVelocity is the horizontal launch speed in world units per second
	BallInitialVelocity = 300.0

	// BallInitialDeceleration is the horizontal deceleration in world units per second squared
	BallInitialDeceleration = 60.0
)

// Control Steps
const (
	VelocityStep     = 10.0
	DecelerationStep = 1.0
	// DecelerationMin keeps the horizontal stopping time finite
	DecelerationMin = 1.0
)
