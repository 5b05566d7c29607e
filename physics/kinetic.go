// Package physics implements closed-form constant-acceleration kinematics for a single axis:
// decelerating horizontal travel with reflection at the bounds, and a vertical drop that
// bounces with energy loss and settles at the floor.
package physics

import (
	"math"
	"time"
)

// Distance returns displacement after t seconds: v*t + a*t²/2
func Distance(v, a, t float64) float64 {
	return v*t + 0.5*a*(t*t)
}

// Velocity returns velocity after t seconds: v + a*t
func Velocity(v, a, t float64) float64 {
	return v + a*t
}

// secondsToDuration converts seconds, saturating instead of overflowing
func secondsToDuration(s float64) time.Duration {
	if math.IsNaN(s) || s <= 0 {
		return 0
	}
	if s >= float64(math.MaxInt64)/float64(time.Second) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(s * float64(time.Second))
}

// finite reports whether x can be consumed by a step loop
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
