package physics

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/glbb/constant"
)

var (
	// ErrZeroDeceleration is returned when horizontal motion is started with no deceleration,
	// which would never stop
	ErrZeroDeceleration = errors.New("physics: deceleration must be non-zero")

	// ErrInvalidConfig wraps every Config validation failure
	ErrInvalidConfig = errors.New("physics: invalid config")
)

// Config holds the tunable constants of both motions
type Config struct {
	Gravity        float64 `toml:"gravity"`         // Fall acceleration, world units/s²
	Restitution    float64 `toml:"restitution"`     // Speed fraction kept per floor contact
	StepSize       float64 `toml:"step_size"`       // Max displacement between bound checks
	// SettleDistance is the per-frame displacement considered at rest. It is compared per frame,
	// so it only holds for short frames: above ~25ms a small bounce can repeat forever
	SettleDistance float64 `toml:"settle_distance"`
	SettlePosition float64 `toml:"settle_position"` // Height considered on the floor
}

// DefaultConfig returns the tuned defaults
func DefaultConfig() Config {
	return Config{
		Gravity:        constant.Gravity,
		Restitution:    constant.Restitution,
		StepSize:       constant.MotionStepSize,
		SettleDistance: constant.SettleDistance,
		SettlePosition: constant.SettlePosition,
	}
}

// Validate checks that stepping terminates and bounces lose energy
func (c Config) Validate() error {
	switch {
	case !(c.Gravity > 0) || !finite(c.Gravity):
		return fmt.Errorf("%w: gravity %v must be positive", ErrInvalidConfig, c.Gravity)
	case !(c.Restitution > 0 && c.Restitution <= 1):
		return fmt.Errorf("%w: restitution %v must be in (0, 1]", ErrInvalidConfig, c.Restitution)
	case !(c.StepSize > 0) || !finite(c.StepSize):
		return fmt.Errorf("%w: step_size %v must be positive", ErrInvalidConfig, c.StepSize)
	case c.SettleDistance < 0 || c.SettlePosition < 0:
		return fmt.Errorf("%w: settle thresholds must not be negative", ErrInvalidConfig)
	}
	return nil
}

// orDefault lets zero-value motions run on the tuned defaults
func (c Config) orDefault() Config {
	if c == (Config{}) {
		return DefaultConfig()
	}
	return c
}
