package ball

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Snapshot is the persisted form of a Ball: plain numbers only
// Clocks are not stored; restored motions start stopped and re-reference to now when played
type Snapshot struct {
	X              float32 `toml:"x"`
	Y              float32 `toml:"y"`
	Width          float32 `toml:"width"`
	Height         float32 `toml:"height"`
	OriginalRadius float32 `toml:"original_radius"`

	Horizontal HorizontalSnapshot `toml:"horizontal"`
	Vertical   VerticalSnapshot   `toml:"vertical"`
}

type HorizontalSnapshot struct {
	Velocity     float64 `toml:"velocity"`
	Deceleration float64 `toml:"deceleration"`
}

type VerticalSnapshot struct {
	Accel    float64 `toml:"accel"`
	Velocity float64 `toml:"velocity"`
}

// Snapshot captures the persistable state
func (b *Ball) Snapshot() Snapshot {
	return Snapshot{
		X:              b.X,
		Y:              b.Y,
		Width:          b.Width,
		Height:         b.Height,
		OriginalRadius: b.OriginalRadius,
		Horizontal: HorizontalSnapshot{
			Velocity:     b.Horizontal.Velocity,
			Deceleration: b.Horizontal.Deceleration,
		},
		Vertical: VerticalSnapshot{
			Accel:    b.Vertical.Accel,
			Velocity: b.Vertical.Velocity,
		},
	}
}

// Restore applies a snapshot; both axes end up stopped
func (b *Ball) Restore(s Snapshot) {
	b.Stop()
	b.X, b.Y = s.X, s.Y
	b.Width, b.Height = s.Width, s.Height
	if s.OriginalRadius > 0 {
		b.OriginalRadius = s.OriginalRadius
	}
	b.Horizontal.Velocity = s.Horizontal.Velocity
	b.Horizontal.Deceleration = s.Horizontal.Deceleration
	b.Vertical.Accel = s.Vertical.Accel
	b.Vertical.Velocity = s.Vertical.Velocity
	b.Clamp()
}

// Save writes the ball state to path as TOML, creating parent directories
func (b *Ball) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating state file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(b.Snapshot()); err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	return f.Close()
}

// Load restores the ball state from a TOML file written by Save
func (b *Ball) Load(path string) error {
	var s Snapshot
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return fmt.Errorf("loading state %s: %w", path, err)
	}
	b.Restore(s)
	return nil
}
