// Package config loads glbb settings: built-in defaults, then an optional TOML file,
// then GLBB_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/glbb/audio"
	"github.com/lixenwraith/glbb/constant"
	"github.com/lixenwraith/glbb/physics"
)

// ErrUnknownKeys is returned when the config file has keys no setting uses
var ErrUnknownKeys = errors.New("config: unknown keys")

// Config is the full application configuration
type Config struct {
	Physics physics.Config `toml:"physics"`
	Ball    BallConfig     `toml:"ball"`
	Display DisplayConfig  `toml:"display"`
	Audio   audio.Config   `toml:"audio"`
	Log     LogConfig      `toml:"log"`

	// Source is the file the config was read from, empty for defaults only
	Source string `toml:"-"`
}

// BallConfig sets the initial ball
type BallConfig struct {
	Radius       float32 `toml:"radius"`
	Velocity     float64 `toml:"velocity"`
	Deceleration float64 `toml:"deceleration"`
	StateFile    string  `toml:"state_file"` // Persisted between runs when set
}

type DisplayConfig struct {
	FrameMillis int  `toml:"frame_ms"`
	ShowStatus  bool `toml:"show_status"`
}

// FrameInterval returns the frame period
func (d DisplayConfig) FrameInterval() time.Duration {
	return time.Duration(d.FrameMillis) * time.Millisecond
}

type LogConfig struct {
	Debug bool `toml:"debug"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Physics: physics.DefaultConfig(),
		Ball: BallConfig{
			Radius:       constant.BallOriginalRadius,
			Velocity:     constant.BallInitialVelocity,
			Deceleration: constant.BallInitialDeceleration,
		},
		Display: DisplayConfig{
			FrameMillis: int(constant.FrameUpdateInterval / time.Millisecond),
			ShowStatus:  true,
		},
		Audio: audio.DefaultConfig(),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/glbb/config.toml or the platform equivalent
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "glbb", "config.toml"), nil
}

// Load builds the configuration
// An explicit path must exist; with an empty path the default location is read if present
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		err := cfg.readFile(path)
		switch {
		case err == nil:
			cfg.Source = path
		case !explicit && errors.Is(err, fs.ErrNotExist):
		default:
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("%w in %s: %s", ErrUnknownKeys, path, strings.Join(keys, ", "))
	}
	return nil
}

// applyEnv overrides settings from GLBB_* environment variables; unparsable values are ignored
func (c *Config) applyEnv() {
	envFloat("GLBB_GRAVITY", &c.Physics.Gravity)
	envFloat("GLBB_RESTITUTION", &c.Physics.Restitution)
	envFloat("GLBB_STEP_SIZE", &c.Physics.StepSize)
	envFloat("GLBB_VELOCITY", &c.Ball.Velocity)
	envFloat("GLBB_DECELERATION", &c.Ball.Deceleration)

	if v := os.Getenv("GLBB_FRAME_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Display.FrameMillis = n
		}
	}
	if v := os.Getenv("GLBB_STATE_FILE"); v != "" {
		c.Ball.StateFile = v
	}
	if v := os.Getenv("GLBB_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Log.Debug = b
		}
	}

	audio.ApplyEnv(&c.Audio)
}

func envFloat(key string, dst *float64) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

// Validate checks every section
func (c *Config) Validate() error {
	if err := c.Physics.Validate(); err != nil {
		return err
	}
	if c.Ball.Radius <= 0 {
		return fmt.Errorf("config: ball.radius %v must be positive", c.Ball.Radius)
	}
	if c.Ball.Velocity < 0 {
		return fmt.Errorf("config: ball.velocity %v must not be negative", c.Ball.Velocity)
	}
	if c.Ball.Deceleration < constant.DecelerationMin {
		return fmt.Errorf("config: ball.deceleration %v must be at least %v", c.Ball.Deceleration, constant.DecelerationMin)
	}
	if c.Display.FrameMillis <= 0 || c.Display.FrameInterval() > constant.MaxFrameInterval {
		return fmt.Errorf("config: display.frame_ms %d must be in [1, %d]",
			c.Display.FrameMillis, constant.MaxFrameInterval/time.Millisecond)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: audio.volume %v must be in [0, 1]", c.Audio.Volume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("config: audio.sample_rate %d must be positive", c.Audio.SampleRate)
	}
	return nil
}

// Write encodes the configuration as TOML
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
