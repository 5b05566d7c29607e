package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/glbb/constant"
)

// Config controls the bounce click
type Config struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"` // 0.0-1.0
	SampleRate int     `toml:"sample_rate"`
}

// DefaultConfig returns audio enabled at half volume
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     constant.BounceDefaultVolume,
		SampleRate: constant.AudioSampleRate,
	}
}

// ApplyEnv overrides cfg from GLBB_AUDIO_* environment variables
func ApplyEnv(cfg *Config) {
	if enabled := os.Getenv("GLBB_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Volume is given as 0-100
	if volume := os.Getenv("GLBB_AUDIO_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = clampVolume(float64(val) / 100.0)
		}
	}

	if sampleRate := os.Getenv("GLBB_AUDIO_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
