package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100
)

// Audio Engine Timing
const (
	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap between consecutive bounce clicks
	MinSoundGap = 40 * time.Millisecond
)

// Bounce Click
const (
	BounceSoundDuration = 50 * time.Millisecond
	BounceBaseFreq      = 440.0
	BounceMaxFreq       = 1320.0
	// BounceFullScaleSpeed maps to BounceMaxFreq
	BounceFullScaleSpeed = 800.0
	BounceDefaultVolume  = 0.5
	// BouncePitchSteps quantizes click pitch so rendered clicks can be reused
	BouncePitchSteps = 16
)
