package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/glbb/constant"
)

// clickCache stores rendered unity-gain clicks, one per pitch step
type clickCache struct {
	mu    sync.RWMutex
	rate  beep.SampleRate
	store [constant.BouncePitchSteps + 1]*beep.Buffer
}

func newClickCache(rate beep.SampleRate) *clickCache {
	return &clickCache{rate: rate}
}

// pitchStep quantizes impact speed onto [0, BouncePitchSteps]
func pitchStep(speed float64) int {
	ratio := min(math.Abs(speed)/constant.BounceFullScaleSpeed, 1)
	return int(math.Round(ratio * constant.BouncePitchSteps))
}

// stepFrequency is the click pitch for a step
func stepFrequency(step int) float64 {
	return constant.BounceBaseFreq + float64(step)/constant.BouncePitchSteps*(constant.BounceMaxFreq-constant.BounceBaseFreq)
}

// get returns the cached click for step or renders it on demand
func (c *clickCache) get(step int) (*beep.Buffer, error) {
	c.mu.RLock()
	if buf := c.store[step]; buf != nil {
		c.mu.RUnlock()
		return buf, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if buf := c.store[step]; buf != nil {
		return buf, nil
	}

	click, err := renderClick(c.rate, stepFrequency(step))
	if err != nil {
		return nil, err
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: c.rate, NumChannels: 2, Precision: 2})
	buf.Append(click)
	c.store[step] = buf
	return buf, nil
}

// click returns a playable click for an impact at speed with volume applied
func (c *clickCache) click(speed float64, volume float64) (beep.Streamer, error) {
	buf, err := c.get(pitchStep(speed))
	if err != nil {
		return nil, err
	}
	return newVolume(buf.Streamer(0, buf.Len()), volume), nil
}
