// Package audio plays a click through the system speaker whenever the ball hits the floor.
package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/glbb/clock"
	"github.com/lixenwraith/glbb/constant"
)

// Player rate-limits bounce clicks to the speaker
// A disabled or failed player is silent; Bounce never blocks the frame loop
type Player struct {
	mu       sync.Mutex
	cfg      Config
	ready    bool
	lastPlay time.Time
	clock    clock.TimeProvider
	clicks   *clickCache
	play     func(beep.Streamer)
	close    func()
}

// NewPlayer initializes the speaker when cfg.Enabled
// On failure the returned player is silent and the error is reported for logging
func NewPlayer(cfg Config) (*Player, error) {
	p := &Player{
		cfg:    cfg,
		clock:  clock.NewMonotonicTimeProvider(),
		clicks: newClickCache(beep.SampleRate(cfg.SampleRate)),
	}
	if !cfg.Enabled {
		return p, nil
	}

	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constant.AudioBufferDuration)); err != nil {
		return p, err
	}

	p.play = func(s beep.Streamer) { speaker.Play(s) }
	p.close = speaker.Close
	p.ready = true
	return p, nil
}

// newSinkPlayer creates a ready player writing to play, for tests
func newSinkPlayer(cfg Config, tp clock.TimeProvider, play func(beep.Streamer)) *Player {
	return &Player{
		cfg:    cfg,
		clock:  tp,
		clicks: newClickCache(beep.SampleRate(cfg.SampleRate)),
		play:   play,
		ready:  true,
	}
}

// Ready reports whether clicks reach the speaker
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// Bounce plays a click for a floor contact at speed, dropping clicks closer than MinSoundGap
func (p *Player) Bounce(speed float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}

	now := p.clock.Now()
	if !p.lastPlay.IsZero() && now.Sub(p.lastPlay) < constant.MinSoundGap {
		return
	}

	s, err := p.clicks.click(speed, p.cfg.Volume)
	if err != nil {
		log.Printf("audio: bounce sound: %v", err)
		return
	}
	p.lastPlay = now
	p.play(s)
}

// Close releases the speaker; safe to call on a silent player
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready && p.close != nil {
		p.close()
	}
	p.ready = false
}
