// Package widget runs the ball in a terminal: a fixed-interval frame loop steps the
// motions, draws the ball with a floor and status bar, and maps keys to controls.
package widget

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glbb/ball"
	"github.com/lixenwraith/glbb/clock"
	"github.com/lixenwraith/glbb/config"
	"github.com/lixenwraith/glbb/constant"
)

// Sounder receives floor contacts with their impact speed
type Sounder interface {
	Bounce(speed float64)
}

type silent struct{}

func (silent) Bounce(float64) {}

// Widget owns the screen, the ball and the pausable clock timing it
// All fields are touched only from the Run goroutine
type Widget struct {
	screen tcell.Screen
	ball   *ball.Ball
	clock  *clock.PausableClock
	sound  Sounder

	frame      time.Duration
	stateFile  string
	showStatus bool

	cols, rows int    // Screen size in cells
	message    string // Last control feedback shown in the status bar
	wasMoving  bool
	bounces    int

	dragSecondary bool // The held drag uses the secondary button
}

// New builds a widget drawing on an initialized screen
// A nil sound plays nothing
func New(cfg *config.Config, screen tcell.Screen, sound Sounder) *Widget {
	return newWidget(cfg, screen, sound, clock.NewMonotonicTimeProvider())
}

// newWidget times the ball from source, letting tests drive frames with a mock clock
func newWidget(cfg *config.Config, screen tcell.Screen, sound Sounder, source clock.TimeProvider) *Widget {
	if sound == nil {
		sound = silent{}
	}
	pc := clock.NewPausableClock(source)

	b := ball.New(cfg.Physics, pc)
	b.OriginalRadius = cfg.Ball.Radius
	b.Horizontal.Velocity = cfg.Ball.Velocity
	b.Horizontal.Deceleration = cfg.Ball.Deceleration

	frame := cfg.Display.FrameInterval()
	if frame <= 0 {
		frame = constant.FrameUpdateInterval
	}

	w := &Widget{
		screen:     screen,
		ball:       b,
		clock:      pc,
		sound:      sound,
		frame:      frame,
		stateFile:  cfg.Ball.StateFile,
		showStatus: cfg.Display.ShowStatus,
	}
	w.resize()
	return w
}

// Ball exposes the simulated ball
func (w *Widget) Ball() *ball.Ball {
	return w.ball
}

// Paused reports whether motion time is frozen
func (w *Widget) Paused() bool {
	return w.clock.IsPaused()
}

// Run drives frames until quit is pressed or ctx is canceled
// The state file, when configured, is restored before the first frame and written on return
func (w *Widget) Run(ctx context.Context) error {
	w.restore()
	defer w.persist()

	events := make(chan tcell.Event, constant.EventChannelSize)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := w.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(w.frame)
	defer ticker.Stop()

	w.Draw()
	for {
		select {
		case <-ctx.Done():
			log.Printf("widget: context done: %v", ctx.Err())
			return nil

		case ev := <-events:
			if !w.HandleEvent(ev) {
				log.Printf("widget: quit")
				return nil
			}
			w.Draw()

		case <-ticker.C:
			w.Tick()
			w.Draw()
		}
	}
}

// Tick advances the ball one frame unless paused
func (w *Widget) Tick() {
	if w.clock.IsPaused() {
		return
	}

	res := w.ball.Step()
	if res.Bounced {
		w.bounces++
		w.sound.Bounce(res.ImpactSpeed)
		log.Printf("widget: bounce at %.1f/s", res.ImpactSpeed)
	}
	if res.Reflections > 0 {
		log.Printf("widget: %d reflection(s) at x=%.1f", res.Reflections, w.ball.X)
	}
	if w.wasMoving && !res.Moving {
		log.Printf("widget: settled at (%.1f, %.1f) after %d bounce(s)", w.ball.X, w.ball.Y, w.bounces)
		w.bounces = 0
	}
	w.wasMoving = res.Moving
}

// resize fits the ball area to the screen, leaving room for the floor and status bar
func (w *Widget) resize() {
	w.cols, w.rows = w.screen.Size()
	areaRows := max(w.rows-constant.StatusBarHeight-1, 1)
	w.ball.Resize(
		float32(w.cols)*constant.WorldUnitsPerColumn,
		float32(areaRows)*constant.WorldUnitsPerColumn*constant.CellAspect,
	)
}

func (w *Widget) restore() {
	if w.stateFile == "" {
		return
	}
	err := w.ball.Load(w.stateFile)
	switch {
	case err == nil:
		log.Printf("widget: restored state from %s", w.stateFile)
		w.resize()
	case errors.Is(err, fs.ErrNotExist):
	default:
		log.Printf("widget: %v", err)
		w.message = "state file unreadable"
	}
}

func (w *Widget) persist() {
	if w.stateFile == "" {
		return
	}
	if err := w.ball.Save(w.stateFile); err != nil {
		log.Printf("widget: %v", err)
		return
	}
	log.Printf("widget: saved state to %s", w.stateFile)
}
