package widget

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glbb/constant"
)

// HandleEvent applies one terminal event, returning false when the widget should exit
func (w *Widget) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return w.handleKey(ev.Key(), ev.Rune())

	case *tcell.EventMouse:
		col, row := ev.Position()
		w.handleMouse(col, row, ev.Buttons())

	case *tcell.EventResize:
		w.screen.Sync()
		w.resize()
	}
	return true
}

func (w *Widget) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		w.playLeft()
		return true
	case tcell.KeyRight:
		w.playRight()
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	b := w.ball
	switch r {
	case 'q':
		return false
	case 'h':
		w.playLeft()
	case 'l':
		w.playRight()
	case 'j', ' ':
		b.Vertical.Fall()
		w.wasMoving = true
		w.message = "falling"
	case 's':
		b.Stop()
		w.message = "stopped"
	case '+', '=':
		b.Horizontal.Velocity += constant.VelocityStep
		w.message = ""
	case '-', '_':
		b.Horizontal.Velocity = max(b.Horizontal.Velocity-constant.VelocityStep, 0)
		w.message = ""
	case ']':
		b.Horizontal.Deceleration += constant.DecelerationStep
		w.message = ""
	case '[':
		b.Horizontal.Deceleration = max(b.Horizontal.Deceleration-constant.DecelerationStep, constant.DecelerationMin)
		w.message = ""
	case '<', ',':
		b.Nudge(-constant.BallNudgeDistance, 0)
	case '>', '.':
		b.Nudge(constant.BallNudgeDistance, 0)
	case 'v', 'V':
		b.Nudge(0, -constant.BallNudgeDistance)
	case 'p':
		if w.clock.Toggle() {
			w.message = "paused"
		} else {
			w.message = ""
		}
		log.Printf("widget: paused=%v", w.clock.IsPaused())
	}
	return true
}

func (w *Widget) playLeft() {
	w.play(w.ball.Horizontal.PlayLeft)
}

func (w *Widget) playRight() {
	w.play(w.ball.Horizontal.PlayRight)
}

func (w *Widget) play(start func() error) {
	if err := start(); err != nil {
		log.Printf("widget: %v", err)
		w.message = err.Error()
		return
	}
	w.wasMoving = true
	w.message = ""
	log.Printf("widget: horizontal %s at %.1f/s, decel %.1f",
		w.ball.Horizontal.Direction(), w.ball.Horizontal.Velocity, w.ball.Horizontal.Deceleration)
}

// handleMouse places an idle ball under the pointer while a button is held
// Releasing a secondary-button drag drops the ball from where it was placed
func (w *Widget) handleMouse(col, row int, buttons tcell.ButtonMask) {
	if w.ball.IsMoving() || w.clock.IsPaused() {
		return
	}

	held := buttons & (tcell.ButtonPrimary | tcell.ButtonSecondary)
	if held == 0 {
		if w.dragSecondary {
			w.ball.Vertical.Fall()
			w.wasMoving = true
			w.message = "falling"
			log.Printf("widget: drop from (%.1f, %.1f)", w.ball.X, w.ball.Y)
		}
		w.dragSecondary = false
		return
	}
	w.dragSecondary = held&tcell.ButtonSecondary != 0

	// The pointer marks the ball center
	x, y := w.WorldOf(col, row)
	r := w.ball.Radius()
	w.ball.MoveTo(x-r, y-r)
}
