package widget

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glbb/constant"
)

var (
	ballStyle   = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	pausedStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	floorStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	hintStyle   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

const cellHeight = constant.WorldUnitsPerColumn * constant.CellAspect

// areaRows is the number of rows above the floor line
func (w *Widget) areaRows() int {
	return max(w.rows-constant.StatusBarHeight-1, 1)
}

// Draw renders one full frame
func (w *Widget) Draw() {
	w.screen.Clear()
	w.drawBall()
	w.drawFloor()
	if w.showStatus {
		w.drawStatus()
	}
	w.screen.Show()
}

// CellOf maps a world point to the screen cell containing it
func (w *Widget) CellOf(x, y float32) (col, row int) {
	col = int(math.Floor(float64(x) / constant.WorldUnitsPerColumn))
	row = w.areaRows() - 1 - int(math.Floor(float64(y)/cellHeight))
	return col, row
}

// WorldOf maps a screen cell to the world point at its center
func (w *Widget) WorldOf(col, row int) (x, y float32) {
	x = (float32(col) + 0.5) * constant.WorldUnitsPerColumn
	y = (float32(w.areaRows()-1-row) + 0.5) * cellHeight
	return x, y
}

// drawBall fills every cell whose center lies inside the disc
// A disc smaller than one cell still marks the cell holding its center
func (w *Widget) drawBall() {
	style := ballStyle
	if w.clock.IsPaused() {
		style = pausedStyle
	}

	r := float64(w.ball.Radius())
	cx := float64(w.ball.X) + r
	cy := float64(w.ball.Y) + r
	areaRows := w.areaRows()

	c0 := int(math.Floor((cx - r) / constant.WorldUnitsPerColumn))
	c1 := int(math.Ceil((cx + r) / constant.WorldUnitsPerColumn))
	k0 := int(math.Floor((cy - r) / cellHeight))
	k1 := int(math.Ceil((cy + r) / cellHeight))

	drawn := false
	for k := k0; k <= k1; k++ {
		row := areaRows - 1 - k
		if row < 0 || row >= areaRows {
			continue
		}
		dy := (float64(k)+0.5)*cellHeight - cy
		for c := c0; c <= c1; c++ {
			if c < 0 || c >= w.cols {
				continue
			}
			dx := (float64(c)+0.5)*constant.WorldUnitsPerColumn - cx
			if dx*dx+dy*dy <= r*r {
				w.screen.SetContent(c, row, constant.BallRune, nil, style)
				drawn = true
			}
		}
	}

	if !drawn {
		col, row := w.CellOf(float32(cx), float32(cy))
		if col >= 0 && col < w.cols && row >= 0 && row < areaRows {
			w.screen.SetContent(col, row, constant.BallRune, nil, style)
		}
	}
}

func (w *Widget) drawFloor() {
	row := w.areaRows()
	if row >= w.rows {
		return
	}
	for c := 0; c < w.cols; c++ {
		w.screen.SetContent(c, row, constant.FloorRune, nil, floorStyle)
	}
}

func (w *Widget) drawStatus() {
	top := w.areaRows() + 1
	b := w.ball
	line := fmt.Sprintf(" vel %6.1f  dec %5.1f  x %6.1f  y %6.1f  r %4.1f  %s",
		b.Horizontal.Velocity, b.Horizontal.Deceleration, b.X, b.Y, b.Radius(), w.state())
	w.drawText(0, top, line, statusStyle, true)

	hint := " h/l play  j fall  s stop  +/- vel  [/] dec  </> nudge  v lower  p pause  q quit"
	if w.message != "" {
		hint = " " + w.message + " |" + hint
	}
	w.drawText(0, top+1, hint, hintStyle, false)
}

// state summarizes both axes for the status bar
func (w *Widget) state() string {
	if w.clock.IsPaused() {
		return "PAUSED"
	}
	h := "idle"
	if w.ball.Horizontal.IsMoving() {
		h = w.ball.Horizontal.Direction().String()
	}
	v := "resting"
	if w.ball.Vertical.IsMoving() {
		if w.ball.Vertical.IsRising() {
			v = "rising"
		} else {
			v = "falling"
		}
	}
	return h + "/" + v
}

// drawText writes s from (x, y), truncated at the screen edge; fill pads the row with style
func (w *Widget) drawText(x, y int, s string, style tcell.Style, fill bool) {
	if y < 0 || y >= w.rows {
		return
	}
	col := x
	for _, r := range s {
		if col >= w.cols {
			return
		}
		w.screen.SetContent(col, y, r, nil, style)
		col++
	}
	for ; fill && col < w.cols; col++ {
		w.screen.SetContent(col, y, ' ', nil, style)
	}
}
