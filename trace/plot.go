package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

// Plot writes height and horizontal position charts followed by a run summary
func Plot(w io.Writer, r *Result, width, height int) error {
	if len(r.Samples) == 0 {
		_, err := fmt.Fprintln(w, "no frames recorded")
		return err
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render("GLBB trace") + "\n")

	s.WriteString(chart(r.Heights(), "height (y)", width, height) + "\n")
	s.WriteString(chart(r.Positions(), "position (x)", width, height) + "\n")

	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Frames", fmt.Sprintf("%d", len(r.Samples)))
	if r.Settled {
		row("Settled", fmt.Sprintf("%.3fs", r.SettledAt.Seconds()))
	} else {
		row("Settled", "no (frame limit)")
	}
	row("Bounces", fmt.Sprintf("%d", r.Bounces))
	row("Reflections", fmt.Sprintf("%d", r.Reflections))
	last := r.Samples[len(r.Samples)-1]
	row("Final", fmt.Sprintf("x=%.1f y=%.1f", last.X, last.Y))

	_, err := io.WriteString(w, s.String())
	return err
}

// chart plots series, or states its value when it never changes
func chart(series []float64, caption string, width, height int) string {
	flat := true
	for _, v := range series[1:] {
		if v != series[0] {
			flat = false
			break
		}
	}
	if flat {
		return graphStyle.Render(fmt.Sprintf("%s: constant at %.1f", caption, series[0]))
	}

	return graphStyle.Render(asciigraph.Plot(series,
		asciigraph.Height(height), asciigraph.Width(width), asciigraph.Caption(caption)))
}
