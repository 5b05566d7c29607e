package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/glbb/physics"
	"github.com/lixenwraith/glbb/trace"
)

var traceFlags struct {
	frames       int
	dt           time.Duration
	height       float32
	startX       float32
	velocity     float64
	deceleration float64
	direction    string
	areaWidth    float32
	areaHeight   float32
	plotWidth    int
	plotHeight   int
}

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Simulate a run headless and plot the trajectory",
	Args:  cobra.NoArgs,
	RunE:  runTrace,
}

func init() {
	rootCmd.AddCommand(traceCmd)

	d := trace.DefaultOptions()
	f := traceCmd.Flags()
	f.IntVar(&traceFlags.frames, "frames", d.Frames, "maximum simulated frames")
	f.DurationVar(&traceFlags.dt, "dt", d.DT, "simulated frame interval")
	f.Float32Var(&traceFlags.height, "height", d.StartY, "drop height, 0 leaves the vertical axis idle")
	f.Float32Var(&traceFlags.startX, "x", d.StartX, "start position")
	f.Float64Var(&traceFlags.velocity, "velocity", d.Velocity, "horizontal launch speed (default from config)")
	f.Float64Var(&traceFlags.deceleration, "deceleration", d.Deceleration, "horizontal deceleration (default from config)")
	f.StringVar(&traceFlags.direction, "direction", d.Direction.String(), "launch direction: left, right or none")
	f.Float32Var(&traceFlags.areaWidth, "area-width", d.Width, "play area width")
	f.Float32Var(&traceFlags.areaHeight, "area-height", d.Height, "play area height")
	f.IntVar(&traceFlags.plotWidth, "plot-width", 72, "chart width in columns")
	f.IntVar(&traceFlags.plotHeight, "plot-height", 12, "chart height in rows")
}

func runTrace(cmd *cobra.Command, args []string) error {
	dir, err := parseDirection(traceFlags.direction)
	if err != nil {
		return err
	}

	opts := trace.Options{
		Frames:       traceFlags.frames,
		DT:           traceFlags.dt,
		Width:        traceFlags.areaWidth,
		Height:       traceFlags.areaHeight,
		StartX:       traceFlags.startX,
		StartY:       traceFlags.height,
		Velocity:     cfg.Ball.Velocity,
		Deceleration: cfg.Ball.Deceleration,
		Direction:    dir,
	}
	if cmd.Flags().Changed("velocity") {
		opts.Velocity = traceFlags.velocity
	}
	if cmd.Flags().Changed("deceleration") {
		opts.Deceleration = traceFlags.deceleration
	}

	res, err := trace.Run(cfg.Physics, opts)
	if err != nil {
		return err
	}
	return trace.Plot(cmd.OutOrStdout(), res, traceFlags.plotWidth, traceFlags.plotHeight)
}

func parseDirection(s string) (physics.Sign, error) {
	switch strings.ToLower(s) {
	case "left", "l":
		return physics.SignLeft, nil
	case "right", "r":
		return physics.SignRight, nil
	case "none", "stopped", "":
		return physics.SignNone, nil
	}
	return physics.SignNone, fmt.Errorf("unknown direction %q: want left, right or none", s)
}
