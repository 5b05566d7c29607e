package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lixenwraith/glbb/audio"
	"github.com/lixenwraith/glbb/widget"
)

var errNotTerminal = errors.New("run needs an interactive terminal; try 'glbb trace'")

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive ball widget",
	Long: `Open the interactive ball widget.

Drag with a mouse button to place the ball; release a right-button drag to drop it.

Keys: h/← play left, l/→ play right, j/space fall, s stop,
+/- velocity, [/] deceleration, </> nudge, v lower, p pause, q/Esc quit.`,
	Args: cobra.NoArgs,
	RunE: runWidget,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runWidget(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)

	// Panic recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mGLBB CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	player, err := audio.NewPlayer(cfg.Audio)
	if err != nil {
		// Non-fatal, widget runs silent
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer player.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return widget.New(cfg, screen, player).Run(ctx)
}
