package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/glbb/config"
)

var (
	configPath string
	debugFlag  bool

	// Loaded by the root pre-run for every subcommand
	cfg     *config.Config
	logFile *os.File
)

var rootCmd = &cobra.Command{
	Use:   "glbb",
	Short: "Constant-acceleration ball physics in the terminal",
	Long: `glbb moves a ball with constant-acceleration kinematics: horizontally with
deceleration and reflection at the walls, vertically under gravity with a lossy bounce.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/glbb/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "write debug log to logs/glbb.log")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if debugFlag {
		c.Log.Debug = true
	}
	cfg = c

	logFile = setupLogging(c.Log.Debug)
	if c.Source != "" {
		log.Printf("config: loaded %s", c.Source)
	} else {
		log.Printf("config: defaults")
	}
	return nil
}
