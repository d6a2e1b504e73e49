// arcade is a collection of small canvas games played in the terminal.
//
// Usage:
//
//	arcade list [term]       - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Pick games from the card grid
//	arcade serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>    - Custom arcade.yaml
//	--fps <rate>       - Override the tick rate
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--log-file <path>  - Write debug logs to a file
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/canvas-arcade/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/canvas-arcade/internal/games/action1"
	_ "github.com/vovakirdan/canvas-arcade/internal/games/math1"
	_ "github.com/vovakirdan/canvas-arcade/internal/games/math2"
	_ "github.com/vovakirdan/canvas-arcade/internal/games/puzzle1"
	_ "github.com/vovakirdan/canvas-arcade/internal/games/racing1"
	_ "github.com/vovakirdan/canvas-arcade/internal/games/racing2"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Canvas Arcade - six quick games in your terminal",
	Long: `Canvas Arcade runs six small games (two racing, two math, one action
and one memory puzzle) on a canvas drawn in your terminal.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Pick games from the card grid
  serve    - Start SSH server for remote play

Examples:
  arcade list --category racing
  arcade play math1
  arcade menu --seed 42
  arcade serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom arcade.yaml")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = use config, random if unset)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the arcade config and applies the flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagFPS > 0 {
		cfg.Runtime.TickRate = flagFPS
	}
	if flagSeed != 0 {
		cfg.Runtime.Seed = flagSeed
	}
	return cfg, cfg.Validate()
}

// newLogger builds the logger for interactive modes. Those draw on the
// terminal, so logs go to --log-file or nowhere.
func newLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	if flagLogFile == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "arcade",
	})
	return logger, f, nil
}
