package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/canvas-arcade/internal/platform/tui"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game. Esc returns to the card grid.

Controls:
  racing1, racing2  - Left/Right arrows steer
  math1             - Type the answer, Backspace edits, Enter submits
  math2, action1    - Click with the mouse
  puzzle1           - Click two cards to flip them
  Ctrl+C            - Quit

Examples:
  arcade play racing1
  arcade play math1 --seed 7
  arcade play puzzle1 --config ./arcade.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}
	return runTUI(gameID)
}

// runTUI starts the host shell, optionally inside a game.
func runTUI(gameID string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	width, height := terminalSize()
	logger.Debug("starting arcade", "game", gameID, "width", width, "height", height, "fps", cfg.Runtime.TickRate)

	return tui.Run(tui.Options{
		Config: cfg,
		Logger: logger,
		Width:  width,
		Height: height,
		GameID: gameID,
	})
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
