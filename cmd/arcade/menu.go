package main

import (
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with the card grid",
	Long: `Start the arcade on the card grid.

Controls:
  Up/Down/j/k   - Move between games
  Tab/Shift+Tab - Change category
  /             - Search
  Enter         - Play the highlighted game
  Esc           - Leave a game (back to the grid)
  Q             - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --log-file arcade.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runTUI("")
	},
}
