package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

var flagCategory string

var listCmd = &cobra.Command{
	Use:   "list [term]",
	Short: "List all available games",
	Long: `Shows the games registered in the arcade, optionally narrowed to a
category and a search term matched against title, description and category.

Examples:
  arcade list
  arcade list --category math
  arcade list coins`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagCategory, "category", "all", "Category: all, racing, math, action, puzzle")
}

func runList(_ *cobra.Command, args []string) error {
	category, ok := registry.ParseCategory(flagCategory)
	if !ok {
		return fmt.Errorf("unknown category %q", flagCategory)
	}
	term := ""
	if len(args) == 1 {
		term = args[0]
	}

	games := registry.Filter(registry.List(), category, term)
	if len(games) == 0 {
		fmt.Println("No games match.")
		return nil
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := len("ID"), len("Title")
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %-8s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Category", "Description")
	fmt.Printf("  %s  %s  %s  %s\n", strings.Repeat("-", maxIDLen), strings.Repeat("-", maxTitleLen), "--------", "-----------")

	for _, g := range games {
		fmt.Printf("  %-*s  %-*s  %-8s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, g.Category, g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
	return nil
}
