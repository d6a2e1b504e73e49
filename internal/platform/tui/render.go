package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// cellStyle is the part of a cell that maps to terminal attributes.
type cellStyle struct {
	fg, bg string
	bold   bool
}

func styleOf(c core.Cell) cellStyle {
	return cellStyle{fg: c.Fg.Hex, bg: c.Bg.Hex, bold: c.Bold}
}

func (s cellStyle) lipgloss() lipgloss.Style {
	st := lipgloss.NewStyle().Bold(s.bold)
	if s.fg != "" {
		st = st.Foreground(lipgloss.Color(s.fg))
	}
	if s.bg != "" {
		st = st.Background(lipgloss.Color(s.bg))
	}
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := styleOf(s.Get(x, y))

			var run strings.Builder
			for x < s.Width() {
				cell := s.Get(x, y)
				if styleOf(cell) != start {
					break
				}
				// Continuation cells are covered by the wide glyph before them
				if cell.Rune != 0 {
					run.WriteRune(cell.Rune)
				}
				x++
			}
			sb.WriteString(start.lipgloss().Render(run.String()))
		}
	}
	return sb.String()
}
