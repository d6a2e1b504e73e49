package core

import (
	"strings"
)

// Cell is one character position of the screen buffer.
// A zero Rune marks the right half of a double-width glyph.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
	Bold bool
}

var blankCell = Cell{Rune: ' '}

// Screen is a 2D cell buffer that a Canvas rasterizes into.
// It decouples drawing from the terminal: the platform layer turns cells
// into styled text.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 1),
		height: max(height, 1),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded because every
// frame redraws the full surface.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear resets every cell to an unstyled space.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// InBounds reports whether (x, y) addresses a cell.
func (s *Screen) InBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Cell) {
	if !s.InBounds(x, y) {
		return
	}
	s.cells[y][x] = c
}

// Get returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Cell {
	if !s.InBounds(x, y) {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawBox draws a box outline between two inclusive corners using
// box-drawing characters in the given colour. Backgrounds are kept.
func (s *Screen) DrawBox(x0, y0, x1, y1 int, fg Color) {
	put := func(x, y int, r rune) {
		if !s.InBounds(x, y) {
			return
		}
		c := s.cells[y][x]
		c.Rune = r
		c.Fg = fg
		s.cells[y][x] = c
	}

	// Horizontal edges
	for x := x0 + 1; x < x1; x++ {
		put(x, y0, '─')
		put(x, y1, '─')
	}

	// Vertical edges
	for y := y0 + 1; y < y1; y++ {
		put(x0, y, '│')
		put(x1, y, '│')
	}

	// Corners
	put(x0, y0, '┌')
	put(x1, y0, '┐')
	put(x0, y1, '└')
	put(x1, y1, '┘')
}

// String converts the screen buffer to plain text without styling.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height) // Pre-allocate for efficiency

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the text of the specified row.
// Continuation cells of wide glyphs are skipped.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		if c.Rune == 0 {
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
