package core

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// Canvas implements Surface by rasterizing canvas-unit drawing operations
// onto a Screen. A cell is painted when its center falls inside a shape;
// shapes smaller than a cell still paint the cell holding their center.
type Canvas struct {
	screen *Screen
	width  float64
	height float64
	bounds Rect
}

var _ Surface = (*Canvas)(nil)

// NewCanvas creates a canvas of the given logical size drawing into screen.
// The bounding client rect defaults to the canvas itself, so client and
// canvas coordinates coincide until the host calls SetBounds.
func NewCanvas(screen *Screen, width, height float64) *Canvas {
	return &Canvas{
		screen: screen,
		width:  width,
		height: height,
		bounds: NewRect(0, 0, width, height),
	}
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// SetBounds sets the on-screen placement reported by BoundingClientRect.
func (c *Canvas) SetBounds(r Rect) {
	c.bounds = r
}

// Width returns the logical canvas width.
func (c *Canvas) Width() float64 {
	return c.width
}

// Height returns the logical canvas height.
func (c *Canvas) Height() float64 {
	return c.height
}

// BoundingClientRect returns the canvas placement in client coordinates.
func (c *Canvas) BoundingClientRect() Rect {
	return c.bounds
}

// cellW and cellH are the canvas units covered by one cell.
func (c *Canvas) cellW() float64 { return c.width / float64(c.screen.Width()) }
func (c *Canvas) cellH() float64 { return c.height / float64(c.screen.Height()) }

// cellAt returns the cell holding the canvas point (x, y).
func (c *Canvas) cellAt(x, y float64) (int, int) {
	return int(math.Floor(x / c.cellW())), int(math.Floor(y / c.cellH()))
}

// cellCenter returns the canvas point at the center of cell (cx, cy).
func (c *Canvas) cellCenter(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * c.cellW(), (float64(cy) + 0.5) * c.cellH()
}

// Clear erases the full surface.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// FillRect paints the background of every cell whose center lies in the rect.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	if w <= 0 || h <= 0 || col.IsZero() {
		return
	}
	c.fill(func(px, py float64) bool {
		return px >= x && px < x+w && py >= y && py < y+h
	}, x, y, x+w, y+h, col)
}

// FillCircle paints every cell whose center lies within radius r.
func (c *Canvas) FillCircle(cx, cy, r float64, col Color) {
	if r <= 0 || col.IsZero() {
		return
	}
	center := Vec{X: cx, Y: cy}
	c.fill(func(px, py float64) bool {
		return Dist(center, Vec{X: px, Y: py}) <= r
	}, cx-r, cy-r, cx+r, cy+r, col)
}

// fill paints cells within the bounding box whose centers satisfy inside.
func (c *Canvas) fill(inside func(px, py float64) bool, x0, y0, x1, y1 float64, col Color) {
	minX, minY := c.cellAt(x0, y0)
	maxX, maxY := c.cellAt(x1, y1)
	painted := false
	for cy := max(minY, 0); cy <= min(maxY, c.screen.Height()-1); cy++ {
		for cx := max(minX, 0); cx <= min(maxX, c.screen.Width()-1); cx++ {
			px, py := c.cellCenter(cx, cy)
			if inside(px, py) {
				c.paint(cx, cy, col)
				painted = true
			}
		}
	}
	if !painted {
		// Shape is smaller than a cell: paint the cell holding its center.
		cx, cy := c.cellAt((x0+x1)/2, (y0+y1)/2)
		c.paint(cx, cy, col)
	}
}

// paint blends col over the background of one cell.
// Opaque or mostly opaque fills hide any glyph underneath.
func (c *Canvas) paint(cx, cy int, col Color) {
	if !c.screen.InBounds(cx, cy) {
		return
	}
	cell := c.screen.Get(cx, cy)
	cell.Bg = blend(cell.Bg, col)
	if col.Alpha >= 0.5 {
		cell.Rune = ' '
		cell.Fg = Color{}
		cell.Bold = false
	}
	c.screen.Set(cx, cy, cell)
}

// StrokeRect outlines the rect with box-drawing characters.
func (c *Canvas) StrokeRect(x, y, w, h float64, col Color, _ float64) {
	if w <= 0 || h <= 0 || col.IsZero() {
		return
	}
	x0, y0 := c.cellAt(x, y)
	x1, y1 := c.cellAt(x+w-c.cellW()/2, y+h-c.cellH()/2)
	c.screen.DrawBox(x0, y0, x1, y1, opaque(col))
}

// Line draws a segment by sampling it at half-cell steps.
func (c *Canvas) Line(x0, y0, x1, y1 float64, col Color, lineWidth float64, dash []float64) {
	if col.IsZero() {
		return
	}
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	glyph := lineGlyph(dx, dy, lineWidth)
	step := math.Min(c.cellW(), c.cellH()) / 2
	fg := opaque(col)

	for d := 0.0; d <= length; d += step {
		if !dashOn(dash, d) {
			continue
		}
		px := x0 + dx*d/length
		py := y0 + dy*d/length
		cx, cy := c.cellAt(px, py)
		if !c.screen.InBounds(cx, cy) {
			continue
		}
		cell := c.screen.Get(cx, cy)
		cell.Rune = glyph
		cell.Fg = fg
		c.screen.Set(cx, cy, cell)
	}
}

// dashOn reports whether distance d along a line falls in a drawn segment.
func dashOn(dash []float64, d float64) bool {
	if len(dash) == 0 {
		return true
	}
	period := 0.0
	for _, seg := range dash {
		period += seg
	}
	if period <= 0 {
		return true
	}
	pos := math.Mod(d, period)
	for i, seg := range dash {
		if pos < seg {
			return i%2 == 0
		}
		pos -= seg
	}
	return false
}

func lineGlyph(dx, dy, lineWidth float64) rune {
	heavy := lineWidth >= 4
	switch {
	case math.Abs(dx) < 1e-9:
		if heavy {
			return '┃'
		}
		return '│'
	case math.Abs(dy) < 1e-9:
		if heavy {
			return '━'
		}
		return '─'
	default:
		return '•'
	}
}

// FillText writes text into the row holding its visual middle.
// Wide glyphs occupy two cells; the second is a continuation cell.
func (c *Canvas) FillText(text string, x, y float64, style TextStyle) {
	if text == "" {
		return
	}
	mid := y
	if style.Baseline == BaselineAlphabetic {
		mid = y - style.Size*0.35
	}
	_, row := c.cellAt(x, mid)

	width := runewidth.StringWidth(text)
	col, _ := c.cellAt(x, mid)
	if style.Align == AlignCenter {
		col = int(math.Round(x/c.cellW() - float64(width)/2))
	}

	fg := opaque(style.Color)
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.glyph(col, row, r, fg, style.Bold)
		if w == 2 {
			c.glyph(col+1, row, 0, fg, style.Bold)
		}
		col += w
	}
}

func (c *Canvas) glyph(cx, cy int, r rune, fg Color, bold bool) {
	if !c.screen.InBounds(cx, cy) {
		return
	}
	cell := c.screen.Get(cx, cy)
	cell.Rune = r
	cell.Fg = fg
	cell.Bold = bold
	c.screen.Set(cx, cy, cell)
}

// blend composites src over dst and returns an opaque result.
func blend(dst, src Color) Color {
	if src.Opaque() {
		return src
	}
	base := colorful.Color{} // an unset background reads as black
	if !dst.IsZero() {
		if parsed, err := colorful.Hex(dst.Hex); err == nil {
			base = parsed
		}
	}
	top, err := colorful.Hex(src.Hex)
	if err != nil {
		return dst
	}
	return Hex(base.BlendRgb(top, src.Alpha).Clamped().Hex())
}

// opaque drops translucency for glyph colours, which terminals cannot blend.
func opaque(c Color) Color {
	if c.IsZero() {
		return c
	}
	return Hex(c.Hex)
}
