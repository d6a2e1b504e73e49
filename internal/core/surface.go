package core

// TextAlign controls horizontal placement of text relative to its anchor.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
)

// TextBaseline controls vertical placement of text relative to its anchor.
type TextBaseline int

const (
	BaselineAlphabetic TextBaseline = iota // anchor y is the bottom of the glyphs
	BaselineMiddle                         // anchor y is the vertical middle
)

// TextStyle describes how FillText renders a string.
type TextStyle struct {
	Color    Color
	Size     float64 // font size in canvas units
	Bold     bool
	Align    TextAlign
	Baseline TextBaseline
}

// Surface is the shared drawing context a session renders into.
// Coordinates are canvas units; the host owns the surface and decides how
// units map to its output device.
type Surface interface {
	// Width and Height return the logical canvas size.
	Width() float64
	Height() float64

	// Clear erases the full surface.
	Clear()

	FillRect(x, y, w, h float64, c Color)
	StrokeRect(x, y, w, h float64, c Color, lineWidth float64)
	FillCircle(cx, cy, r float64, c Color)

	// Line draws a segment. A non-empty dash alternates drawn and skipped
	// lengths, like setLineDash.
	Line(x0, y0, x1, y1 float64, c Color, lineWidth float64, dash []float64)

	FillText(text string, x, y float64, style TextStyle)

	// BoundingClientRect is the surface's on-screen placement in the
	// client coordinates that pointer events carry.
	BoundingClientRect() Rect
}

// ToCanvas converts a pointer event from client coordinates into
// canvas-local coordinates using the surface's bounding rectangle.
func ToCanvas(ev PointerEvent, s Surface) Vec {
	r := s.BoundingClientRect()
	x := ev.ClientX - r.X
	y := ev.ClientY - r.Y
	if r.W > 0 {
		x *= s.Width() / r.W
	}
	if r.H > 0 {
		y *= s.Height() / r.H
	}
	return Vec{X: x, Y: y}
}
