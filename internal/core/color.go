package core

// Color is a fill or text colour in CSS hex notation with an opacity.
// The zero value is "no colour": cells keep whatever was there.
type Color struct {
	Hex   string  // "#rrggbb" or "#rgb"
	Alpha float64 // 0..1, where 1 is opaque
}

// Hex returns an opaque colour.
func Hex(hex string) Color {
	return Color{Hex: hex, Alpha: 1}
}

// RGBA returns a translucent colour, e.g. RGBA("#000000", 0.8) for rgba(0,0,0,0.8).
func RGBA(hex string, alpha float64) Color {
	return Color{Hex: hex, Alpha: ClampF(alpha, 0, 1)}
}

// IsZero reports whether the colour is unset.
func (c Color) IsZero() bool {
	return c.Hex == ""
}

// Opaque reports whether the colour fully covers what lies beneath.
func (c Color) Opaque() bool {
	return c.Alpha >= 1
}

// Shared palette used across the games.
var (
	ColorAmber  = Hex("#FEC62E")
	ColorOrange = Hex("#FF6B35")
	ColorWhite  = Hex("#ffffff")
	ColorShade  = RGBA("#000000", 0.8) // game-over / win overlay
)
