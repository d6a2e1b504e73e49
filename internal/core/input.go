package core

// Key identifies a keyboard key by its DOM-style name, e.g. "ArrowLeft",
// "Enter", "7" or "-". Printable keys are their own character.
type Key string

// Named keys the games and the host react to.
const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyEnter      Key = "Enter"
	KeyBackspace  Key = "Backspace"
	KeyEscape     Key = "Escape"
	KeyMinus      Key = "-"
)

// IsDigit reports whether the key is one of "0".."9".
func (k Key) IsDigit() bool {
	return len(k) == 1 && k[0] >= '0' && k[0] <= '9'
}

// String returns the key name.
func (k Key) String() string {
	return string(k)
}

// PointerEvent is a primary-button click in client coordinates.
// Sessions convert it with ToCanvas before hit-testing.
type PointerEvent struct {
	ClientX float64
	ClientY float64
}

// PressedKeys is the set of keys currently held down.
// Key-down adds, key-up removes; simulation reads it once per frame so
// movement is continuous while a key is held.
type PressedKeys map[Key]bool

// NewPressedKeys creates an empty set.
func NewPressedKeys() PressedKeys {
	return make(PressedKeys)
}

// Press marks the key as held.
func (p PressedKeys) Press(k Key) {
	p[k] = true
}

// Release marks the key as no longer held.
func (p PressedKeys) Release(k Key) {
	delete(p, k)
}

// Has returns true if the key is held.
func (p PressedKeys) Has(k Key) bool {
	return p[k]
}

// Clear releases all keys.
func (p PressedKeys) Clear() {
	for k := range p {
		delete(p, k)
	}
}
