package core

// KeyPress is a decoded key as seen by the game engine.
// Anything that is not an arrow key decodes to KeyOther.
type KeyPress int

const (
	KeyOther KeyPress = iota
	KeyUp             // rotate
	KeyDown           // no change
	KeyLeft           // shift one column left
	KeyRight          // shift one column right
)

// String returns a human-readable name for the key.
func (k KeyPress) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "Other"
	}
}

// DecodeArrow maps the final byte of an "ESC [ x" sequence to a key.
// Unknown bytes decode to KeyOther.
func DecodeArrow(b byte) KeyPress {
	switch b {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	}
	return KeyOther
}
