package core

// Color represents a foreground color for a screen cell.
// The platform layer maps it onto ANSI 256-color codes.
type Color uint8

// Colors used by the board renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

var colorNames = map[string]Color{
	"default": ColorDefault,
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
	"orange":  ColorOrange,
	"gray":    ColorGray,
}

// ParseColor returns the color with the given config name.
// Unknown names map to ColorDefault.
func ParseColor(name string) Color {
	if c, ok := colorNames[name]; ok {
		return c
	}
	return ColorDefault
}
