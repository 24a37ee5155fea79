package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Keys: KeysConfig{
			Rotate:  []string{"up", "w", "k"},
			Left:    []string{"left", "a", "h"},
			Right:   []string{"right", "d", "l"},
			Down:    []string{"down", "s", "j", " "},
			Restart: []string{"r"},
			Quit:    []string{"q", "ctrl+c"},
		},
		Glyphs: GlyphsConfig{
			Locked:    "#",
			Piece:     "O",
			Separator: "|",
			Fill:      " ",
			Floor:     "_",
			Rule:      "=",
		},
		Colors: ColorsConfig{
			Board: "yellow",
			Wall:  "gray",
			Piece: "cyan",
			HUD:   "white",
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
