// Package config provides YAML-based configuration loading for the game:
// key bindings, board glyphs and colors.
package config

// Config contains all user-tunable settings.
type Config struct {
	Keys   KeysConfig   `yaml:"keys"`
	Glyphs GlyphsConfig `yaml:"glyphs"`
	Colors ColorsConfig `yaml:"colors"`
}

// KeysConfig lists the Bubble Tea key names bound to each action.
type KeysConfig struct {
	Rotate  []string `yaml:"rotate"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Down    []string `yaml:"down"`
	Restart []string `yaml:"restart"`
	Quit    []string `yaml:"quit"`
}

// GlyphsConfig defines the characters used to draw the board.
// Each entry must be exactly one character.
type GlyphsConfig struct {
	Locked    string `yaml:"locked"`
	Piece     string `yaml:"piece"`
	Separator string `yaml:"separator"`
	Fill      string `yaml:"fill"`
	Floor     string `yaml:"floor"`
	Rule      string `yaml:"rule"`
}

// ColorsConfig names the colors of board elements (see core.ParseColor).
type ColorsConfig struct {
	Board string `yaml:"board"`
	Wall  string `yaml:"wall"`
	Piece string `yaml:"piece"`
	HUD   string `yaml:"hud"`
}
