package config

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration.
// Search order: customPath -> ~/.tetris/config.yaml -> ./configs/tetris.yaml -> embedded default.
// Only a broken customPath is an error; the other locations are skipped when
// missing or invalid.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "tetris.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of the defaults, so a file only needs
// the keys it changes, and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every glyph is a single character and every action
// has at least one key. Fields are checked in a fixed order, so the first
// problem reported is stable.
func (c Config) Validate() error {
	glyphs := []struct {
		name  string
		glyph string
	}{
		{"locked", c.Glyphs.Locked},
		{"piece", c.Glyphs.Piece},
		{"separator", c.Glyphs.Separator},
		{"fill", c.Glyphs.Fill},
		{"floor", c.Glyphs.Floor},
		{"rule", c.Glyphs.Rule},
	}
	for _, g := range glyphs {
		if utf8.RuneCountInString(g.glyph) != 1 {
			return fmt.Errorf("glyph %q must be one character, got %q", g.name, g.glyph)
		}
	}

	keys := []struct {
		name string
		keys []string
	}{
		{"rotate", c.Keys.Rotate},
		{"left", c.Keys.Left},
		{"right", c.Keys.Right},
		{"down", c.Keys.Down},
		{"restart", c.Keys.Restart},
		{"quit", c.Keys.Quit},
	}
	for _, k := range keys {
		if len(k.keys) == 0 {
			return fmt.Errorf("no keys bound to %q", k.name)
		}
	}
	return nil
}

// YAML encodes the configuration in the same layout Load reads.
func (c Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", filename)
}
