package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

func TestPrintConfigDefaults(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printConfig(&out, "", true))
	require.Equal(t, string(config.DefaultYAML()), out.String())
}

func TestPrintConfigEffective(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("glyphs:\n  piece: \"X\"\n"), 0o600))

	var out bytes.Buffer
	require.NoError(t, printConfig(&out, path, false))

	cfg, err := config.Parse(out.Bytes())
	require.NoError(t, err)
	require.Equal(t, "X", cfg.Glyphs.Piece)
	require.Equal(t, config.Default().Keys, cfg.Keys)
}

func TestPrintConfigMissingPath(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, printConfig(&out, filepath.Join(t.TempDir(), "nope.yaml"), false))
	require.Empty(t, out.String())
}
