package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLoggerDiscards(t *testing.T) {
	logger, closeLog, err := newLogger("")
	require.NoError(t, err)
	defer closeLog()

	logger.Info("dropped")
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.log")

	logger, closeLog, err := newLogger(path)
	require.NoError(t, err)
	logger.Info("game started", "seed", 42)
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := string(data)
	require.Contains(t, line, "tetris")
	require.Contains(t, line, "game started")
	require.Contains(t, line, "seed=42")
}

func TestNewLoggerBadPath(t *testing.T) {
	_, _, err := newLogger(filepath.Join(t.TempDir(), "missing", "tetris.log"))
	require.Error(t, err)
}
