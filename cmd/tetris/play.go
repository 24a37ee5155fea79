package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/engine"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagPlain bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game.

Controls (defaults, see configs/tetris.yaml):
  Up/W/K        - Rotate
  Left/A/H      - Move left
  Right/D/L     - Move right
  Down/S/J/Space - Drop one row
  R             - Restart (after game over)
  Q/Ctrl+C      - Quit

Every key, bound or not, ends with the piece dropping one row.

With --plain the game runs without the full-screen UI: stdin is put in
raw mode and only the arrow keys move the piece.

Examples:
  tetris play
  tetris play --seed 42
  tetris play --plain
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Plain raw-terminal mode without the full-screen UI")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	// History is optional; play on without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("playing without history", "err", err)
	}
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Seed:   flagSeed,
		Config: cfg,
		Store:  store,
		Logger: logger,
	}

	var final engine.State
	if flagPlain {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		final, err = tui.RunPlain(ctx, opts)
	} else {
		final, err = tui.Run(opts)
	}
	if err != nil {
		logger.Error("game aborted", "err", err)
		return err
	}

	printSummary(cmd.OutOrStdout(), final)
	return nil
}

func printSummary(w io.Writer, s engine.State) {
	if s.Phase != engine.PhaseGameOver {
		return
	}
	fmt.Fprintf(w, "Game over in round %d, %d rows deleted.\n", s.Round, s.Deleted)
}
