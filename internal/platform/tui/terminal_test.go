package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
)

func TestTerminalKeysDecode(t *testing.T) {
	keys := NewTerminalKeys(strings.NewReader("\x1b[A\x1b[D\x1b[C\x1b[Bx\x1b[Z\x1bO"), nil)

	want := []core.KeyPress{
		core.KeyUp,
		core.KeyLeft,
		core.KeyRight,
		core.KeyDown,
		core.KeyOther, // x
		core.KeyOther, // ESC [ Z
		core.KeyOther, // ESC O
		core.KeyOther, // EOF
		core.KeyOther,
	}
	for i, w := range want {
		require.Equal(t, w, keys.ReadKey(), "key %d", i)
	}
}

func TestTerminalKeysQuit(t *testing.T) {
	quits := 0
	keys := NewTerminalKeys(strings.NewReader("q\x03a"), func() { quits++ })

	require.Equal(t, core.KeyOther, keys.ReadKey())
	require.Equal(t, core.KeyOther, keys.ReadKey())
	require.Equal(t, 2, quits)
	require.Equal(t, core.KeyOther, keys.ReadKey())
	require.Equal(t, 2, quits)
}

func TestTerminalRenderer(t *testing.T) {
	var out bytes.Buffer
	r := NewTerminalRenderer(&out, engine.DefaultStyle())

	r.Render(engine.NewSequence().Start().Snapshot())
	require.NoError(t, r.Err())

	text := out.String()
	require.True(t, strings.HasPrefix(text, clearHome))
	require.Contains(t, text, "BOARD:\r\n")
	require.Contains(t, text, "ROUND: 0; DELETED ROWS: 0")
	require.NotContains(t, strings.ReplaceAll(text, "\r\n", ""), "\n")
}

type failingWriter struct{ writes int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.writes++
	return 0, errors.New("closed")
}

func TestTerminalRendererStopsAfterError(t *testing.T) {
	w := &failingWriter{}
	r := NewTerminalRenderer(w, engine.DefaultStyle())
	snap := engine.NewSequence().Start().Snapshot()

	r.Render(snap)
	r.Render(snap)
	require.Error(t, r.Err())
	require.Equal(t, 1, w.writes)
}

func TestPlayPlainRecordsFinishedGame(t *testing.T) {
	store := openStore(t)
	var out bytes.Buffer

	// EOF reads as KeyOther, so the game plays out without moves
	final, err := PlayPlain(context.Background(), strings.NewReader(""), &out, Options{
		Seed:   42,
		Config: config.Default(),
		Store:  store,
	})
	require.NoError(t, err)
	require.Equal(t, engine.PhaseGameOver, final.Phase)
	require.Contains(t, out.String(), "GAME OVER")

	best, err := store.BestGame()
	require.NoError(t, err)
	require.NotNil(t, best)
	require.Equal(t, int64(42), best.Seed)
	require.Equal(t, final.Round, best.Rounds)
}

func TestPlayPlainQuitIsNotRecorded(t *testing.T) {
	store := openStore(t)
	var out bytes.Buffer

	final, err := PlayPlain(context.Background(), strings.NewReader("\x1b[Bq"), &out, Options{
		Seed:   42,
		Config: config.Default(),
		Store:  store,
	})
	require.NoError(t, err)
	require.Equal(t, engine.PhaseMoving, final.Phase)
	require.Equal(t, engine.SpawnRow-2, final.Row)

	n, err := store.CountGames()
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestStyleFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Glyphs.Piece = "@"
	cfg.Colors.Piece = "red"

	st := StyleFromConfig(cfg)
	require.Equal(t, '@', st.Piece)
	require.Equal(t, '#', st.Locked)
	require.Equal(t, core.ColorRed, st.PieceColor)
	require.Equal(t, core.ColorGray, st.WallColor)

	require.Equal(t, StyleFromConfig(config.Default()), engine.DefaultStyle())
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.Set(0, 1, 'x')

	out := RenderScreen(s)
	require.Contains(t, out, "ab")
	require.Contains(t, out, "cd")
	require.Equal(t, 2, len(strings.Split(out, "\n")))
}
