package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
)

const (
	keyEsc    = 0x1b
	keyCtrlC  = 0x03
	clearHome = "\x1b[H\x1b[2J"
)

// TerminalKeys reads arrow keys from a raw terminal byte stream.
// "ESC [ A".."ESC [ D" decode to arrows; everything else, including read
// errors, is core.KeyOther. 'q' and ctrl+c call the quit function.
type TerminalKeys struct {
	r    *bufio.Reader
	quit func()
}

// NewTerminalKeys wraps r. quit may be nil.
func NewTerminalKeys(r io.Reader, quit func()) *TerminalKeys {
	return &TerminalKeys{r: bufio.NewReader(r), quit: quit}
}

// ReadKey implements engine.KeyReader.
func (t *TerminalKeys) ReadKey() core.KeyPress {
	b, err := t.r.ReadByte()
	if err != nil {
		return core.KeyOther
	}

	switch b {
	case 'q', keyCtrlC:
		if t.quit != nil {
			t.quit()
		}
		return core.KeyOther
	case keyEsc:
		next, err := t.r.ReadByte()
		if err != nil || next != '[' {
			return core.KeyOther
		}
		final, err := t.r.ReadByte()
		if err != nil {
			return core.KeyOther
		}
		return core.DecodeArrow(final)
	}
	return core.KeyOther
}

// TerminalRenderer clears the terminal and prints the board as plain text.
type TerminalRenderer struct {
	w     io.Writer
	style engine.Style
	err   error
}

// NewTerminalRenderer writes frames to w.
func NewTerminalRenderer(w io.Writer, style engine.Style) *TerminalRenderer {
	return &TerminalRenderer{w: w, style: style}
}

// Render implements engine.Renderer. A raw terminal does not translate
// newlines, so lines end in CRLF.
func (t *TerminalRenderer) Render(snap engine.Snapshot) {
	if t.err != nil {
		return
	}
	text := strings.ReplaceAll(engine.Text(snap, t.style), "\n", "\r\n")
	_, t.err = io.WriteString(t.w, clearHome+text+"\r\n")
}

// Err returns the first write error, if any.
func (t *TerminalRenderer) Err() error {
	return t.err
}

// RunPlain plays one game on the process terminal without Bubble Tea.
// Stdin is switched to raw mode for the duration of the game.
func RunPlain(ctx context.Context, opts Options) (engine.State, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return engine.State{}, fmt.Errorf("tui: stdin is not a terminal")
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return engine.State{}, fmt.Errorf("tui: cannot enter raw mode: %w", err)
	}
	defer term.Restore(fd, old) //nolint:errcheck // best-effort restore on exit

	return PlayPlain(ctx, os.Stdin, os.Stdout, opts)
}

// PlayPlain runs a game reading keys from in and drawing frames to out.
// A finished game is recorded; a quit game is not.
func PlayPlain(ctx context.Context, in io.Reader, out io.Writer, opts Options) (engine.State, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := opts.logger()
	seed := opts.seed()
	logger.Info("game started", "seed", seed, "mode", "plain")

	renderer := NewTerminalRenderer(out, StyleFromConfig(opts.Config))
	keys := NewTerminalKeys(in, cancel)

	final, err := engine.New(seed).RunContext(ctx, renderer, keys)
	if err != nil {
		logger.Info("game quit", "seed", seed, "rounds", final.Round)
		return final, nil
	}
	if err := renderer.Err(); err != nil {
		return final, fmt.Errorf("tui: cannot draw: %w", err)
	}

	RecordGame(opts.Store, logger, seed, final)
	return final, nil
}
