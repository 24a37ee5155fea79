package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMap holds the key bindings used during play.
// It implements help.KeyMap so the bindings double as the help line.
type KeyMap struct {
	Rotate  key.Binding
	Left    key.Binding
	Right   key.Binding
	Down    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Rotate:  newBinding(cfg.Rotate, "rotate"),
		Left:    newBinding(cfg.Left, "left"),
		Right:   newBinding(cfg.Right, "right"),
		Down:    newBinding(cfg.Down, "drop"),
		Restart: newBinding(cfg.Restart, "restart"),
		Quit:    newBinding(cfg.Quit, "quit"),
	}
}

func newBinding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

// helpKeys renders key names for the help line, e.g. "up/w/k".
func helpKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, "/")
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rotate, k.Left, k.Right, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Rotate, k.Left, k.Right, k.Down},
		{k.Restart, k.Quit},
	}
}

// MapKey translates a key message to the key the engine sees.
// Keys without a game binding map to core.KeyOther.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.KeyPress {
	switch {
	case key.Matches(msg, k.Rotate):
		return core.KeyUp
	case key.Matches(msg, k.Left):
		return core.KeyLeft
	case key.Matches(msg, k.Right):
		return core.KeyRight
	case key.Matches(msg, k.Down):
		return core.KeyDown
	}
	return core.KeyOther
}
