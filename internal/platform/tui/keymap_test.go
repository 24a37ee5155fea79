package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapDefaults(t *testing.T) {
	km := NewKeyMap(config.Default().Keys)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.KeyPress
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp},
		{"w", runeKey('w'), core.KeyUp},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft},
		{"h", runeKey('h'), core.KeyLeft},
		{"d", runeKey('d'), core.KeyRight},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeyDown},
		{"unbound", runeKey('x'), core.KeyOther},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyOther},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, km.MapKey(tc.msg))
		})
	}
}

func TestKeyMapCustom(t *testing.T) {
	keys := config.Default().Keys
	keys.Rotate = []string{"x"}
	km := NewKeyMap(keys)

	require.Equal(t, core.KeyUp, km.MapKey(runeKey('x')))
	require.Equal(t, core.KeyOther, km.MapKey(tea.KeyMsg{Type: tea.KeyUp}))
}

func TestHelpKeys(t *testing.T) {
	require.Equal(t, "down/space", helpKeys([]string{"down", " "}))
	require.Equal(t, "q", helpKeys([]string{"q"}))

	km := NewKeyMap(config.Default().Keys)
	require.Len(t, km.ShortHelp(), 5)
	require.Equal(t, "up/w/k", km.Rotate.Help().Key)
}
