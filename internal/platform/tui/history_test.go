package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func TestHistoryRows(t *testing.T) {
	ended := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
	rows := HistoryRows([]storage.GameRecord{
		{ID: 2, Seed: 99, Rounds: 40, DeletedRows: 3, EndedAt: ended},
		{ID: 1, Seed: -5, Rounds: 13},
	})

	require.Len(t, rows, 2)
	require.Equal(t, []string{"2", "99", "40", "3", "Mar 05 14:30"}, []string(rows[0]))
	require.Equal(t, "-", rows[1][4])
	require.Equal(t, "-5", rows[1][1])
}

func TestBestSummary(t *testing.T) {
	require.Equal(t, "Best: none", BestSummary(nil))
	require.Equal(t,
		"Best: 7 deleted rows in 52 rounds (seed 12)",
		BestSummary(&storage.GameRecord{Seed: 12, Rounds: 52, DeletedRows: 7}),
	)
}

func TestHistoryModelView(t *testing.T) {
	empty := NewHistoryModel(nil, nil, 80, 24)
	require.Contains(t, empty.View(), "No games recorded yet.")
	require.Contains(t, empty.View(), "Best: none")

	games := []storage.GameRecord{{ID: 1, Seed: 77, Rounds: 20, DeletedRows: 2}}
	m := NewHistoryModel(games, &games[0], 80, 24)
	view := m.View()
	require.Contains(t, view, "GAME HISTORY")
	require.Contains(t, view, "77")
	require.NotContains(t, view, "No games recorded yet.")
}

func TestHistoryModelQuit(t *testing.T) {
	m := NewHistoryModel(nil, nil, 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	require.Equal(t, "", next.View())
}

func TestHistoryModelResize(t *testing.T) {
	games := []storage.GameRecord{{ID: 1, Seed: 1, Rounds: 13}}
	m := NewHistoryModel(games, nil, 80, 24)

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 4})
	require.Nil(t, cmd)
	require.Contains(t, next.View(), "GAME HISTORY")
}
