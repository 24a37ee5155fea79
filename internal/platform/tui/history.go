package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// maxHistory is the number of games loaded into the browser.
const maxHistory = 100

// HistoryKeyMap defines the key bindings for the history browser.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing finished games.
type HistoryModel struct {
	games    []storage.GameRecord
	best     *storage.GameRecord
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history browser over already loaded records.
func NewHistoryModel(games []storage.GameRecord, best *storage.GameRecord, width, height int) HistoryModel {
	m := HistoryModel{
		games:  games,
		best:   best,
		help:   help.New(),
		keys:   DefaultHistoryKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 6},
		{Title: "Seed", Width: 20},
		{Title: "Rounds", Width: 8},
		{Title: "Deleted", Width: 8},
		{Title: "Ended", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Clamp(m.height-8, 1, maxHistory)), // header, summary and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// HistoryRows formats records as table rows.
func HistoryRows(games []storage.GameRecord) []table.Row {
	rows := make([]table.Row, len(games))
	for i, g := range games {
		ended := "-"
		if !g.EndedAt.IsZero() {
			ended = g.EndedAt.Format("Jan 02 15:04")
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", g.ID),
			fmt.Sprintf("%d", g.Seed),
			fmt.Sprintf("%d", g.Rounds),
			fmt.Sprintf("%d", g.DeletedRows),
			ended,
		}
	}
	return rows
}

func (m *HistoryModel) updateTableRows() {
	m.table.SetRows(HistoryRows(m.games))
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("GAME HISTORY"))
	b.WriteString("\n")
	b.WriteString(BestSummary(m.best))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.games) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(boxStyle.Render(emptyStyle.Render("No games recorded yet.")))
	} else {
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// BestSummary describes the best recorded game in one line.
func BestSummary(best *storage.GameRecord) string {
	if best == nil {
		return "Best: none"
	}
	return fmt.Sprintf("Best: %d deleted rows in %d rounds (seed %d)", best.DeletedRows, best.Rounds, best.Seed)
}

// RunHistory loads the history and runs the browser.
func RunHistory(store *storage.Store, width, height int) error {
	games, err := store.RecentGames(maxHistory)
	if err != nil {
		return err
	}
	best, err := store.BestGame()
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewHistoryModel(games, best, width, height),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}
