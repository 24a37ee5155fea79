// Package tui provides the terminal front ends for the game: an interactive
// Bubble Tea program, a plain raw-terminal mode and the history browser.
package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Options configures a play session.
type Options struct {
	Seed   int64 // 0 means use the current time
	Config config.Config
	Store  *storage.Store // optional, nil plays without history
	Logger *log.Logger    // optional, nil discards log output
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

func (o Options) seed() int64 {
	if o.Seed != 0 {
		return o.Seed
	}
	return time.Now().UnixNano()
}

// Model is the Bubble Tea model for an interactive game.
// Every key event is one engine step; there is no timer.
type Model struct {
	engine   *engine.Engine
	state    engine.State
	seed     int64
	screen   *core.Screen
	style    engine.Style
	keys     KeyMap
	help     help.Model
	store    *storage.Store
	logger   *log.Logger
	saved    bool // whether the current game over has been recorded
	quitting bool
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// NewModel creates a model and starts the first game.
func NewModel(opts Options) Model {
	rc := core.DefaultConfig()
	m := Model{
		screen: core.NewScreen(rc.ScreenW, rc.ScreenH-1),
		style:  StyleFromConfig(opts.Config),
		keys:   NewKeyMap(opts.Config.Keys),
		help:   help.New(),
		store:  opts.Store,
		logger: opts.logger(),
	}
	m.start(opts.seed())
	return m
}

func (m *Model) start(seed int64) {
	m.seed = seed
	m.engine = engine.New(seed)
	m.state = m.engine.Start()
	m.saved = false
	m.logger.Info("game started", "seed", seed)
	m.logPiece()
}

func (m *Model) logPiece() {
	m.logger.Debug("piece spawned", "round", m.state.Round, "piece", m.state.Shape.Name())
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// last line is reserved for help
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 0))
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.state.Phase == engine.PhaseGameOver {
		if key.Matches(msg, m.keys.Restart) {
			m.start(time.Now().UnixNano())
		}
		return m, nil
	}

	round := m.state.Round
	m.state = m.engine.Press(m.state, m.keys.MapKey(msg))
	if m.state.Phase == engine.PhaseGameOver {
		m.finish()
	} else if m.state.Round != round {
		m.logPiece()
	}
	return m, nil
}

// finish logs and records a game that just ended.
func (m *Model) finish() {
	if m.saved {
		return
	}
	m.saved = true
	RecordGame(m.store, m.logger, m.seed, m.state)
}

// State returns the current game state.
func (m Model) State() engine.State {
	return m.state
}

// Seed returns the seed of the current game.
func (m Model) Seed() int64 {
	return m.seed
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	engine.Draw(m.screen, m.state.Snapshot(), m.style)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// RecordGame logs the end of a game and saves it to the store if there is one.
// Storage errors are logged and otherwise ignored.
func RecordGame(store *storage.Store, logger *log.Logger, seed int64, s engine.State) {
	logger.Info("game over", "seed", seed, "rounds", s.Round, "deleted", s.Deleted)
	if store == nil {
		return
	}
	if _, err := store.SaveGame(seed, s.Round, s.Deleted); err != nil {
		logger.Warn("cannot record game", "err", err)
	}
}

// Run starts the Bubble Tea program and returns the last game state.
func Run(opts Options) (engine.State, error) {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return engine.State{}, err
	}
	if m, ok := final.(Model); ok {
		return m.State(), nil
	}
	return engine.State{}, nil
}
