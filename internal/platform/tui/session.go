package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dungeon-jump/internal/config"
	"github.com/vovakirdan/dungeon-jump/internal/core"
	"github.com/vovakirdan/dungeon-jump/internal/jumper"
	"github.com/vovakirdan/dungeon-jump/internal/prefs"
	"github.com/vovakirdan/dungeon-jump/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

func (s sessionScreen) String() string {
	switch s {
	case screenGame:
		return "game"
	case screenScores:
		return "scores"
	default:
		return "menu"
	}
}

// SessionModel chains the menu, runs and the scoreboard inside one program.
// Local play and every SSH connection use it.
type SessionModel struct {
	store      *storage.Store
	gameConfig config.Config
	config     core.RuntimeConfig
	opts       Options
	last       prefs.Prefs // Selection and name the menu reopens with
	screen     sessionScreen
	menu       MenuModel
	scoreboard ScoreboardModel
	gameModel  *Model
	err        error
	quitting   bool
}

// NewSessionModel opens a session on the menu with last preselected.
func NewSessionModel(store *storage.Store, gameCfg config.Config, cfg core.RuntimeConfig, last prefs.Prefs, opts Options) SessionModel {
	if opts.Name == "" {
		opts.Name = last.Name
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return SessionModel{
		store:      store,
		gameConfig: gameCfg,
		config:     cfg,
		opts:       opts,
		last:       last,
		menu:       NewMenuModel(cfg, last),
	}
}

func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update forwards msg to the open screen and follows its exit, if any.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = size.Width
		m.config.ScreenH = size.Height
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenGame:
		var next tea.Model
		next, cmd = m.gameModel.Update(msg)
		if g, ok := next.(Model); ok {
			m.gameModel = &g
		}
	case screenScores:
		var next tea.Model
		next, cmd = m.scoreboard.Update(msg)
		if b, ok := next.(ScoreboardModel); ok {
			m.scoreboard = b
		}
	default:
		var next tea.Model
		next, cmd = m.menu.Update(msg)
		if menu, ok := next.(MenuModel); ok {
			m.menu = menu
		}
	}

	if next, ok := m.transition(); ok {
		return m.enter(next)
	}
	if m.quitting {
		return m, tea.Quit
	}
	return m, cmd
}

// transition reports the screen the open one asked for. Child models quit
// their own program when done; inside a session that becomes a screen change
// instead, so their tea.Quit is dropped.
func (m *SessionModel) transition() (sessionScreen, bool) {
	switch m.screen {
	case screenGame:
		switch {
		case m.gameModel.IsQuitting():
			m.quitting = true
		case m.gameModel.BackToMenu():
			if name := m.gameModel.opts.Name; name != "" {
				m.opts.Name = name
				m.last.Name = name
			}
			return screenMenu, true
		}
	case screenScores:
		switch {
		case m.scoreboard.IsQuitting():
			m.quitting = true
		case m.scoreboard.IsGoingBack():
			return screenMenu, true
		}
	default:
		switch {
		case m.menu.IsQuitting():
			m.quitting = true
		case m.menu.WantsScoreboard():
			return screenScores, true
		case m.menu.Selected():
			m.last.Character = m.menu.Character()
			m.last.Difficulty = string(m.menu.Difficulty())
			return screenGame, true
		}
	}
	return m.screen, false
}

// enter switches to screen s with a fresh child model.
func (m SessionModel) enter(s sessionScreen) (tea.Model, tea.Cmd) {
	m.opts.Logger.Debug("screen", "from", m.screen, "to", s)
	m.gameModel = nil

	switch s {
	case screenGame:
		game, err := jumper.New(m.gameConfig, m.menu.Difficulty(), m.menu.Character())
		if err != nil {
			return m.fail(err)
		}
		g, err := NewModel(game, m.store, m.config, m.opts)
		if err != nil {
			return m.fail(err)
		}
		m.gameModel = &g
		m.screen = screenGame
		return m, g.Init()

	case screenScores:
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.scoreboard.Init()

	default:
		m.menu = NewMenuModel(m.config, m.last)
		m.screen = screenMenu
		return m, m.menu.Init()
	}
}

func (m SessionModel) fail(err error) (tea.Model, tea.Cmd) {
	m.opts.Logger.Error("cannot start run", "error", err)
	m.err = err
	m.quitting = true
	return m, tea.Quit
}

// View renders the open screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.gameModel.View()
	case screenScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// Err returns the error that ended the session, if any.
func (m SessionModel) Err() error {
	return m.err
}

// RunSession runs a session in the local terminal.
func RunSession(store *storage.Store, gameCfg config.Config, cfg core.RuntimeConfig, last prefs.Prefs, opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(store, gameCfg, cfg, last, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Clicks aim fireballs
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(SessionModel); ok {
		return m.Err()
	}
	return nil
}
