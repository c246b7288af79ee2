package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dungeon-jump/internal/core"
	"github.com/vovakirdan/dungeon-jump/internal/jumper"
	"github.com/vovakirdan/dungeon-jump/internal/leaderboard"
	"github.com/vovakirdan/dungeon-jump/internal/prefs"
	"github.com/vovakirdan/dungeon-jump/internal/storage"
	"github.com/vovakirdan/dungeon-jump/internal/world"
)

// Options are the per-player settings of a Model.
type Options struct {
	// Name is offered in the high score prompt and used for scores that
	// don't make the leaderboard.
	Name string

	// Prefs, when set, remembers the name and selection between runs.
	Prefs *prefs.Manager

	// Logger receives warnings about storage failures. Nil discards them.
	Logger *log.Logger
}

// Model is the Bubble Tea model for one player's run.
type Model struct {
	game       *jumper.Game
	screen     *core.Screen
	store      *storage.Store
	opts       Options
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	held       heldKey
	gameState  core.GameState
	nameInput  textinput.Model
	naming     bool // Whether the high score prompt is open
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel starts a run of game and wraps it in a Bubble Tea model.
func NewModel(game *jumper.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (Model, error) {
	cfg = cfg.Normalize()
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if err := game.Reset(cfg); err != nil {
		return Model{}, err
	}
	game.Resize(cfg.ScreenW, cfg.ScreenH)

	input := textinput.New()
	input.Placeholder = "your name"
	input.CharLimit = leaderboard.MaxNameLen
	input.Width = leaderboard.MaxNameLen + 1
	input.Prompt = "> "

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		opts:       opts,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		nameInput:  input,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.naming {
			return m.handleNameKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if x, y, ok := m.keyMapper.MapMouse(msg); ok && !m.naming {
			m.inputFrame.SetFire(x, y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	if m.naming {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input during play.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		m.held.press(action, holdTicks(m.config.TickRate))
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, tea.Quit
		}
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case core.ActionNone, core.ActionConfirm:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleNameKey routes keys to the high score prompt.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.saveScore(m.nameInput.Value())
		m.closePrompt()
		return m, nil
	case "esc":
		m.saveScore(m.opts.Name)
		m.closePrompt()
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handleResize keeps the run going at the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver && !m.naming {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	var cmd tea.Cmd
	if !m.naming {
		m.held.apply(&m.inputFrame)
		result := m.game.Step(m.inputFrame)
		m.gameState = result.State
		m.logEvents()

		if m.gameState.GameOver && !m.scoreSaved {
			m.opts.Logger.Debug("run over",
				"score", m.gameState.Score,
				"cause", m.game.Cause().String(),
				"character", m.game.Character().ID,
			)
			cmd = m.finishRun()
		}
	}

	m.inputFrame.Clear()
	return m, tea.Batch(cmd, tickCmd(m.config.TickRate))
}

// logEvents reports the events of the last step at debug level. Score
// changes happen nearly every climbing frame and are left out.
func (m *Model) logEvents() {
	for _, e := range m.game.Events() {
		switch e.Kind {
		case world.EventScoreChanged, world.EventPlatformRecycled:
		case world.EventPowerup:
			m.opts.Logger.Debug("event", "kind", e.Kind, "powerup", e.Powerup)
		case world.EventPlayerDied:
			m.opts.Logger.Debug("event", "kind", e.Kind, "cause", e.Cause)
		default:
			m.opts.Logger.Debug("event", "kind", e.Kind, "score", m.gameState.Score)
		}
	}
}

// restart begins a new run with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	if err := m.game.Reset(m.config); err != nil {
		m.opts.Logger.Error("cannot restart run", "error", err)
		m.quitting = true
		return
	}
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.held.release()
	m.inputFrame.Clear()
}

// finishRun records the finished run once. A score that makes the top of
// the leaderboard opens the name prompt; any other score is stored under the
// default name right away.
func (m *Model) finishRun() tea.Cmd {
	m.scoreSaved = true
	m.held.release()
	if m.store == nil || m.gameState.Score <= 0 {
		return nil
	}

	entries, err := m.store.Leaderboard(string(m.game.Difficulty()), leaderboard.DefaultSize)
	if err != nil {
		m.opts.Logger.Warn("cannot read leaderboard", "error", err)
	}
	if !leaderboard.Qualifies(entries, m.gameState.Score, leaderboard.DefaultSize) {
		m.saveScore(m.opts.Name)
		return nil
	}

	m.naming = true
	m.nameInput.SetValue(m.opts.Name)
	m.nameInput.CursorEnd()
	return m.nameInput.Focus()
}

func (m *Model) closePrompt() {
	m.naming = false
	m.nameInput.Blur()
}

// saveScore stores the finished run under name and remembers the name.
func (m *Model) saveScore(name string) {
	if name == "" {
		name = m.opts.Name
	}
	if m.store != nil {
		_, err := m.store.SaveScore(storage.ScoreEntry{
			Name:       name,
			Difficulty: string(m.game.Difficulty()),
			Character:  m.game.Character().ID,
			Score:      m.gameState.Score,
		})
		if err != nil {
			m.opts.Logger.Warn("cannot save score", "error", err)
		}
	}

	m.opts.Name = name
	if m.opts.Prefs == nil {
		return
	}
	err := m.opts.Prefs.Save(prefs.Prefs{
		Character:  m.game.Character().ID,
		Difficulty: string(m.game.Difficulty()),
		Name:       name,
	})
	if err != nil {
		m.opts.Logger.Warn("cannot save preferences", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".dungeon-jump", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.naming {
		return m.namePromptView()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

func (m Model) namePromptView() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 3)

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("NEW HIGH SCORE"),
		"",
		fmt.Sprintf("%d  (%s)", m.gameState.Score, m.game.Cause()),
		"",
		m.nameInput.View(),
		"",
		hintStyle.Render("Enter: save  |  Esc: skip"),
	)
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH,
		lipgloss.Center, lipgloss.Center, boxStyle.Render(body))
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the terminal until the player quits or goes back.
// Returns true if the player asked for the menu.
func Run(game *jumper.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model, err := NewModel(game, store, cfg, opts)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Clicks aim fireballs
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	return ok && m.BackToMenu(), nil
}
