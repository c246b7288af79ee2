package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dungeon-jump/internal/assets"
	"github.com/vovakirdan/dungeon-jump/internal/config"
	"github.com/vovakirdan/dungeon-jump/internal/core"
	"github.com/vovakirdan/dungeon-jump/internal/prefs"
)

// MenuModel is the Bubble Tea model for the character and difficulty picker.
type MenuModel struct {
	characters     []*assets.Character
	difficulties   []config.Difficulty
	cursor         int
	difficulty     int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	tick           int
	quitting       bool
	selected       bool
	openScoreboard bool // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu with the cursor on the last choice.
func NewMenuModel(cfg core.RuntimeConfig, last prefs.Prefs) MenuModel {
	m := MenuModel{
		characters:   assets.List(),
		difficulties: config.Difficulties(),
		difficulty:   1,
		width:        cfg.ScreenW,
		height:       cfg.ScreenH,
		config:       cfg,
		keyMapper:    NewKeyMapper(),
	}

	id := last.Character
	if id == "" {
		id = assets.DefaultCharacter
	}
	if i := slices.IndexFunc(m.characters, func(c *assets.Character) bool { return c.ID == id }); i >= 0 {
		m.cursor = i
	}
	if d, err := config.ParseDifficulty(last.Difficulty); err == nil && last.Difficulty != "" {
		m.difficulty = slices.Index(m.difficulties, d)
	}
	return m
}

// menuTickRate paces the character preview animation.
const menuTickRate = 10

// menuTickMsg animates the menu. It is separate from TickMsg so a tick still
// in flight when a run starts does not step the game.
type menuTickMsg time.Time

func menuTickCmd() tea.Cmd {
	return tea.Tick(time.Second/menuTickRate, func(t time.Time) tea.Msg {
		return menuTickMsg(t)
	})
}

// Init starts the idle animation.
func (m MenuModel) Init() tea.Cmd {
	return menuTickCmd()
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil

	case menuTickMsg:
		if m.selected || m.quitting || m.openScoreboard {
			return m, nil
		}
		m.tick++
		return m, menuTickCmd()
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.characters)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.difficulty = (m.difficulty + len(m.difficulties) - 1) % len(m.difficulties)

	case MenuActionRight:
		m.difficulty = (m.difficulty + 1) % len(m.difficulties)

	case MenuActionSelect:
		if len(m.characters) > 0 {
			m.selected = true
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("D U N G E O N   J U M P"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose your hero", m.width))
	b.WriteString("\n\n")

	for i, c := range m.characters {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		frame := c.Idle[assets.FaceRight]
		if i == m.cursor {
			frame = c.RunRight[m.tick%len(c.RunRight)]
		}
		line := fmt.Sprintf("%s%s  %-12s", cursor, Paint(string(frame), c.Color), c.Title)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Difficulty:  < %s >", m.Difficulty()), m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Hero  |  Left/Right: Difficulty  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Character returns the highlighted character ID.
func (m MenuModel) Character() string {
	if len(m.characters) == 0 {
		return assets.DefaultCharacter
	}
	return m.characters[m.cursor].ID
}

// Difficulty returns the chosen difficulty.
func (m MenuModel) Difficulty() config.Difficulty {
	return m.difficulties[m.difficulty]
}

// Selected reports whether the user picked a character to play.
func (m MenuModel) Selected() bool {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
