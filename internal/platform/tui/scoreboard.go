package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dungeon-jump/internal/assets"
	"github.com/vovakirdan/dungeon-jump/internal/config"
	"github.com/vovakirdan/dungeon-jump/internal/storage"
)

// maxScores is how many scores a tab loads.
const maxScores = 100

// ScoreboardKeyMap holds the scoreboard bindings shown in its help line.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevTab, k.NextTab, k.Back}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevTab, k.NextTab},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap binds arrows and vim keys; tabs switch difficulty.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/tab", "harder"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left", "easier"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// scoreColumn is one table column. Columns with a lower priority are dropped
// first when the terminal is too narrow.
type scoreColumn struct {
	title    string
	width    int
	priority int
	value    func(rank int, e storage.ScoreEntry) string
}

var scoreColumns = []scoreColumn{
	{"Rank", 5, 3, func(rank int, _ storage.ScoreEntry) string { return fmt.Sprintf("#%d", rank) }},
	{"Name", 16, 3, func(_ int, e storage.ScoreEntry) string { return e.Name }},
	{"Score", 8, 3, func(_ int, e storage.ScoreEntry) string { return fmt.Sprintf("%d", e.Score) }},
	{"Hero", 10, 1, func(_ int, e storage.ScoreEntry) string {
		if c, err := assets.Lookup(e.Character); err == nil {
			return c.Title
		}
		return e.Character
	}},
	{"Date", 12, 2, func(_ int, e storage.ScoreEntry) string { return e.CreatedAt.Format("Jan 02 15:04") }},
}

// fitColumns returns the columns that fit in width, keeping their order.
func fitColumns(width int) []scoreColumn {
	for minPriority := 1; minPriority <= 3; minPriority++ {
		var cols []scoreColumn
		total := 0
		for _, c := range scoreColumns {
			if c.priority >= minPriority {
				cols = append(cols, c)
				total += c.width + 2 // cell padding
			}
		}
		if total <= width || minPriority == 3 {
			return cols
		}
	}
	return nil
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen. It shows
// one tab per difficulty.
type ScoreboardModel struct {
	tabs      []config.Difficulty
	tabCursor int
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     *storage.Stats
	columns   []scoreColumn
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewScoreboardModel opens the scoreboard on the easiest difficulty. A nil
// store shows empty tabs.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := ScoreboardModel{
		tabs:   config.Difficulties(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadScores()
	return m
}

// createTable creates a table sized to the terminal.
func (m *ScoreboardModel) createTable() table.Model {
	m.columns = fitColumns(m.width - 4) // Border and padding
	columns := make([]table.Column, len(m.columns))
	for i, c := range m.columns {
		columns[i] = table.Column{Title: c.title, Width: c.width}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for title, tabs, stats and help
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

// Difficulty returns the difficulty of the open tab.
func (m ScoreboardModel) Difficulty() config.Difficulty {
	return m.tabs[m.tabCursor]
}

// loadScores loads scores and run stats for the open tab.
func (m *ScoreboardModel) loadScores() {
	m.scores = nil
	m.stats = nil
	if m.store != nil {
		d := string(m.Difficulty())
		if scores, err := m.store.TopScores(d, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetStats(); err == nil {
			m.stats = stats[d]
		}
	}
	m.updateTableRows()
}

// updateTableRows fills the table from the loaded scores.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		row := make(table.Row, len(m.columns))
		for j, c := range m.columns {
			row[j] = c.value(i+1, s)
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// switchTab moves delta tabs, wrapping around.
func (m *ScoreboardModel) switchTab(delta int) {
	n := len(m.tabs)
	m.tabCursor = ((m.tabCursor+delta)%n + n) % n
	m.loadScores()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update switches tabs and scrolls the table.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.switchTab(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.switchTab(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass everything else (scrolling included) to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View draws the title, tabs, table and help line.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tabs := make([]string, len(m.tabs))
	for i, d := range m.tabs {
		if i == m.tabCursor {
			tabs[i] = activeTabStyle.Render(string(d))
		} else {
			tabs[i] = dimStyle.Render(" " + string(d) + " ")
		}
	}

	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render("HIGH SCORES - "+strings.ToUpper(string(m.Difficulty()))), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(boxStyle.Render(m.renderTableContent()), m.width))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table, or a hint when the tab is empty.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scores recorded yet.\nClimb the dungeon to set a high score!")
	}

	view := m.table.View()
	if m.stats != nil {
		statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		view += "\n" + statsStyle.Render(fmt.Sprintf("Runs: %d  |  Best: %d  |  Avg: %.0f",
			m.stats.RunsCount, m.stats.HighScore, m.stats.AvgScore))
	}
	return view
}

// IsGoingBack reports whether the player left for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard as its own program and reports whether
// the player went back rather than quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
