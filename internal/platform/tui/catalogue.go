package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

// CatalogueModel is the game grid: category tabs, a search box and the
// table of games matching both.
type CatalogueModel struct {
	games    []registry.GameInfo // every registered game
	shown    []registry.GameInfo // games passing the current filter
	category int                 // index into registry.Categories
	search   textinput.Model
	table    table.Model
	help     help.Model
	keys     CatalogueKeyMap
	width    int
	height   int
	quitting bool
	selected *registry.GameInfo
}

// NewCatalogueModel creates a grid over every registered game.
func NewCatalogueModel(width, height int) CatalogueModel {
	ti := textinput.New()
	ti.Placeholder = "search games"
	ti.Prompt = "/ "
	ti.CharLimit = 32

	h := help.New()
	h.ShowAll = false

	m := CatalogueModel{
		games:  registry.List(),
		search: ti,
		help:   h,
		keys:   DefaultCatalogueKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.applyFilter()
	return m
}

// createTable creates the games table sized to the window.
func (m *CatalogueModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Game", Width: 16},
		{Title: "Category", Width: 10},
		{Title: "Description", Width: 30},
	}

	// Give the description whatever width is left
	if rest := m.width - 4 - 16 - 10 - 6; rest > 30 {
		columns[2].Width = min(rest, 60)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for title, tabs, search and help
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

// applyFilter recomputes the visible games and refreshes the table.
func (m *CatalogueModel) applyFilter() {
	m.shown = registry.Filter(m.games, m.Category(), m.search.Value())

	rows := make([]table.Row, len(m.shown))
	for i, g := range m.shown {
		rows[i] = table.Row{g.Title, string(g.Category), g.Description}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Category returns the selected category filter.
func (m CatalogueModel) Category() registry.Category {
	return registry.Categories[m.category]
}

// Init initializes the grid.
func (m CatalogueModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the grid.
func (m CatalogueModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextCategory):
			m.category = (m.category + 1) % len(registry.Categories)
			m.applyFilter()
			return m, nil

		case key.Matches(msg, m.keys.PrevCategory):
			m.category = (m.category + len(registry.Categories) - 1) % len(registry.Categories)
			m.applyFilter()
			return m, nil

		case key.Matches(msg, m.keys.Search):
			cmd = m.search.Focus()
			return m, cmd

		case key.Matches(msg, m.keys.Back):
			if m.search.Value() != "" {
				m.search.Reset()
				m.applyFilter()
			}
			return m, nil

		case key.Matches(msg, m.keys.Launch):
			m.launch()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.applyFilter()
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// updateSearch feeds keys to the search box until it is left.
func (m CatalogueModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc", "tab":
		m.search.Blur()
		return m, nil
	case "enter":
		m.search.Blur()
		m.launch()
		return m, nil
	case "up", "down":
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *CatalogueModel) launch() {
	if len(m.shown) == 0 {
		return
	}
	i := m.table.Cursor()
	if i < 0 || i >= len(m.shown) {
		i = 0
	}
	selected := m.shown[i]
	m.selected = &selected
}

// View renders the grid.
func (m CatalogueModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FEC62E"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("A R C A D E"), m.width, len("A R C A D E")))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width, m.tabsWidth()))
	b.WriteString("\n\n")

	b.WriteString("  ")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m CatalogueModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(registry.Categories))
	for i, c := range registry.Categories {
		if i == m.category {
			tabs[i] = activeTabStyle.Render(string(c))
		} else {
			tabs[i] = tabStyle.Render(string(c))
		}
	}
	return strings.Join(tabs, " ")
}

// tabsWidth is the printed width of renderTabs.
func (m CatalogueModel) tabsWidth() int {
	w := len(registry.Categories) - 1
	for _, c := range registry.Categories {
		w += len(c) + 2
	}
	return w
}

func (m CatalogueModel) renderTableContent() string {
	if len(m.shown) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		return emptyStyle.Render(fmt.Sprintf("No %s games match %q.", m.Category(), m.search.Value()))
	}
	return m.table.View()
}

// Selected returns the game chosen with Enter, or nil.
func (m CatalogueModel) Selected() *registry.GameInfo {
	return m.selected
}

// ClearSelection forgets the chosen game so the grid can be shown again.
func (m *CatalogueModel) ClearSelection() {
	m.selected = nil
}

// IsQuitting returns true if user requested to quit.
func (m CatalogueModel) IsQuitting() bool {
	return m.quitting
}

// centerText pads text, whose printed width is width, to the middle of cols.
func centerText(text string, cols, width int) string {
	if width >= cols {
		return text
	}
	return strings.Repeat(" ", (cols-width)/2) + text
}
