package tui

import (
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/lifecycle"
)

// headerRows is the number of terminal rows above the canvas.
const headerRows = 1

// Options configures a Model.
type Options struct {
	Config config.Config
	Logger *log.Logger
	Width  int    // initial terminal size; corrected by the first WindowSizeMsg
	Height int
	GameID string // launch straight into this game
}

// Model is the Bubble Tea host: the game grid plus the overlay that shows
// the active game.
type Model struct {
	cfg        config.Config
	logger     *log.Logger
	controller *lifecycle.Controller
	canvas     *core.Canvas
	holds      *holdTracker
	catalogue  CatalogueModel
	width      int
	height     int
	ticking    bool
	quitting   bool
}

// NewModel creates the host model.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	width, height := max(opts.Width, 1), max(opts.Height, headerRows+1)

	canvas := core.NewCanvas(core.NewScreen(width, height-headerRows), opts.Config.Canvas.Width, opts.Config.Canvas.Height)
	canvas.SetBounds(core.NewRect(0, headerRows, float64(width), float64(height-headerRows)))

	m := Model{
		cfg:        opts.Config,
		logger:     logger,
		controller: lifecycle.NewController(canvas, opts.Config.Games, opts.Config.Runtime, lifecycle.WithLogger(logger)),
		canvas:     canvas,
		holds:      newHoldTracker(opts.Config.Runtime.KeyRelease),
		catalogue:  NewCatalogueModel(width, height),
		width:      width,
		height:     height,
	}

	if opts.GameID != "" {
		title := opts.GameID
		for _, g := range m.catalogue.games {
			if g.ID == opts.GameID {
				title = g.Title
			}
		}
		m.controller.Start(opts.GameID, title)
		m.ticking = m.controller.Overlay() // Init schedules the first tick
	}
	return m
}

// Init starts the frame loop if a game was launched up front.
func (m Model) Init() tea.Cmd {
	if m.controller.Overlay() {
		return tickCmd(m.cfg.Runtime.FrameInterval())
	}
	return nil
}

// InGame reports whether the game overlay is shown.
func (m Model) InGame() bool {
	return m.controller.Overlay()
}

// Controller returns the lifecycle controller the model drives.
func (m Model) Controller() *lifecycle.Controller {
	return m.controller
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.controller.Stop()
			m.quitting = true
			return m, tea.Quit
		}
		if m.InGame() {
			return m.handleGameKey(msg)
		}
		return m.updateCatalogue(msg)

	case tea.MouseMsg:
		if m.InGame() {
			return m.handleMouse(msg)
		}
	}

	if !m.InGame() {
		return m.updateCatalogue(msg)
	}
	return m, nil
}

// updateCatalogue forwards to the grid and launches what it selects.
func (m Model) updateCatalogue(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.catalogue.Update(msg)
	if c, ok := next.(CatalogueModel); ok {
		m.catalogue = c
	}

	if m.catalogue.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.catalogue.Selected(); selected != nil {
		m.catalogue.ClearSelection()
		m.controller.Start(selected.ID, selected.Title)
		return m, m.ensureTicking()
	}
	return m, cmd
}

// ensureTicking starts the frame loop unless a tick is already in flight.
func (m *Model) ensureTicking() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return tickCmd(m.cfg.Runtime.FrameInterval())
}

// handleGameKey forwards a key to the controller. Terminals only report
// presses, so every message is a key-down; the release is emulated once
// no repeat arrives within the key release delay.
func (m Model) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k, ok := MapKey(msg)
	if !ok {
		return m, nil
	}

	if m.controller.KeyDown(k) {
		m.holds.reset()
		return m, nil
	}
	m.holds.press(k, time.Now())
	return m, nil
}

// handleMouse forwards left clicks at the center of the clicked cell.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	m.controller.Click(core.PointerEvent{
		ClientX: float64(msg.X) + 0.5,
		ClientY: float64(msg.Y) + 0.5,
	})
	return m, nil
}

// handleTick releases expired keys and runs one frame. The loop ends when
// the overlay closes.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.ticking = false
	if !m.InGame() {
		return m, nil
	}

	for _, k := range m.holds.expired(now) {
		m.controller.KeyUp(k)
	}
	m.controller.Frame()

	return m, m.ensureTicking()
}

// handleResize resizes the canvas to the terminal below the header.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = max(msg.Width, 1)
	m.height = max(msg.Height, headerRows+1)

	m.canvas.Screen().Resize(m.width, m.height-headerRows)
	m.canvas.SetBounds(core.NewRect(0, headerRows, float64(m.width), float64(m.height-headerRows)))

	next, cmd := m.catalogue.Update(msg)
	if c, ok := next.(CatalogueModel); ok {
		m.catalogue = c
	}
	return m, cmd
}

// View renders the grid, or the header and canvas while a game runs.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.InGame() {
		return m.catalogue.View()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.canvas.Screen()))
	return b.String()
}

func (m Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FEC62E"))
	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	title := titleStyle.Render(" " + m.controller.Title())
	hint := hintStyle.Render("esc: back  ctrl+c: quit ")
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(hint)
	if gap < 1 {
		return title
	}
	return title + strings.Repeat(" ", gap) + hint
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
