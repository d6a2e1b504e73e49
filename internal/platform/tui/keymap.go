package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// MapKey translates a Bubble Tea key message to the key name games see.
// Returns false for keys no game reacts to.
func MapKey(msg tea.KeyMsg) (core.Key, bool) {
	switch msg.Type {
	case tea.KeyLeft:
		return core.KeyArrowLeft, true
	case tea.KeyRight:
		return core.KeyArrowRight, true
	case tea.KeyUp:
		return core.KeyArrowUp, true
	case tea.KeyDown:
		return core.KeyArrowDown, true
	case tea.KeyEnter:
		return core.KeyEnter, true
	case tea.KeyBackspace:
		return core.KeyBackspace, true
	case tea.KeyEsc:
		return core.KeyEscape, true
	case tea.KeySpace:
		return core.Key(" "), true
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			return core.Key(string(msg.Runes[0])), true
		}
	}
	return "", false
}

// CatalogueKeyMap defines the key bindings of the game grid.
type CatalogueKeyMap struct {
	Up           key.Binding
	Down         key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	Search       key.Binding
	Launch       key.Binding
	Back         key.Binding
	Quit         key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k CatalogueKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextCategory, k.Search, k.Launch, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k CatalogueKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Launch},
		{k.NextCategory, k.PrevCategory, k.Search, k.Back, k.Quit},
	}
}

// DefaultCatalogueKeyMap returns default key bindings.
func DefaultCatalogueKeyMap() CatalogueKeyMap {
	return CatalogueKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next category"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev category"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Launch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave search"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
