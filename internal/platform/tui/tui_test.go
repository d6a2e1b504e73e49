package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	_ "github.com/vovakirdan/canvas-arcade/internal/games/action1"
	_ "github.com/vovakirdan/canvas-arcade/internal/games/math1"
	_ "github.com/vovakirdan/canvas-arcade/internal/games/math2"
	_ "github.com/vovakirdan/canvas-arcade/internal/games/puzzle1"
	_ "github.com/vovakirdan/canvas-arcade/internal/games/racing1"
	_ "github.com/vovakirdan/canvas-arcade/internal/games/racing2"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Key
		ok   bool
	}{
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyArrowLeft, true},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.KeyArrowRight, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyEnter, true},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.KeyBackspace, true},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyEscape, true},
		{"digit", runes("7"), core.Key("7"), true},
		{"minus", runes("-"), core.KeyMinus, true},
		{"alt combo", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, "", false},
		{"paste", runes("12"), "", false},
		{"function key", tea.KeyMsg{Type: tea.KeyF1}, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := MapKey(tc.msg)
			if got != tc.want || ok != tc.ok {
				t.Errorf("MapKey() = %q, %v; expected %q, %v", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestHoldTracker(t *testing.T) {
	h := newHoldTracker(250 * time.Millisecond)
	t0 := time.Now()

	h.press(core.KeyArrowLeft, t0)
	h.press(core.KeyArrowLeft, t0.Add(200*time.Millisecond)) // key repeat
	if got := h.expired(t0.Add(300 * time.Millisecond)); len(got) != 0 {
		t.Errorf("repeated key released too early: %v", got)
	}

	got := h.expired(t0.Add(450 * time.Millisecond))
	if len(got) != 1 || got[0] != core.KeyArrowLeft {
		t.Errorf("expired() = %v, expected [ArrowLeft]", got)
	}
	if h.held() != 0 {
		t.Error("released key should be forgotten")
	}

	h.press(core.KeyArrowRight, t0)
	h.reset()
	if h.held() != 0 {
		t.Error("reset should forget every key")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.Set(0, 0, core.Cell{Rune: 'A', Fg: core.ColorAmber, Bold: true})
	s.Set(1, 0, core.Cell{Rune: '🎮', Fg: core.ColorWhite})
	s.Set(2, 0, core.Cell{Rune: 0, Fg: core.ColorWhite})

	out := RenderScreen(s)
	if !strings.Contains(out, "A") || !strings.Contains(out, "🎮") {
		t.Errorf("rendered screen lost its text: %q", out)
	}
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Errorf("expected 2 lines, got %d", len(lines))
	}
}

func TestCatalogueFilter(t *testing.T) {
	m := NewCatalogueModel(100, 30)
	if len(m.shown) != len(registry.List()) {
		t.Fatalf("all games should be shown, got %d", len(m.shown))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(CatalogueModel)
	if m.Category() != registry.CategoryRacing {
		t.Fatalf("tab should select racing, got %s", m.Category())
	}
	if len(m.shown) != 2 {
		t.Errorf("racing shows %d games, expected 2", len(m.shown))
	}

	next, _ = m.Update(runes("/"))
	m = next.(CatalogueModel)
	for _, r := range "coin" {
		next, _ = m.Update(runes(string(r)))
		m = next.(CatalogueModel)
	}
	if len(m.shown) != 1 || m.shown[0].ID != "racing2" {
		t.Errorf("search for coin shows %+v", m.shown)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(CatalogueModel)
	if m.Selected() == nil || m.Selected().ID != "racing2" {
		t.Errorf("enter should select racing2, got %+v", m.Selected())
	}
}

func TestCatalogueQuit(t *testing.T) {
	m := NewCatalogueModel(100, 30)
	next, cmd := m.Update(runes("q"))
	if !next.(CatalogueModel).IsQuitting() || cmd == nil {
		t.Error("q should quit from the grid")
	}
}

func newTestModel(t *testing.T, gameID string) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Runtime.Seed = 1
	return NewModel(Options{Config: cfg, Width: 80, Height: 25, GameID: gameID})
}

func TestLaunchAndEscape(t *testing.T) {
	m := newTestModel(t, "")
	if m.InGame() {
		t.Fatal("model should start on the grid")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if !m.InGame() {
		t.Fatal("enter should launch the highlighted game")
	}
	if cmd == nil {
		t.Error("launching should start the frame loop")
	}
	if id, _ := m.Controller().Active(); id != "action1" {
		t.Errorf("launched %q, expected the first game by ID", id)
	}
	if !strings.Contains(m.View(), "Arena Defender") {
		t.Error("header should show the game title")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.InGame() {
		t.Error("escape should return to the grid")
	}

	next, cmd = m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if cmd != nil {
		t.Error("the frame loop should end once the overlay closes")
	}
}

func TestQuitKeyOnlyQuitsFromGrid(t *testing.T) {
	m := newTestModel(t, "math1")

	next, cmd := m.Update(runes("q"))
	m = next.(Model)
	if cmd != nil || !m.InGame() {
		t.Error("q inside a game is a game key")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("ctrl+c should always quit")
	}
}

func TestMouseClickReachesGame(t *testing.T) {
	m := newTestModel(t, "puzzle1")

	// Card 0 spans canvas x 150..270, y 50..150: columns 15..26, rows 2..5
	next, _ := m.Update(tea.MouseMsg{X: 21, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(Model)
	next, _ = m.Update(TickMsg(time.Now()))
	m = next.(Model)

	if bg := m.canvas.Screen().Get(18, 3).Bg; bg != core.ColorAmber {
		t.Errorf("clicked card should be face up, cell background %+v", bg)
	}
}

func TestHeldKeyIsReleased(t *testing.T) {
	m := newTestModel(t, "racing1")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	if m.holds.held() != 1 {
		t.Fatal("arrow press should be tracked")
	}

	next, _ = m.Update(TickMsg(time.Now().Add(time.Second)))
	m = next.(Model)
	if m.holds.held() != 0 {
		t.Error("key should be released after the release delay")
	}
}
