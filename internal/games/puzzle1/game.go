// Package puzzle1 implements a memory-matching game: flip two cards at a
// time and find every pair.
package puzzle1

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

var (
	colorTable   = core.Hex("#16213e")
	colorMatched = core.Hex("#2ecc71")
	colorHidden  = core.Hex("#30cfd0")
)

type card struct {
	core.Rect
	icon    string
	flipped bool
	matched bool // permanent once set
}

// Game implements the memory puzzle.
type Game struct {
	cfg     config.Puzzle1Config
	rng     *rand.Rand
	surface core.Surface
	timers  core.Timers

	cards   []card
	flipped []int // face-up unmatched cards, at most two
	pairs   int
	moves   int
}

func init() {
	registry.Register("puzzle1", func() registry.Game {
		return New()
	})
}

// New creates a puzzle with default tuning.
func New() *Game {
	return &Game{cfg: config.DefaultGames().Puzzle1}
}

func (g *Game) ID() string                  { return "puzzle1" }
func (g *Game) Title() string               { return "Memory Match" }
func (g *Game) Category() registry.Category { return registry.CategoryPuzzle }
func (g *Game) Description() string         { return "Flip the cards and find all the pairs" }

// Start shuffles a fresh deck and attaches the click handler.
func (g *Game) Start(env registry.Env) {
	g.cfg = env.Settings.Puzzle1
	g.rng = env.Rand
	g.surface = env.Surface
	g.timers = env.Timers
	g.flipped = nil
	g.pairs = 0
	g.moves = 0
	g.deal()

	env.Input.OnClick(g.handleClick)
}

// deal lays out every icon twice in uniformly shuffled order.
func (g *Game) deal() {
	icons := append(append([]string(nil), g.cfg.Icons...), g.cfg.Icons...)
	g.rng.Shuffle(len(icons), func(i, j int) {
		icons[i], icons[j] = icons[j], icons[i]
	})

	g.cards = make([]card, len(icons))
	for i, icon := range icons {
		g.cards[i] = card{
			Rect: core.NewRect(
				g.cfg.OriginX+float64(i%g.cfg.Columns)*g.cfg.SpacingX,
				g.cfg.OriginY+float64(i/g.cfg.Columns)*g.cfg.SpacingY,
				g.cfg.CardWidth,
				g.cfg.CardHeight,
			),
			icon: icon,
		}
	}
}

// handleClick flips the hidden card under the pointer. The second flip
// counts a move and schedules the match check.
func (g *Game) handleClick(ev core.PointerEvent) {
	if len(g.flipped) >= 2 {
		return
	}

	p := core.ToCanvas(ev, g.surface)
	for i := range g.cards {
		c := &g.cards[i]
		if c.flipped || c.matched || !c.ContainsStrict(p.X, p.Y) {
			continue
		}
		c.flipped = true
		g.flipped = append(g.flipped, i)

		if len(g.flipped) == 2 {
			g.moves++
			g.timers.After(g.cfg.MatchDelay, g.checkMatch)
		}
	}
}

// checkMatch settles the two face-up cards: a pair stays matched, anything
// else flips back.
func (g *Game) checkMatch() {
	if len(g.flipped) != 2 {
		return
	}
	a, b := &g.cards[g.flipped[0]], &g.cards[g.flipped[1]]
	if a.icon == b.icon {
		a.matched = true
		b.matched = true
		g.pairs++
	} else {
		a.flipped = false
		b.flipped = false
	}
	g.flipped = nil
}

// Won reports whether every pair has been found.
func (g *Game) Won() bool {
	return g.pairs == len(g.cfg.Icons)
}

// Update is a no-op: the puzzle advances on clicks and timers only.
func (g *Game) Update() {}

// Render draws the cards, stats and the win screen.
func (g *Game) Render(dst core.Surface) {
	w, h := dst.Width(), dst.Height()
	dst.FillRect(0, 0, w, h, colorTable)

	face := core.TextStyle{Color: core.ColorWhite, Size: 48, Align: core.AlignCenter, Baseline: core.BaselineMiddle}
	for _, c := range g.cards {
		fill := colorHidden
		switch {
		case c.matched:
			fill = colorMatched
		case c.flipped:
			fill = core.ColorAmber
		}
		dst.FillRect(c.X, c.Y, c.W, c.H, fill)
		dst.StrokeRect(c.X, c.Y, c.W, c.H, core.ColorWhite, 3)

		if c.flipped || c.matched {
			mid := c.Center()
			dst.FillText(c.icon, mid.X, mid.Y, face)
		}
	}

	hud := core.TextStyle{Color: core.ColorAmber, Size: 20, Bold: true}
	dst.FillText(fmt.Sprintf("Moves: %d", g.moves), 20, 30, hud)
	dst.FillText(fmt.Sprintf("Pairs: %d/%d", g.pairs, len(g.cfg.Icons)), 20, 60, hud)

	if g.Won() {
		dst.FillRect(0, 0, w, h, core.ColorShade)
		center := core.TextStyle{Align: core.AlignCenter, Bold: true}
		center.Color, center.Size = colorMatched, 48
		dst.FillText("YOU WIN!", w/2, h/2, center)
		center.Color, center.Size = core.ColorAmber, 32
		dst.FillText(fmt.Sprintf("Moves: %d", g.moves), w/2, h/2+50, center)
	}
}

// State returns the matched pairs as the score; finding them all wins.
func (g *Game) State() core.GameState {
	won := g.Won()
	return core.GameState{Score: g.pairs, GameOver: won, Won: won}
}
