// Package math2 implements an endless target-sum puzzle: click numbers until
// the selection adds up to the target. Consecutive wins build a combo.
package math2

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

var (
	colorBackground = core.Hex("#1a0a2e")
	colorTarget     = core.Hex("#4facfe")
	colorNumber     = core.Hex("#30cfd0")
)

// number is one clickable tile.
type number struct {
	value    int
	pos      core.Vec
	selected bool
}

// Game implements the target-sum puzzle. It has no terminal state.
type Game struct {
	cfg     config.Math2Config
	rng     *rand.Rand
	surface core.Surface
	timers  core.Timers

	numbers []number
	target  int
	score   int
	combo   int
}

func init() {
	registry.Register("math2", func() registry.Game {
		return New()
	})
}

// New creates a puzzle with default tuning.
func New() *Game {
	return &Game{cfg: config.DefaultGames().Math2}
}

func (g *Game) ID() string                  { return "math2" }
func (g *Game) Title() string               { return "Target Sum" }
func (g *Game) Category() registry.Category { return registry.CategoryMath }
func (g *Game) Description() string         { return "Pick the numbers that add up to the target" }

// Start deals the first puzzle and attaches the click handler.
func (g *Game) Start(env registry.Env) {
	g.cfg = env.Settings.Math2
	g.rng = env.Rand
	g.surface = env.Surface
	g.timers = env.Timers
	g.score = 0
	g.combo = 0
	g.generate()

	env.Input.OnClick(g.handleClick)
}

// generate lays out fresh numbers and picks a target from 2 or 3 of them.
func (g *Game) generate() {
	g.numbers = make([]number, g.cfg.Numbers)
	for i := range g.numbers {
		g.numbers[i] = number{
			value: g.rng.Intn(g.cfg.MaxValue) + 1,
			pos: core.Vec{
				X: g.cfg.OriginX + float64(i%g.cfg.Columns)*g.cfg.SpacingX,
				Y: g.cfg.OriginY + float64(i/g.cfg.Columns)*g.cfg.SpacingY,
			},
		}
	}

	count := 3
	if g.rng.Float64() < g.cfg.PairChance {
		count = 2
	}

	// Distinct indices by rejection
	picked := make(map[int]bool, count)
	g.target = 0
	for len(picked) < count {
		i := g.rng.Intn(len(g.numbers))
		if picked[i] {
			continue
		}
		picked[i] = true
		g.target += g.numbers[i].value
	}
}

func (g *Game) handleClick(ev core.PointerEvent) {
	p := core.ToCanvas(ev, g.surface)
	for i := range g.numbers {
		if core.Within(p, g.numbers[i].pos, g.cfg.HitRadius) {
			g.numbers[i].selected = !g.numbers[i].selected
			g.check()
		}
	}
}

// check scores an exact sum and schedules the next puzzle. Overshooting
// only resets the combo; the selection stays as it is.
func (g *Game) check() {
	sum := g.selectedSum()
	switch {
	case sum == g.target:
		g.score += g.cfg.BasePoints * (g.combo + 1)
		g.combo++
		g.timers.After(g.cfg.NextPuzzle, g.generate)
	case sum > g.target:
		g.combo = 0
	}
}

func (g *Game) selectedSum() int {
	sum := 0
	for _, n := range g.numbers {
		if n.selected {
			sum += n.value
		}
	}
	return sum
}

// Update is a no-op: the puzzle advances on clicks and timers only.
func (g *Game) Update() {}

// Render draws the target, the number tiles and the HUD.
func (g *Game) Render(dst core.Surface) {
	w, h := dst.Width(), dst.Height()
	dst.FillRect(0, 0, w, h, colorBackground)

	center := core.TextStyle{Color: colorTarget, Size: 32, Bold: true, Align: core.AlignCenter}
	dst.FillText(fmt.Sprintf("Target: %d", g.target), w/2, 50, center)

	center.Color = core.ColorWhite
	for _, n := range g.numbers {
		fill := colorNumber
		if n.selected {
			fill = core.ColorOrange
		}
		dst.FillCircle(n.pos.X, n.pos.Y, g.cfg.HitRadius, fill)
		dst.FillText(strconv.Itoa(n.value), n.pos.X, n.pos.Y+10, center)
	}

	hud := core.TextStyle{Color: core.ColorAmber, Size: 24, Bold: true}
	dst.FillText(fmt.Sprintf("Score: %d", g.score), 20, 40, hud)
	dst.FillText(fmt.Sprintf("Combo: x%d", g.combo+1), 20, 75, hud)

	dst.FillText("Click the numbers that make the sum!", w/2, h-30,
		core.TextStyle{Color: core.ColorAmber, Size: 16, Align: core.AlignCenter})
}

// State returns the score; the puzzle sequence never ends.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score}
}
