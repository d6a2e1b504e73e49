// Package racing2 implements an endless coin run: steer under falling coins
// to collect them. Every coin speeds the road up a little.
package racing2

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

var (
	colorNight = core.Hex("#0a0a1a")
	colorCar   = core.Hex("#f093fb")
)

type coin struct {
	pos  core.Vec
	size float64
}

// Game implements the coin-collecting racer. It has no terminal state.
type Game struct {
	cfg    config.Racing2Config
	rng    *rand.Rand
	width  float64
	height float64
	keys   core.PressedKeys

	position float64 // car center x
	speed    float64 // coin fall speed
	coins    []coin
	score    int
}

func init() {
	registry.Register("racing2", func() registry.Game {
		return New()
	})
}

// New creates a coin run with default tuning.
func New() *Game {
	return &Game{cfg: config.DefaultGames().Racing2}
}

func (g *Game) ID() string                  { return "racing2" }
func (g *Game) Title() string               { return "Coin Rush" }
func (g *Game) Category() registry.Category { return registry.CategoryRacing }
func (g *Game) Description() string         { return "Collect coins while the road keeps speeding up" }

// Start resets the run and attaches the arrow-key tracker.
func (g *Game) Start(env registry.Env) {
	g.cfg = env.Settings.Racing2
	g.rng = env.Rand
	g.width = env.Surface.Width()
	g.height = env.Surface.Height()

	g.keys = core.NewPressedKeys()
	core.TrackKeys(env.Input, g.keys)

	g.position = g.width / 2
	g.speed = g.cfg.InitialSpeed
	g.coins = nil
	g.score = 0
}

func (g *Game) carCenter() core.Vec {
	return core.Vec{X: g.position, Y: g.height - g.cfg.CarBottomOffset}
}

// Update steers, spawns coins and collects those within reach of the car.
func (g *Game) Update() {
	if g.keys.Has(core.KeyArrowLeft) && g.position > g.cfg.EdgeMargin {
		g.position -= g.cfg.MoveSpeed
	}
	if g.keys.Has(core.KeyArrowRight) && g.position < g.width-g.cfg.EdgeMargin {
		g.position += g.cfg.MoveSpeed
	}

	if g.rng.Float64() < g.cfg.SpawnChance {
		g.coins = append(g.coins, coin{
			pos:  core.Vec{X: g.rng.Float64() * (g.width - g.cfg.CoinSize), Y: -g.cfg.CoinSize},
			size: g.cfg.CoinSize,
		})
	}

	car := g.carCenter()
	kept := g.coins[:0]
	for _, c := range g.coins {
		c.pos.Y += g.speed

		if core.Within(c.pos, car, g.cfg.PickupRadius) {
			g.score += g.cfg.CoinValue
			g.speed += g.cfg.SpeedStep
			continue
		}
		if c.pos.Y > g.height {
			continue
		}
		kept = append(kept, c)
	}
	g.coins = kept
}

// Render draws the night road, car, coins and HUD.
func (g *Game) Render(dst core.Surface) {
	dst.FillRect(0, 0, dst.Width(), dst.Height(), colorNight)

	car := g.carCenter()
	dst.FillCircle(car.X, car.Y, g.cfg.CarRadius, colorCar)

	for _, c := range g.coins {
		dst.FillCircle(c.pos.X, c.pos.Y, c.size/2, core.ColorAmber)
	}

	dst.FillText(fmt.Sprintf("Score: %d", g.score), 20, 40, core.TextStyle{Color: core.ColorAmber, Size: 28, Bold: true})
	dst.FillText(fmt.Sprintf("Speed: %.1f", g.speed), 20, 70, core.TextStyle{Color: core.ColorAmber, Size: 16})
}

// State returns the score; the run never ends.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score}
}
