// Package racing1 implements a top-down racer: steer the car left and right
// to dodge falling traffic. One collision ends the run.
package racing1

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

var (
	colorRoad     = core.Hex("#1a1a1a")
	colorObstacle = core.Hex("#666666")
)

// obstacle is a falling car the player must avoid.
type obstacle struct {
	core.Rect
	speed float64
}

// Game implements the obstacle-dodging racer.
type Game struct {
	cfg    config.Racing1Config
	rng    *rand.Rand
	width  float64
	height float64
	keys   core.PressedKeys

	car       core.Rect
	obstacles []obstacle
	score     int
	gameOver  bool
}

func init() {
	registry.Register("racing1", func() registry.Game {
		return New()
	})
}

// New creates a racer with default tuning.
func New() *Game {
	return &Game{cfg: config.DefaultGames().Racing1}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "racing1" }

// Title returns the display name.
func (g *Game) Title() string { return "Highway Dodge" }

// Category returns the card-grid category.
func (g *Game) Category() registry.Category { return registry.CategoryRacing }

// Description returns the card text.
func (g *Game) Description() string { return "Steer around the traffic with the arrow keys" }

// Start resets the run and attaches the arrow-key tracker.
func (g *Game) Start(env registry.Env) {
	g.cfg = env.Settings.Racing1
	g.rng = env.Rand
	g.width = env.Surface.Width()
	g.height = env.Surface.Height()

	g.keys = core.NewPressedKeys()
	core.TrackKeys(env.Input, g.keys)

	g.car = core.NewRect(
		g.width/2-g.cfg.CarWidth/2,
		g.height-g.cfg.CarBottomOffset,
		g.cfg.CarWidth,
		g.cfg.CarHeight,
	)
	g.obstacles = nil
	g.score = 0
	g.gameOver = false
}

// Update moves the car, spawns traffic and scores every obstacle that
// leaves the road.
func (g *Game) Update() {
	if g.gameOver {
		return
	}

	if g.keys.Has(core.KeyArrowLeft) && g.car.X > 0 {
		g.car.X -= g.cfg.CarSpeed
	}
	if g.keys.Has(core.KeyArrowRight) && g.car.X < g.width-g.car.W {
		g.car.X += g.cfg.CarSpeed
	}

	if g.rng.Float64() < g.cfg.SpawnChance {
		g.spawn()
	}

	for i := len(g.obstacles) - 1; i >= 0; i-- {
		o := &g.obstacles[i]
		o.Y += o.speed

		if g.car.Intersects(o.Rect) {
			g.gameOver = true
		}

		if o.Y > g.height {
			g.obstacles = append(g.obstacles[:i], g.obstacles[i+1:]...)
			g.score++
		}
	}
}

func (g *Game) spawn() {
	w := g.cfg.ObstacleWidth
	g.obstacles = append(g.obstacles, obstacle{
		Rect:  core.NewRect(g.rng.Float64()*(g.width-w), -g.cfg.ObstacleHeight, w, g.cfg.ObstacleHeight),
		speed: g.cfg.ObstacleSpeed,
	})
}

// Render draws the road, car, traffic and HUD.
func (g *Game) Render(dst core.Surface) {
	w, h := dst.Width(), dst.Height()

	dst.FillRect(0, 0, w, h, colorRoad)
	dst.Line(w/2, 0, w/2, h, core.ColorAmber, 5, []float64{20, 10})

	dst.FillRect(g.car.X, g.car.Y, g.car.W, g.car.H, core.ColorOrange)
	dst.FillRect(g.car.X+5, g.car.Y+10, 10, 10, core.ColorAmber)
	dst.FillRect(g.car.X+25, g.car.Y+10, 10, 10, core.ColorAmber)

	for _, o := range g.obstacles {
		dst.FillRect(o.X, o.Y, o.W, o.H, colorObstacle)
	}

	dst.FillText(fmt.Sprintf("Score: %d", g.score), 20, 40, core.TextStyle{Color: core.ColorAmber, Size: 24, Bold: true})

	if g.gameOver {
		dst.FillRect(0, 0, w, h, core.ColorShade)
		center := core.TextStyle{Align: core.AlignCenter, Bold: true}

		center.Color, center.Size = core.ColorOrange, 48
		dst.FillText("GAME OVER", w/2, h/2-20, center)
		center.Color, center.Size = core.ColorAmber, 32
		dst.FillText(fmt.Sprintf("Score: %d", g.score), w/2, h/2+30, center)
		center.Color, center.Size, center.Bold = core.ColorWhite, 20, false
		dst.FillText("Press ESC to return", w/2, h/2+80, center)
	}
}

// State returns the score and whether the car has crashed.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.gameOver}
}
