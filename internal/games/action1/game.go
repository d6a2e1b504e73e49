// Package action1 implements a click-to-shoot arena: enemies close in on the
// player from every edge and take two hits to destroy.
package action1

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

var (
	colorArena   = core.Hex("#0a0a0a")
	colorPlayer  = core.Hex("#4facfe")
	colorWounded = core.Hex("#f5576c")
)

// Edge is the canvas side an enemy enters from.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

type enemy struct {
	pos    core.Vec
	size   float64
	speed  float64
	health int
}

// Game implements the arena shooter.
type Game struct {
	cfg     config.Action1Config
	rng     *rand.Rand
	surface core.Surface
	width   float64
	height  float64

	player   core.Vec
	enemies  []enemy
	score    int
	gameOver bool
}

func init() {
	registry.Register("action1", func() registry.Game {
		return New()
	})
}

// New creates an arena with default tuning.
func New() *Game {
	return &Game{cfg: config.DefaultGames().Action1}
}

func (g *Game) ID() string                  { return "action1" }
func (g *Game) Title() string               { return "Arena Defender" }
func (g *Game) Category() registry.Category { return registry.CategoryAction }
func (g *Game) Description() string         { return "Click the enemies before they reach you" }

// Start centers the player and attaches the shoot handler.
func (g *Game) Start(env registry.Env) {
	g.cfg = env.Settings.Action1
	g.rng = env.Rand
	g.surface = env.Surface
	g.width = env.Surface.Width()
	g.height = env.Surface.Height()

	g.player = core.Vec{X: g.width / 2, Y: g.height / 2}
	g.enemies = nil
	g.score = 0
	g.gameOver = false

	env.Input.OnClick(g.shoot)
}

// spawn places an enemy just outside a random edge.
func (g *Game) spawn() {
	m := g.cfg.SpawnMargin
	var pos core.Vec
	switch Edge(g.rng.Intn(4)) {
	case EdgeTop:
		pos = core.Vec{X: g.rng.Float64() * g.width, Y: -m}
	case EdgeRight:
		pos = core.Vec{X: g.width + m, Y: g.rng.Float64() * g.height}
	case EdgeBottom:
		pos = core.Vec{X: g.rng.Float64() * g.width, Y: g.height + m}
	case EdgeLeft:
		pos = core.Vec{X: -m, Y: g.rng.Float64() * g.height}
	}

	g.enemies = append(g.enemies, enemy{
		pos:    pos,
		size:   g.cfg.EnemySize,
		speed:  g.cfg.MinSpeed + g.rng.Float64()*g.cfg.SpeedRange,
		health: g.cfg.EnemyHealth,
	})
}

// shoot damages the most recently spawned enemy under the click.
func (g *Game) shoot(ev core.PointerEvent) {
	if g.gameOver {
		return
	}

	p := core.ToCanvas(ev, g.surface)
	for i := len(g.enemies) - 1; i >= 0; i-- {
		e := &g.enemies[i]
		if !core.Within(p, e.pos, e.size) {
			continue
		}
		e.health--
		if e.health <= 0 {
			g.enemies = append(g.enemies[:i], g.enemies[i+1:]...)
			g.score += g.cfg.KillPoints
		}
		break
	}
}

// Update spawns enemies and moves each one straight at the player. Contact
// is judged on the distance before the move.
func (g *Game) Update() {
	if g.gameOver {
		return
	}

	if g.rng.Float64() < g.cfg.SpawnChance {
		g.spawn()
	}

	for i := range g.enemies {
		e := &g.enemies[i]
		dist := core.Dist(e.pos, g.player)
		e.pos = e.pos.Add(core.Pursue(e.pos, g.player, e.speed))

		if dist < g.cfg.PlayerSize+e.size {
			g.gameOver = true
		}
	}
}

// Render draws the arena, player, enemies and HUD.
func (g *Game) Render(dst core.Surface) {
	w, h := dst.Width(), dst.Height()
	dst.FillRect(0, 0, w, h, colorArena)

	dst.FillCircle(g.player.X, g.player.Y, g.cfg.PlayerSize, colorPlayer)

	for _, e := range g.enemies {
		fill := core.ColorOrange
		if e.health == 1 {
			fill = colorWounded
		}
		dst.FillCircle(e.pos.X, e.pos.Y, e.size, fill)
	}

	dst.FillText(fmt.Sprintf("Score: %d", g.score), 20, 40, core.TextStyle{Color: core.ColorAmber, Size: 24, Bold: true})
	dst.FillText("Click the enemies!", 20, 70, core.TextStyle{Color: core.ColorAmber, Size: 16})

	if g.gameOver {
		dst.FillRect(0, 0, w, h, core.ColorShade)
		center := core.TextStyle{Align: core.AlignCenter, Bold: true}
		center.Color, center.Size = core.ColorOrange, 48
		dst.FillText("GAME OVER", w/2, h/2, center)
		center.Color, center.Size = core.ColorAmber, 32
		dst.FillText(fmt.Sprintf("Score: %d", g.score), w/2, h/2+50, center)
	}
}

// State returns the score and whether an enemy reached the player.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.gameOver}
}
