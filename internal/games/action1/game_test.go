package action1

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/games/gametest"
)

func newQuietGame(t *testing.T) (*Game, *gametest.Input) {
	t.Helper()
	env, in, _ := gametest.NewEnv(5)
	env.Settings.Action1.SpawnChance = 0

	g := New()
	g.Start(env)
	return g, in
}

func TestPursuit(t *testing.T) {
	g, _ := newQuietGame(t)
	g.enemies = []enemy{{pos: core.Vec{X: 400, Y: 0}, size: 25, speed: 2, health: 2}}

	g.Update()
	if got := g.enemies[0].pos; !near(got, core.Vec{X: 400, Y: 2}) {
		t.Errorf("enemy at %v, expected (400, 2)", got)
	}

	g.enemies[0].pos = core.Vec{X: 100, Y: 300}
	g.Update()
	if got := g.enemies[0].pos; !near(got, core.Vec{X: 102, Y: 300}) {
		t.Errorf("enemy at %v, expected (102, 300)", got)
	}

	g.enemies[0].pos = core.Vec{X: 100, Y: 700}
	g.Update()
	if got := g.enemies[0].pos; !near(got, core.Vec{X: 101.2, Y: 698.4}) {
		t.Errorf("enemy at %v, expected (101.2, 698.4)", got)
	}
}

func near(a, b core.Vec) bool {
	return core.Dist(a, b) < 1e-9
}

func TestContactUsesDistanceBeforeMove(t *testing.T) {
	g, _ := newQuietGame(t)
	g.enemies = []enemy{{pos: core.Vec{X: 400, Y: 243.5}, size: 25, speed: 1, health: 2}}

	g.Update() // distance 56.5
	g.Update() // distance 55.5
	if g.gameOver {
		t.Fatal("enemy still out of reach ended the run")
	}
	g.Update() // distance 54.5, closer than 30 + 25
	if !g.State().GameOver {
		t.Fatal("enemy within reach should end the run")
	}

	pos := g.enemies[0].pos
	g.Update()
	if g.enemies[0].pos != pos {
		t.Error("Update must be a no-op after game over")
	}
}

func TestCoincidentEnemyDoesNotMove(t *testing.T) {
	g, _ := newQuietGame(t)
	g.enemies = []enemy{{pos: g.player, size: 25, speed: 3, health: 2}}

	g.Update()
	p := g.enemies[0].pos
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || p != g.player {
		t.Errorf("coincident enemy moved to %v", p)
	}
	if !g.gameOver {
		t.Error("coincident enemy should end the run")
	}
}

func TestShootTakesTwoHits(t *testing.T) {
	g, in := newQuietGame(t)
	g.enemies = []enemy{{pos: core.Vec{X: 100, Y: 100}, size: 25, speed: 1, health: 2}}

	in.Click(110, 100)
	if len(g.enemies) != 1 || g.enemies[0].health != 1 || g.score != 0 {
		t.Fatalf("first hit: enemies=%+v score=%d", g.enemies, g.score)
	}

	in.Click(100, 90)
	if len(g.enemies) != 0 {
		t.Error("second hit should destroy the enemy")
	}
	if g.score != 10 {
		t.Errorf("score = %d, expected 10", g.score)
	}
}

func TestShootHitsOneEnemy(t *testing.T) {
	g, in := newQuietGame(t)
	g.enemies = []enemy{
		{pos: core.Vec{X: 100, Y: 100}, size: 25, speed: 1, health: 2},
		{pos: core.Vec{X: 105, Y: 100}, size: 25, speed: 1, health: 2},
	}

	in.Click(102, 100)
	if g.enemies[0].health != 2 || g.enemies[1].health != 1 {
		t.Errorf("only the newest enemy should be hit: %+v", g.enemies)
	}
}

func TestShootMisses(t *testing.T) {
	g, in := newQuietGame(t)
	g.enemies = []enemy{{pos: core.Vec{X: 100, Y: 100}, size: 25, speed: 1, health: 2}}

	in.Click(125, 100) // exactly on the radius
	if g.enemies[0].health != 2 {
		t.Error("click on the radius boundary should miss")
	}

	g.gameOver = true
	in.Click(100, 100)
	if g.enemies[0].health != 2 {
		t.Error("shooting after game over should be ignored")
	}
}

func TestSpawnOutsideEdges(t *testing.T) {
	g, _ := newQuietGame(t)

	for i := 0; i < 200; i++ {
		g.spawn()
	}
	for _, e := range g.enemies {
		p := e.pos
		onEdge := (p.Y == -30 && p.X >= 0 && p.X <= 800) ||
			(p.X == 830 && p.Y >= 0 && p.Y <= 600) ||
			(p.Y == 630 && p.X >= 0 && p.X <= 800) ||
			(p.X == -30 && p.Y >= 0 && p.Y <= 600)
		if !onEdge {
			t.Errorf("enemy spawned at %v, not just outside an edge", p)
		}
		if e.speed < 1 || e.speed >= 3 {
			t.Errorf("speed %v outside [1, 3)", e.speed)
		}
		if e.health != 2 || e.size != 25 {
			t.Errorf("unexpected enemy %+v", e)
		}
	}
}

func TestRenderGameOver(t *testing.T) {
	env, _, _ := gametest.NewEnv(5)
	g := New()
	g.Start(env)
	g.score = 30
	g.gameOver = true
	g.Render(env.Surface)

	out := env.Surface.(*core.Canvas).Screen().String()
	for _, want := range []string{"GAME OVER", "Score: 30"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q", want)
		}
	}
}
