// Package math1 implements a timed arithmetic quiz: type the answer and
// press Enter before the countdown runs out. Right answers buy extra time.
package math1

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

var (
	colorBackground = core.Hex("#0a1a2e")
	colorQuestion   = core.Hex("#4facfe")
)

// Operator is one of the quiz's arithmetic operations.
type Operator byte

const (
	OpAdd Operator = '+'
	OpSub Operator = '-'
	OpMul Operator = '*'
)

var operators = []Operator{OpAdd, OpSub, OpMul}

// Symbol returns the operator as displayed.
func (o Operator) Symbol() string {
	if o == OpMul {
		return "×"
	}
	return string(o)
}

// Question is one live challenge. Answer is computed once at generation.
type Question struct {
	A, B   int
	Op     Operator
	Answer int
}

func (q Question) String() string {
	return fmt.Sprintf("%d %s %d = ?", q.A, q.Op.Symbol(), q.B)
}

// Game implements the timed quiz.
type Game struct {
	cfg config.Math1Config
	rng *rand.Rand

	question Question
	input    string
	score    int
	timeLeft int

	countdown core.Timer
	keys      core.Listener
}

func init() {
	registry.Register("math1", func() registry.Game {
		return New()
	})
}

// New creates a quiz with default tuning.
func New() *Game {
	return &Game{cfg: config.DefaultGames().Math1}
}

func (g *Game) ID() string                  { return "math1" }
func (g *Game) Title() string               { return "Quick Math" }
func (g *Game) Category() registry.Category { return registry.CategoryMath }
func (g *Game) Description() string         { return "Solve as many sums as you can before time runs out" }

// Start poses the first question and starts the countdown.
func (g *Game) Start(env registry.Env) {
	g.cfg = env.Settings.Math1
	g.rng = env.Rand
	g.score = 0
	g.input = ""
	g.timeLeft = g.cfg.StartSeconds
	g.next()

	g.countdown = env.Timers.Every(g.cfg.Tick, g.tick)
	g.keys = env.Input.OnKeyDown(g.handleKey)
}

// next replaces the live question.
func (g *Game) next() {
	q := Question{
		A:  g.rng.Intn(g.cfg.MaxOperand) + 1,
		B:  g.rng.Intn(g.cfg.MaxOperand) + 1,
		Op: operators[g.rng.Intn(len(operators))],
	}
	switch q.Op {
	case OpAdd:
		q.Answer = q.A + q.B
	case OpSub:
		q.Answer = q.A - q.B
	case OpMul:
		q.Answer = q.A * q.B
	}
	g.question = q
}

// tick decrements the countdown. At zero both the countdown and the key
// handler are detached.
func (g *Game) tick() {
	g.timeLeft--
	if g.timeLeft <= 0 {
		g.countdown.Stop()
		g.keys.Remove()
	}
}

func (g *Game) handleKey(k core.Key) {
	if g.timeLeft <= 0 {
		return
	}

	switch {
	case k.IsDigit():
		g.input += string(k)
	case k == core.KeyBackspace:
		if g.input != "" {
			g.input = g.input[:len(g.input)-1]
		}
	case k == core.KeyEnter && g.input != "":
		g.submit()
	case k == core.KeyMinus && g.input == "":
		g.input = "-"
	}
}

// submit scores the typed answer and poses a new question. Input that is
// not a number (a lone "-") counts as wrong.
func (g *Game) submit() {
	if n, err := strconv.Atoi(g.input); err == nil && n == g.question.Answer {
		g.score += g.cfg.CorrectPoints
		g.timeLeft += g.cfg.BonusSeconds
	} else {
		g.score = max(0, g.score-g.cfg.WrongPenalty)
	}
	g.input = ""
	g.next()
}

// Update is a no-op: the quiz advances on input and the countdown only.
func (g *Game) Update() {}

// Render draws the question and typed answer, or the time's-up screen.
func (g *Game) Render(dst core.Surface) {
	w, h := dst.Width(), dst.Height()
	dst.FillRect(0, 0, w, h, colorBackground)

	center := core.TextStyle{Align: core.AlignCenter, Bold: true}

	if g.timeLeft <= 0 {
		center.Color, center.Size = core.ColorOrange, 48
		dst.FillText("TIME'S UP!", w/2, h/2-20, center)
		center.Color, center.Size = core.ColorAmber, 36
		dst.FillText(fmt.Sprintf("Your score: %d", g.score), w/2, h/2+40, center)
		return
	}

	center.Color, center.Size = colorQuestion, 64
	dst.FillText(g.question.String(), w/2, h/2-50, center)

	answer := g.input
	if answer == "" {
		answer = "_"
	}
	center.Color, center.Size = core.ColorAmber, 48
	dst.FillText(answer, w/2, h/2+50, center)

	hud := core.TextStyle{Color: core.ColorWhite, Size: 24, Bold: true}
	dst.FillText(fmt.Sprintf("Score: %d", g.score), 20, 40, hud)
	dst.FillText(fmt.Sprintf("Time: %ds", g.timeLeft), 20, 75, hud)

	center.Color, center.Size, center.Bold = core.ColorWhite, 18, false
	dst.FillText("Type the answer and press ENTER", w/2, h-40, center)
}

// State returns the score; the quiz ends when the countdown reaches zero.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.timeLeft <= 0}
}
