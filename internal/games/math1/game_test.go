package math1

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/games/gametest"
)

func newGame(t *testing.T) (*Game, *gametest.Input, *gametest.Timers) {
	t.Helper()
	env, in, tm := gametest.NewEnv(42)
	g := New()
	g.Start(env)
	return g, in, tm
}

// typeAnswer types n digit by digit and presses Enter.
func typeAnswer(in *gametest.Input, n int) {
	for _, r := range strconv.Itoa(n) {
		in.Type(core.Key(string(r)))
	}
	in.Type(core.KeyEnter)
}

func TestCorrectAnswer(t *testing.T) {
	g, in, _ := newGame(t)
	q := g.question

	typeAnswer(in, q.Answer)

	if g.score != 10 {
		t.Errorf("score = %d, expected 10", g.score)
	}
	if g.timeLeft != 32 {
		t.Errorf("timeLeft = %d, expected 32", g.timeLeft)
	}
	if g.input != "" {
		t.Errorf("input should reset after submit, got %q", g.input)
	}
}

func TestWrongAnswerFloorsAtZero(t *testing.T) {
	g, in, _ := newGame(t)

	typeAnswer(in, g.question.Answer)
	typeAnswer(in, g.question.Answer+1)
	if g.score != 5 {
		t.Errorf("score = %d, expected 5", g.score)
	}
	if g.timeLeft != 32 {
		t.Errorf("wrong answer changed the time: %d", g.timeLeft)
	}

	typeAnswer(in, g.question.Answer+1)
	typeAnswer(in, g.question.Answer+1)
	if g.score != 0 {
		t.Errorf("score = %d, expected 0", g.score)
	}
}

func TestAnswerIsPrecomputed(t *testing.T) {
	g, in, _ := newGame(t)

	for i := 0; i < 50; i++ {
		typeAnswer(in, g.question.Answer+1000)

		q := g.question
		var want int
		switch q.Op {
		case OpAdd:
			want = q.A + q.B
		case OpSub:
			want = q.A - q.B
		case OpMul:
			want = q.A * q.B
		}
		if q.Answer != want {
			t.Fatalf("%v has answer %d, expected %d", q, q.Answer, want)
		}
	}
}

func TestQuestionOperands(t *testing.T) {
	g, _, _ := newGame(t)
	for i := 0; i < 500; i++ {
		g.next()
		q := g.question
		if q.A < 1 || q.A > 20 || q.B < 1 || q.B > 20 {
			t.Fatalf("operands out of range: %+v", q)
		}
		if q.Op != OpAdd && q.Op != OpSub && q.Op != OpMul {
			t.Fatalf("unknown operator %q", q.Op)
		}
	}
}

func TestEditing(t *testing.T) {
	g, in, _ := newGame(t)

	in.Type("1", "2", core.KeyBackspace)
	if g.input != "1" {
		t.Errorf("input = %q, expected %q", g.input, "1")
	}

	in.Type(core.KeyMinus)
	if g.input != "1" {
		t.Error("minus is only accepted as the first character")
	}

	in.Type(core.KeyBackspace, core.KeyBackspace, core.KeyMinus, "4")
	if g.input != "-4" {
		t.Errorf("input = %q, expected %q", g.input, "-4")
	}

	in.Type("x", core.KeyArrowLeft)
	if g.input != "-4" {
		t.Error("unrecognized keys should be ignored")
	}
}

func TestEmptyEnterIgnored(t *testing.T) {
	g, in, _ := newGame(t)
	q := g.question

	in.Type(core.KeyEnter)
	if g.question != q || g.score != 0 {
		t.Error("Enter with no input should do nothing")
	}
}

func TestLoneMinusCountsAsWrong(t *testing.T) {
	g, in, _ := newGame(t)
	typeAnswer(in, g.question.Answer)

	in.Type(core.KeyMinus, core.KeyEnter)
	if g.score != 5 {
		t.Errorf("score = %d, expected 5", g.score)
	}
}

func TestCountdown(t *testing.T) {
	g, in, tm := newGame(t)

	tm.Advance(29 * time.Second)
	if g.timeLeft != 1 || g.State().GameOver {
		t.Fatalf("timeLeft = %d after 29s", g.timeLeft)
	}

	tm.Advance(time.Second)
	if !g.State().GameOver {
		t.Fatal("quiz should end when the countdown reaches zero")
	}
	if tm.Pending() != 0 {
		t.Error("countdown should be stopped")
	}
	if in.Attached() != 0 {
		t.Error("key handler should be detached")
	}

	score := g.score
	typeAnswer(in, g.question.Answer)
	tm.Advance(10 * time.Second)
	if g.score != score || g.timeLeft != 0 {
		t.Error("nothing should change after time is up")
	}
}

func TestBonusExtendsCountdown(t *testing.T) {
	g, in, tm := newGame(t)

	typeAnswer(in, g.question.Answer)
	tm.Advance(31 * time.Second)
	if g.State().GameOver || g.timeLeft != 1 {
		t.Errorf("timeLeft = %d, expected 1", g.timeLeft)
	}
}

func TestRender(t *testing.T) {
	env, in, tm := gametest.NewEnv(42)
	g := New()
	g.Start(env)
	screen := env.Surface.(*core.Canvas).Screen()

	in.Type("7")
	g.Render(env.Surface)
	out := screen.String()
	for _, want := range []string{"= ?", "Score: 0", "Time: 30s", "7"} {
		if !strings.Contains(out, want) {
			t.Errorf("quiz screen missing %q", want)
		}
	}

	tm.Advance(30 * time.Second)
	g.Render(env.Surface)
	out = screen.String()
	if !strings.Contains(out, "TIME'S UP!") {
		t.Error("expected the time's-up screen")
	}
}
