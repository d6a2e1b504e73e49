// Package gametest provides a hand-driven environment for game tests:
// input is injected directly and timers advance only when told to.
package gametest

import (
	"math/rand"
	"sort"
	"time"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

// Canvas size used by NewEnv.
const (
	Width  = 800
	Height = 600
)

// NewEnv returns an environment on an 800x600 canvas rasterized to 80x24
// cells, whose client coordinates equal canvas coordinates.
func NewEnv(seed int64) (registry.Env, *Input, *Timers) {
	in := &Input{}
	tm := &Timers{}
	env := registry.Env{
		Surface:  core.NewCanvas(core.NewScreen(80, 24), Width, Height),
		Input:    in,
		Timers:   tm,
		Rand:     rand.New(rand.NewSource(seed)),
		Settings: config.DefaultGames(),
	}
	return env, in, tm
}

type listener struct {
	onKey   func(core.Key)
	onClick func(core.PointerEvent)
	up      bool
	removed bool
}

func (l *listener) Remove() { l.removed = true }

// Input records attached handlers and dispatches injected events to them.
type Input struct {
	listeners []*listener
}

func (in *Input) OnKeyDown(fn func(core.Key)) core.Listener {
	return in.add(&listener{onKey: fn})
}

func (in *Input) OnKeyUp(fn func(core.Key)) core.Listener {
	return in.add(&listener{onKey: fn, up: true})
}

func (in *Input) OnClick(fn func(core.PointerEvent)) core.Listener {
	return in.add(&listener{onClick: fn})
}

func (in *Input) add(l *listener) core.Listener {
	in.listeners = append(in.listeners, l)
	return l
}

// KeyDown delivers a key press.
func (in *Input) KeyDown(k core.Key) {
	for _, l := range in.attached() {
		if l.onKey != nil && !l.up {
			l.onKey(k)
		}
	}
}

// KeyUp delivers a key release.
func (in *Input) KeyUp(k core.Key) {
	for _, l := range in.attached() {
		if l.onKey != nil && l.up {
			l.onKey(k)
		}
	}
}

// Type presses and releases each key in turn.
func (in *Input) Type(keys ...core.Key) {
	for _, k := range keys {
		in.KeyDown(k)
		in.KeyUp(k)
	}
}

// Click delivers a click at canvas coordinates (x, y).
func (in *Input) Click(x, y float64) {
	for _, l := range in.attached() {
		if l.onClick != nil {
			l.onClick(core.PointerEvent{ClientX: x, ClientY: y})
		}
	}
}

// Attached returns the number of handlers not yet removed.
func (in *Input) Attached() int {
	return len(in.attached())
}

func (in *Input) attached() []*listener {
	var out []*listener
	for _, l := range in.listeners {
		if !l.removed {
			out = append(out, l)
		}
	}
	return out
}

type timer struct {
	due     time.Duration
	every   time.Duration
	fn      func()
	seq     int
	stopped bool
}

func (t *timer) Stop() { t.stopped = true }

// Timers is a virtual clock that only moves on Advance.
type Timers struct {
	now     time.Duration
	seq     int
	pending []*timer
}

func (tm *Timers) After(d time.Duration, fn func()) core.Timer {
	return tm.add(&timer{due: tm.now + d, fn: fn})
}

func (tm *Timers) Every(d time.Duration, fn func()) core.Timer {
	if d <= 0 {
		return tm.After(d, fn)
	}
	return tm.add(&timer{due: tm.now + d, every: d, fn: fn})
}

func (tm *Timers) add(t *timer) core.Timer {
	tm.seq++
	t.seq = tm.seq
	tm.pending = append(tm.pending, t)
	return t
}

// Pending returns the number of timers still scheduled.
func (tm *Timers) Pending() int {
	n := 0
	for _, t := range tm.pending {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, firing due timers in order.
func (tm *Timers) Advance(d time.Duration) {
	end := tm.now + d
	for {
		t := tm.next(end)
		if t == nil {
			break
		}
		tm.now = t.due
		if t.every > 0 {
			t.due += t.every
		} else {
			t.stopped = true
		}
		t.fn()
	}
	tm.now = end
}

func (tm *Timers) next(end time.Duration) *timer {
	var live []*timer
	for _, t := range tm.pending {
		if !t.stopped {
			live = append(live, t)
		}
	}
	tm.pending = live
	sort.SliceStable(live, func(i, j int) bool {
		if live[i].due != live[j].due {
			return live[i].due < live[j].due
		}
		return live[i].seq < live[j].seq
	})
	if len(live) == 0 || live[0].due > end {
		return nil
	}
	return live[0]
}
