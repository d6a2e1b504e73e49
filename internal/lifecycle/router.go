package lifecycle

import "github.com/vovakirdan/canvas-arcade/internal/core"

type listenerKind int

const (
	keyDownListener listenerKind = iota
	keyUpListener
	clickListener
)

type listener struct {
	gen     uint64
	kind    listenerKind
	onKey   func(core.Key)
	onClick func(core.PointerEvent)
	removed bool
}

// Remove detaches the handler. Removing twice is a no-op.
func (l *listener) Remove() {
	l.removed = true
}

// router forwards input events to the handlers of the active session only.
type router struct {
	listeners []*listener
}

func (r *router) add(l *listener) {
	r.listeners = append(r.listeners, l)
}

// snapshot returns the attached handlers of one kind for a generation.
// Handlers added while dispatching see the next event, not this one.
func (r *router) snapshot(gen uint64, kind listenerKind) []*listener {
	live := r.listeners[:0]
	for _, l := range r.listeners {
		if !l.removed {
			live = append(live, l)
		}
	}
	r.listeners = live

	var out []*listener
	for _, l := range r.listeners {
		if l.gen == gen && l.kind == kind {
			out = append(out, l)
		}
	}
	return out
}

func (r *router) keyDown(gen uint64, k core.Key) int {
	return r.dispatchKey(gen, keyDownListener, k)
}

func (r *router) keyUp(gen uint64, k core.Key) int {
	return r.dispatchKey(gen, keyUpListener, k)
}

func (r *router) dispatchKey(gen uint64, kind listenerKind, k core.Key) int {
	n := 0
	for _, l := range r.snapshot(gen, kind) {
		if l.removed {
			continue
		}
		l.onKey(k)
		n++
	}
	return n
}

func (r *router) click(gen uint64, ev core.PointerEvent) int {
	n := 0
	for _, l := range r.snapshot(gen, clickListener) {
		if l.removed {
			continue
		}
		l.onClick(ev)
		n++
	}
	return n
}

// Len returns the number of attached handlers across all sessions.
func (r *router) Len() int {
	n := 0
	for _, l := range r.listeners {
		if !l.removed {
			n++
		}
	}
	return n
}

// sessionInput is the core.Input handed to one session.
type sessionInput struct {
	router *router
	gen    uint64
	owned  []*listener
}

func (s *sessionInput) OnKeyDown(fn func(core.Key)) core.Listener {
	return s.attach(&listener{kind: keyDownListener, onKey: fn})
}

func (s *sessionInput) OnKeyUp(fn func(core.Key)) core.Listener {
	return s.attach(&listener{kind: keyUpListener, onKey: fn})
}

func (s *sessionInput) OnClick(fn func(core.PointerEvent)) core.Listener {
	return s.attach(&listener{kind: clickListener, onClick: fn})
}

func (s *sessionInput) attach(l *listener) core.Listener {
	l.gen = s.gen
	s.owned = append(s.owned, l)
	s.router.add(l)
	return l
}

func (s *sessionInput) removeAll() {
	for _, l := range s.owned {
		l.Remove()
	}
	s.owned = nil
}
