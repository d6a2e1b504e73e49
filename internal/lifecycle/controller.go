// Package lifecycle owns the single active game session: it starts games by
// identifier, drives their frames, routes input to them and tears them down.
package lifecycle

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

// session is the one live game and everything attached on its behalf.
type session struct {
	id     string // game identifier
	uid    string // per-launch session ID, for logs
	gen    uint64
	game   registry.Game
	timers *sessionTimers
	input  *sessionInput
}

// frameRequest is the single pending frame callback.
type frameRequest struct {
	gen uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithClock replaces time.Now as the timer clock.
func WithClock(clock func() time.Time) Option {
	return func(c *Controller) { c.clock = clock }
}

// Controller starts, drives and stops game sessions on one shared surface.
// It is not safe for concurrent use: the host calls it from a single event
// loop, which is what keeps frames, timers and input serialized.
type Controller struct {
	logger  *log.Logger
	clock   func() time.Time
	surface core.Surface
	games   config.Games
	runtime config.RuntimeConfig

	title        string
	overlay      bool
	scrollLocked bool

	gen    uint64
	active *session
	frame  *frameRequest
	frames uint64

	timers *timerQueue
	router *router
}

// NewController creates a controller drawing on surface.
func NewController(surface core.Surface, games config.Games, runtime config.RuntimeConfig, opts ...Option) *Controller {
	c := &Controller{
		logger:  log.New(io.Discard),
		clock:   time.Now,
		surface: surface,
		games:   games,
		runtime: runtime,
		timers:  &timerQueue{},
		router:  &router{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start shows the overlay titled title and launches the game registered as
// id, replacing any running session. An unknown id leaves the overlay open
// on a blank surface with no session. The first frame runs immediately.
func (c *Controller) Start(id, title string) bool {
	c.title = title
	c.overlay = true
	c.scrollLocked = true
	c.frame = nil
	c.teardown()
	c.surface.Clear()

	game, err := registry.Create(id)
	if err != nil {
		c.logger.Debug("launch ignored", "game", id, "error", err)
		return false
	}

	c.gen++
	s := &session{
		id:     id,
		uid:    uuid.NewString(),
		gen:    c.gen,
		game:   game,
		timers: &sessionTimers{queue: c.timers, clock: c.clock, gen: c.gen},
		input:  &sessionInput{router: c.router, gen: c.gen},
	}
	c.active = s

	game.Start(registry.Env{
		Surface:  c.surface,
		Input:    s.input,
		Timers:   s.timers,
		Rand:     rand.New(rand.NewSource(c.seed())),
		Settings: c.games,
	})
	c.logger.Debug("session started", "game", id, "session", s.uid, "gen", s.gen)

	c.frame = &frameRequest{gen: s.gen}
	c.runFrame()
	return true
}

func (c *Controller) seed() int64 {
	if c.runtime.Seed != 0 {
		return c.runtime.Seed
	}
	return c.clock().UnixNano()
}

// Stop cancels the frame driver, tears down the session, hides the overlay
// and erases the surface. Stopping with nothing open does nothing.
func (c *Controller) Stop() {
	if c.active == nil && !c.overlay {
		return
	}
	c.frame = nil
	c.teardown()
	c.overlay = false
	c.scrollLocked = false
	c.surface.Clear()
}

// teardown detaches the active session's timers and listeners. Bumping the
// generation makes anything the session left behind inert.
func (c *Controller) teardown() {
	s := c.active
	if s == nil {
		return
	}
	s.timers.stopAll()
	s.input.removeAll()
	c.active = nil
	c.gen++
	c.logger.Debug("session stopped", "game", s.id, "session", s.uid, "score", s.game.State().Score)
}

func (c *Controller) live(gen uint64) bool {
	return c.active != nil && c.active.gen == gen
}

// Frame fires due timers and then runs the pending frame, if any.
func (c *Controller) Frame() {
	c.timers.Fire(c.clock(), c.liveTimer)
	c.runFrame()
}

// liveTimer is live for timers, logging the callbacks it ignores.
func (c *Controller) liveTimer(gen uint64) bool {
	if c.live(gen) {
		return true
	}
	c.logger.Debug("deferred callback ignored", "gen", gen)
	return false
}

// runFrame consumes the pending request, runs update then render, and
// requests the next frame while the session stays active.
func (c *Controller) runFrame() {
	req := c.frame
	c.frame = nil
	if req == nil || !c.live(req.gen) {
		return
	}

	g := c.active.game
	if !g.State().GameOver {
		g.Update()
	}
	g.Render(c.surface)
	c.frames++

	if c.live(req.gen) {
		c.frame = &frameRequest{gen: req.gen}
	}
}

// KeyDown routes a key press. Escape closes the overlay; it reports whether
// the key did so.
func (c *Controller) KeyDown(k core.Key) (exited bool) {
	if k == core.KeyEscape && c.overlay {
		c.Stop()
		return true
	}
	if c.active != nil {
		c.router.keyDown(c.active.gen, k)
	}
	return false
}

// KeyUp routes a key release.
func (c *Controller) KeyUp(k core.Key) {
	if c.active != nil {
		c.router.keyUp(c.active.gen, k)
	}
}

// Click routes a pointer click in client coordinates.
func (c *Controller) Click(ev core.PointerEvent) {
	if c.active != nil {
		c.router.click(c.active.gen, ev)
	}
}

// Title returns the overlay title.
func (c *Controller) Title() string { return c.title }

// Overlay reports whether the game overlay is shown.
func (c *Controller) Overlay() bool { return c.overlay }

// ScrollLocked reports whether background scrolling is suspended.
func (c *Controller) ScrollLocked() bool { return c.scrollLocked }

// FramePending reports whether a frame callback is scheduled.
func (c *Controller) FramePending() bool { return c.frame != nil }

// Frames returns how many frames have run since the controller was created.
func (c *Controller) Frames() uint64 { return c.frames }

// Active returns the running game's identifier.
func (c *Controller) Active() (string, bool) {
	if c.active == nil {
		return "", false
	}
	return c.active.id, true
}

// State returns the running game's state.
func (c *Controller) State() (core.GameState, bool) {
	if c.active == nil {
		return core.GameState{}, false
	}
	return c.active.game.State(), true
}

// SessionID returns the per-launch ID of the running session.
func (c *Controller) SessionID() string {
	if c.active == nil {
		return ""
	}
	return c.active.uid
}
