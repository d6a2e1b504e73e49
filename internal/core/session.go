package core

import "time"

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	// Stop cancels the timer. Stopping a fired or stopped timer is a no-op.
	Stop()
}

// Timers schedules callbacks against the host's clock on behalf of one
// session. Callbacks run on the host's single event loop, never
// concurrently with frames or input, and never after the owning session
// has been torn down.
type Timers interface {
	// After runs fn once after d.
	After(d time.Duration, fn func()) Timer

	// Every runs fn each time d elapses until stopped.
	Every(d time.Duration, fn func()) Timer
}

// Listener is an attached input handler.
type Listener interface {
	// Remove detaches the handler. Removing twice is a no-op.
	Remove()
}

// Input attaches input handlers on behalf of one session. Handlers only
// receive events while their session is the active one.
type Input interface {
	OnKeyDown(fn func(Key)) Listener
	OnKeyUp(fn func(Key)) Listener
	OnClick(fn func(PointerEvent)) Listener
}

// TrackKeys attaches key-down/key-up handlers that maintain keys.
func TrackKeys(in Input, keys PressedKeys) {
	in.OnKeyDown(keys.Press)
	in.OnKeyUp(keys.Release)
}
