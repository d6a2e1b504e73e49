package tui

import (
	"sort"
	"time"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// holdTracker emulates key-up events. A key counts as held from its first
// press until no repeat has arrived for the release delay.
type holdTracker struct {
	release  time.Duration
	lastSeen map[core.Key]time.Time
}

func newHoldTracker(release time.Duration) *holdTracker {
	if release <= 0 {
		release = 250 * time.Millisecond
	}
	return &holdTracker{release: release, lastSeen: make(map[core.Key]time.Time)}
}

func (h *holdTracker) press(k core.Key, now time.Time) {
	h.lastSeen[k] = now
}

// expired returns and forgets the keys whose release delay has passed.
func (h *holdTracker) expired(now time.Time) []core.Key {
	var out []core.Key
	for k, t := range h.lastSeen {
		if now.Sub(t) >= h.release {
			out = append(out, k)
			delete(h.lastSeen, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (h *holdTracker) held() int {
	return len(h.lastSeen)
}

func (h *holdTracker) reset() {
	clear(h.lastSeen)
}
