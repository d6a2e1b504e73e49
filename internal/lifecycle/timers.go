package lifecycle

import (
	"sort"
	"time"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// timerQueue holds every scheduled callback of the controller. It runs on
// the host's clock: Fire is called once per frame and runs whatever is due.
type timerQueue struct {
	seq     uint64
	entries []*timer
}

type timer struct {
	owner   *sessionTimers
	due     time.Time
	every   time.Duration // 0 for one-shot
	fn      func()
	seq     uint64
	stopped bool
}

// Stop cancels the timer. Stopping a fired or stopped timer is a no-op.
func (t *timer) Stop() {
	t.stopped = true
}

func (q *timerQueue) push(t *timer) {
	q.seq++
	t.seq = q.seq
	q.entries = append(q.entries, t)
}

// Fire runs every timer due at or before now, in due order. live reports
// whether a timer's session may still mutate state; stale timers are dropped.
func (q *timerQueue) Fire(now time.Time, live func(gen uint64) bool) int {
	fired := 0
	for {
		t := q.next(now)
		if t == nil {
			return fired
		}
		if !live(t.owner.gen) {
			t.stopped = true
			continue
		}
		if t.every > 0 {
			t.due = t.due.Add(t.every)
			q.push(t)
		} else {
			t.stopped = true
		}
		t.fn()
		fired++
	}
}

// next removes and returns the earliest due timer, pruning stopped ones.
func (q *timerQueue) next(now time.Time) *timer {
	live := q.entries[:0]
	for _, t := range q.entries {
		if !t.stopped {
			live = append(live, t)
		}
	}
	q.entries = live

	if len(q.entries) == 0 {
		return nil
	}
	sort.SliceStable(q.entries, func(i, j int) bool {
		a, b := q.entries[i], q.entries[j]
		if !a.due.Equal(b.due) {
			return a.due.Before(b.due)
		}
		return a.seq < b.seq
	})

	t := q.entries[0]
	if t.due.After(now) {
		return nil
	}
	q.entries = q.entries[1:]
	return t
}

// Len returns the number of timers still scheduled.
func (q *timerQueue) Len() int {
	n := 0
	for _, t := range q.entries {
		if !t.stopped {
			n++
		}
	}
	return n
}

// sessionTimers is the core.Timers handed to one session. Everything it
// schedules is cancelled when the session is torn down.
type sessionTimers struct {
	queue *timerQueue
	clock func() time.Time
	gen   uint64
	owned []*timer
}

func (s *sessionTimers) After(d time.Duration, fn func()) core.Timer {
	return s.schedule(d, 0, fn)
}

func (s *sessionTimers) Every(d time.Duration, fn func()) core.Timer {
	if d <= 0 {
		return s.schedule(d, 0, fn)
	}
	return s.schedule(d, d, fn)
}

func (s *sessionTimers) schedule(d, every time.Duration, fn func()) core.Timer {
	t := &timer{
		owner: s,
		due:   s.clock().Add(d),
		every: every,
		fn:    fn,
	}
	s.owned = append(s.owned, t)
	s.queue.push(t)
	return t
}

func (s *sessionTimers) stopAll() {
	for _, t := range s.owned {
		t.Stop()
	}
	s.owned = nil
}
