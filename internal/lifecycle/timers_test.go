package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerQueueOrder(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	q := &timerQueue{}
	st := &sessionTimers{queue: q, clock: clock.Now, gen: 1}

	var got []string
	st.After(300*time.Millisecond, func() { got = append(got, "c") })
	st.After(100*time.Millisecond, func() { got = append(got, "a") })
	st.After(100*time.Millisecond, func() { got = append(got, "b") })

	clock.Advance(time.Second)
	fired := q.Fire(clock.Now(), func(uint64) bool { return true })

	assert.Equal(t, 3, fired)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Zero(t, q.Len())
}

func TestTimerQueueRepeatingCatchesUp(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	q := &timerQueue{}
	st := &sessionTimers{queue: q, clock: clock.Now, gen: 1}

	ticks := 0
	timer := st.Every(time.Second, func() { ticks++ })

	clock.Advance(3500 * time.Millisecond)
	q.Fire(clock.Now(), func(uint64) bool { return true })
	assert.Equal(t, 3, ticks)
	require.Equal(t, 1, q.Len())

	timer.Stop()
	clock.Advance(time.Hour)
	q.Fire(clock.Now(), func(uint64) bool { return true })
	assert.Equal(t, 3, ticks)
	assert.Zero(t, q.Len())
}

func TestTimerQueueDropsStaleSessions(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	q := &timerQueue{}
	old := &sessionTimers{queue: q, clock: clock.Now, gen: 1}
	cur := &sessionTimers{queue: q, clock: clock.Now, gen: 2}

	var got []string
	old.After(time.Millisecond, func() { got = append(got, "old") })
	cur.After(time.Millisecond, func() { got = append(got, "cur") })

	clock.Advance(time.Second)
	fired := q.Fire(clock.Now(), func(gen uint64) bool { return gen == 2 })

	assert.Equal(t, 1, fired)
	assert.Equal(t, []string{"cur"}, got)
	assert.Zero(t, q.Len())
}

func TestEveryWithoutPeriodRunsOnce(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	q := &timerQueue{}
	st := &sessionTimers{queue: q, clock: clock.Now, gen: 1}

	runs := 0
	st.Every(0, func() { runs++ })
	q.Fire(clock.Now(), func(uint64) bool { return true })
	q.Fire(clock.Now(), func(uint64) bool { return true })

	assert.Equal(t, 1, runs)
}
