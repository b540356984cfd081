package timer

import (
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

type recordingBeeper struct {
	starts int
	stops  int
}

func (b *recordingBeeper) Start() { b.starts++ }
func (b *recordingBeeper) Stop()  { b.stops++ }

func TestCountdown(t *testing.T) {
	var c Countdown
	c.Decrement()
	assert.Equal(t, byte(0), c.Get())

	c.Set(2)
	c.Decrement()
	assert.Equal(t, byte(1), c.Get())
	c.Decrement()
	c.Decrement()
	assert.Equal(t, byte(0), c.Get())
}

func TestSound_Transitions(t *testing.T) {
	b := &recordingBeeper{}
	s := NewSound(b)

	s.Decrement()
	assert.Equal(t, 0, b.starts)

	s.Set(2)
	assert.True(t, s.Sounding())
	assert.Equal(t, 1, b.starts)

	s.Set(5) // already sounding
	assert.Equal(t, 1, b.starts)

	for range 5 {
		s.Decrement()
	}
	assert.False(t, s.Sounding())
	assert.Equal(t, 1, b.stops)

	s.Decrement()
	assert.Equal(t, 1, b.stops)

	s.Set(1)
	s.Set(0)
	assert.Equal(t, 2, b.starts)
	assert.Equal(t, 2, b.stops)
}

func TestClock_Due(t *testing.T) {
	now := time.Unix(0, 0)
	c := newClock(Rate, func() time.Time { return now })
	interval := time.Second / Rate

	assert.Equal(t, 0, c.Due())

	now = now.Add(interval / 2)
	assert.Equal(t, 0, c.Due())

	now = now.Add(interval / 2)
	assert.Equal(t, 1, c.Due())

	now = now.Add(3*interval + interval/2)
	assert.Equal(t, 3, c.Due())

	// the remaining half interval is carried over
	now = now.Add(interval / 2)
	assert.Equal(t, 1, c.Due())
}

func TestLimiter_Wait(t *testing.T) {
	now := time.Unix(0, 0)
	var slept time.Duration

	l := &Limiter{
		interval: 2 * time.Millisecond,
		now:      func() time.Time { return now },
		sleep: func(d time.Duration) {
			slept += d
			now = now.Add(d)
		},
	}
	l.next = now.Add(l.interval)

	l.Wait()
	assert.Equal(t, 2*time.Millisecond, slept)

	now = now.Add(time.Millisecond)
	l.Wait()
	assert.Equal(t, 3*time.Millisecond, slept)

	// falling far behind resets the schedule without sleeping
	now = now.Add(time.Second)
	l.Wait()
	assert.Equal(t, 3*time.Millisecond, slept)
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(0)
	l.Wait()
}
