package timer

import (
	"time"
)

// Rate is the frequency in Hz at which the timers count down.
const Rate = 60

// Clock converts elapsed wall clock time into a number of fixed rate ticks.
type Clock struct {
	interval time.Duration
	now      func() time.Time
	last     time.Time
}

// NewClock returns a clock ticking at the given frequency in Hz.
func NewClock(hz int) *Clock {
	return newClock(hz, time.Now)
}

func newClock(hz int, now func() time.Time) *Clock {
	return &Clock{
		interval: time.Second / time.Duration(hz),
		now:      now,
		last:     now(),
	}
}

// Due returns the number of ticks that elapsed since the last call. The
// fraction of an interval that has not yet elapsed is carried over.
func (c *Clock) Due() int {
	elapsed := c.now().Sub(c.last)
	if elapsed < c.interval {
		return 0
	}

	ticks := int(elapsed / c.interval)
	c.last = c.last.Add(time.Duration(ticks) * c.interval)
	return ticks
}

// Limiter throttles a loop to a fixed number of iterations per second.
// It is a rough limiter that only works if the loop body takes less time
// than a single iteration.
type Limiter struct {
	interval time.Duration
	next     time.Time
	sleep    func(time.Duration)
	now      func() time.Time
}

// NewLimiter returns a limiter for the given iterations per second. A rate
// of zero or less disables throttling.
func NewLimiter(perSecond int) *Limiter {
	l := &Limiter{
		sleep: time.Sleep,
		now:   time.Now,
	}
	if perSecond > 0 {
		l.interval = time.Second / time.Duration(perSecond)
	}
	l.next = l.now().Add(l.interval)
	return l
}

// Wait blocks until the next iteration is due. If the loop fell behind by
// more than one interval the schedule is reset instead of catching up.
func (l *Limiter) Wait() {
	if l.interval == 0 {
		return
	}

	now := l.now()
	if d := l.next.Sub(now); d > 0 {
		l.sleep(d)
		l.next = l.next.Add(l.interval)
		return
	}

	if now.Sub(l.next) > l.interval {
		l.next = now.Add(l.interval)
		return
	}
	l.next = l.next.Add(l.interval)
}
