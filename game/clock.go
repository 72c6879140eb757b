package game

import "time"

// Clock paces the loop at a fixed tick rate. Wait blocks until one interval
// has passed since the previous tick began.
type Clock struct {
	interval time.Duration
	last     time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewClock creates a clock running rate ticks per second
func NewClock(rate int) *Clock {
	return &Clock{
		interval: time.Second / time.Duration(rate),
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Wait sleeps out the rest of the current interval and returns the time
// elapsed since the previous tick began. The first call returns at once.
func (c *Clock) Wait() time.Duration {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}

	elapsed := now.Sub(c.last)
	if elapsed < c.interval {
		c.sleep(c.interval - elapsed)
		now = c.now()
		elapsed = now.Sub(c.last)
	}
	c.last = now
	return elapsed
}
