package hal

import "time"

// hostClock reads the wall clock.
type hostClock struct{}

func newHostClock() *hostClock { return &hostClock{} }

func (c *hostClock) Now() time.Time { return time.Now() }

// stepClock advances a fixed interval per step; headless runs use it so
// their output does not depend on wall-clock jitter.
type stepClock struct {
	start time.Time
	dt    time.Duration
	n     int64
}

func (c *stepClock) Now() time.Time { return c.start.Add(time.Duration(c.n) * c.dt) }

func (c *stepClock) step() { c.n++ }
