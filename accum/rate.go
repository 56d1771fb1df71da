package accum

import (
	"fmt"
	"math"
	"time"
)

// RateMeter reports the instantaneous frame rate for display. It has no
// influence on simulation.
type RateMeter struct {
	last time.Time
	rate float64
}

// Tick records a frame at now and returns 1/elapsed seconds since the
// previous tick. It returns 0 on the first tick and keeps the previous rate
// when no time has passed.
func (m *RateMeter) Tick(now time.Time) float64 {
	if !m.last.IsZero() {
		if dt := now.Sub(m.last).Seconds(); dt > 0 {
			m.rate = 1 / dt
		}
	}
	m.last = now
	return m.rate
}

func (m *RateMeter) Rate() float64 { return m.rate }

// String formats the rate as "NNfps"; before the first measurement it
// reads "60fps".
func (m *RateMeter) String() string {
	if m.rate == 0 {
		return "60fps"
	}
	return fmt.Sprintf("%dfps", int(math.Round(m.rate)))
}
