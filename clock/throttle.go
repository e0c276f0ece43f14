package clock

import "time"

// Throttle runs a function at most once per Interval
type Throttle struct {
	Interval time.Duration

	clock    TimeProvider
	last     time.Time
	executed bool
}

func NewThrottle(interval time.Duration, clock TimeProvider) *Throttle {
	if clock == nil {
		clock = RealTime{}
	}
	return &Throttle{Interval: interval, clock: clock}
}

// Run calls fn unless less than Interval has passed since the previous call
// finished. The first call always runs. Reports whether fn ran.
func (t *Throttle) Run(fn func()) bool {
	if t.executed && t.clock.Now().Sub(t.last) < t.Interval {
		return false
	}
	fn()
	t.last = t.clock.Now()
	t.executed = true
	return true
}

// Reset forgets the previous execution
func (t *Throttle) Reset() {
	t.executed = false
	t.last = time.Time{}
}
