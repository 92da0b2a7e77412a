package core

import "math"

const (
	// MinPeriod is the shortest allowed update period in seconds.
	MinPeriod = 0.05
	// DefaultPeriod is the update period a fresh Clock starts with.
	DefaultPeriod = 0.25
	// PeriodStep is the amount a single speed command changes the period by.
	PeriodStep = 0.05
)

// Clock accumulates wall-clock time and fires one step per elapsed period,
// independent of the frame rate driving it.
type Clock struct {
	period      float64
	accumulated float64
}

// NewClock constructs a Clock with the given period in seconds.
func NewClock(period float64) *Clock {
	c := &Clock{}
	c.setPeriod(period)
	return c
}

// Period returns the current update period in seconds.
func (c Clock) Period() float64 { return c.period }

// Accumulated returns the time banked toward the next step.
func (c Clock) Accumulated() float64 { return c.accumulated }

// AdjustPeriod shifts the period by delta, rounded to two decimals and floored
// at MinPeriod, and returns the new value.
func (c *Clock) AdjustPeriod(delta float64) float64 {
	c.setPeriod(c.period + delta)
	return c.period
}

func (c *Clock) setPeriod(p float64) {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		p = DefaultPeriod
	}
	p = math.Round(p*100) / 100
	if p < MinPeriod {
		p = MinPeriod
	}
	c.period = p
}

// Advance banks deltaSeconds and calls step once for every full period that
// has elapsed. It returns the number of steps taken. Leftover time is kept so
// frame hitches and period changes do not lose fractional progress.
func (c *Clock) Advance(deltaSeconds float64, step func()) int {
	if deltaSeconds > 0 && !math.IsInf(deltaSeconds, 0) {
		c.accumulated += deltaSeconds
	}
	steps := 0
	for c.accumulated >= c.period {
		c.accumulated -= c.period
		if step != nil {
			step()
		}
		steps++
	}
	return steps
}

// Reset discards any banked time.
func (c *Clock) Reset() { c.accumulated = 0 }
