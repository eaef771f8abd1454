// Package clock implements the countdown that drives a typing test.
//
// A Countdown does not schedule itself. The host calls Tick once per
// rendered frame and each frame schedules the next one, so the clock
// resolution follows the render cadence instead of a polling interval.
package clock

import (
	"time"

	"github.com/verte-zerg/neontype/internal/model"
)

// Epsilon absorbs frame timing jitter when deciding completion.
const Epsilon = 100 * time.Microsecond

// ErrNegativeDuration is returned by Start for a negative duration.
var ErrNegativeDuration error = &model.ConfigError{Field: "duration", Reason: "must be >= 0"}

// State is a copy of the countdown state.
type State struct {
	Elapsed  time.Duration
	Duration time.Duration
	Running  bool
	Done     bool
}

// Countdown converts elapsed wall time into remaining time for a fixed duration.
type Countdown struct {
	duration   time.Duration
	elapsed    time.Duration
	anchor     time.Time
	anchored   bool
	running    bool
	done       bool
	onComplete func()
}

// New returns a stopped countdown. onComplete may be nil.
func New(onComplete func()) *Countdown {
	return &Countdown{onComplete: onComplete}
}

// Start begins a fresh count of d. The next Tick sets the reference timestamp.
func (c *Countdown) Start(d time.Duration) error {
	if d < 0 {
		return ErrNegativeDuration
	}
	c.duration = d
	c.elapsed = 0
	c.anchored = false
	c.running = true
	c.done = false
	return nil
}

// Stop halts ticking without resetting elapsed time.
func (c *Countdown) Stop() {
	c.running = false
	c.anchored = false
}

// Resume continues a stopped count. Elapsed time carries over.
func (c *Countdown) Resume() {
	if c.done || c.running {
		return
	}
	c.running = true
	c.anchored = false
}

// Tick advances the count to now and returns the remaining time.
func (c *Countdown) Tick(now time.Time) time.Duration {
	if !c.running || c.done {
		return c.Remaining()
	}
	if !c.anchored {
		c.anchor = now.Add(-c.elapsed)
		c.anchored = true
	}
	if elapsed := now.Sub(c.anchor); elapsed > c.elapsed {
		c.elapsed = elapsed
	}
	remaining := c.Remaining()
	if remaining <= Epsilon {
		c.elapsed = c.duration
		c.running = false
		c.done = true
		if c.onComplete != nil {
			c.onComplete()
		}
		return 0
	}
	return remaining
}

// Remaining returns max(0, duration - elapsed).
func (c *Countdown) Remaining() time.Duration {
	if c.done {
		return 0
	}
	if remaining := c.duration - c.elapsed; remaining > 0 {
		return remaining
	}
	return 0
}

// Elapsed returns the time counted so far.
func (c *Countdown) Elapsed() time.Duration {
	return c.elapsed
}

// Duration returns the configured length of the count.
func (c *Countdown) Duration() time.Duration {
	return c.duration
}

// Progress returns the elapsed fraction in [0, 1].
func (c *Countdown) Progress() float64 {
	if c.done {
		return 1
	}
	if c.duration <= 0 {
		return 0
	}
	p := 1 - float64(c.Remaining())/float64(c.duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Running reports whether the count is advancing.
func (c *Countdown) Running() bool {
	return c.running
}

// Done reports whether the count has completed.
func (c *Countdown) Done() bool {
	return c.done
}

// State returns a snapshot of the countdown.
func (c *Countdown) State() State {
	return State{
		Elapsed:  c.elapsed,
		Duration: c.duration,
		Running:  c.running,
		Done:     c.done,
	}
}
