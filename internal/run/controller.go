// Package run coordinates the clock and scorer for one typing test at a time.
//
// The controller is not safe for concurrent use. Every call is expected to
// come from the host's event loop.
package run

import (
	"time"

	"go.uber.org/zap"

	"github.com/verte-zerg/neontype/internal/clock"
	"github.com/verte-zerg/neontype/internal/model"
	"github.com/verte-zerg/neontype/internal/score"
)

// State is the lifecycle state of a run.
type State int

// Run states.
const (
	Idle State = iota
	Running
	Complete
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// TextSource produces a target text for a configuration.
type TextSource interface {
	Text(cfg model.TestConfig) []rune
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// Controller owns the target text, the input buffer and the countdown.
type Controller struct {
	cfg    model.TestConfig
	source TextSource
	log    *zap.Logger

	clock *clock.Countdown
	state State
	// run changes whenever a run is abandoned or started; epoch changes
	// whenever the pending frame chain must be dropped.
	run   uint64
	epoch uint64

	target []rune
	input  []rune
	result *model.Result
	trace  []float64

	listeners []func(model.Result)
}

// New validates cfg and returns an Idle controller with a fresh target.
func New(cfg model.TestConfig, source TextSource, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		cfg:    cfg,
		source: source,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.clock = clock.New(nil)
	c.target = source.Text(cfg)
	return c, nil
}

// OnComplete registers fn to receive the result of every completed run.
func (c *Controller) OnComplete(fn func(model.Result)) {
	c.listeners = append(c.listeners, fn)
}

// Start begins a run at now. It returns the frame epoch the host should tick with.
// Starting while Running or Complete is a no-op.
func (c *Controller) Start(now time.Time) uint64 {
	if c.state != Idle {
		return c.epoch
	}
	c.run++
	c.epoch++
	c.input = nil
	c.result = nil
	c.trace = nil
	c.state = Running

	run := c.run
	c.clock = clock.New(func() { c.finish(run) })
	if err := c.clock.Start(c.cfg.Duration); err != nil {
		// Validate already rejected negative durations.
		c.log.Error("failed to start clock", zap.Error(err))
		c.state = Idle
		return c.epoch
	}
	c.log.Debug("run started",
		zap.Uint64("run", run),
		zap.String("mode", string(c.cfg.Mode)),
		zap.Duration("duration", c.cfg.Duration),
		zap.Int("target_len", len(c.target)),
	)
	c.clock.Tick(now)
	return c.epoch
}

// SetInput replaces the input buffer with value. The first character typed
// while Idle starts the run; input after completion is ignored.
func (c *Controller) SetInput(value string, now time.Time) {
	switch c.state {
	case Complete:
		return
	case Idle:
		if value == "" {
			return
		}
		c.Start(now)
		if c.state != Running {
			return
		}
	}
	if c.clock.Running() {
		c.clock.Tick(now)
	} else {
		c.Resume(now)
	}
	if c.state != Running {
		return
	}
	c.input = []rune(value)
	if c.cfg.Mode.FinishesOnText() && len(c.input) >= len(c.target) {
		c.clock.Stop()
		c.finish(c.run)
	}
}

// Tick advances the clock for a frame scheduled in epoch. It reports whether
// the host should schedule another frame.
func (c *Controller) Tick(epoch uint64, now time.Time) bool {
	if epoch != c.epoch || c.state != Running || !c.clock.Running() {
		return false
	}
	c.clock.Tick(now)
	c.sample()
	return c.state == Running
}

// Pause stops the clock and drops the pending frame chain.
func (c *Controller) Pause() {
	if c.state != Running || !c.clock.Running() {
		return
	}
	c.clock.Stop()
	c.epoch++
	c.log.Debug("run paused", zap.Uint64("run", c.run), zap.Duration("elapsed", c.clock.Elapsed()))
}

// Resume continues a paused run from now and returns the new frame epoch.
func (c *Controller) Resume(now time.Time) uint64 {
	if c.state != Running || c.clock.Running() {
		return c.epoch
	}
	c.epoch++
	c.clock.Resume()
	c.clock.Tick(now)
	c.log.Debug("run resumed", zap.Uint64("run", c.run), zap.Duration("elapsed", c.clock.Elapsed()))
	return c.epoch
}

// Reset abandons any run and returns to Idle with a regenerated target.
func (c *Controller) Reset() {
	c.clock.Stop()
	c.run++
	c.epoch++
	c.state = Idle
	c.input = nil
	c.result = nil
	c.trace = nil
	c.clock = clock.New(nil)
	c.target = c.source.Text(c.cfg)
}

// Configure validates cfg, applies it and resets.
func (c *Controller) Configure(cfg model.TestConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	c.Reset()
	return nil
}

func (c *Controller) finish(run uint64) {
	if run != c.run || c.state != Running {
		return
	}
	c.state = Complete
	c.epoch++
	c.sample()
	snap := c.Snapshot()
	res := model.Result{
		WPM:        snap.WPM,
		Accuracy:   snap.AccuracyPercent(),
		RawWPM:     snap.RawWPM,
		Characters: snap.Typed,
		Mistakes:   snap.Mistakes,
		Seconds:    int(c.cfg.Duration / time.Second),
		Elapsed:    c.clock.Elapsed(),
		Mode:       c.cfg.Mode,
	}
	c.result = &res
	c.log.Info("run complete",
		zap.Uint64("run", run),
		zap.Int("wpm", res.WPM),
		zap.Int("raw", res.RawWPM),
		zap.Int("accuracy", res.Accuracy),
		zap.Int("characters", res.Characters),
	)
	for _, fn := range c.listeners {
		fn(res)
	}
}

// sample records one WPM point per whole elapsed second.
func (c *Controller) sample() {
	elapsed := c.clock.Elapsed()
	want := int(elapsed / time.Second)
	for len(c.trace) < want {
		at := time.Duration(len(c.trace)+1) * time.Second
		c.trace = append(c.trace, float64(score.Evaluate(c.target, c.input, at).WPM))
	}
}

// Snapshot scores the current input against the time actually spent.
func (c *Controller) Snapshot() score.Snapshot {
	return score.Evaluate(c.target, c.input, c.clock.Elapsed())
}

// Live returns the per-frame display values.
func (c *Controller) Live() model.Live {
	snap := c.Snapshot()
	remaining := c.clock.Remaining()
	if c.state == Idle {
		remaining = c.cfg.Duration
	}
	return model.Live{
		Remaining: remaining,
		WPM:       snap.WPM,
		RawWPM:    snap.RawWPM,
		Accuracy:  snap.AccuracyPercent(),
		Progress:  c.clock.Progress(),
	}
}

// Classes returns per-position correctness for highlighting.
func (c *Controller) Classes() []score.Class {
	return score.Classify(c.target, c.input)
}

// Target returns a copy of the target text.
func (c *Controller) Target() []rune {
	return append([]rune(nil), c.target...)
}

// Input returns the current input buffer.
func (c *Controller) Input() string {
	return string(c.input)
}

// State returns the lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Paused reports whether a run is active with its clock stopped.
func (c *Controller) Paused() bool {
	return c.state == Running && !c.clock.Running()
}

// Epoch returns the current frame epoch.
func (c *Controller) Epoch() uint64 {
	return c.epoch
}

// Config returns the active configuration.
func (c *Controller) Config() model.TestConfig {
	return c.cfg
}

// Result returns the completed run's result, if any.
func (c *Controller) Result() (model.Result, bool) {
	if c.result == nil {
		return model.Result{}, false
	}
	return *c.result, true
}

// Trace returns the per-second WPM samples of the current or last run.
func (c *Controller) Trace() []float64 {
	return append([]float64(nil), c.trace...)
}
