package clock

import (
	"errors"
	"testing"
	"time"

	"github.com/verte-zerg/neontype/internal/model"
)

var t0 = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func TestFirstTickAnchors(t *testing.T) {
	c := New(nil)
	if err := c.Start(15 * time.Second); err != nil {
		t.Fatalf("start: %v", err)
	}
	if got := c.Tick(t0.Add(time.Hour)); got != 15*time.Second {
		t.Fatalf("expected full duration on first tick, got %v", got)
	}
	if got := c.Tick(t0.Add(time.Hour + 5*time.Second)); got != 10*time.Second {
		t.Fatalf("expected 10s remaining, got %v", got)
	}
}

func TestCompletesOnce(t *testing.T) {
	fired := 0
	c := New(func() { fired++ })
	if err := c.Start(10 * time.Second); err != nil {
		t.Fatalf("start: %v", err)
	}
	c.Tick(t0)
	if got := c.Tick(t0.Add(10*time.Second + time.Millisecond)); got != 0 {
		t.Fatalf("expected 0 remaining, got %v", got)
	}
	if !c.Done() || c.Running() {
		t.Fatalf("expected done and stopped, got %+v", c.State())
	}
	c.Tick(t0.Add(11 * time.Second))
	c.Tick(t0.Add(12 * time.Second))
	if fired != 1 {
		t.Fatalf("expected one completion, got %d", fired)
	}
}

func TestEpsilonAbsorbsJitter(t *testing.T) {
	fired := 0
	c := New(func() { fired++ })
	_ = c.Start(time.Second)
	c.Tick(t0)
	c.Tick(t0.Add(time.Second - 50*time.Microsecond))
	if fired != 1 {
		t.Fatalf("expected completion inside epsilon")
	}
}

func TestZeroDurationCompletesOnFirstTick(t *testing.T) {
	fired := 0
	c := New(func() { fired++ })
	if err := c.Start(0); err != nil {
		t.Fatalf("start: %v", err)
	}
	c.Tick(t0)
	if fired != 1 || !c.Done() {
		t.Fatalf("expected immediate completion, fired=%d", fired)
	}
}

func TestNegativeDurationRejected(t *testing.T) {
	c := New(nil)
	err := c.Start(-time.Second)
	if !errors.Is(err, ErrNegativeDuration) || !errors.Is(err, model.ErrConfig) {
		t.Fatalf("expected negative duration config error, got %v", err)
	}
	if c.Running() {
		t.Fatalf("clock should not run after rejected start")
	}
}

func TestRemainingMonotonic(t *testing.T) {
	c := New(nil)
	_ = c.Start(30 * time.Second)
	prev := c.Tick(t0)
	for i := 1; i <= 50; i++ {
		got := c.Tick(t0.Add(time.Duration(i) * 333 * time.Millisecond))
		if got > prev {
			t.Fatalf("remaining increased at step %d: %v > %v", i, got, prev)
		}
		prev = got
	}
}

func TestBackwardsTickDoesNotRewind(t *testing.T) {
	c := New(nil)
	_ = c.Start(30 * time.Second)
	c.Tick(t0)
	c.Tick(t0.Add(5 * time.Second))
	if got := c.Tick(t0.Add(2 * time.Second)); got != 25*time.Second {
		t.Fatalf("expected 25s after backwards tick, got %v", got)
	}
}

func TestStopKeepsElapsed(t *testing.T) {
	c := New(nil)
	_ = c.Start(60 * time.Second)
	c.Tick(t0)
	c.Tick(t0.Add(20 * time.Second))
	c.Stop()
	if got := c.Tick(t0.Add(40 * time.Second)); got != 40*time.Second {
		t.Fatalf("stopped tick should not advance, got %v", got)
	}
	if c.Elapsed() != 20*time.Second {
		t.Fatalf("expected 20s elapsed, got %v", c.Elapsed())
	}
}

func TestResumeAccumulatesElapsed(t *testing.T) {
	c := New(nil)
	_ = c.Start(60 * time.Second)
	c.Tick(t0)
	c.Tick(t0.Add(20 * time.Second))
	c.Stop()
	c.Resume()
	if got := c.Tick(t0.Add(100 * time.Second)); got != 40*time.Second {
		t.Fatalf("resume should re-anchor to now minus elapsed, got %v", got)
	}
	if got := c.Tick(t0.Add(110 * time.Second)); got != 30*time.Second {
		t.Fatalf("expected 30s remaining after resume, got %v", got)
	}
}

func TestProgress(t *testing.T) {
	c := New(nil)
	_ = c.Start(10 * time.Second)
	c.Tick(t0)
	c.Tick(t0.Add(2500 * time.Millisecond))
	if p := c.Progress(); p != 0.25 {
		t.Fatalf("expected progress 0.25, got %v", p)
	}
	c.Tick(t0.Add(time.Minute))
	if p := c.Progress(); p != 1 {
		t.Fatalf("expected progress 1 after completion, got %v", p)
	}
}
