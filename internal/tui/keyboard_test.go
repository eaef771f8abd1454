package tui

import (
	"testing"
	"time"
)

func TestKeyLabel(t *testing.T) {
	cases := map[rune]string{'a': "a", 'Q': "q", ' ': keySpace, '?': "/", '!': "1", '7': "7"}
	for r, want := range cases {
		if got := keyLabel(r); got != want {
			t.Fatalf("keyLabel(%q) = %q, want %q", r, got, want)
		}
	}
}

func TestKeyboardPressExpires(t *testing.T) {
	var k keyboard
	k.press("a", t0)
	if got := k.lit(t0.Add(100 * time.Millisecond)); got != "a" {
		t.Fatalf("expected key lit, got %q", got)
	}
	if got := k.lit(t0.Add(pressHold + time.Millisecond)); got != "" {
		t.Fatalf("expected key released, got %q", got)
	}
}

func TestProgressBarClamps(t *testing.T) {
	st := testStyles()
	if progressBar(st, -1) != progressBar(st, 0) {
		t.Fatalf("expected negative progress to clamp")
	}
	if progressBar(st, 2) != progressBar(st, 1) {
		t.Fatalf("expected progress above one to clamp")
	}
}

func TestSecondsLeftRoundsUp(t *testing.T) {
	cases := map[time.Duration]string{
		0:                       "0s",
		1500 * time.Millisecond: "2s",
		30 * time.Second:        "30s",
	}
	for d, want := range cases {
		if got := secondsLeft(d); got != want {
			t.Fatalf("secondsLeft(%v) = %q, want %q", d, got, want)
		}
	}
}

func TestGlowColorClamps(t *testing.T) {
	if glowColor("#6E6E6E", "#22D3EE", -10) != glowColor("#6E6E6E", "#22D3EE", 0) {
		t.Fatalf("expected glow to clamp below zero")
	}
	if glowColor("#6E6E6E", "#22D3EE", 300) != glowColor("#6E6E6E", "#22D3EE", 150) {
		t.Fatalf("expected glow to saturate at 150 wpm")
	}
	if glowColor("#6E6E6E", "#22D3EE", 0) == glowColor("#6E6E6E", "#22D3EE", 150) {
		t.Fatalf("expected glow to change with wpm")
	}
	if got := glowColor("nope", "#22D3EE", 50); got != "#22D3EE" {
		t.Fatalf("expected accent fallback, got %q", got)
	}
}
