package model

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" Quote ")
	if err != nil {
		t.Fatalf("parse mode: %v", err)
	}
	if m != ModeQuote {
		t.Fatalf("expected quote, got %q", m)
	}
}

func TestParseModeSuggests(t *testing.T) {
	_, err := ParseMode("wrds")
	if err == nil {
		t.Fatalf("expected error for unknown mode")
	}
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("expected config error, got %v", err)
	}
	if !strings.Contains(err.Error(), `did you mean "words"`) {
		t.Fatalf("expected suggestion, got %q", err.Error())
	}
}

func TestModeNextWraps(t *testing.T) {
	if ModeCustom.Next() != ModeTime {
		t.Fatalf("expected custom to wrap to time")
	}
	if ModeTime.Next() != ModeWords {
		t.Fatalf("expected time -> words")
	}
}

func TestValidate(t *testing.T) {
	ok := TestConfig{Duration: 0, Mode: ModeTime}
	if err := ok.Validate(); err != nil {
		t.Fatalf("zero duration should be valid: %v", err)
	}
	cases := []TestConfig{
		{Duration: -time.Second, Mode: ModeTime},
		{Duration: 1500 * time.Millisecond, Mode: ModeTime},
		{Duration: time.Second, Mode: ModeTime, Words: -1},
		{Duration: time.Second, Mode: "zen"},
		{Duration: time.Second, Mode: ModeCustom, Text: "  "},
	}
	for _, cfg := range cases {
		if err := cfg.Validate(); !errors.Is(err, ErrConfig) {
			t.Fatalf("expected config error for %+v, got %v", cfg, err)
		}
	}
}
