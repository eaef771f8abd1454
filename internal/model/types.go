// Package model defines shared data structures.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"
)

// ErrConfig is matched by every configuration error.
var ErrConfig = errors.New("invalid configuration")

// ConfigError reports an invalid configuration field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// Mode selects how the target text is produced.
type Mode string

// Supported modes.
const (
	ModeTime    Mode = "time"
	ModeWords   Mode = "words"
	ModeQuote   Mode = "quote"
	ModeNumbers Mode = "numbers"
	ModeCustom  Mode = "custom"
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeTime, ModeWords, ModeQuote, ModeNumbers, ModeCustom}

// Durations are the preset test lengths offered by the UI.
var Durations = []time.Duration{15 * time.Second, 30 * time.Second, 60 * time.Second, 120 * time.Second}

// ParseMode parses a mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	names := make([]string, len(Modes))
	for i, m := range Modes {
		if string(m) == name {
			return m, nil
		}
		names[i] = string(m)
	}
	return "", &ConfigError{Field: "mode", Reason: Unknown(name, names)}
}

// Unknown formats an "unknown value" reason with the closest candidate, if any.
func Unknown(value string, candidates []string) string {
	reason := fmt.Sprintf("unknown value %q (available: %s)", value, strings.Join(candidates, ", "))
	if value == "" {
		return reason
	}
	if matches := fuzzy.Find(value, candidates); len(matches) > 0 {
		reason += fmt.Sprintf("; did you mean %q?", matches[0].Str)
	}
	return reason
}

// Next returns the mode following m, wrapping around.
func (m Mode) Next() Mode {
	for i, candidate := range Modes {
		if candidate == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return ModeTime
}

// FinishesOnText reports whether typing the whole target ends the run early.
func (m Mode) FinishesOnText() bool {
	switch m {
	case ModeWords, ModeQuote, ModeCustom:
		return true
	default:
		return false
	}
}

// TestConfig defines one typing test. It is immutable for the duration of a run.
type TestConfig struct {
	Duration time.Duration
	Mode     Mode
	Words    int
	Text     string
	Accent   string
}

// Validate checks the configuration. A zero duration is allowed and completes instantly.
func (c TestConfig) Validate() error {
	if c.Duration < 0 {
		return &ConfigError{Field: "duration", Reason: "must be >= 0"}
	}
	if c.Duration%time.Second != 0 {
		return &ConfigError{Field: "duration", Reason: "must be a whole number of seconds"}
	}
	if c.Words < 0 {
		return &ConfigError{Field: "words", Reason: "must be >= 0"}
	}
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return err
	}
	if c.Mode == ModeCustom && strings.TrimSpace(c.Text) == "" {
		return &ConfigError{Field: "text", Reason: "custom mode requires text"}
	}
	return nil
}

// Live is the per-frame view of a run.
type Live struct {
	Remaining time.Duration
	WPM       int
	RawWPM    int
	Accuracy  int
	Progress  float64
}

// Result is emitted once when a run completes.
type Result struct {
	WPM        int
	Accuracy   int
	RawWPM     int
	Characters int
	Mistakes   int
	// Seconds is the configured test length.
	Seconds int
	Elapsed time.Duration
	Mode    Mode
}

// Settings holds host-level preferences.
type Settings struct {
	Theme    string
	Font     string
	Accent   string
	Sound    bool
	Keypress bool
	Numbers  bool
	Punct    bool
}

// Themes lists the supported themes in cycle order.
var Themes = []string{"dark", "light", "solar", "neon", "high-contrast"}

// Fonts lists the supported fonts.
var Fonts = []string{"mono", "geo"}

// Accents is the accent palette.
var Accents = []string{"#22D3EE", "#A78BFA", "#34D399", "#F472B6", "#F59E0B"}

// DefaultSettings returns the preferences used before anything is saved.
func DefaultSettings() Settings {
	return Settings{
		Theme:    "dark",
		Font:     "mono",
		Accent:   Accents[0],
		Sound:    true,
		Keypress: true,
	}
}
