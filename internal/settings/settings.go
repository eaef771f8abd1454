// Package settings holds host-level preferences with explicit accessors.
//
// A single *Settings is created at startup and passed by reference to
// whatever needs it. Changes are persisted through a Backend.
package settings

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/verte-zerg/neontype/internal/model"
)

// Preference keys.
const (
	KeyTheme    = "theme"
	KeyFont     = "font"
	KeyAccent   = "accent"
	KeySound    = "sound"
	KeyKeypress = "keypress"
	KeyNumbers  = "numbers"
	KeyPunct    = "punct"
)

// Keys lists every preference key in display order.
var Keys = []string{KeyTheme, KeyFont, KeyAccent, KeySound, KeyKeypress, KeyNumbers, KeyPunct}

// Backend persists preferences as strings.
type Backend interface {
	All(ctx context.Context) (map[string]string, error)
	Put(ctx context.Context, values map[string]string) error
	Clear(ctx context.Context) error
}

// Settings is the process-wide preference object.
type Settings struct {
	values  model.Settings
	backend Backend
}

// New returns defaults backed by backend. A nil backend keeps changes in memory.
func New(backend Backend) *Settings {
	return &Settings{values: model.DefaultSettings(), backend: backend}
}

// Load reads stored preferences over the defaults. Invalid stored values are
// skipped and reported together.
func (s *Settings) Load(ctx context.Context) error {
	if s.backend == nil {
		return nil
	}
	stored, err := s.backend.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	var bad []string
	for _, key := range Keys {
		value, ok := stored[key]
		if !ok {
			continue
		}
		if err := s.apply(key, value); err != nil {
			bad = append(bad, err.Error())
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("ignored stored settings: %s", strings.Join(bad, "; "))
	}
	return nil
}

// Values returns a copy of every preference.
func (s *Settings) Values() model.Settings {
	return s.values
}

// Theme returns the theme name.
func (s *Settings) Theme() string { return s.values.Theme }

// SetTheme validates and saves the theme.
func (s *Settings) SetTheme(ctx context.Context, theme string) error {
	return s.Set(ctx, KeyTheme, theme)
}

// CycleTheme moves to the next theme.
func (s *Settings) CycleTheme(ctx context.Context) error {
	return s.Set(ctx, KeyTheme, next(model.Themes, s.values.Theme))
}

// Font returns the font name.
func (s *Settings) Font() string { return s.values.Font }

// Accent returns the accent color.
func (s *Settings) Accent() string { return s.values.Accent }

// SetAccent validates and saves the accent color.
func (s *Settings) SetAccent(ctx context.Context, accent string) error {
	return s.Set(ctx, KeyAccent, accent)
}

// CycleAccent moves to the next palette color.
func (s *Settings) CycleAccent(ctx context.Context) error {
	return s.Set(ctx, KeyAccent, next(model.Accents, s.values.Accent))
}

// Sound reports whether sound feedback is enabled.
func (s *Settings) Sound() bool { return s.values.Sound }

// SetSound saves the sound toggle.
func (s *Settings) SetSound(ctx context.Context, on bool) error {
	return s.Set(ctx, KeySound, strconv.FormatBool(on))
}

// Keypress reports whether the keyboard overlay animates key presses.
func (s *Settings) Keypress() bool { return s.values.Keypress }

// Numbers reports whether generated text includes numbers.
func (s *Settings) Numbers() bool { return s.values.Numbers }

// Punct reports whether generated text includes punctuation.
func (s *Settings) Punct() bool { return s.values.Punct }

// Toggle flips a boolean preference and saves it.
func (s *Settings) Toggle(ctx context.Context, key string) error {
	current, ok := s.boolValue(key)
	if !ok {
		return &model.ConfigError{Field: "setting", Reason: fmt.Sprintf("%q is not a toggle", key)}
	}
	return s.Set(ctx, key, strconv.FormatBool(!current))
}

// Get returns the string form of a preference.
func (s *Settings) Get(key string) (string, error) {
	switch key {
	case KeyTheme:
		return s.values.Theme, nil
	case KeyFont:
		return s.values.Font, nil
	case KeyAccent:
		return s.values.Accent, nil
	}
	if v, ok := s.boolValue(key); ok {
		return strconv.FormatBool(v), nil
	}
	return "", unknownKey(key)
}

// Set validates value for key, applies it and persists it.
func (s *Settings) Set(ctx context.Context, key, value string) error {
	if err := s.apply(key, value); err != nil {
		return err
	}
	if s.backend == nil {
		return nil
	}
	stored, _ := s.Get(key)
	if err := s.backend.Put(ctx, map[string]string{key: stored}); err != nil {
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	return nil
}

// Reset restores defaults and clears persisted values.
func (s *Settings) Reset(ctx context.Context) error {
	s.values = model.DefaultSettings()
	if s.backend == nil {
		return nil
	}
	if err := s.backend.Clear(ctx); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	return nil
}

func (s *Settings) apply(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case KeyTheme:
		v, err := oneOf(key, strings.ToLower(value), model.Themes)
		if err != nil {
			return err
		}
		s.values.Theme = v
	case KeyFont:
		v, err := oneOf(key, strings.ToLower(value), model.Fonts)
		if err != nil {
			return err
		}
		s.values.Font = v
	case KeyAccent:
		v, err := parseAccent(value)
		if err != nil {
			return err
		}
		s.values.Accent = v
	case KeySound, KeyKeypress, KeyNumbers, KeyPunct:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return &model.ConfigError{Field: key, Reason: fmt.Sprintf("%q is not a boolean", value)}
		}
		switch key {
		case KeySound:
			s.values.Sound = b
		case KeyKeypress:
			s.values.Keypress = b
		case KeyNumbers:
			s.values.Numbers = b
		case KeyPunct:
			s.values.Punct = b
		}
	default:
		return unknownKey(key)
	}
	return nil
}

func (s *Settings) boolValue(key string) (bool, bool) {
	switch key {
	case KeySound:
		return s.values.Sound, true
	case KeyKeypress:
		return s.values.Keypress, true
	case KeyNumbers:
		return s.values.Numbers, true
	case KeyPunct:
		return s.values.Punct, true
	default:
		return false, false
	}
}

func oneOf(field, value string, allowed []string) (string, error) {
	for _, a := range allowed {
		if a == value {
			return a, nil
		}
	}
	return "", &model.ConfigError{Field: field, Reason: model.Unknown(value, allowed)}
}

// parseAccent accepts #RRGGBB in any case and normalizes to upper case.
func parseAccent(value string) (string, error) {
	v := strings.ToUpper(value)
	if len(v) != 7 || v[0] != '#' {
		return "", &model.ConfigError{Field: KeyAccent, Reason: fmt.Sprintf("%q is not a #RRGGBB color", value)}
	}
	if _, err := strconv.ParseUint(v[1:], 16, 32); err != nil {
		return "", &model.ConfigError{Field: KeyAccent, Reason: fmt.Sprintf("%q is not a #RRGGBB color", value)}
	}
	return v, nil
}

func unknownKey(key string) error {
	keys := append([]string(nil), Keys...)
	sort.Strings(keys)
	return &model.ConfigError{Field: "setting", Reason: model.Unknown(key, keys)}
}

func next(values []string, current string) string {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}
