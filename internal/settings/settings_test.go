package settings

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/neontype/internal/model"
	"github.com/verte-zerg/neontype/internal/store"
)

func openSettings(t *testing.T) (*Settings, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "settings.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return New(st), st
}

func TestDefaults(t *testing.T) {
	s := New(nil)
	if s.Theme() != "dark" || s.Font() != "mono" || !s.Sound() || !s.Keypress() {
		t.Fatalf("unexpected defaults: %+v", s.Values())
	}
	if s.Accent() != model.Accents[0] {
		t.Fatalf("unexpected default accent %q", s.Accent())
	}
}

func TestSetPersistsAcrossLoad(t *testing.T) {
	s, st := openSettings(t)
	ctx := context.Background()
	if err := s.SetTheme(ctx, "Neon"); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if err := s.SetSound(ctx, false); err != nil {
		t.Fatalf("set sound: %v", err)
	}
	if err := s.SetAccent(ctx, "#a78bfa"); err != nil {
		t.Fatalf("set accent: %v", err)
	}

	reloaded := New(st)
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if reloaded.Theme() != "neon" || reloaded.Sound() || reloaded.Accent() != "#A78BFA" {
		t.Fatalf("unexpected reloaded settings: %+v", reloaded.Values())
	}
}

func TestSetRejectsInvalid(t *testing.T) {
	s := New(nil)
	ctx := context.Background()
	err := s.SetTheme(ctx, "nen")
	if !errors.Is(err, model.ErrConfig) || !strings.Contains(err.Error(), `"neon"`) {
		t.Fatalf("expected suggestion for bad theme, got %v", err)
	}
	if err := s.SetAccent(ctx, "cyan"); err == nil {
		t.Fatalf("expected error for bad accent")
	}
	if err := s.Set(ctx, KeySound, "maybe"); err == nil {
		t.Fatalf("expected error for bad boolean")
	}
	if err := s.Set(ctx, "volume", "3"); !errors.Is(err, model.ErrConfig) {
		t.Fatalf("expected unknown key error, got %v", err)
	}
	if s.Theme() != "dark" {
		t.Fatalf("invalid set must not change state")
	}
}

func TestToggleAndCycle(t *testing.T) {
	s := New(nil)
	ctx := context.Background()
	if err := s.Toggle(ctx, KeyNumbers); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !s.Numbers() {
		t.Fatalf("expected numbers enabled")
	}
	if err := s.Toggle(ctx, KeyTheme); err == nil {
		t.Fatalf("theme is not a toggle")
	}
	for range model.Themes {
		if err := s.CycleTheme(ctx); err != nil {
			t.Fatalf("cycle theme: %v", err)
		}
	}
	if s.Theme() != "dark" {
		t.Fatalf("cycling all themes should wrap to dark, got %q", s.Theme())
	}
	if err := s.CycleAccent(ctx); err != nil {
		t.Fatalf("cycle accent: %v", err)
	}
	if s.Accent() != model.Accents[1] {
		t.Fatalf("unexpected accent %q", s.Accent())
	}
}

func TestResetClearsStore(t *testing.T) {
	s, st := openSettings(t)
	ctx := context.Background()
	if err := s.Set(ctx, KeyFont, "geo"); err != nil {
		t.Fatalf("set font: %v", err)
	}
	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	all, err := st.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 0 || s.Font() != "mono" {
		t.Fatalf("expected defaults after reset")
	}
}

func TestLoadSkipsInvalidStoredValues(t *testing.T) {
	s, st := openSettings(t)
	ctx := context.Background()
	if err := st.Put(ctx, map[string]string{KeyTheme: "plaid", KeyFont: "geo"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Load(ctx); err == nil {
		t.Fatalf("expected error describing ignored values")
	}
	if s.Theme() != "dark" || s.Font() != "geo" {
		t.Fatalf("valid values should still load: %+v", s.Values())
	}
}
