package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/neontype/internal/config"
	"github.com/verte-zerg/neontype/internal/model"
)

func TestWithFileRespectsChangedFlags(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--duration", "30"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	duration := 15
	mode := "words"
	opts := practice.withFile(cmd, config.FileConfig{Test: config.TestConfig{Duration: &duration, Mode: &mode}})
	if opts.duration != 30 {
		t.Fatalf("expected flag duration to win, got %d", opts.duration)
	}
	if opts.mode != "words" {
		t.Fatalf("expected file mode, got %q", opts.mode)
	}
	if practice.mode != defaultMode {
		t.Fatalf("expected flag values untouched, got %q", practice.mode)
	}
}

func TestTestConfig(t *testing.T) {
	opts := practiceOptions{duration: 30, mode: "words", words: 10, accent: "#a78bfa"}
	cfg, err := opts.testConfig()
	if err != nil {
		t.Fatalf("test config: %v", err)
	}
	if cfg.Duration != 30*time.Second || cfg.Mode != model.ModeWords || cfg.Words != 10 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Accent != "#A78BFA" {
		t.Fatalf("expected normalized accent, got %q", cfg.Accent)
	}
}

func TestTestConfigErrors(t *testing.T) {
	cases := []practiceOptions{
		{duration: -1, mode: "time"},
		{duration: 30, mode: "tim"},
		{duration: 30, mode: "custom"},
		{duration: 30, mode: "time", accent: "blue"},
	}
	for _, opts := range cases {
		if _, err := opts.testConfig(); err == nil {
			t.Fatalf("expected error for %+v", opts)
		}
	}
	_, err := practiceOptions{duration: 30, mode: "tim"}.testConfig()
	if !errors.Is(err, model.ErrConfig) || !strings.Contains(err.Error(), `did you mean "time"`) {
		t.Fatalf("expected suggestion, got %v", err)
	}
}

func TestTestConfigReadsTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text.txt")
	if err := os.WriteFile(path, []byte("hello\n  world\n"), 0o644); err != nil {
		t.Fatalf("write text: %v", err)
	}
	cfg, err := practiceOptions{duration: 30, mode: "custom", textFile: path}.testConfig()
	if err != nil {
		t.Fatalf("test config: %v", err)
	}
	if cfg.Text != "hello world" {
		t.Fatalf("unexpected text %q", cfg.Text)
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neontype", "config.toml")
	if err := ensureConfigFile(path); err != nil {
		t.Fatalf("ensure config: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	if cfg.Test.Duration != nil || cfg.Test.Mode != nil {
		t.Fatalf("expected commented template to set nothing")
	}
}

func TestModesCmd(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"modes"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("modes: %v", err)
	}
	for _, m := range model.Modes {
		if !strings.Contains(out.String(), string(m)) {
			t.Fatalf("expected mode %s in output: %s", m, out.String())
		}
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSettingsCmd(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "settings.db")
	prev := settingsDBPath
	settingsDBPath = func() string { return dbPath }
	t.Cleanup(func() { settingsDBPath = prev })

	if _, err := execute(t, "settings", "set", "theme", "neon"); err != nil {
		t.Fatalf("set: %v", err)
	}
	out, err := execute(t, "settings", "get", "theme")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out != "neon\n" {
		t.Fatalf("expected neon, got %q", out)
	}
	if _, err := execute(t, "settings", "set", "theme", "purple"); !errors.Is(err, model.ErrConfig) {
		t.Fatalf("expected config error, got %v", err)
	}
	if _, err := execute(t, "settings", "reset"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	out, err = execute(t, "settings")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "theme") || !strings.Contains(out, "dark") {
		t.Fatalf("expected defaults after reset, got %q", out)
	}
}
