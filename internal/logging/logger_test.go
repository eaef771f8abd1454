package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesFile(t *testing.T) {
	dir := t.TempDir()
	log, err := Init(dir, "debug")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	log.Info("run complete")
	_ = log.Sync()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"message":"run complete"`) {
		t.Fatalf("log entry missing: %s", data)
	}
}

func TestInitRejectsLevel(t *testing.T) {
	if _, err := Init(t.TempDir(), "loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
