package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "runner.log")

	logger, closeFn, err := New(Options{Path: path, Level: "debug"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Debug("game over", "score", 42)
	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	line := string(data)
	for _, want := range []string{"runner", "game over", "score=42"} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q missing %q", line, want)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.log")

	logger, closeFn, err := New(Options{Path: path, Level: "warn"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	closeFn()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") {
		t.Error("info line written at warn level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("warn line missing")
	}
}

func TestNewDiscardByDefault(t *testing.T) {
	logger, closeFn, err := New(Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Info("nowhere")
	if err := closeFn(); err != nil {
		t.Errorf("close of discard logger failed: %v", err)
	}
}

func TestNewBadLevel(t *testing.T) {
	if _, _, err := New(Options{Level: "loud"}); err == nil {
		t.Error("expected an error for an unknown level")
	}
}
