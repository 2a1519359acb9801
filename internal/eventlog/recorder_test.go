package eventlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
}

func TestRecorder_DisabledDropsEvents(t *testing.T) {
	r, err := Open(Config{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if r.Enabled() {
		t.Fatal("expected recorder without path to be disabled")
	}
	r.Record("Expose", nil)
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	var nilRecorder *Recorder
	nilRecorder.Record("Expose", nil)
	if err := nilRecorder.Close(); err != nil {
		t.Fatalf("Close on nil: %v", err)
	}
}

func TestRecorder_WritesSortedDetails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "events.log")
	r, err := Open(Config{Path: path, MaxSizeMB: 1, MaxFiles: 2})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	r.now = fixedClock

	r.Record("KeyDown(38)", map[string]any{"key": "a", "code": 38, "backend": "x11"})
	r.Record("Expose", nil)
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", lines)
	}
	want := `2024-03-01 12:30:00.000 [KeyDown(38)] backend="x11" code=38 key="a"`
	if lines[0] != want {
		t.Fatalf("line = %q, want %q", lines[0], want)
	}
	if lines[1] != "2024-03-01 12:30:00.000 [Expose]" {
		t.Fatalf("line = %q", lines[1])
	}
}

func TestRecorder_Rotates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.log")
	r, err := Open(Config{Path: path, MaxSizeMB: 1, MaxFiles: 2})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	// Pretend the file is already full.
	r.currentSize = 1024 * 1024
	r.Record("Expose", nil)

	if _, err := os.Stat(path + ".1"); err != nil {
		t.Fatalf("expected rotated file: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.Count(string(data), "\n") != 1 {
		t.Fatalf("expected fresh file with one entry, got %q", data)
	}

	r.currentSize = 1024 * 1024
	r.Record("Expose", nil)
	r.currentSize = 1024 * 1024
	r.Record("Expose", nil)

	if _, err := os.Stat(path + ".2"); err != nil {
		t.Fatalf("expected second rotated file: %v", err)
	}
	if _, err := os.Stat(path + ".3"); !os.IsNotExist(err) {
		t.Fatalf("expected no file beyond max_files, got %v", err)
	}
}

func TestOpen_AppendsToExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.log")
	if err := os.WriteFile(path, []byte("earlier\n"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	r, err := Open(Config{Path: path, MaxSizeMB: 1})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	if r.currentSize != int64(len("earlier\n")) {
		t.Fatalf("currentSize = %d, want %d", r.currentSize, len("earlier\n"))
	}
}
