package main

import (
	"bytes"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/1broseidon/gwl/internal/config"
	"github.com/1broseidon/gwl/internal/eventlog"
	"github.com/1broseidon/gwl/internal/headless"
	"github.com/1broseidon/gwl/internal/platform"
	"github.com/1broseidon/gwl/internal/x11"
	"github.com/1broseidon/gwl/window"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func headlessWindow(t *testing.T) (*window.Window, *headless.Surface) {
	t.Helper()
	w, err := window.New().Backend(platform.Headless).Logger(discardLogger()).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return w, w.RawHandle().(window.HeadlessHandle).Surface
}

func TestEventHandler_ExitKey(t *testing.T) {
	w, s := headlessWindow(t)
	s.Post(
		headless.Message{Kind: headless.KeyPress, Code: 'Q'},
		headless.Message{Kind: headless.KeyRelease, Code: 'Q'},
		headless.Message{Kind: headless.KeyPress, Code: 'E'},
		headless.Message{Kind: headless.KeyRelease, Code: 'E'},
		headless.Message{Kind: headless.Paint},
	)

	path := filepath.Join(t.TempDir(), "events.log")
	rec, err := eventlog.Open(eventlog.Config{Path: path, MaxSizeMB: 1, MaxFiles: 1})
	if err != nil {
		t.Fatalf("eventlog.Open: %v", err)
	}

	code, err := w.Run(eventHandler(w, config.ExitConfig{Key: "e", Code: 4}, rec, discardLogger()))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if code != 4 {
		t.Fatalf("exit code = %d, want 4", code)
	}
	if s.Pending() != 1 {
		t.Fatalf("pending = %d, want the paint left unread", s.Pending())
	}

	rec.Close()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("recorded %d events, want 4: %q", len(lines), lines)
	}
	if !strings.Contains(lines[3], `[KeyUp(69)] backend="headless" code=69 key="E"`) {
		t.Fatalf("unexpected last entry %q", lines[3])
	}
}

func TestEventHandler_CloseExitsZero(t *testing.T) {
	w, s := headlessWindow(t)
	s.Post(headless.Message{Kind: headless.Destroy})

	code, err := w.Run(eventHandler(w, config.ExitConfig{Key: "e", Code: 9}, nil, discardLogger()))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
}

func TestWindowFlags_OverrideOnlySetFlags(t *testing.T) {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	flags := registerWindowFlags(fs)
	if err := fs.Parse([]string{"--title", "flagged", "--width", "320", "--x", "-5", "--undecorated"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Window.Height = 77
	flags.apply(fs, cfg)

	if cfg.Window.Title != "flagged" || cfg.Window.Width != 320 || cfg.Window.X != -5 || !cfg.Window.Undecorated {
		t.Fatalf("flags not applied: %+v", cfg.Window)
	}
	if cfg.Window.Height != 77 {
		t.Fatalf("unset flag overwrote height: %d", cfg.Window.Height)
	}
	if cfg.Backend != "auto" {
		t.Fatalf("unset flag overwrote backend: %q", cfg.Backend)
	}
}

func TestBuilderFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Backend = "headless"
	cfg.Window.Title = "configured"
	cfg.Window.Width = 250

	w, err := builderFromConfig(cfg, discardLogger()).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer w.Close()

	if title, _ := w.Title(); title != "configured" {
		t.Fatalf("title = %q", title)
	}
	if width, _, _ := w.Size(); width != 250 {
		t.Fatalf("width = %d", width)
	}
}

func TestNewLoggerTo(t *testing.T) {
	var buf bytes.Buffer
	logger := newLoggerTo(&buf, "json", parseLevel("warn"))
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record passed warn level: %q", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) {
		t.Fatalf("expected JSON record, got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRunConfigValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(good, []byte("backend: headless\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(bad, []byte("backend: cocoa\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if rc := runConfig([]string{"validate", "--path", good}); rc != 0 {
		t.Fatalf("validate good rc=%d, want 0", rc)
	}
	if rc := runConfig([]string{"validate", "--path", bad}); rc != 1 {
		t.Fatalf("validate bad rc=%d, want 1", rc)
	}
	if rc := runConfig([]string{"explain", "--path", good, "window.title"}); rc != 0 {
		t.Fatalf("explain rc=%d, want 0", rc)
	}
	if rc := runConfig([]string{"bogus"}); rc != 2 {
		t.Fatalf("bogus rc=%d, want 2", rc)
	}
}

func TestFormatSource(t *testing.T) {
	if got := formatSource(config.Source{Kind: config.SourceFile, File: "/c.yaml", Line: 3, Column: 7}); got != "file:/c.yaml:3:7" {
		t.Fatalf("formatSource = %q", got)
	}
	if got := formatSource(config.Source{Kind: config.SourceDefault, Name: "defaults"}); got != "default:defaults" {
		t.Fatalf("formatSource = %q", got)
	}
}

func TestInfoReport_Render(t *testing.T) {
	r := infoReport{
		goos:     "linux",
		detected: platform.X11,
		selected: platform.X11,
		monitors: []x11.Monitor{
			{ID: 0, Name: "eDP-1", Primary: true, Bounds: platform.Rect{Width: 1920, Height: 1080}},
			{ID: 1, Name: "HDMI-1", Bounds: platform.Rect{X: 1920, Width: 2560, Height: 1440}},
		},
		opensOn: "eDP-1",
	}

	out := r.render()
	for _, want := range []string{"selected", "x11", "Monitors", "eDP-1", "1920x1080+0+0", "(primary)", "2560x1440+1920+0", "opens on"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in info output:\n%s", want, out)
		}
	}
	if strings.Count(out, "(primary)") != 1 {
		t.Fatalf("expected exactly one primary monitor:\n%s", out)
	}
}

func TestGatherInfo_Headless(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Backend = "headless"

	r, err := gatherInfo(cfg)
	if err != nil {
		t.Fatalf("gatherInfo: %v", err)
	}
	if r.selected != platform.Headless {
		t.Fatalf("selected = %v, want headless", r.selected)
	}
	if r.socket != "" || len(r.monitors) != 0 {
		t.Fatalf("headless should not probe a display: %+v", r)
	}
}
