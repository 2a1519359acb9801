package runtimepath

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestDir_UsesXDGRuntimeDirWhenSet(t *testing.T) {
	td := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", td)

	got, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}
	if got != td {
		t.Fatalf("Dir() = %q, want %q", got, td)
	}
}

func TestDir_FallbacksWhenXDGRuntimeDirMissing(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "")

	got, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}
	if got == "" {
		t.Fatal("Dir() returned empty path")
	}

	wantRun := fmt.Sprintf("/run/user/%d", os.Getuid())
	wantTmp := filepath.Join(os.TempDir(), fmt.Sprintf("gwl-runtime-%d", os.Getuid()))
	if got != wantRun && got != wantTmp {
		t.Fatalf("Dir() = %q, want %q or %q", got, wantRun, wantTmp)
	}
}

func TestWaylandSocket(t *testing.T) {
	td := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", td)

	tests := []struct {
		name    string
		display string
		env     string
		want    string
	}{
		{name: "explicit", display: "wayland-3", env: "wayland-1", want: filepath.Join(td, "wayland-3")},
		{name: "from env", env: "wayland-1", want: filepath.Join(td, "wayland-1")},
		{name: "default", want: filepath.Join(td, DefaultWaylandDisplay)},
		{name: "absolute", display: "/srv/compositor.sock", want: "/srv/compositor.sock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("WAYLAND_DISPLAY", tt.env)

			got, err := WaylandSocket(tt.display)
			if err != nil {
				t.Fatalf("WaylandSocket(%q) error: %v", tt.display, err)
			}
			if got != tt.want {
				t.Fatalf("WaylandSocket(%q) = %q, want %q", tt.display, got, tt.want)
			}
		})
	}
}
