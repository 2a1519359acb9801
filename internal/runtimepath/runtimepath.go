package runtimepath

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultWaylandDisplay is the socket name compositors use when
// WAYLAND_DISPLAY is unset.
const DefaultWaylandDisplay = "wayland-0"

// Dir returns the per-user runtime directory: XDG_RUNTIME_DIR when set,
// else /run/user/<uid> when it exists, else a private directory under the
// system temp dir, created on demand.
func Dir() (string, error) {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return dir, nil
	}

	uid := strconv.Itoa(os.Getuid())
	if dir := filepath.Join("/run/user", uid); isDir(dir) {
		return dir, nil
	}

	dir := filepath.Join(os.TempDir(), "gwl-runtime-"+uid)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create runtime dir: %w", err)
	}
	return dir, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// WaylandSocket resolves a Wayland display name to its socket path. An empty
// display falls back to WAYLAND_DISPLAY and then DefaultWaylandDisplay.
// Absolute names are used as is; relative ones live in Dir.
func WaylandSocket(display string) (string, error) {
	if display == "" {
		display = os.Getenv("WAYLAND_DISPLAY")
	}
	if display == "" {
		display = DefaultWaylandDisplay
	}
	if filepath.IsAbs(display) {
		return display, nil
	}

	runtimeDir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(runtimeDir, display), nil
}
