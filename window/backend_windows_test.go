//go:build windows

package window

import (
	"errors"
	"io"
	"log/slog"
	"runtime"
	"testing"

	"github.com/1broseidon/gwl/internal/platform"
)

// countThreadPins wraps the thread pinning hooks and restores them after
// the test.
func countThreadPins(t *testing.T) (locks, unlocks *int) {
	t.Helper()
	locks, unlocks = new(int), new(int)
	lockThread = func() { *locks++; runtime.LockOSThread() }
	unlockThread = func() { *unlocks++; runtime.UnlockOSThread() }
	t.Cleanup(func() {
		lockThread = runtime.LockOSThread
		unlockThread = runtime.UnlockOSThread
	})
	return locks, unlocks
}

func buildWin32(b Builder) (*Window, error) {
	return b.Backend(platform.Windows).
		Logger(slog.New(slog.NewTextHandler(io.Discard, nil))).
		Build()
}

func TestWin32_OverrideMismatchReleasesThread(t *testing.T) {
	tests := []struct {
		name     string
		override NativeHandle
	}{
		{"foreign handle", X11Handle{}},
		{"zero hwnd", Win32Handle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locks, unlocks := countThreadPins(t)
			_, err := buildWin32(New().BuildAction(&recordingAction{override: tt.override}))
			if !errors.Is(err, ErrHandleMismatch) {
				t.Fatalf("Build() error = %v, want ErrHandleMismatch", err)
			}
			if *locks != 1 || *unlocks != 1 {
				t.Fatalf("locks = %d, unlocks = %d, want 1 and 1", *locks, *unlocks)
			}
		})
	}
}

func TestWin32_CloseReleasesThread(t *testing.T) {
	locks, unlocks := countThreadPins(t)
	w, err := buildWin32(New().Title("pinned"))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if *unlocks != 0 {
		t.Fatalf("unlocks = %d before Close, want 0", *unlocks)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close() error: %v", err)
	}
	if *locks != 1 || *unlocks != 1 {
		t.Fatalf("locks = %d, unlocks = %d, want 1 and 1", *locks, *unlocks)
	}
}
