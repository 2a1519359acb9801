// Package window creates a single native window and delivers its events.
//
// A Window is built with a Builder, optionally hooked through a BuildAction
// that can adopt a handle created elsewhere, and driven by Run until the
// callback sets Exit on the ControlFlow. The backend is X11, Win32, a
// Wayland placeholder or an in-memory headless surface.
//
// A Window is not safe for concurrent use. All calls must come from the
// goroutine that built it.
package window

import (
	"fmt"
	"log/slog"

	"github.com/1broseidon/gwl/internal/platform"
)

// Window is a native window.
type Window struct {
	backend   backend
	kind      platform.Kind
	ownership Ownership
	logger    *slog.Logger
	closed    bool
}

// Run shows the window and delivers events to cb until cb calls Exit or a
// native quit arrives. It returns the exit code.
func (w *Window) Run(cb Callback) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	if err := w.backend.setVisible(true); err != nil {
		return 0, fmt.Errorf("show window: %w", err)
	}

	var flow ControlFlow
	code, err := w.backend.run(&flow, cb)
	if err != nil {
		return code, err
	}
	w.logger.Debug("event loop finished", "backend", w.kind, "exit_code", code)
	return code, nil
}

// Backend returns the window system this window lives on.
func (w *Window) Backend() platform.Kind {
	return w.kind
}

// Instance returns a borrowed view of the window for native interop.
func (w *Window) Instance() Instance {
	return Instance{Handle: w.backend.handle()}
}

// RawHandle returns the native handle. It is never nil.
func (w *Window) RawHandle() NativeHandle {
	return w.backend.handle()
}

// Ownership reports whether Close destroys the native handle.
func (w *Window) Ownership() Ownership {
	return w.ownership
}

func (w *Window) SetTitle(title string) error {
	if w.closed {
		return ErrClosed
	}
	return w.backend.setTitle(title)
}

func (w *Window) Title() (string, error) {
	if w.closed {
		return "", ErrClosed
	}
	return w.backend.title()
}

// SetBorderWidth sets the frame margin. X11 only honors the width given at
// build time.
func (w *Window) SetBorderWidth(width uint32) error {
	if w.closed {
		return ErrClosed
	}
	return w.backend.setBorderWidth(width)
}

// SetUndecorated removes or restores the title bar and frame without
// recreating the window.
func (w *Window) SetUndecorated(undecorated bool) error {
	if w.closed {
		return ErrClosed
	}
	return w.backend.setUndecorated(undecorated)
}

// SetMinimized hides the window when b is true and shows it otherwise.
// Iconification is not requested from the window manager.
func (w *Window) SetMinimized(b bool) error {
	return w.setVisible(!b)
}

// SetMaximized behaves like SetMinimized: true hides, false shows. No
// backend implements a real maximized state.
func (w *Window) SetMaximized(b bool) error {
	return w.setVisible(!b)
}

func (w *Window) Show() error {
	return w.setVisible(true)
}

func (w *Window) Hide() error {
	return w.setVisible(false)
}

func (w *Window) setVisible(visible bool) error {
	if w.closed {
		return ErrClosed
	}
	return w.backend.setVisible(visible)
}

// Position queries the window's top-left corner in screen coordinates.
func (w *Window) Position() (x, y int, err error) {
	if w.closed {
		return 0, 0, ErrClosed
	}
	return w.backend.position()
}

// Size queries the window's width and height.
func (w *Window) Size() (width, height int, err error) {
	if w.closed {
		return 0, 0, ErrClosed
	}
	return w.backend.size()
}

// KeyName translates a raw key code from KeyDown or KeyUp into the text of
// the unmodified key, or "" when it has none or the window is closed.
func (w *Window) KeyName(code uint32) string {
	if w.closed {
		return ""
	}
	return w.backend.keyName(code)
}

// Close releases the native resources the window owns. Adopted handles are
// left alive. Close is idempotent; every other method then fails with
// ErrClosed.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.backend.close()
}
