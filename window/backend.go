package window

import (
	"errors"
	"log/slog"

	"github.com/1broseidon/gwl/internal/platform"
)

var (
	// ErrNoPlatform is returned by Build when no window system could be
	// detected and none was requested.
	ErrNoPlatform = errors.New("window: no supported window system detected")
	// ErrClosed is returned when the native event source or the window
	// itself has been closed.
	ErrClosed = errors.New("window: closed")
	// ErrHandleMismatch is returned when a BuildAction overrides the handle
	// with a variant that does not belong to the selected backend.
	ErrHandleMismatch = errors.New("window: native handle does not match backend")
	// ErrUnsupportedPlatform is returned when the selected backend is not
	// compiled into this binary.
	ErrUnsupportedPlatform = errors.New("window: backend not available on this platform")
)

// descriptor is the builder state handed to a backend.
type descriptor struct {
	title       string
	x, y        int32
	width       uint32
	height      uint32
	borderWidth uint32
	undecorated bool
	action      BuildAction
	kind        platform.Kind
	display     string
	logger      *slog.Logger
}

// backend is one live native window. Every method runs on the goroutine
// that built it.
type backend interface {
	handle() NativeHandle
	setTitle(title string) error
	title() (string, error)
	setBorderWidth(width uint32) error
	setUndecorated(undecorated bool) error
	setVisible(visible bool) error
	position() (int, int, error)
	size() (int, int, error)
	keyName(code uint32) string
	run(flow *ControlFlow, cb Callback) (int, error)
	close() error
}

// openBackend creates the native window, or adopts override when it is
// non-nil.
func openBackend(kind platform.Kind, d descriptor, override NativeHandle) (backend, error) {
	switch kind {
	case platform.Headless:
		return openHeadless(d, override)
	case platform.X11:
		return openX11(d, override)
	case platform.Wayland:
		return openWayland(d, override)
	case platform.Windows:
		return openWin32(d, override)
	}
	return nil, ErrNoPlatform
}
