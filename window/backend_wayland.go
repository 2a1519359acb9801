//go:build !windows

package window

import (
	"fmt"
	"net"
	"os"

	"github.com/1broseidon/gwl/internal/runtimepath"
)

// waylandBackend only proves a compositor is listening. It creates no
// surface: every mutator succeeds without effect and Run returns at once.
type waylandBackend struct {
	display string
	conn    net.Conn
}

func openWayland(d descriptor, override NativeHandle) (backend, error) {
	if override != nil {
		h, ok := override.(WaylandHandle)
		if !ok {
			return nil, ErrHandleMismatch
		}
		return &waylandBackend{display: h.Display}, nil
	}

	path, err := runtimepath.WaylandSocket(d.display)
	if err != nil {
		return nil, err
	}
	conn, err := net.Dial("unix", path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to compositor at %s: %w", path, err)
	}

	display := d.display
	if display == "" {
		display = os.Getenv("WAYLAND_DISPLAY")
	}
	d.logger.Debug("connected to wayland compositor", "socket", path)
	return &waylandBackend{display: display, conn: conn}, nil
}

func (b *waylandBackend) handle() NativeHandle {
	return WaylandHandle{Display: b.display}
}

func (b *waylandBackend) setTitle(string) error                   { return nil }
func (b *waylandBackend) title() (string, error)                  { return "", nil }
func (b *waylandBackend) setBorderWidth(uint32) error             { return nil }
func (b *waylandBackend) setUndecorated(bool) error               { return nil }
func (b *waylandBackend) setVisible(bool) error                   { return nil }
func (b *waylandBackend) position() (int, int, error)             { return 0, 0, nil }
func (b *waylandBackend) size() (int, int, error)                 { return 0, 0, nil }
func (b *waylandBackend) keyName(uint32) string                   { return "" }
func (b *waylandBackend) run(*ControlFlow, Callback) (int, error) { return 0, nil }

func (b *waylandBackend) close() error {
	if b.conn == nil {
		return nil
	}
	return b.conn.Close()
}
