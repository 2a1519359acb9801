package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
)

// ErrClosed is returned by NextEvent once the server connection is gone.
var ErrClosed = errors.New("x11: connection closed")

// Connection manages the X11 connection and core X resources
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window

	// owned is false for connections wrapped around a caller's XUtil; those
	// are never closed here.
	owned bool
}

// NewConnection connects to the given display, or to $DISPLAY when display
// is empty, and loads the keyboard mapping.
func NewConnection(display string) (*Connection, error) {
	var (
		xu  *xgbutil.XUtil
		err error
	)
	if display == "" {
		xu, err = xgbutil.NewConn()
	} else {
		xu, err = xgbutil.NewConnDisplay(display)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11 display %q: %w", display, err)
	}

	keybind.Initialize(xu)

	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
		owned: true,
	}, nil
}

// Wrap adopts a connection opened elsewhere. Close on the result is a no-op.
func Wrap(xu *xgbutil.XUtil) *Connection {
	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}
}

// Owned reports whether Close will disconnect from the server.
func (c *Connection) Owned() bool {
	return c.owned
}

// NextEvent blocks until the server sends an event or an error.
func (c *Connection) NextEvent() (xgb.Event, error) {
	ev, xerr := c.XUtil.Conn().WaitForEvent()
	if ev == nil && xerr == nil {
		return nil, ErrClosed
	}
	if xerr != nil {
		return nil, &ProtocolError{Err: xerr}
	}
	return ev, nil
}

// RefreshKeyboard reloads the keyboard and modifier maps. Call it on
// MappingNotify.
func (c *Connection) RefreshKeyboard() {
	keyMap, modMap := keybind.MapsGet(c.XUtil)
	keybind.KeyMapSet(c.XUtil, keyMap)
	keybind.ModMapSet(c.XUtil, modMap)
}

// KeyName returns the unmodified key string for a raw keycode, or "" when the
// keycode is outside the server's range.
func (c *Connection) KeyName(code uint32) string {
	setup := c.XUtil.Setup()
	if code < uint32(setup.MinKeycode) || code > uint32(setup.MaxKeycode) {
		return ""
	}
	if keybind.KeyMapGet(c.XUtil) == nil {
		c.RefreshKeyboard()
	}
	return keybind.LookupString(c.XUtil, 0, xproto.Keycode(code))
}

// Close cleanly disconnects from the X11 server
func (c *Connection) Close() {
	if !c.owned {
		return
	}
	c.XUtil.Conn().Close()
}

// ProtocolError wraps an asynchronous X error delivered on the event queue.
type ProtocolError struct {
	Err xgb.Error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("x11 protocol error: %v", e.Err)
}
