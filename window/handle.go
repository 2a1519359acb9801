package window

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"

	"github.com/1broseidon/gwl/internal/headless"
)

// NativeHandle identifies the platform window behind a Window. The concrete
// type is one of X11Handle, Win32Handle, WaylandHandle or HeadlessHandle.
type NativeHandle interface {
	ImplementsNativeHandle()
}

// X11Handle is an X11 window on an open connection.
type X11Handle struct {
	XUtil  *xgbutil.XUtil
	Window xproto.Window
}

// Win32Handle is a Win32 window and the module instance that owns its class.
type Win32Handle struct {
	HWND      uintptr
	HInstance uintptr
}

// WaylandHandle names the compositor display the window was opened on.
type WaylandHandle struct {
	Display string
}

// HeadlessHandle is an in-memory surface.
type HeadlessHandle struct {
	Surface *headless.Surface
}

func (X11Handle) ImplementsNativeHandle()      {}
func (Win32Handle) ImplementsNativeHandle()    {}
func (WaylandHandle) ImplementsNativeHandle()  {}
func (HeadlessHandle) ImplementsNativeHandle() {}

// Ownership records whether a Window created its native handle or adopted
// one from a BuildAction.
type Ownership int

const (
	// Owned handles are destroyed by Close.
	Owned Ownership = iota
	// Borrowed handles belong to the caller and survive Close.
	Borrowed
)

func (o Ownership) String() string {
	if o == Borrowed {
		return "borrowed"
	}
	return "owned"
}
