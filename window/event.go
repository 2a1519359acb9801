package window

import "fmt"

// Event is delivered to the Run callback. The concrete type is one of
// Expose, KeyDown, KeyUp or CloseRequested.
type Event interface {
	ImplementsEvent()
}

// Expose asks the application to redraw the window contents.
type Expose struct{}

// KeyDown reports a key press. Code is the raw platform key code: an X11
// keycode or a Win32 virtual-key code.
type KeyDown struct {
	Code uint32
}

// KeyUp reports a key release. Code uses the same numbering as KeyDown.
type KeyUp struct {
	Code uint32
}

// CloseRequested reports that the window manager or the user asked the
// window to close, or that the window was destroyed.
type CloseRequested struct{}

func (Expose) ImplementsEvent()         {}
func (KeyDown) ImplementsEvent()        {}
func (KeyUp) ImplementsEvent()          {}
func (CloseRequested) ImplementsEvent() {}

func (Expose) String() string         { return "Expose" }
func (e KeyDown) String() string      { return fmt.Sprintf("KeyDown(%d)", e.Code) }
func (e KeyUp) String() string        { return fmt.Sprintf("KeyUp(%d)", e.Code) }
func (CloseRequested) String() string { return "CloseRequested" }
