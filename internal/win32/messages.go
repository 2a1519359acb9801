// Package win32 drives native Win32 windows through user32 and dwmapi. The
// message constants and classification live in an untagged file so they can
// be exercised on any platform.
package win32

// Window messages.
const (
	WM_CREATE  = 0x0001
	WM_DESTROY = 0x0002
	WM_PAINT   = 0x000F
	WM_CLOSE   = 0x0010
	WM_QUIT    = 0x0012
	WM_KEYDOWN = 0x0100
	WM_KEYUP   = 0x0101
)

// Window styles.
const (
	WS_OVERLAPPED       = 0x00000000
	WS_POPUP            = 0x80000000
	WS_VISIBLE          = 0x10000000
	WS_BORDER           = 0x00800000
	WS_CAPTION          = 0x00C00000
	WS_SYSMENU          = 0x00080000
	WS_THICKFRAME       = 0x00040000
	WS_MINIMIZEBOX      = 0x00020000
	WS_MAXIMIZEBOX      = 0x00010000
	WS_OVERLAPPEDWINDOW = WS_OVERLAPPED | WS_CAPTION | WS_SYSMENU | WS_THICKFRAME | WS_MINIMIZEBOX | WS_MAXIMIZEBOX
)

// UndecoratedStyle and DecoratedStyle are the GWL_STYLE values applied by
// SetUndecorated, not counting WS_VISIBLE which is always carried over.
const (
	UndecoratedStyle = WS_POPUP | WS_BORDER
	DecoratedStyle   = WS_OVERLAPPEDWINDOW
)

// Relay is the slot the window procedure writes structural messages into
// while a dispatch it belongs to is in progress. It is owned by whoever
// pumps messages and lives no longer than that pump.
type Relay struct {
	Message uint32
	WParam  uintptr
	LParam  uintptr
	set     bool
}

// Record stores a structural message. WM_DESTROY is never overwritten by a
// later message in the same dispatch.
func (r *Relay) Record(msg uint32, wParam, lParam uintptr) {
	if r.set && r.Message == WM_DESTROY {
		return
	}
	r.Message, r.WParam, r.LParam = msg, wParam, lParam
	r.set = true
}

// Take returns the recorded message and clears the slot.
func (r *Relay) Take() (uint32, bool) {
	if !r.set {
		return 0, false
	}
	msg := r.Message
	*r = Relay{}
	return msg, true
}

// Relayed reports whether the window procedure hands msg to the relay
// instead of DefWindowProcW.
func Relayed(msg uint32) bool {
	switch msg {
	case WM_CREATE, WM_PAINT, WM_DESTROY:
		return true
	}
	return false
}

// MessageKind is the meaning of one pump iteration.
type MessageKind int

const (
	// FrameSetup asks the caller to re-apply the DWM frame extension.
	FrameSetup MessageKind = iota
	Expose
	CloseRequest
	KeyPress
	KeyRelease
)

// Message is one classified message.
type Message struct {
	Kind MessageKind
	Code uint32
}

// Classify applies the fixed priority mapping to one pump iteration: the
// structural message relayed by the window procedure first, then the pumped
// message itself for key presses and releases. It returns zero, one or two
// messages.
func Classify(relayed uint32, hasRelayed bool, pumped uint32, wParam uintptr) []Message {
	var out []Message
	if hasRelayed {
		switch relayed {
		case WM_CREATE:
			out = append(out, Message{Kind: FrameSetup})
		case WM_PAINT:
			out = append(out, Message{Kind: Expose})
		case WM_DESTROY:
			out = append(out, Message{Kind: CloseRequest})
		}
	}
	switch pumped {
	case WM_KEYDOWN:
		out = append(out, Message{Kind: KeyPress, Code: uint32(wParam)})
	case WM_KEYUP:
		out = append(out, Message{Kind: KeyRelease, Code: uint32(wParam)})
	}
	return out
}
