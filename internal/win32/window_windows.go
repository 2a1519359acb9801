//go:build windows

package win32

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/windows"
)

var classSeq atomic.Uint64

// WindowSpec is the initial geometry and title of a new window.
type WindowSpec struct {
	Title       string
	X           int32
	Y           int32
	Width       uint32
	Height      uint32
	BorderWidth uint32
}

// Window is a native window plus the state its window procedure needs.
// All methods must be called from the OS thread that created it.
type Window struct {
	HWND      windows.HWND
	HInstance windows.Handle

	className   *uint16
	borderWidth uint32
	owned       bool

	// relay is non-nil only while a pump or CreateWindowExW is on the stack.
	relay *Relay
}

// Create registers a window class bound to a fresh window procedure and
// creates a hidden overlapped window with it.
func Create(spec WindowSpec) (*Window, error) {
	var hinstance windows.Handle
	if err := windows.GetModuleHandleEx(0, nil, &hinstance); err != nil {
		return nil, fmt.Errorf("GetModuleHandleEx: %w", err)
	}

	className, err := windows.UTF16PtrFromString(fmt.Sprintf("gwl-window-%d", classSeq.Add(1)))
	if err != nil {
		return nil, err
	}
	title, err := windows.UTF16PtrFromString(spec.Title)
	if err != nil {
		return nil, fmt.Errorf("invalid title: %w", err)
	}

	w := &Window{
		HInstance:   hinstance,
		className:   className,
		borderWidth: spec.BorderWidth,
		owned:       true,
	}

	wc := wndClass{
		Style:     csHRedraw | csVRedraw | csOwnDC,
		WndProc:   windows.NewCallback(w.windowProc),
		Instance:  hinstance,
		ClassName: className,
	}
	if r, _, err := procRegisterClassW.Call(uintptr(unsafe.Pointer(&wc))); r == 0 {
		return nil, fmt.Errorf("RegisterClassW: %w", err)
	}

	var relay Relay
	w.relay = &relay
	hwnd, _, err := procCreateWindowExW.Call(
		0,
		uintptr(unsafe.Pointer(className)),
		uintptr(unsafe.Pointer(title)),
		uintptr(DecoratedStyle),
		uintptr(spec.X),
		uintptr(spec.Y),
		uintptr(spec.Width),
		uintptr(spec.Height),
		0, 0,
		uintptr(hinstance),
		0,
	)
	w.relay = nil
	if hwnd == 0 {
		procUnregisterClassW.Call(uintptr(unsafe.Pointer(className)), uintptr(hinstance))
		return nil, fmt.Errorf("CreateWindowExW: %w", err)
	}
	w.HWND = windows.HWND(hwnd)

	if msg, ok := relay.Take(); ok && msg == WM_CREATE {
		w.ExtendFrame()
	}
	return w, nil
}

// Adopt wraps a window created by someone else. Destroy leaves it alone.
func Adopt(hwnd windows.HWND, hinstance windows.Handle, borderWidth uint32) *Window {
	return &Window{
		HWND:        hwnd,
		HInstance:   hinstance,
		borderWidth: borderWidth,
	}
}

func (w *Window) windowProc(hwnd windows.HWND, msg, wParam, lParam uintptr) uintptr {
	if !Relayed(uint32(msg)) {
		r, _, _ := procDefWindowProcW.Call(uintptr(hwnd), msg, wParam, lParam)
		return r
	}
	if msg == WM_PAINT {
		procValidateRect.Call(uintptr(hwnd), 0)
	}
	if w.relay != nil {
		w.relay.Record(uint32(msg), wParam, lParam)
	}
	return 0
}

// QuitError is returned by NextMessage when WM_QUIT is retrieved.
type QuitError struct {
	Code int
}

func (e *QuitError) Error() string {
	return fmt.Sprintf("WM_QUIT with exit code %d", e.Code)
}

// NextMessage blocks in GetMessageW. WM_QUIT is reported as *QuitError.
func (w *Window) NextMessage(msg *Msg) error {
	r, _, err := procGetMessageW.Call(uintptr(unsafe.Pointer(msg)), 0, 0, 0)
	switch int32(r) {
	case -1:
		return fmt.Errorf("GetMessageW: %w", err)
	case 0:
		return &QuitError{Code: int(int32(msg.WParam))}
	}
	return nil
}

// Dispatch translates and dispatches msg with relay receiving any structural
// message the window procedure sees during the call.
func (w *Window) Dispatch(msg *Msg, relay *Relay) {
	w.relay = relay
	procTranslateMessage.Call(uintptr(unsafe.Pointer(msg)))
	procDispatchMessageW.Call(uintptr(unsafe.Pointer(msg)))
	w.relay = nil
}

// ExtendFrame extends the DWM frame into the client area by the border
// width on every side.
func (w *Window) ExtendFrame() error {
	if err := procDwmExtendFrameIntoClientArea.Find(); err != nil {
		return nil
	}
	bw := int32(w.borderWidth)
	m := margins{LeftWidth: bw, RightWidth: bw, TopHeight: bw, BottomHeight: bw}
	r, _, _ := procDwmExtendFrameIntoClientArea.Call(uintptr(w.HWND), uintptr(unsafe.Pointer(&m)))
	if r != 0 {
		return fmt.Errorf("DwmExtendFrameIntoClientArea: HRESULT %#x", uint32(r))
	}
	return nil
}

// SetBorderWidth stores the frame margin and re-applies it.
func (w *Window) SetBorderWidth(width uint32) error {
	w.borderWidth = width
	return w.ExtendFrame()
}

func (w *Window) SetTitle(title string) error {
	p, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return fmt.Errorf("invalid title: %w", err)
	}
	if r, _, err := procSetWindowTextW.Call(uintptr(w.HWND), uintptr(unsafe.Pointer(p))); r == 0 {
		return fmt.Errorf("SetWindowTextW: %w", err)
	}
	return nil
}

func (w *Window) Title() (string, error) {
	n, _, _ := procGetWindowTextLengthW.Call(uintptr(w.HWND))
	buf := make([]uint16, n+1)
	procGetWindowTextW.Call(uintptr(w.HWND), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf), nil
}

// SetUndecorated swaps the style bits in place. WS_VISIBLE is preserved.
func (w *Window) SetUndecorated(undecorated bool) error {
	cur, _, _ := procGetWindowLongW.Call(uintptr(w.HWND), uintptr(gwlStyle))
	visible := uint32(cur) & WS_VISIBLE

	style := uint32(DecoratedStyle)
	corner := uint32(dwmwcpDefault)
	if undecorated {
		style = UndecoratedStyle
		corner = dwmwcpRoundSmall
	}

	procSetWindowLongW.Call(uintptr(w.HWND), uintptr(gwlStyle), uintptr(style|visible))
	// Corner preference is Windows 11 only; older systems reject it.
	_ = windows.DwmSetWindowAttribute(w.HWND, windows.DWMWA_WINDOW_CORNER_PREFERENCE, unsafe.Pointer(&corner), uint32(unsafe.Sizeof(corner)))

	r, _, err := procSetWindowPos.Call(
		uintptr(w.HWND), 0, 0, 0, 0, 0,
		swpFrameChanged|swpNoMove|swpNoSize|swpNoActivate|swpNoZOrder,
	)
	if r == 0 {
		return fmt.Errorf("SetWindowPos: %w", err)
	}
	return nil
}

// Style returns the current GWL_STYLE bits.
func (w *Window) Style() uint32 {
	cur, _, _ := procGetWindowLongW.Call(uintptr(w.HWND), uintptr(gwlStyle))
	return uint32(cur)
}

func (w *Window) Show() {
	procShowWindow.Call(uintptr(w.HWND), swShow)
}

func (w *Window) Hide() {
	procShowWindow.Call(uintptr(w.HWND), swHide)
}

func (w *Window) Visible() bool {
	r, _, _ := procIsWindowVisible.Call(uintptr(w.HWND))
	return r != 0
}

// Rect returns the window rectangle in screen coordinates.
func (w *Window) Rect() (windows.Rect, error) {
	var rect windows.Rect
	if r, _, err := procGetWindowRect.Call(uintptr(w.HWND), uintptr(unsafe.Pointer(&rect))); r == 0 {
		return rect, fmt.Errorf("GetWindowRect: %w", err)
	}
	return rect, nil
}

// KeyName returns the unshifted character for a virtual-key code.
func (w *Window) KeyName(code uint32) string {
	r, _, _ := procMapVirtualKeyW.Call(uintptr(code), mapvkVKToChar)
	ch := rune(r & 0x7fffffff)
	if ch == 0 {
		return ""
	}
	return string(ch)
}

// Destroy destroys an owned window if it still exists and unregisters its
// class.
func (w *Window) Destroy() error {
	if !w.owned {
		return nil
	}
	// The user may already have closed it.
	if alive, _, _ := procIsWindow.Call(uintptr(w.HWND)); alive != 0 {
		if r, _, err := procDestroyWindow.Call(uintptr(w.HWND)); r == 0 {
			return fmt.Errorf("DestroyWindow: %w", err)
		}
	}
	procUnregisterClassW.Call(uintptr(unsafe.Pointer(w.className)), uintptr(w.HInstance))
	return nil
}
