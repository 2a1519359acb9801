//go:build windows

package window

import (
	"errors"
	"runtime"

	"golang.org/x/sys/windows"

	"github.com/1broseidon/gwl/internal/win32"
)

// Swapped in tests to count thread pinning.
var (
	lockThread   = runtime.LockOSThread
	unlockThread = runtime.UnlockOSThread
)

type win32Backend struct {
	win *win32.Window
}

func openWin32(d descriptor, override NativeHandle) (_ backend, err error) {
	// The message queue belongs to the thread that created the window.
	lockThread()
	defer func() {
		if err != nil {
			unlockThread()
		}
	}()

	if override != nil {
		h, ok := override.(Win32Handle)
		if !ok || h.HWND == 0 {
			return nil, ErrHandleMismatch
		}
		return &win32Backend{
			win: win32.Adopt(windows.HWND(h.HWND), windows.Handle(h.HInstance), d.borderWidth),
		}, nil
	}

	win, err := win32.Create(win32.WindowSpec{
		Title:       d.title,
		X:           d.x,
		Y:           d.y,
		Width:       d.width,
		Height:      d.height,
		BorderWidth: d.borderWidth,
	})
	if err != nil {
		return nil, err
	}
	return &win32Backend{win: win}, nil
}

func (b *win32Backend) handle() NativeHandle {
	return Win32Handle{HWND: uintptr(b.win.HWND), HInstance: uintptr(b.win.HInstance)}
}

func (b *win32Backend) setTitle(title string) error {
	return b.win.SetTitle(title)
}

func (b *win32Backend) title() (string, error) {
	return b.win.Title()
}

func (b *win32Backend) setBorderWidth(width uint32) error {
	return b.win.SetBorderWidth(width)
}

func (b *win32Backend) setUndecorated(undecorated bool) error {
	return b.win.SetUndecorated(undecorated)
}

func (b *win32Backend) setVisible(visible bool) error {
	if visible {
		b.win.Show()
	} else {
		b.win.Hide()
	}
	return nil
}

func (b *win32Backend) position() (int, int, error) {
	r, err := b.win.Rect()
	if err != nil {
		return 0, 0, err
	}
	return int(r.Left), int(r.Top), nil
}

func (b *win32Backend) size() (int, int, error) {
	r, err := b.win.Rect()
	if err != nil {
		return 0, 0, err
	}
	return int(r.Right - r.Left), int(r.Bottom - r.Top), nil
}

func (b *win32Backend) keyName(code uint32) string {
	return b.win.KeyName(code)
}

func (b *win32Backend) run(flow *ControlFlow, cb Callback) (int, error) {
	return drive[*win32Pump](win32Source{b.win}, flow, cb)
}

func (b *win32Backend) close() error {
	defer unlockThread()
	return b.win.Destroy()
}

// win32Pump is one GetMessageW iteration together with whatever the window
// procedure relayed while it was dispatched.
type win32Pump struct {
	msg   win32.Msg
	relay win32.Relay
	out   []win32.Message
}

type win32Source struct {
	win *win32.Window
}

func (s win32Source) next() (*win32Pump, error) {
	p := &win32Pump{}
	if err := s.win.NextMessage(&p.msg); err != nil {
		var quit *win32.QuitError
		if errors.As(err, &quit) {
			return nil, &quitError{code: quit.Code}
		}
		return nil, err
	}
	return p, nil
}

func (s win32Source) dispatch(p *win32Pump) {
	s.win.Dispatch(&p.msg, &p.relay)

	relayed, ok := p.relay.Take()
	p.out = win32.Classify(relayed, ok, p.msg.Message, p.msg.WParam)
	for _, m := range p.out {
		if m.Kind == win32.FrameSetup {
			s.win.ExtendFrame()
		}
	}
}

func (s win32Source) classify(p *win32Pump) []Event {
	var events []Event
	for _, m := range p.out {
		switch m.Kind {
		case win32.Expose:
			events = append(events, Expose{})
		case win32.CloseRequest:
			events = append(events, CloseRequested{})
		case win32.KeyPress:
			events = append(events, KeyDown{Code: m.Code})
		case win32.KeyRelease:
			events = append(events, KeyUp{Code: m.Code})
		}
	}
	return events
}
