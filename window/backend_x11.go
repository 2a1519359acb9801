//go:build !windows

package window

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/gwl/internal/x11"
)

type x11Backend struct {
	conn       *x11.Connection
	win        xproto.Window
	deleteAtom xproto.Atom
	owned      bool
	logger     *slog.Logger
}

func openX11(d descriptor, override NativeHandle) (backend, error) {
	if override != nil {
		return adoptX11(d, override)
	}

	conn, err := x11.NewConnection(d.display)
	if err != nil {
		return nil, err
	}

	win, err := conn.CreateWindow(x11.WindowSpec{
		X:           d.x,
		Y:           d.y,
		Width:       d.width,
		Height:      d.height,
		BorderWidth: d.borderWidth,
	})
	if err != nil {
		conn.Close()
		return nil, err
	}

	b := &x11Backend{conn: conn, win: win, owned: true, logger: d.logger}
	if err := b.init(d.title, true); err != nil {
		b.close()
		return nil, err
	}
	return b, nil
}

func adoptX11(d descriptor, override NativeHandle) (backend, error) {
	h, ok := override.(X11Handle)
	if !ok || h.XUtil == nil {
		return nil, ErrHandleMismatch
	}

	b := &x11Backend{conn: x11.Wrap(h.XUtil), win: h.Window, logger: d.logger}
	if err := b.conn.SelectEvents(h.Window); err != nil {
		return nil, fmt.Errorf("failed to select events on window 0x%x: %w", h.Window, err)
	}
	if err := b.init("", false); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *x11Backend) init(title string, applyTitle bool) error {
	atom, err := b.conn.DeleteWindowAtom()
	if err != nil {
		return fmt.Errorf("failed to intern WM_DELETE_WINDOW: %w", err)
	}
	b.deleteAtom = atom

	if applyTitle {
		return b.conn.SetTitle(b.win, title)
	}
	return nil
}

func (b *x11Backend) handle() NativeHandle {
	return X11Handle{XUtil: b.conn.XUtil, Window: b.win}
}

func (b *x11Backend) setTitle(title string) error {
	return b.conn.SetTitle(b.win, title)
}

func (b *x11Backend) title() (string, error) {
	return b.conn.Title(b.win)
}

// The frame margin is the window manager's to draw; only the width given at
// creation reaches the server.
func (b *x11Backend) setBorderWidth(uint32) error {
	return nil
}

func (b *x11Backend) setUndecorated(undecorated bool) error {
	return b.conn.SetDecorated(b.win, !undecorated)
}

func (b *x11Backend) setVisible(visible bool) error {
	if visible {
		return b.conn.Map(b.win)
	}
	return b.conn.Unmap(b.win)
}

func (b *x11Backend) position() (int, int, error) {
	return b.conn.Position(b.win)
}

func (b *x11Backend) size() (int, int, error) {
	return b.conn.Size(b.win)
}

func (b *x11Backend) keyName(code uint32) string {
	return b.conn.KeyName(code)
}

func (b *x11Backend) run(flow *ControlFlow, cb Callback) (int, error) {
	return drive[xgb.Event](x11Source{b}, flow, cb)
}

func (b *x11Backend) close() error {
	if !b.owned {
		return nil
	}
	err := b.conn.Destroy(b.win)
	b.conn.Close()
	return err
}

type x11Source struct {
	b *x11Backend
}

func (s x11Source) next() (xgb.Event, error) {
	for {
		ev, err := s.b.conn.NextEvent()
		if err == nil {
			return ev, nil
		}
		if errors.Is(err, x11.ErrClosed) {
			return nil, ErrClosed
		}
		// Asynchronous protocol errors belong to earlier requests and do not
		// end the loop.
		var perr *x11.ProtocolError
		if errors.As(err, &perr) {
			s.b.logger.Warn("x11 protocol error", "error", perr.Err)
			continue
		}
		return nil, err
	}
}

func (s x11Source) dispatch(ev xgb.Event) {
	if x11.Classify(ev, s.b.win, s.b.deleteAtom).Kind == x11.KeyboardMapping {
		s.b.conn.RefreshKeyboard()
	}
}

func (s x11Source) classify(ev xgb.Event) []Event {
	msg := x11.Classify(ev, s.b.win, s.b.deleteAtom)
	switch msg.Kind {
	case x11.Expose:
		return []Event{Expose{}}
	case x11.CloseRequest:
		return []Event{CloseRequested{}}
	case x11.KeyPress:
		return []Event{KeyDown{Code: msg.Code}}
	case x11.KeyRelease:
		return []Event{KeyUp{Code: msg.Code}}
	}
	return nil
}
