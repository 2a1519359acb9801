package window

import (
	"errors"
	"unicode/utf8"

	"github.com/1broseidon/gwl/internal/headless"
)

type headlessBackend struct {
	surface *headless.Surface
	owned   bool
}

func openHeadless(d descriptor, override NativeHandle) (backend, error) {
	if override != nil {
		h, ok := override.(HeadlessHandle)
		if !ok || h.Surface == nil {
			return nil, ErrHandleMismatch
		}
		return &headlessBackend{surface: h.Surface}, nil
	}

	s := headless.NewSurface(d.x, d.y, d.width, d.height, d.borderWidth)
	s.SetTitle(d.title)
	return &headlessBackend{surface: s, owned: true}, nil
}

func (b *headlessBackend) handle() NativeHandle {
	return HeadlessHandle{Surface: b.surface}
}

func (b *headlessBackend) setTitle(title string) error {
	b.surface.SetTitle(title)
	return nil
}

func (b *headlessBackend) title() (string, error) {
	return b.surface.Title(), nil
}

func (b *headlessBackend) setBorderWidth(width uint32) error {
	b.surface.SetBorderWidth(width)
	return nil
}

func (b *headlessBackend) setUndecorated(undecorated bool) error {
	if undecorated {
		b.surface.SetStyle(headless.StylePopup)
	} else {
		b.surface.SetStyle(headless.StyleOverlapped)
	}
	return nil
}

func (b *headlessBackend) setVisible(visible bool) error {
	b.surface.SetMapped(visible)
	return nil
}

func (b *headlessBackend) position() (int, int, error) {
	x, y := b.surface.Position()
	return int(x), int(y), nil
}

func (b *headlessBackend) size() (int, int, error) {
	w, h := b.surface.Size()
	return int(w), int(h), nil
}

func (b *headlessBackend) keyName(code uint32) string {
	if code < 0x20 || !utf8.ValidRune(rune(code)) {
		return ""
	}
	return string(rune(code))
}

func (b *headlessBackend) run(flow *ControlFlow, cb Callback) (int, error) {
	return drive[headless.Message](headlessSource{b.surface}, flow, cb)
}

func (b *headlessBackend) close() error {
	if b.owned {
		b.surface.Close()
	}
	return nil
}

type headlessSource struct {
	surface *headless.Surface
}

func (s headlessSource) next() (headless.Message, error) {
	msg, err := s.surface.Next()
	if errors.Is(err, headless.ErrClosed) {
		return msg, ErrClosed
	}
	return msg, err
}

func (s headlessSource) dispatch(msg headless.Message) {}

func (s headlessSource) classify(msg headless.Message) []Event {
	switch msg.Kind {
	case headless.Paint:
		return []Event{Expose{}}
	case headless.Destroy:
		return []Event{CloseRequested{}}
	case headless.KeyPress:
		return []Event{KeyDown{Code: msg.Code}}
	case headless.KeyRelease:
		return []Event{KeyUp{Code: msg.Code}}
	}
	return nil
}
