package x11

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// MessageKind is the meaning of an X event for one window.
type MessageKind int

const (
	Ignore MessageKind = iota
	Expose
	CloseRequest
	KeyPress
	KeyRelease
	// KeyboardMapping asks the reader to refresh its keyboard maps.
	KeyboardMapping
)

// Message is an X event reduced to what a window loop needs.
type Message struct {
	Kind MessageKind
	Code uint32
}

// Classify maps ev to a Message for window win. Events addressed to other
// windows are ignored. deleteAtom is the WM_DELETE_WINDOW atom.
func Classify(ev xgb.Event, win xproto.Window, deleteAtom xproto.Atom) Message {
	switch e := ev.(type) {
	case xproto.ExposeEvent:
		if e.Window == win {
			return Message{Kind: Expose}
		}
	case xproto.DestroyNotifyEvent:
		if e.Window == win {
			return Message{Kind: CloseRequest}
		}
	case xproto.ClientMessageEvent:
		if e.Window == win && e.Format == 32 && len(e.Data.Data32) > 0 &&
			xproto.Atom(e.Data.Data32[0]) == deleteAtom {
			return Message{Kind: CloseRequest}
		}
	case xproto.KeyPressEvent:
		if e.Event == win {
			return Message{Kind: KeyPress, Code: uint32(e.Detail)}
		}
	case xproto.KeyReleaseEvent:
		if e.Event == win {
			return Message{Kind: KeyRelease, Code: uint32(e.Detail)}
		}
	case xproto.MappingNotifyEvent:
		if e.Request == xproto.MappingKeyboard || e.Request == xproto.MappingModifier {
			return Message{Kind: KeyboardMapping}
		}
	}
	return Message{Kind: Ignore}
}
