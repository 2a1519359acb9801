package x11

import (
	"testing"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

func TestClassify(t *testing.T) {
	const (
		win        = xproto.Window(0x1200001)
		other      = xproto.Window(0x1400007)
		deleteAtom = xproto.Atom(301)
	)

	tests := []struct {
		name string
		ev   xgb.Event
		want Message
	}{
		{name: "expose", ev: xproto.ExposeEvent{Window: win}, want: Message{Kind: Expose}},
		{name: "expose other window", ev: xproto.ExposeEvent{Window: other}, want: Message{Kind: Ignore}},
		{name: "destroy", ev: xproto.DestroyNotifyEvent{Event: win, Window: win}, want: Message{Kind: CloseRequest}},
		{
			name: "wm delete",
			ev: xproto.ClientMessageEvent{
				Format: 32,
				Window: win,
				Data:   xproto.ClientMessageDataUnionData32New([]uint32{uint32(deleteAtom), 0, 0, 0, 0}),
			},
			want: Message{Kind: CloseRequest},
		},
		{
			name: "unrelated client message",
			ev: xproto.ClientMessageEvent{
				Format: 32,
				Window: win,
				Data:   xproto.ClientMessageDataUnionData32New([]uint32{999, 0, 0, 0, 0}),
			},
			want: Message{Kind: Ignore},
		},
		{name: "key press", ev: xproto.KeyPressEvent{Event: win, Detail: 38}, want: Message{Kind: KeyPress, Code: 38}},
		{name: "key release", ev: xproto.KeyReleaseEvent{Event: win, Detail: 38}, want: Message{Kind: KeyRelease, Code: 38}},
		{name: "key press other window", ev: xproto.KeyPressEvent{Event: other, Detail: 38}, want: Message{Kind: Ignore}},
		{name: "mapping", ev: xproto.MappingNotifyEvent{Request: xproto.MappingKeyboard}, want: Message{Kind: KeyboardMapping}},
		{name: "motion", ev: xproto.MotionNotifyEvent{Event: win}, want: Message{Kind: Ignore}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.ev, win, deleteAtom); got != tt.want {
				t.Fatalf("Classify = %+v, want %+v", got, tt.want)
			}
		})
	}
}
