package win32

import (
	"reflect"
	"testing"
)

func TestClassify_StructuralBeforeKeys(t *testing.T) {
	tests := []struct {
		name       string
		relayed    uint32
		hasRelayed bool
		pumped     uint32
		wParam     uintptr
		want       []Message
	}{
		{name: "nothing", pumped: 0x0200, want: nil},
		{name: "paint", relayed: WM_PAINT, hasRelayed: true, pumped: WM_PAINT, want: []Message{{Kind: Expose}}},
		{name: "destroy", relayed: WM_DESTROY, hasRelayed: true, pumped: WM_CLOSE, want: []Message{{Kind: CloseRequest}}},
		{name: "create", relayed: WM_CREATE, hasRelayed: true, want: []Message{{Kind: FrameSetup}}},
		{name: "keydown", pumped: WM_KEYDOWN, wParam: 0x45, want: []Message{{Kind: KeyPress, Code: 0x45}}},
		{name: "keyup", pumped: WM_KEYUP, wParam: 65, want: []Message{{Kind: KeyRelease, Code: 65}}},
		{
			name:       "paint and key in one iteration",
			relayed:    WM_PAINT,
			hasRelayed: true,
			pumped:     WM_KEYDOWN,
			wParam:     65,
			want:       []Message{{Kind: Expose}, {Kind: KeyPress, Code: 65}},
		},
		{name: "relay ignored when unset", relayed: WM_PAINT, pumped: 0, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.relayed, tt.hasRelayed, tt.pumped, tt.wParam)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Classify = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRelay_DestroyIsSticky(t *testing.T) {
	var r Relay
	r.Record(WM_DESTROY, 0, 0)
	r.Record(WM_PAINT, 0, 0)

	msg, ok := r.Take()
	if !ok || msg != WM_DESTROY {
		t.Fatalf("expected WM_DESTROY to survive, got %#x ok=%v", msg, ok)
	}
	if _, ok := r.Take(); ok {
		t.Fatalf("expected relay to be empty after Take")
	}
}

func TestRelay_LastStructuralWins(t *testing.T) {
	var r Relay
	r.Record(WM_CREATE, 0, 0)
	r.Record(WM_PAINT, 0, 0)

	if msg, ok := r.Take(); !ok || msg != WM_PAINT {
		t.Fatalf("expected WM_PAINT, got %#x ok=%v", msg, ok)
	}
}

func TestRelayed(t *testing.T) {
	for _, msg := range []uint32{WM_CREATE, WM_PAINT, WM_DESTROY} {
		if !Relayed(msg) {
			t.Fatalf("expected %#x to be relayed", msg)
		}
	}
	for _, msg := range []uint32{WM_CLOSE, WM_KEYDOWN, WM_QUIT} {
		if Relayed(msg) {
			t.Fatalf("expected %#x to go to DefWindowProcW", msg)
		}
	}
}

func TestStylesRoundTrip(t *testing.T) {
	if UndecoratedStyle&WS_CAPTION == WS_CAPTION {
		t.Fatalf("undecorated style must not carry a caption")
	}
	if DecoratedStyle&WS_CAPTION != WS_CAPTION || DecoratedStyle&WS_THICKFRAME == 0 {
		t.Fatalf("decorated style must be a standard overlapped window")
	}
}
