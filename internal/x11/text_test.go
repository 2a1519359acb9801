package x11

import (
	"bytes"
	"testing"
)

func TestEncodeLatin1(t *testing.T) {
	tests := []struct {
		in   string
		want []byte
	}{
		{in: "plain", want: []byte("plain")},
		{in: "café", want: []byte{'c', 'a', 'f', 0xe9}},
		{in: "Grüße", want: []byte{'G', 'r', 0xfc, 0xdf, 'e'}},
		{in: "窓 window", want: []byte("? window")},
		{in: "", want: []byte{}},
	}
	for _, tt := range tests {
		if got := encodeLatin1(tt.in); !bytes.Equal(got, tt.want) {
			t.Fatalf("encodeLatin1(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDecodeLatin1RoundTrip(t *testing.T) {
	for _, s := range []string{"plain", "café", "Grüße ±½"} {
		if got := decodeLatin1(encodeLatin1(s)); got != s {
			t.Fatalf("round trip of %q produced %q", s, got)
		}
	}
}
