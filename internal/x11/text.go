package x11

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// latin1Replacement stands in for runes the ICCCM STRING type cannot carry.
const latin1Replacement = '?'

// encodeLatin1 converts UTF-8 text to the ISO 8859-1 bytes expected by
// properties of type STRING, such as WM_NAME.
func encodeLatin1(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			b = latin1Replacement
		}
		out = append(out, b)
	}
	return out
}

// decodeLatin1 is the inverse of encodeLatin1.
func decodeLatin1(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		sb.WriteRune(charmap.ISO8859_1.DecodeByte(c))
	}
	return sb.String()
}
