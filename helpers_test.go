package mojifix_test

import (
	"fmt"
	"strings"
)

var (
	heartBytes = []byte{0xE2, 0x9D, 0xA4, 0xEF, 0xB8, 0x8F} // U+2764 U+FE0F
	sealBytes  = []byte{0xF0, 0x9F, 0xA6, 0xAD}             // U+1F9AD
	joyBytes   = []byte{0xF0, 0x9F, 0x98, 0x82}             // U+1F602

	heart = string(heartBytes)
	seal  = string(sealBytes)
	joy   = string(joyBytes)
)

// latin1 renders bytes the way a Latin-1 decoder would: one rune per byte.
func latin1(bs ...byte) string {
	rs := make([]rune, len(bs))
	for i, b := range bs {
		rs[i] = rune(b)
	}
	return string(rs)
}

// escaped renders code units as literal backslash-u escapes.
func escaped[T byte | rune](units ...T) string {
	b := &strings.Builder{}
	for _, u := range units {
		fmt.Fprintf(b, "%cu%04x", '\\', u)
	}
	return b.String()
}

func cat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
