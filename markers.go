package mojifix

import (
	"slices"
	"strings"
)

// MarkerSet is a fixed set of runes whose presence suggests that UTF-8 bytes
// were decoded as Latin-1. The zero value matches nothing.
type MarkerSet struct {
	chars string
}

// DefaultMarkers lists the Latin-1 renderings of the lead and continuation
// bytes that show up most often in mis-decoded emoji and punctuation.
var DefaultMarkers = NewMarkerSet(
	0xF0, // lead byte of 4-byte sequences (most emoji)
	0x9F,
	0x98,
	0xA9,
	0xB7,
	0xE2, // lead byte of U+2000..U+2FFF (dingbats, curly quotes)
	0x9D,
	0xA4,
	0xEF, // lead byte of U+F000..U+FFFF (variation selectors)
	0xB8,
	0x8F,
)

// NewMarkerSet builds a set from the given runes. Duplicates are ignored.
func NewMarkerSet(rs ...rune) MarkerSet {
	return MarkerSet{}.With(rs...)
}

// With returns a copy of m extended with rs.
func (m MarkerSet) With(rs ...rune) MarkerSet {
	all := append([]rune(m.chars), rs...)
	slices.Sort(all)
	all = slices.Compact(all)
	return MarkerSet{chars: string(all)}
}

// Contains reports whether r is a marker.
func (m MarkerSet) Contains(r rune) bool { return strings.ContainsRune(m.chars, r) }

// In reports whether s contains any marker.
func (m MarkerSet) In(s string) bool { return m.chars != "" && strings.ContainsAny(s, m.chars) }

// Runes returns the markers in ascending order.
func (m MarkerSet) Runes() []rune { return []rune(m.chars) }

// Len reports the number of markers.
func (m MarkerSet) Len() int { return len([]rune(m.chars)) }
