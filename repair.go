package mojifix

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Class is the result of classifying a string. Mojibake and Escape may both
// be set.
type Class uint8

// Clean means no corruption heuristic matched.
const Clean Class = 0

const (
	Mojibake Class = 1 << iota // contains a marker rune
	Escape                     // contains a literal `\u`
)

// Has reports whether all flags in f are set.
func (c Class) Has(f Class) bool { return c&f == f && f != 0 }

func (c Class) String() string {
	switch c {
	case Clean:
		return "clean"
	case Mojibake:
		return "mojibake"
	case Escape:
		return "escape"
	case Mojibake | Escape:
		return "mojibake+escape"
	default:
		return "class(?)"
	}
}

const escapeLiteral = `\u`

// Repairer repairs strings using a configurable marker set. A Repairer is
// immutable and safe for concurrent use.
type Repairer struct {
	markers MarkerSet
}

// Option configures a Repairer.
type Option func(*Repairer)

// WithMarkers adds runes to the marker set.
func WithMarkers(rs ...rune) Option {
	return func(r *Repairer) { r.markers = r.markers.With(rs...) }
}

// WithMarkerSet replaces the marker set.
func WithMarkerSet(m MarkerSet) Option {
	return func(r *Repairer) { r.markers = m }
}

// NewRepairer returns a Repairer using DefaultMarkers unless overridden.
func NewRepairer(opts ...Option) *Repairer {
	r := &Repairer{markers: DefaultMarkers}
	for _, o := range opts {
		if o != nil {
			o(r)
		}
	}
	return r
}

// Markers returns the marker set in use.
func (r *Repairer) Markers() MarkerSet { return r.markers }

var defaultRepairer = NewRepairer()

// Repair repairs s with the default marker set.
func Repair(s string) string { return defaultRepairer.Repair(s) }

// Classify classifies s with the default marker set.
func Classify(s string) Class { return defaultRepairer.Classify(s) }

// Classify reports which corruption heuristics match s. It never modifies s.
func (r *Repairer) Classify(s string) Class {
	c := Clean
	if r.markers.In(s) {
		c |= Mojibake
	}
	if strings.Contains(s, escapeLiteral) {
		c |= Escape
	}
	return c
}

// Repair returns s with mojibake and double-encoded escapes undone. Repair
// never fails; strings it cannot improve are returned unchanged, and
// Repair(Repair(s)) == Repair(s) for every s.
func (r *Repairer) Repair(s string) string {
	// A changing step always yields fewer runes than its input, so the loop
	// reaches a fixed point.
	for {
		res := r.step(s)
		if !res.changed {
			return s
		}
		s = res.value
	}
}

// stepResult is the outcome of one repair step: either a new value or no change.
type stepResult struct {
	value   string
	changed bool
}

var noChange = stepResult{}

func changedTo(before, after string) stepResult {
	if after == before {
		return noChange
	}
	return stepResult{value: after, changed: true}
}

func (r *Repairer) step(s string) stepResult {
	if r.markers.In(s) {
		if res := reinterpretBytes(s); res.changed {
			return res
		}
	}
	if strings.Contains(s, escapeLiteral) {
		res := decodeByteEscapes(s)
		if !res.changed {
			return noChange
		}
		// escape decoding can surface a second layer of mojibake
		if again := reinterpretBytes(res.value); again.changed {
			return again
		}
		return res
	}
	return noChange
}

// reinterpretBytes treats every rune of s as a Latin-1 byte and decodes the
// bytes as UTF-8, dropping invalid sequences. Strings holding a rune above
// U+00FF were not produced by a Latin-1 decode and are left alone.
func reinterpretBytes(s string) stepResult {
	raw, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return noChange
	}
	return changedTo(s, strings.ToValidUTF8(raw, ""))
}

// decodeByteEscapes replaces each literal \uXXXX with the byte it names and
// decodes the result as UTF-8. Values above 0xFF are taken as code points,
// with surrogate pairs combined. A truncated or non-hex escape, or an
// unpaired surrogate, aborts the step.
func decodeByteEscapes(s string) stepResult {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		if !strings.HasPrefix(s[i:], escapeLiteral) {
			buf = append(buf, s[i])
			i++
			continue
		}
		cp, ok := hex4(s, i+2)
		if !ok {
			return noChange
		}
		i += 6
		switch {
		case cp <= 0xFF:
			buf = append(buf, byte(cp))
		case utf16.IsSurrogate(cp):
			lo, ok := lowSurrogateAt(s, i)
			if cp > 0xDBFF || !ok {
				return noChange
			}
			buf = utf8.AppendRune(buf, utf16.DecodeRune(cp, lo))
			i += 6
		default:
			buf = utf8.AppendRune(buf, cp)
		}
	}
	return changedTo(s, strings.ToValidUTF8(string(buf), ""))
}

func lowSurrogateAt(s string, i int) (rune, bool) {
	if !strings.HasPrefix(s[i:], escapeLiteral) {
		return 0, false
	}
	lo, ok := hex4(s, i+2)
	if !ok || lo < 0xDC00 || lo > 0xDFFF {
		return 0, false
	}
	return lo, true
}

func hex4(s string, at int) (rune, bool) {
	if at+4 > len(s) {
		return 0, false
	}
	var v rune
	for _, c := range []byte(s[at : at+4]) {
		var d byte
		switch {
		case c >= '0' && c <= '9':
			d = c - '0'
		case c >= 'a' && c <= 'f':
			d = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			d = c - 'A' + 10
		default:
			return 0, false
		}
		v = v<<4 | rune(d)
	}
	return v, true
}
