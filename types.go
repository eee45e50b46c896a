package mojifix

// Severity expresses how the loader reacts to a recoverable problem.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

func (s Severity) String() string {
	switch s {
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "ignore"
	}
}

// ParseSeverity maps "ignore", "warn" and "error" to a Severity.
func ParseSeverity(s string) (Severity, bool) {
	switch s {
	case "", "ignore":
		return Ignore, true
	case "warn":
		return Warn, true
	case "error":
		return Error, true
	}
	return Ignore, false
}

// Strictness configures duplicate key handling.
type Strictness struct {
	OnDuplicateKey Severity // With Ignore or Warn the last value wins at the first key's position.
}

// LoadOpt bundles loader options. The zero value accepts any well-formed
// document.
type LoadOpt struct {
	Strictness Strictness
	MaxDepth   int   // 0 means unlimited.
	MaxBytes   int64 // 0 means unlimited.
}

// Encoding names the text encoding a document was successfully read with.
type Encoding int

const (
	EncodingUTF8 Encoding = iota
	EncodingLatin1
)

func (e Encoding) String() string {
	if e == EncodingLatin1 {
		return "iso-8859-1"
	}
	return "utf-8"
}
