package mojifix

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes reported by the loader.
const (
	CodeParseError      = "parse_error"
	CodeDuplicateKey    = "duplicate_key"
	CodeTruncated       = "truncated"
	CodeInvalidEncoding = "invalid_encoding"
)

// Issue describes a single loader diagnostic.
type Issue struct {
	Path    string // JSON Pointer (for example: /messages/2/content).
	Code    string // One of the codes listed above.
	Message string
	Offset  int64 // Byte offset in the input (-1 when unknown).
	Cause   error // Optional: underlying error.
}

func (it Issue) String() string {
	if it.Path == "" {
		return it.Code + ": " + it.Message
	}
	return fmt.Sprintf("%s at %s: %s", it.Code, it.Path, it.Message)
}

// Issues is a collection of loader diagnostics that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(iss[i].String())
	}
	if len(iss) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(iss))
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is can see through Issues.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func singleIssue(code, msg string, cause error) Issues {
	return Issues{{Code: code, Message: msg, Offset: -1, Cause: cause}}
}
