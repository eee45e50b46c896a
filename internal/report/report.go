// Package report renders fix summaries for humans and machines.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	j "github.com/goccy/go-json"
	"github.com/mattn/go-runewidth"

	"github.com/reoring/mojifix"
)

// Options controls text rendering.
type Options struct {
	MaxExamples  int  // fixes shown in full; 0 shows none
	PreviewWidth int  // display columns per string preview; 0 disables truncation
	Color        bool // ANSI colors
}

// DefaultOptions mirrors the config defaults.
func DefaultOptions() Options { return Options{MaxExamples: 10, PreviewWidth: 100} }

// Summary is the outcome of repairing one document.
type Summary struct {
	Input    string
	Output   string // empty for dry runs
	Encoding mojifix.Encoding
	Flagged  int
	Fixes    []mojifix.Fix
	Warnings mojifix.Issues
}

// Preview quotes s, truncated to width display columns with a trailing "...".
func Preview(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return strconv.Quote(s)
	}
	return strconv.Quote(runewidth.Truncate(s, width, "")) + "..."
}

type palette struct {
	header, path, old, fixed, warn *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		header: color.New(color.Bold),
		path:   color.New(color.FgCyan),
		old:    color.New(color.FgRed),
		fixed:  color.New(color.FgGreen),
		warn:   color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{p.header, p.path, p.old, p.fixed, p.warn} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// WriteText renders s as a human-readable report.
func WriteText(w io.Writer, s Summary, opt Options) error {
	p := newPalette(opt.Color)
	ew := &errWriter{w: w}

	ew.printf("Loaded %s (%s)\n", s.Input, s.Encoding)
	for _, it := range s.Warnings {
		ew.printf("%s %s\n", p.warn.Sprint("warning:"), it)
	}
	ew.printf("Found %d strings with potential emoji encoding issues\n", s.Flagged)
	if s.Output != "" {
		ew.printf("Fixed JSON written to %s\n", s.Output)
	}

	if len(s.Fixes) == 0 {
		ew.printf("\n  No encoding issues found to fix.\n")
		return ew.err
	}
	ew.printf("\n%s\n", p.header.Sprintf("Found %d strings that were fixed", len(s.Fixes)))
	shown := min(len(s.Fixes), max(opt.MaxExamples, 0))
	for i, f := range s.Fixes[:shown] {
		ew.printf("\n  Example %d (%s):\n", i+1, p.path.Sprint(f.Path.String()))
		ew.printf("    Original: %s\n", p.old.Sprint(Preview(f.Original, opt.PreviewWidth)))
		ew.printf("    Fixed:    %s\n", p.fixed.Sprint(Preview(f.Repaired, opt.PreviewWidth)))
	}
	if rest := len(s.Fixes) - shown; rest > 0 {
		ew.printf("\n  ... and %d more fixes\n", rest)
	}
	return ew.err
}

type jsonFix struct {
	Path     string `json:"path"`
	Original string `json:"original"`
	Repaired string `json:"repaired"`
}

type jsonIssue struct {
	Code    string `json:"code"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

type jsonSummary struct {
	Input    string      `json:"input"`
	Output   string      `json:"output,omitempty"`
	Encoding string      `json:"encoding"`
	Flagged  int         `json:"flagged"`
	Fixed    int         `json:"fixed"`
	Fixes    []jsonFix   `json:"fixes"`
	Warnings []jsonIssue `json:"warnings,omitempty"`
}

// WriteJSON renders s as a single JSON object with JSON Pointer paths.
func WriteJSON(w io.Writer, s Summary) error {
	out := jsonSummary{
		Input:    s.Input,
		Output:   s.Output,
		Encoding: s.Encoding.String(),
		Flagged:  s.Flagged,
		Fixed:    len(s.Fixes),
		Fixes:    make([]jsonFix, 0, len(s.Fixes)),
	}
	for _, f := range s.Fixes {
		out.Fixes = append(out.Fixes, jsonFix{Path: f.Path.Pointer(), Original: f.Original, Repaired: f.Repaired})
	}
	for _, it := range s.Warnings {
		out.Warnings = append(out.Warnings, jsonIssue{Code: it.Code, Path: it.Path, Message: it.Message})
	}
	enc := j.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// errWriter keeps the first write error so call sites stay linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, a ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, a...)
}
