package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	j "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/mojifix"
)

func fixes(n int) []mojifix.Fix {
	out := make([]mojifix.Fix, n)
	for i := range out {
		out[i] = mojifix.Fix{
			Path:     mojifix.Path{}.Key("messages").Index(i).Key("content"),
			Original: fmt.Sprintf("bad %d", i),
			Repaired: fmt.Sprintf("good %d", i),
		}
	}
	return out
}

func TestPreview(t *testing.T) {
	assert.Equal(t, `"short"`, Preview("short", 10))
	assert.Equal(t, `"abcde"...`, Preview("abcdefgh", 5))
	assert.Equal(t, `"abcdefgh"`, Preview("abcdefgh", 0))
	// Wide runes count as two columns.
	assert.Equal(t, `"🦭🦭"...`, Preview("🦭🦭🦭", 4))
	assert.Equal(t, `"a\nb"`, Preview("a\nb", 10))
}

func TestWriteText_CapsExamples(t *testing.T) {
	var buf bytes.Buffer
	s := Summary{Input: "in.json", Output: "out.json", Flagged: 12, Fixes: fixes(12)}
	require.NoError(t, WriteText(&buf, s, Options{MaxExamples: 10, PreviewWidth: 100}))

	out := buf.String()
	assert.Contains(t, out, "Loaded in.json (utf-8)")
	assert.Contains(t, out, "Found 12 strings with potential emoji encoding issues")
	assert.Contains(t, out, "Fixed JSON written to out.json")
	assert.Contains(t, out, "Found 12 strings that were fixed")
	assert.Contains(t, out, "Example 10 (messages[9].content):")
	assert.NotContains(t, out, "Example 11")
	assert.Contains(t, out, "... and 2 more fixes")
	assert.NotContains(t, out, "\x1b[", "colors must be off")
}

func TestWriteText_NoFixes(t *testing.T) {
	var buf bytes.Buffer
	s := Summary{Input: "in.json", Encoding: mojifix.EncodingLatin1}
	require.NoError(t, WriteText(&buf, s, DefaultOptions()))
	assert.Contains(t, buf.String(), "(iso-8859-1)")
	assert.Contains(t, buf.String(), "No encoding issues found to fix.")
	assert.NotContains(t, buf.String(), "written to")
}

func TestWriteText_WarningsAndColor(t *testing.T) {
	var buf bytes.Buffer
	s := Summary{
		Input:    "in.json",
		Fixes:    fixes(1),
		Warnings: mojifix.Issues{{Code: mojifix.CodeDuplicateKey, Path: "/a", Message: "key 'a' duplicated"}},
	}
	require.NoError(t, WriteText(&buf, s, Options{MaxExamples: 1, Color: true}))
	assert.Contains(t, buf.String(), "duplicate_key at /a")
	assert.True(t, strings.Contains(buf.String(), "\x1b["), "expected ANSI escapes")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	s := Summary{Input: "in.json", Flagged: 3, Fixes: fixes(2)}
	require.NoError(t, WriteJSON(&buf, s))

	var got jsonSummary
	require.NoError(t, j.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 3, got.Flagged)
	assert.Equal(t, 2, got.Fixed)
	assert.Equal(t, "/messages/1/content", got.Fixes[1].Path)
	assert.Equal(t, "utf-8", got.Encoding)
	assert.Empty(t, got.Output)
}
