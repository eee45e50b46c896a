// Package gojson provides a JSON driver backed by github.com/goccy/go-json.
package gojson

import (
	"bytes"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	"github.com/reoring/mojifix"
	eng "github.com/reoring/mojifix/internal/engine"
)

// Driver returns a mojifix.JSONDriver backed by goccy/go-json.
func Driver() mojifix.JSONDriver { return driverGoJSON{} }

type driverGoJSON struct{}

func (driverGoJSON) NewReader(r io.Reader) mojifix.Source { return NewReader(r) }
func (driverGoJSON) NewBytes(b []byte) mojifix.Source     { return NewBytes(b) }
func (driverGoJSON) Name() string                         { return "go-json" }

type source struct {
	dec  *j.Decoder
	in   *countingReader
	keys eng.KeyTracker
}

// countingReader tracks how many bytes the decoder has pulled from the input.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON using go-json.
func NewReader(r io.Reader) eng.TokenSource {
	in := &countingReader{r: r}
	dec := j.NewDecoder(in)
	dec.UseNumber()
	return &source{dec: dec, in: in}
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON using go-json.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	t := eng.Token{Kind: eng.KindNull, Offset: -1}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			t.Kind = eng.KindBeginObject
		case '}':
			t.Kind = eng.KindEndObject
		case '[':
			t.Kind = eng.KindBeginArray
		case ']':
			t.Kind = eng.KindEndArray
		}
	case string:
		t.Kind, t.String = eng.KindString, v
	case bool:
		t.Kind, t.Bool = eng.KindBool, v
	case j.Number:
		t.Kind, t.Number = eng.KindNumber, string(v)
	case float64:
		t.Kind, t.Number = eng.KindNumber, strconv.FormatFloat(v, 'g', -1, 64)
	}
	t.Kind = s.keys.Classify(t.Kind)
	return t, nil
}

// Location reports the bytes read from the input so far. go-json does not
// expose the decoder offset, and the decoder reads ahead, so this is an upper
// bound on the consumed position.
func (s *source) Location() int64 { return s.in.n }
