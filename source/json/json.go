// Package json provides an encoding/json-backed token source.
package json

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	eng "github.com/reoring/mojifix/internal/engine"
)

type jsonSource struct {
	dec        *json.Decoder
	keys       eng.KeyTracker
	lastOffset int64
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON.
func NewReader(r io.Reader) eng.TokenSource {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &jsonSource{dec: dec, lastOffset: -1}
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *jsonSource) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	s.lastOffset = s.dec.InputOffset()

	t := eng.Token{Kind: eng.KindNull, Offset: s.lastOffset}
	switch v := tok.(type) {
	case json.Delim:
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
	case json.Number:
		t.Kind, t.Number = eng.KindNumber, string(v)
	case float64:
		t.Kind, t.Number = eng.KindNumber, strconv.FormatFloat(v, 'g', -1, 64)
	}
	t.Kind = s.keys.Classify(t.Kind)
	return t, nil
}

func (s *jsonSource) Location() int64 { return s.lastOffset }
