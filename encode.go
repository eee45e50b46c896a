package mojifix

import (
	"bufio"
	"bytes"
	"io"

	j "github.com/goccy/go-json"
)

// DefaultIndent is the indentation used by Encode and Marshal.
const DefaultIndent = "  "

// Encode writes v as indented JSON. Object member order and number literals
// are preserved; non-ASCII text is written as is rather than escaped.
func Encode(w io.Writer, v Value) error { return EncodeIndent(w, v, DefaultIndent) }

// EncodeIndent is like Encode with a caller-chosen indent. An empty indent
// produces compact output.
func EncodeIndent(w io.Writer, v Value, indent string) error {
	bw := bufio.NewWriter(w)
	e := &encoder{w: bw, indent: indent}
	e.quoter = j.NewEncoder(&e.scratch)
	e.quoter.SetEscapeHTML(false)
	if err := e.value(v, 0); err != nil {
		return err
	}
	return bw.Flush()
}

// Marshal returns the Encode output for v.
func Marshal(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type encoder struct {
	w       *bufio.Writer
	indent  string
	scratch bytes.Buffer
	quoter  *j.Encoder
}

func (e *encoder) value(v Value, depth int) error {
	switch v.kind {
	case KindNull:
		_, err := e.w.WriteString("null")
		return err
	case KindBool:
		if v.b {
			_, err := e.w.WriteString("true")
			return err
		}
		_, err := e.w.WriteString("false")
		return err
	case KindNumber:
		_, err := e.w.WriteString(v.s)
		return err
	case KindString:
		return e.quote(v.s)
	case KindArray:
		if len(v.arr) == 0 {
			_, err := e.w.WriteString("[]")
			return err
		}
		e.w.WriteByte('[')
		for i, el := range v.arr {
			if i > 0 {
				e.w.WriteByte(',')
			}
			e.newline(depth + 1)
			if err := e.value(el, depth+1); err != nil {
				return err
			}
		}
		e.newline(depth)
		return e.w.WriteByte(']')
	case KindObject:
		if len(v.obj) == 0 {
			_, err := e.w.WriteString("{}")
			return err
		}
		e.w.WriteByte('{')
		for i, m := range v.obj {
			if i > 0 {
				e.w.WriteByte(',')
			}
			e.newline(depth + 1)
			if err := e.quote(m.Key); err != nil {
				return err
			}
			e.w.WriteByte(':')
			if e.indent != "" {
				e.w.WriteByte(' ')
			}
			if err := e.value(m.Value, depth+1); err != nil {
				return err
			}
		}
		e.newline(depth)
		return e.w.WriteByte('}')
	}
	return nil
}

func (e *encoder) newline(depth int) {
	if e.indent == "" {
		return
	}
	e.w.WriteByte('\n')
	for i := 0; i < depth; i++ {
		e.w.WriteString(e.indent)
	}
}

func (e *encoder) quote(s string) error {
	e.scratch.Reset()
	if err := e.quoter.Encode(s); err != nil {
		return err
	}
	_, err := e.w.Write(bytes.TrimSuffix(e.scratch.Bytes(), []byte("\n")))
	return err
}
