package mojifix

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	eng "github.com/reoring/mojifix/internal/engine"
)

// LoadResult is a decoded document together with the encoding that worked
// and any non-fatal issues (duplicate keys under Warn).
type LoadResult struct {
	Value    Value
	Encoding Encoding
	Warnings Issues
}

// Load decodes a JSON document. The bytes are read as UTF-8 first; when they
// are not valid UTF-8 or do not parse, they are transcoded from ISO-8859-1 and
// parsed again. If both attempts fail the UTF-8 error is returned.
func Load(data []byte, opts ...LoadOpt) (LoadResult, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return LoadResult{}, singleIssue(CodeTruncated, "max bytes exceeded", nil)
	}

	var firstErr error
	if utf8.Valid(data) {
		v, warns, err := LoadFrom(JSONBytes(data), opt)
		if err == nil {
			return LoadResult{Value: v, Encoding: EncodingUTF8, Warnings: warns}, nil
		}
		firstErr = err
	} else {
		firstErr = Issues{{Code: CodeInvalidEncoding, Message: "input is not valid utf-8", Offset: invalidUTF8Offset(data)}}
	}

	latin, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return LoadResult{}, firstErr
	}
	v, warns, err := LoadFrom(JSONBytes(latin), opt)
	if err != nil {
		return LoadResult{}, firstErr
	}
	return LoadResult{Value: v, Encoding: EncodingLatin1, Warnings: warns}, nil
}

// LoadFile reads and decodes the JSON document at path.
func LoadFile(path string, opts ...LoadOpt) (LoadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LoadResult{}, err
	}
	return Load(data, opts...)
}

// LoadFrom builds a Value from a token Source without any encoding fallback.
// Exactly one top-level value is consumed. MaxBytes is checked against the
// source's Location after every token.
func LoadFrom(src Source, opts ...LoadOpt) (Value, Issues, error) {
	opt := lastOpt(opts)
	var warns Issues
	enforced := eng.WrapWithEnforcement(src, eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
		IssueSink: func(si eng.SimpleIssue) {
			warns = append(warns, Issue{Path: si.Path, Code: si.Code, Message: si.Message, Offset: si.Offset})
		},
	})
	b := builder{src: enforced}
	tok, err := enforced.NextToken()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return Value{}, nil, toIssues(err, enforced)
	}
	v, err := b.value(tok)
	if err != nil {
		return Value{}, nil, toIssues(err, enforced)
	}
	if extra, err := enforced.NextToken(); err == nil {
		return Value{}, nil, Issues{{Code: CodeParseError, Message: fmt.Sprintf("unexpected %s after top-level value", extra.Kind), Offset: extra.Offset}}
	} else if !errors.Is(err, io.EOF) {
		return Value{}, nil, toIssues(err, enforced)
	}
	return v, warns, nil
}

type builder struct {
	src eng.TokenSource
}

func (b *builder) value(tok Token) (Value, error) {
	switch tok.Kind {
	case TokenBeginObject:
		return b.object()
	case TokenBeginArray:
		return b.array()
	case TokenString:
		return String(tok.String), nil
	case TokenNumber:
		return Number(tok.Number), nil
	case TokenBool:
		return Bool(tok.Bool), nil
	case TokenNull:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %s", tok.Kind)
	}
}

// object keeps the first position of a duplicated key and the last value.
func (b *builder) object() (Value, error) {
	var members []Member
	var seen map[string]int
	for {
		tok, err := b.next()
		if err != nil {
			return Value{}, err
		}
		if tok.Kind == TokenEndObject {
			return Value{kind: KindObject, obj: members}, nil
		}
		if tok.Kind != TokenKey {
			return Value{}, fmt.Errorf("expected object key, got %s", tok.Kind)
		}
		vt, err := b.next()
		if err != nil {
			return Value{}, err
		}
		v, err := b.value(vt)
		if err != nil {
			return Value{}, err
		}
		if i, dup := seen[tok.String]; dup {
			members[i].Value = v
			continue
		}
		if seen == nil {
			seen = make(map[string]int)
		}
		seen[tok.String] = len(members)
		members = append(members, Member{Key: tok.String, Value: v})
	}
}

func (b *builder) array() (Value, error) {
	var elems []Value
	for {
		tok, err := b.next()
		if err != nil {
			return Value{}, err
		}
		if tok.Kind == TokenEndArray {
			return Value{kind: KindArray, arr: elems}, nil
		}
		v, err := b.value(tok)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, v)
	}
}

func (b *builder) next() (Token, error) {
	tok, err := b.src.NextToken()
	if errors.Is(err, io.EOF) {
		return Token{}, io.ErrUnexpectedEOF
	}
	return tok, err
}

func lastOpt(opts []LoadOpt) LoadOpt {
	if len(opts) == 0 {
		return LoadOpt{}
	}
	return opts[len(opts)-1]
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}

func toIssues(err error, src eng.TokenSource) Issues {
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return Issues{{Code: ie.Code, Path: ie.Path, Message: ie.Message, Offset: ie.Offset}}
	}
	return Issues{{Code: CodeParseError, Message: err.Error(), Offset: src.Location(), Cause: err}}
}

func invalidUTF8Offset(data []byte) int64 {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return int64(i)
		}
		i += size
	}
	return -1
}
