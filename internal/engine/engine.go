package engine

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindBeginObject:
		return "{"
	case KindEndObject:
		return "}"
	case KindBeginArray:
		return "["
	case KindEndArray:
		return "]"
	case KindKey:
		return "key"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	default:
		return "?"
	}
}

// IsScalar reports whether k closes a value without opening a container.
func (k Kind) IsScalar() bool {
	return k == KindString || k == KindNumber || k == KindBool || k == KindNull
}

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string
	Number string // literal text
	Bool   bool
	Offset int64
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// KeyTracker follows object/array nesting of a token stream so that drivers
// can tell object keys apart from string values.
type KeyTracker struct {
	stack []bool // true for objects expecting a key
	kinds []Kind
}

// Classify maps a raw string token to KindKey or KindString and updates the
// nesting state for every token kind.
func (t *KeyTracker) Classify(k Kind) Kind {
	switch k {
	case KindBeginObject:
		t.valueDone()
		t.push(KindBeginObject, true)
	case KindBeginArray:
		t.valueDone()
		t.push(KindBeginArray, false)
	case KindEndObject, KindEndArray:
		t.pop()
	case KindString:
		if n := len(t.stack); n > 0 && t.kinds[n-1] == KindBeginObject && t.stack[n-1] {
			t.stack[n-1] = false
			return KindKey
		}
		t.valueDone()
	default:
		t.valueDone()
	}
	return k
}

func (t *KeyTracker) push(k Kind, expectingKey bool) {
	t.stack = append(t.stack, expectingKey)
	t.kinds = append(t.kinds, k)
}

func (t *KeyTracker) pop() {
	if n := len(t.stack); n > 0 {
		t.stack = t.stack[:n-1]
		t.kinds = t.kinds[:n-1]
	}
}

// valueDone marks the value slot of the enclosing object as consumed.
func (t *KeyTracker) valueDone() {
	if n := len(t.stack); n > 0 && t.kinds[n-1] == KindBeginObject {
		t.stack[n-1] = true
	}
}
