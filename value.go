package mojifix

import "strconv"

// Kind enumerates the variants of a document Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Member is a single key/value entry of an object. Objects keep their
// members in insertion order.
type Member struct {
	Key   string
	Value Value
}

// Value is an immutable JSON document node. The zero Value is null.
//
// Numbers keep their literal text so that a loaded document is written back
// without reformatting.
type Value struct {
	kind Kind
	b    bool
	s    string // string content or number literal
	arr  []Value
	obj  []Member
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a JSON number literal such as "42" or "1.5e3".
func Number(lit string) Value { return Value{kind: KindNumber, s: lit} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array builds an array value. The elements are copied.
func Array(elems ...Value) Value {
	return Value{kind: KindArray, arr: append([]Value(nil), elems...)}
}

// Object builds an object value. The members are copied and their order is kept.
func Object(members ...Member) Value {
	return Value{kind: KindObject, obj: append([]Member(nil), members...)}
}

// M is shorthand for Member{Key: key, Value: v}.
func M(key string, v Value) Member { return Member{Key: key, Value: v} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean and true when v is a bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsNumber returns the number literal and true when v is a number.
func (v Value) AsNumber() (string, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return v.s, true
}

// AsString returns the string content and true when v is a string.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// Len reports the number of elements (arrays) or members (objects); 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// Index returns the i-th array element. It panics when v is not an array or
// i is out of range, like a slice index would.
func (v Value) Index(i int) Value {
	if v.kind != KindArray {
		panic("mojifix: Index on " + v.kind.String())
	}
	return v.arr[i]
}

// Elems returns a copy of the array elements (nil for non-arrays).
func (v Value) Elems() []Value {
	if v.kind != KindArray {
		return nil
	}
	return append([]Value(nil), v.arr...)
}

// Members returns a copy of the object members (nil for non-objects).
func (v Value) Members() []Member {
	if v.kind != KindObject {
		return nil
	}
	return append([]Member(nil), v.obj...)
}

// Get returns the value stored under key in an object.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	for _, m := range v.obj {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Equal reports deep equality, including object member order.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindNumber, KindString:
		return v.s == o.s
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.obj) != len(o.obj) {
			return false
		}
		for i := range v.obj {
			if v.obj[i].Key != o.obj[i].Key || !v.obj[i].Value.Equal(o.obj[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

// SameShape reports whether v and o have identical structure: the same kinds
// at every position, the same object keys in the same order and the same
// array lengths. Leaf contents are not compared.
func (v Value) SameShape(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].SameShape(o.arr[i]) {
				return false
			}
		}
	case KindObject:
		if len(v.obj) != len(o.obj) {
			return false
		}
		for i := range v.obj {
			if v.obj[i].Key != o.obj[i].Key || !v.obj[i].Value.SameShape(o.obj[i].Value) {
				return false
			}
		}
	}
	return true
}
