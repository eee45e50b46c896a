package mojifix_test

import (
	"testing"

	"github.com/reoring/mojifix"
)

func TestValue_Accessors(t *testing.T) {
	v := mojifix.Object(mojifix.M("a", mojifix.Number("1")), mojifix.M("b", mojifix.Array(mojifix.String("x"))))
	if v.Kind() != mojifix.KindObject || v.Len() != 2 {
		t.Fatalf("kind=%s len=%d", v.Kind(), v.Len())
	}
	if _, ok := v.Get("missing"); ok {
		t.Fatalf("Get(missing) should fail")
	}
	b, _ := v.Get("b")
	if s, ok := b.Index(0).AsString(); !ok || s != "x" {
		t.Fatalf("b[0] = %q", s)
	}
	if _, ok := b.AsString(); ok {
		t.Fatalf("array is not a string")
	}
	if mojifix.Null().Kind().String() != "null" || !(mojifix.Value{}).IsNull() {
		t.Fatalf("zero Value should be null")
	}
}

func TestValue_ConstructorsCopy(t *testing.T) {
	elems := []mojifix.Value{mojifix.String("a")}
	arr := mojifix.Array(elems...)
	elems[0] = mojifix.String("changed")
	if s, _ := arr.Index(0).AsString(); s != "a" {
		t.Fatalf("Array shares caller storage")
	}
	got := arr.Elems()
	got[0] = mojifix.Null()
	if arr.Index(0).IsNull() {
		t.Fatalf("Elems exposes internal storage")
	}
}

func TestValue_EqualAndShape(t *testing.T) {
	a := mojifix.Object(mojifix.M("k", mojifix.String("x")))
	b := mojifix.Object(mojifix.M("k", mojifix.String("y")))
	if a.Equal(b) {
		t.Fatalf("different leaves must not be equal")
	}
	if !a.SameShape(b) {
		t.Fatalf("same keys should have the same shape")
	}
	c := mojifix.Object(mojifix.M("other", mojifix.String("x")))
	if a.SameShape(c) {
		t.Fatalf("different keys must differ in shape")
	}
	if mojifix.Array(mojifix.Null()).SameShape(mojifix.Array()) {
		t.Fatalf("different lengths must differ in shape")
	}
}
