package mojifix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/mojifix"
)

func TestDiff_SingleFixAtPath(t *testing.T) {
	bad := latin1(sealBytes...)
	doc := mojifix.Object(
		mojifix.M("a", mojifix.Object(
			mojifix.M("b", mojifix.Array(mojifix.String("x"), mojifix.Number("1"), mojifix.String(bad))),
		)),
		mojifix.M("c", mojifix.String("clean")),
	)
	got := mojifix.Diff(doc, mojifix.Walk(doc))
	want := []mojifix.Fix{{
		Path:     mojifix.Path{{Key: "a"}, {Key: "b"}, {Index: 2, IsIndex: true}},
		Original: bad,
		Repaired: seal,
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Diff mismatch (-want +got):\n%s", diff)
	}
	if p := got[0].Path.String(); p != "a.b[2]" {
		t.Fatalf("path = %q, want a.b[2]", p)
	}
}

func TestDiff_DocumentOrder(t *testing.T) {
	doc := sampleDoc()
	got := mojifix.Diff(doc, mojifix.Walk(doc))
	var paths []string
	for _, f := range got {
		paths = append(paths, f.Path.String())
	}
	want := []string{"participants[1].name", "messages[0].content", "messages[1].content"}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestDiff_ToleratesStructuralDrift(t *testing.T) {
	orig := mojifix.Object(
		mojifix.M("only_left", mojifix.String("a")),
		mojifix.M("list", mojifix.Array(mojifix.String("x"), mojifix.String("y"), mojifix.String("z"))),
		mojifix.M("kind", mojifix.String("s")),
		mojifix.M("same", mojifix.String("old")),
	)
	rep := mojifix.Object(
		mojifix.M("same", mojifix.String("new")),
		mojifix.M("list", mojifix.Array(mojifix.String("x"), mojifix.String("Y"))),
		mojifix.M("kind", mojifix.Number("1")),
		mojifix.M("only_right", mojifix.String("b")),
	)
	got := mojifix.Diff(orig, rep)
	want := []mojifix.Fix{
		{Path: mojifix.Path{{Key: "list"}, {Index: 1, IsIndex: true}}, Original: "y", Repaired: "Y"},
		{Path: mojifix.Path{{Key: "same"}}, Original: "old", Repaired: "new"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Diff mismatch (-want +got):\n%s", diff)
	}
}

func TestDiff_RootAndMismatch(t *testing.T) {
	got := mojifix.Diff(mojifix.String("a"), mojifix.String("b"))
	if len(got) != 1 || len(got[0].Path) != 0 || got[0].Path.String() != "" {
		t.Fatalf("unexpected root diff: %+v", got)
	}
	if got := mojifix.Diff(mojifix.Array(), mojifix.Object()); len(got) != 0 {
		t.Fatalf("kind mismatch should produce nothing, got %v", got)
	}
	if got := mojifix.Diff(sampleDoc(), sampleDoc()); len(got) != 0 {
		t.Fatalf("identical documents should produce nothing, got %v", got)
	}
}
