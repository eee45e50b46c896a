package mojifix_test

import (
	"testing"

	"github.com/reoring/mojifix"
)

func TestPath_Render(t *testing.T) {
	cases := []struct {
		path    mojifix.Path
		dotted  string
		pointer string
	}{
		{nil, "", "/"},
		{mojifix.Path{}.Key("messages").Index(3).Key("content"), "messages[3].content", "/messages/3/content"},
		{mojifix.Path{}.Index(0).Index(1), "[0][1]", "/0/1"},
		{mojifix.Path{}.Key("a/b").Key("c~d"), "a/b.c~d", "/a~1b/c~0d"},
	}
	for _, tc := range cases {
		if got := tc.path.String(); got != tc.dotted {
			t.Fatalf("String() = %q, want %q", got, tc.dotted)
		}
		if got := tc.path.Pointer(); got != tc.pointer {
			t.Fatalf("Pointer() = %q, want %q", got, tc.pointer)
		}
	}
}

func TestPath_ExtendDoesNotAlias(t *testing.T) {
	base := mojifix.Path{}.Key("a").Key("b")
	left := base.Key("left")
	right := base.Key("right")
	if left.String() != "a.b.left" || right.String() != "a.b.right" {
		t.Fatalf("paths aliased: %s %s", left, right)
	}
}
