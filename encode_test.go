package mojifix_test

import (
	"bytes"
	"testing"

	"github.com/reoring/mojifix"
)

func TestMarshal_IndentedAndUnescaped(t *testing.T) {
	v := mojifix.Object(
		mojifix.M("msg", mojifix.String(seal+" <b>&</b>")),
		mojifix.M("n", mojifix.Number("1.0")),
		mojifix.M("list", mojifix.Array(mojifix.Bool(true), mojifix.Null())),
		mojifix.M("empty_list", mojifix.Array()),
		mojifix.M("empty_obj", mojifix.Object()),
		mojifix.M("quote", mojifix.String(`say "hi"`)),
	)
	got, err := mojifix.Marshal(v)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := `{
  "msg": "` + seal + ` <b>&</b>",
  "n": 1.0,
  "list": [
    true,
    null
  ],
  "empty_list": [],
  "empty_obj": {},
  "quote": "say \"hi\""
}`
	if string(got) != want {
		t.Fatalf("Marshal mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestEncodeIndent_Compact(t *testing.T) {
	var buf bytes.Buffer
	v := mojifix.Object(mojifix.M("a", mojifix.Array(mojifix.Number("1"), mojifix.Bool(false))))
	if err := mojifix.EncodeIndent(&buf, v, ""); err != nil {
		t.Fatalf("err: %v", err)
	}
	if got := buf.String(); got != `{"a":[1,false]}` {
		t.Fatalf("got %s", got)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	in := []byte(`{"b":[1,2.50,{"c":"` + heart + `"}],"a":null}`)
	res, err := mojifix.Load(in)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	var buf bytes.Buffer
	if err := mojifix.EncodeIndent(&buf, res.Value, ""); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if buf.String() != string(in) {
		t.Fatalf("round trip mismatch:\n got: %s\nwant: %s", buf.String(), in)
	}
	again, err := mojifix.Load(buf.Bytes())
	if err != nil || !again.Value.Equal(res.Value) {
		t.Fatalf("reload mismatch: %v", err)
	}
}
