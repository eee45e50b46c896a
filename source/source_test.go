package source_test

import (
	"io"
	"strings"
	"testing"

	"github.com/reoring/mojifix"
	"github.com/reoring/mojifix/source"
	drvgojson "github.com/reoring/mojifix/source/gojson"
	drvjson "github.com/reoring/mojifix/source/json"
)

const doc = `{"participants":[{"name":"A"}],"messages":[{"content":"ð\u009f¦­","ts":1.50,"ok":true,"x":null}]}`

func TestDrivers_ProduceSameDocument(t *testing.T) {
	t.Cleanup(func() { _ = source.Use(source.NameGoJSON) })

	var got []mojifix.Value
	for _, name := range source.Names() {
		if err := source.Use(name); err != nil {
			t.Fatalf("Use(%s): %v", name, err)
		}
		res, err := mojifix.Load([]byte(doc))
		if err != nil {
			t.Fatalf("%s: load: %v", name, err)
		}
		got = append(got, res.Value)
	}
	if !got[0].Equal(got[1]) {
		t.Fatalf("drivers disagree")
	}
	msgs, _ := got[0].Get("messages")
	content, _ := msgs.Index(0).Get("content")
	s, _ := content.AsString()
	if mojifix.Repair(s) != "\U0001F9AD" {
		t.Fatalf("content did not repair: %q", s)
	}
}

func TestDefaultIsGoJSON(t *testing.T) {
	if name := mojifix.CurrentJSONDriver().Name(); name != "go-json" {
		t.Fatalf("default driver = %s", name)
	}
}

func TestUse_Unknown(t *testing.T) {
	if err := source.Use("sonic"); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
	if err := source.Use(""); err != nil {
		t.Fatalf("empty name should keep the current driver: %v", err)
	}
}

func TestLoadFrom_MaxBytesOverReader(t *testing.T) {
	big := `{"a":"` + strings.Repeat("x", 64) + `","b":1}`
	drivers := map[string]func(io.Reader) mojifix.Source{
		"go-json":       func(r io.Reader) mojifix.Source { return drvgojson.NewReader(r) },
		"encoding/json": func(r io.Reader) mojifix.Source { return drvjson.NewReader(r) },
	}
	for name, newReader := range drivers {
		t.Run(name, func(t *testing.T) {
			_, _, err := mojifix.LoadFrom(newReader(strings.NewReader(big)), mojifix.LoadOpt{MaxBytes: 16})
			iss, ok := mojifix.AsIssues(err)
			if !ok || iss[0].Code != mojifix.CodeTruncated {
				t.Fatalf("want truncated issue, got %v", err)
			}

			v, _, err := mojifix.LoadFrom(newReader(strings.NewReader(big)), mojifix.LoadOpt{MaxBytes: int64(len(big))})
			if err != nil {
				t.Fatalf("limit equal to input size: %v", err)
			}
			if v.Len() != 2 {
				t.Fatalf("members = %d", v.Len())
			}
		})
	}
}

func TestGoJSONLocation_CountsInput(t *testing.T) {
	src := drvgojson.NewBytes([]byte(`[1, 2, 3]`))
	if got := src.Location(); got != 0 {
		t.Fatalf("before reading: %d", got)
	}
	if _, err := src.NextToken(); err != nil {
		t.Fatal(err)
	}
	if got := src.Location(); got <= 0 || got > 9 {
		t.Fatalf("after first token: %d", got)
	}
}
