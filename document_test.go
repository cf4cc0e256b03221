// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package rjson_test

import (
	"errors"
	"os"
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/creachadair/rjson"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func mustParse(t *testing.T, input string) *rjson.Document {
	t.Helper()
	doc, err := rjson.ParseString(input)
	if err != nil {
		t.Fatalf("Parse %#q: unexpected error: %v", input, err)
	}
	return doc
}

func TestParseKeys(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"  \n\n // nothing here\n /* at all */ ", nil},
		{"a=1,b=2", []string{"a", "b"}},
		{"a = 1 // trailing comment\n b = 2", []string{"a", "b"}},
		{"a = 1 /* c */ , b = 2", []string{"a", "b"}},
		{"\n\n// header\n  a = 1\n\n\n b = 2,,,\n", []string{"a", "b"}},
		{"b = 1 a = 2", []string{"a", "b"}},
		{`"quoted key" = 1, bare_key-2 = 2`, []string{"bare_key-2", "quoted key"}},
		{"a = 1\na = 2", []string{"a"}},
		{`obj = { x = 1, y = [1, 2] } arr = [ {}, "}" ]`, []string{"arr", "obj"}},
		{"x\t=\ttrue\r\ny = false\r\n", []string{"x", "y"}},
	}
	for _, test := range tests {
		doc := mustParse(t, test.input)
		if diff := cmp.Diff(test.want, doc.Keys(), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Input: %#q\nKeys: (-want, +got)\n%s", test.input, diff)
		}
		if got := doc.Len(); got != len(test.want) {
			t.Errorf("Input: %#q\nLen: got %d, want %d", test.input, got, len(test.want))
		}
	}
}

func TestCommentTransparency(t *testing.T) {
	rawValues := func(doc *rjson.Document) map[string]string {
		out := make(map[string]string)
		for key, elt := range doc.All() {
			raw, err := elt.Raw()
			if err != nil {
				t.Fatalf("Raw %q: %v", key, err)
			}
			out[key] = string(raw)
		}
		return out
	}

	want := rawValues(mustParse(t, "a=1,b=2"))
	for _, input := range []string{
		"a = 1 // trailing comment\n b = 2",
		"a = 1 /* c */ , b = 2",
		"/* lead */ a = 1/* c */b = 2 // end",
		"a\n=\n1\n\nb\n=\n2",
	} {
		got := rawValues(mustParse(t, input))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Input: %#q\nValues: (-want, +got)\n%s", input, diff)
		}
	}
}

func TestDuplicateKeys(t *testing.T) {
	doc := mustParse(t, "a = 1\nb = 2\na = 3")
	if got, err := doc.Get("a").ToInt(0); err != nil || got != 3 {
		t.Errorf("Get(a): got %v, %v; want 3, nil", got, err)
	}
}

func TestSettingsFile(t *testing.T) {
	data, err := os.ReadFile("testdata/settings.ini")
	if err != nil {
		t.Fatalf("Reading test input: %v", err)
	}
	doc, err := rjson.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	wantKeys := []string{
		"boolVal", "floatVal", "intVal", "plugins", "quoted key", "stringVal", "uintVal", "window",
	}
	if diff := cmp.Diff(wantKeys, doc.Keys()); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}

	if got, err := doc.Get("floatVal").ToFloat(0); err != nil || got != 0.1 {
		t.Errorf("floatVal: got %v, %v; want 0.1", got, err)
	}
	if got, err := doc.Get("uintVal").ToUint(0); err != nil || got != 255 {
		t.Errorf("uintVal: got %v, %v; want 255", got, err)
	}
	if got, err := doc.Get("intVal").ToInt(0); err != nil || got != -1 {
		t.Errorf("intVal: got %v, %v; want -1", got, err)
	}
	if got, err := doc.Get("stringVal").ToString(""); err != nil || got != "XXX" {
		t.Errorf("stringVal: got %q, %v; want XXX", got, err)
	}
	if got, err := doc.Get("boolVal").ToBool(false); err != nil || !got {
		t.Errorf("boolVal: got %v, %v; want true", got, err)
	}
	if got := doc.Get("quoted key"); !got.Present() || !got.IsNil() {
		t.Errorf("quoted key: got present=%v nil=%v, want present nil", got.Present(), got.IsNil())
	}

	if w, err := doc.Path("window", "size", "width"); err != nil {
		t.Errorf("Path window.size.width: %v", err)
	} else if got, err := w.ToInt(0); err != nil || got != 640 {
		t.Errorf("window.size.width: got %v, %v; want 640", got, err)
	}
	if p, err := doc.Path("plugins", -1); err != nil {
		t.Errorf("Path plugins.-1: %v", err)
	} else if got, err := p.ToString(""); err != nil || got != "extra" {
		t.Errorf("plugins[-1]: got %q, %v; want extra", got, err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  rjson.ErrorKind
		pos   int
		want  byte // expected byte, if any
	}{
		{`s = "abc`, rjson.UnterminatedLiteral, 4, '"'},
		{`a = 1 b`, rjson.UnexpectedCharacter, 7, '='},
		{`a : 1`, rjson.UnexpectedCharacter, 2, '='},
		{`1a = 2`, rjson.MalformedInput, 0, 0},
		{`= 2`, rjson.MalformedInput, 0, 0},
		{`a = `, rjson.MalformedInput, 4, 0},
		{`a = , b = 1`, rjson.MalformedInput, 8, 0}, // commas are separators, so b is the value of a
		{`a = /x`, rjson.MalformedInput, 5, 0},
		{`a = /* open`, rjson.UnterminatedLiteral, 4, 0},
		{`a = { b = 1`, rjson.UnterminatedLiteral, 4, '}'},
		{`a = [1, 2`, rjson.UnterminatedLiteral, 4, ']'},
		{`a = 1 }`, rjson.MalformedInput, 6, 0},
	}
	for _, test := range tests {
		_, err := rjson.ParseString(test.input)
		var serr *rjson.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Parse %#q: got %v, want *SyntaxError", test.input, err)
			continue
		}
		if !errors.Is(err, test.kind) {
			t.Errorf("Parse %#q: got kind %v, want %v", test.input, serr.Kind, test.kind)
		}
		if serr.Offset != test.pos || serr.Want != test.want {
			t.Errorf("Parse %#q: got offset %d want %q; expected offset %d want %q",
				test.input, serr.Offset, serr.Want, test.pos, test.want)
		}
	}
}

func TestSyntaxErrorLocation(t *testing.T) {
	_, err := rjson.ParseString("a = 1\nb : 2")
	var serr *rjson.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("Parse: got %v, want *SyntaxError", err)
	}
	if got, want := serr.Location, (rjson.LineCol{Line: 2, Column: 2}); got != want {
		t.Errorf("Location: got %v, want %v", got, want)
	}
	if got, want := serr.Error(), `at 2:2: expected '=', got ':' (offset 8)`; got != want {
		t.Errorf("Error: got %q, want %q", got, want)
	}
	if serr.Got != ':' {
		t.Errorf("Got: got %q, want ':'", serr.Got)
	}
}

func TestMustParse(t *testing.T) {
	doc := rjson.MustParse("ok = true")
	if !doc.Has("ok") || doc.Has("missing") {
		t.Errorf("Has: got %v, %v; want true, false", doc.Has("ok"), doc.Has("missing"))
	}
	mtest.MustPanic(t, func() { rjson.MustParse("a = ") })
	mtest.MustPanic(t, func() { rjson.MustParse(`s = "unterminated`) })
}

func TestDocumentPath(t *testing.T) {
	doc := mustParse(t, `server = { ports = [80, 443], name = "web" }`)

	if _, err := doc.Path("nope"); !errors.Is(err, rjson.ErrNotFound) {
		t.Errorf("Path(nope): got %v, want %v", err, rjson.ErrNotFound)
	}
	if _, err := doc.Path("server", "ports", 5); !errors.Is(err, rjson.ErrNotFound) {
		t.Errorf("Path(server, ports, 5): got %v, want %v", err, rjson.ErrNotFound)
	}
	if _, err := doc.Path("server", "ports", "x"); !errors.Is(err, rjson.TypeMismatch) {
		t.Errorf("Path(server, ports, x): got %v, want %v", err, rjson.TypeMismatch)
	}
	if _, err := doc.Path("server", 1.5); err == nil {
		t.Error("Path(server, 1.5): got nil, want error")
	}
	if c, ok := doc.Cursor("server"); !ok || c.Offset() != 9 {
		t.Errorf("Cursor(server): got %v, %v; want offset 9", c.Offset(), ok)
	}
}
