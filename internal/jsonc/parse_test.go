package jsonc

import (
	"errors"
	"testing"
)

func TestParseScalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, v *Value)
	}{
		{"null", `null`, func(t *testing.T, v *Value) {
			if v.Kind() != Null {
				t.Errorf("kind = %v, want null", v.Kind())
			}
		}},
		{"true", `true`, func(t *testing.T, v *Value) {
			if v.Kind() != Bool || !v.Bool() {
				t.Errorf("got %v/%v, want true", v.Kind(), v.Bool())
			}
		}},
		{"false", `false`, func(t *testing.T, v *Value) {
			if v.Kind() != Bool || v.Bool() {
				t.Errorf("got %v/%v, want false", v.Kind(), v.Bool())
			}
		}},
		{"integer", `42`, func(t *testing.T, v *Value) {
			if v.Kind() != Number || v.Float() != 42 {
				t.Errorf("got %v/%v, want 42", v.Kind(), v.Float())
			}
		}},
		{"negative float", `-3.25`, func(t *testing.T, v *Value) {
			if v.Float() != -3.25 {
				t.Errorf("got %v, want -3.25", v.Float())
			}
		}},
		{"exponent", `1e3`, func(t *testing.T, v *Value) {
			if v.Float() != 1000 {
				t.Errorf("got %v, want 1000", v.Float())
			}
		}},
		{"string", `"hi"`, func(t *testing.T, v *Value) {
			if v.Kind() != String || v.Str() != "hi" {
				t.Errorf("got %v/%q, want hi", v.Kind(), v.Str())
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			tt.check(t, v)
		})
	}
}

func TestParseStringEscapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"quote", `"a\"b"`, `a"b`},
		{"backslash", `"a\\b"`, `a\b`},
		{"slash", `"a\/b"`, "a/b"},
		{"newline tab", `"a\n\tb"`, "a\n\tb"},
		{"control escapes", `"\b\f\r"`, "\b\f\r"},
		{"unicode", `"A"`, "A"},
		{"surrogate pair", `"😀"`, "😀"},
		{"non-ascii passthrough", `"héllo"`, "héllo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if v.Str() != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, v.Str(), tt.want)
			}
		})
	}
}

func TestParsePreservesMemberOrder(t *testing.T) {
	input := `{"zebra": 1, "apple": 2, "mango": 3}`
	v, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	want := []string{"zebra", "apple", "mango"}
	members := v.Members()
	if len(members) != len(want) {
		t.Fatalf("got %d members, want %d", len(members), len(want))
	}
	for i, m := range members {
		if m.Key != want[i] {
			t.Errorf("member %d = %q, want %q", i, m.Key, want[i])
		}
	}
}

func TestParseNested(t *testing.T) {
	input := `{"a": {"b": [1, "two", {"c": null}]}}`
	v, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	a, ok := v.Get("a")
	if !ok || !a.IsObject() {
		t.Fatal("expected object at a")
	}
	b, ok := a.Get("b")
	if !ok || !b.IsArray() || b.Len() != 3 {
		t.Fatalf("expected 3-element array at a.b")
	}
	if b.Elems()[1].Str() != "two" {
		t.Errorf("unexpected a.b[1]: %q", b.Elems()[1].Str())
	}
}

func TestParseJSONCComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"line comment", "{ \"a\": 1 // comment\n}"},
		{"comment before value", "// header\n{ \"a\": 1 }"},
		{"comment after document", "{ \"a\": 1 }\n// trailer"},
		{"block comment", `{ /* inline */ "a": 1 }`},
		{"block comment spanning lines", "{\n/* one\ntwo */\n\"a\": 1 }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseJSONC([]byte(tt.input))
			if err != nil {
				t.Fatalf("ParseJSONC returned error: %v", err)
			}
			got, ok := v.Get("a")
			if !ok || got.Float() != 1 {
				t.Errorf("expected a=1, got %v", got)
			}
		})
	}
}

func TestParseJSONCCommentMarkersInsideStrings(t *testing.T) {
	input := `{"url": "https://example.com/path", "note": "a, b // not a comment"}`
	v, err := ParseJSONC([]byte(input))
	if err != nil {
		t.Fatalf("ParseJSONC returned error: %v", err)
	}
	url, _ := v.Get("url")
	if url.Str() != "https://example.com/path" {
		t.Errorf("url mangled: %q", url.Str())
	}
	note, _ := v.Get("note")
	if note.Str() != "a, b // not a comment" {
		t.Errorf("note mangled: %q", note.Str())
	}
}

func TestParseJSONCTrailingCommas(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"object", `{"a": 1,}`},
		{"array", `{"a": [1, 2,],}`},
		{"with comment", "{\n  \"a\": 1, // comment\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseJSONC([]byte(tt.input))
			if err != nil {
				t.Fatalf("ParseJSONC returned error: %v", err)
			}
			if !v.Has("a") {
				t.Error("expected member a")
			}
		})
	}
}

func TestParseStrictRejectsJSONCExtensions(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"line comment", "{ \"a\": 1 // c\n}"},
		{"trailing comma object", `{"a": 1,}`},
		{"trailing comma array", `[1,]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.input)); err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.input)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"unterminated string", `"abc`},
		{"unterminated object", `{"a": 1`},
		{"unterminated array", `[1, 2`},
		{"bad escape", `"\q"`},
		{"bare word", `settings`},
		{"missing colon", `{"a" 1}`},
		{"missing comma", `{"a": 1 "b": 2}`},
		{"data after value", `{} {}`},
		{"lone minus", `-`},
		{"unterminated block comment", `/* abc`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseJSONC([]byte(tt.input)); err == nil {
				t.Fatalf("ParseJSONC(%q) succeeded, want error", tt.input)
			}
		})
	}
}

func TestParseErrorReportsPosition(t *testing.T) {
	input := "{\n  \"a\": 1,\n  oops\n}"
	_, err := ParseJSONC([]byte(input))
	if err == nil {
		t.Fatal("expected error")
	}
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected SyntaxError, got %T", err)
	}
	if syntaxErr.Line != 3 {
		t.Errorf("error line = %d, want 3", syntaxErr.Line)
	}
}
