package asm

import (
	"errors"
	"testing"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"Empty", "", nil},
		{"Blank", "   ", nil},
		{"One", `"foo.asm"`, []string{`"foo.asm"`}},
		{"Two", `"foo.asm", "bar.asm"`, []string{`"foo.asm"`, `"bar.asm"`}},
		{"CommaInQuotes", `"a,b.asm"`, []string{`"a,b.asm"`}},
		{"Label", ` hello `, []string{"hello"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := splitArgs(tc.raw)
			if len(got) != len(tc.want) {
				t.Fatalf("splitArgs(%q) = %q, want %q", tc.raw, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("splitArgs(%q) = %q, want %q", tc.raw, got, tc.want)
				}
			}
		})
	}
}

func TestLexArgs(t *testing.T) {
	st := statement{line: 1, col: 1}

	toks, err := lexArgs([]string{`"foo.asm"`, "hello", "0x44", "123"}, st)
	if err != nil {
		t.Fatalf("lexArgs: %v", err)
	}
	want := []argToken{
		{text: "foo.asm", kind: tokString},
		{text: "hello", kind: tokIdent},
		{text: "0x44", kind: tokNumber},
		{text: "123", kind: tokNumber},
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Fatalf("token %d = %+v, want %+v", i, toks[i], want[i])
		}
	}

	var lex *LexerError
	if _, err := lexArgs([]string{`"unterminated`}, st); !errors.As(err, &lex) {
		t.Fatalf("want LexerError, got %v", err)
	}
	if _, err := lexArgs([]string{"}"}, st); !errors.As(err, &lex) {
		t.Fatalf("want LexerError, got %v", err)
	}
}

func TestTypeArgs(t *testing.T) {
	path := argToken{text: "foo.asm", kind: tokString}
	label := argToken{text: "hello", kind: tokIdent}
	num := argToken{text: "0x44", kind: tokNumber}

	vals, err := typeArgs([]argToken{path}, ArgPath)
	if err != nil {
		t.Fatalf("typeArgs path: %v", err)
	}
	if vals[0] != "foo.asm" {
		t.Fatalf("typeArgs path = %q", vals[0])
	}

	vals, err = typeArgs([]argToken{label}, ArgLabel)
	if err != nil {
		t.Fatalf("typeArgs label: %v", err)
	}
	if vals[0] != "hello" {
		t.Fatalf("typeArgs label = %q", vals[0])
	}

	var missing *MissingArgumentError
	if _, err := typeArgs(nil, ArgPath); !errors.As(err, &missing) {
		t.Fatalf("want MissingArgumentError, got %v", err)
	}

	var extra *ExtraArgumentError
	if _, err := typeArgs([]argToken{path, path}, ArgPath); !errors.As(err, &extra) {
		t.Fatalf("want ExtraArgumentError, got %v", err)
	}

	var argType *ArgumentTypeError
	if _, err := typeArgs([]argToken{num}, ArgPath); !errors.As(err, &argType) {
		t.Fatalf("want ArgumentTypeError, got %v", err)
	}
	if _, err := typeArgs([]argToken{path}, ArgLabel); !errors.As(err, &argType) {
		t.Fatalf("want ArgumentTypeError, got %v", err)
	}
}
