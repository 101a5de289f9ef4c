package compiler

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"Lexical", "1 @ 2", `lexical error at 2: unexpected character '@'`},
		{"Missing Semicolon", "let a = 2", `syntax error at 9: expected SYMBOL ";", found EOF`},
		{"Unterminated Block", "{", `syntax error at 1: expected SYMBOL "}", found EOF (unterminated block)`},
		{"No Primary", "let a = );", `syntax error at 8: expected expression, found SYMBOL ")"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSource(tt.src, DefaultOptions())
			if err == nil {
				t.Fatal("expected an error")
			}
			if err.Error() != tt.want {
				t.Errorf("got  %q\nwant %q", err.Error(), tt.want)
			}
		})
	}
}

func TestErrorDescribe(t *testing.T) {
	src := "let a = 1;\nlet b = a +;\n"
	_, err := ParseSource(src, DefaultOptions())

	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *Error, got %v", err)
	}

	want := "2:12: syntax error: expected expression, found SYMBOL \";\"\n" +
		"  |> let b = a +;\n" +
		"  |>            ^"
	if got := perr.Describe(src); got != want {
		t.Errorf("Describe mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestErrorDescribeAtEOF(t *testing.T) {
	src := "let a = 2"
	_, err := ParseSource(src, DefaultOptions())

	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	want := "1:10: syntax error: expected SYMBOL \";\", found EOF\n" +
		"  |> let a = 2\n" +
		"  |>          ^"
	if got := perr.Describe(src); got != want {
		t.Errorf("Describe mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestErrorWrapping(t *testing.T) {
	_, err := Lex("#")
	wrapped := fmt.Errorf("reading main.ml: %w", err)

	if !errors.Is(wrapped, ErrLexical) {
		t.Error("wrapped error lost its kind")
	}
	if errors.Is(wrapped, ErrSyntax) || errors.Is(wrapped, ErrNesting) {
		t.Error("lexical error matched another kind")
	}
}
