package compiler

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind tells which stage rejected the input.
type ErrorKind int

const (
	LexicalError ErrorKind = iota // unrecognised character or bad literal
	SyntaxError                   // token stream does not match the grammar
	NestingError                  // nesting deeper than Options.MaxDepth
)

func (k ErrorKind) String() string {
	switch k {
	case LexicalError:
		return "lexical error"
	case SyntaxError:
		return "syntax error"
	case NestingError:
		return "nesting error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinels for errors.Is.
var (
	ErrLexical = errors.New("lexical error")
	ErrSyntax  = errors.New("syntax error")
	ErrNesting = errors.New("nesting error")
)

// Error is returned by every failing Lex and Parse call.
type Error struct {
	Kind ErrorKind
	Pos  int // byte offset into the source

	Char rune // LexicalError: the offending character, 0 for literal errors

	Expected string // SyntaxError: what the grammar wanted, "" if anything
	Found    string // SyntaxError: the token that was there instead

	Msg string
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d: ", e.Kind, e.Pos)
	switch {
	case e.Expected != "":
		fmt.Fprintf(&b, "expected %s, found %s", e.Expected, e.Found)
		if e.Msg != "" {
			fmt.Fprintf(&b, " (%s)", e.Msg)
		}
	case e.Msg != "":
		b.WriteString(e.Msg)
	default:
		fmt.Fprintf(&b, "unexpected %s", e.Found)
	}
	return b.String()
}

// Is matches the kind sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrLexical:
		return e.Kind == LexicalError
	case ErrSyntax:
		return e.Kind == SyntaxError
	case ErrNesting:
		return e.Kind == NestingError
	}
	return false
}

// Describe formats the error against the source it came from:
//
//	2:9: syntax error: expected SYMBOL ";", found EOF
//	  |> let a = 2
//	  |>          ^
func (e *Error) Describe(src string) string {
	line, col := lineCol(src, e.Pos)
	msg := e.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		msg = e.Kind.String() + ": " + msg[i+2:]
	}

	start := e.Pos
	if start > len(src) {
		start = len(src)
	}
	for start > 0 && src[start-1] != '\n' {
		start--
	}
	end := strings.IndexByte(src[start:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += start
	}

	return fmt.Sprintf("%d:%d: %s\n  |> %s\n  |> %s^", line, col, msg,
		src[start:end], strings.Repeat(" ", col-1))
}

// lineCol converts a byte offset into a 1-based line and column.
func lineCol(src string, pos int) (int, int) {
	if pos > len(src) {
		pos = len(src)
	}
	line, col := 1, 1
	for i := 0; i < pos; i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

func lexError(pos int, ch rune) *Error {
	return &Error{Kind: LexicalError, Pos: pos, Char: ch, Msg: fmt.Sprintf("unexpected character %q", ch)}
}
