package compiler

import (
	"fmt"
	"strconv"
)

// TokenKind identifies the category of a lexed token.
type TokenKind int

const (
	EOF        TokenKind = iota // sentinel: end of input
	KEYWORD                     // let, if, else, int, void
	IDENTIFIER                  // variable name
	CONST                       // integer or float literal
	SYMBOL                      // ; { } [ ] ( ) : , =
	OPERATOR                    // + - * / ! < > . % & | ^ and their pairs
)

var tokenKindNames = [...]string{
	EOF:        "EOF",
	KEYWORD:    "KEYWORD",
	IDENTIFIER: "IDENTIFIER",
	CONST:      "CONST",
	SYMBOL:     "SYMBOL",
	OPERATOR:   "OPERATOR",
}

func (k TokenKind) String() string {
	if int(k) >= 0 && int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Type is a value type. Constants carry Int or Float; everything the
// parser builds stays Unresolved until a semantic pass fills it in.
type Type int

const (
	Unresolved Type = iota
	Void
	Int
	Float
)

var typeNames = [...]string{
	Unresolved: "unresolved",
	Void:       "void",
	Int:        "int",
	Float:      "float",
}

func (t Type) String() string {
	if int(t) >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Const is the numeric payload of a CONST token or a Literal node.
// Only the field selected by Type is meaningful.
type Const struct {
	Type  Type
	Int   int64
	Float float64
}

// IntConst returns an Int constant.
func IntConst(v int64) Const { return Const{Type: Int, Int: v} }

// FloatConst returns a Float constant.
func FloatConst(v float64) Const { return Const{Type: Float, Float: v} }

func (c Const) String() string {
	switch c.Type {
	case Int:
		return strconv.FormatInt(c.Int, 10)
	case Float:
		return strconv.FormatFloat(c.Float, 'g', -1, 64)
	default:
		return "<none>"
	}
}

// keywords is the fixed keyword table. It is never written after init.
var keywords = map[string]struct{}{
	"void": {},
	"int":  {},
	"if":   {},
	"else": {},
	"let":  {},
}

// IsKeyword reports whether s is a reserved word. The match is exact and
// case-sensitive.
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Kind   TokenKind
	Pos    int    // 0-based byte offset of the first character
	Lexeme string // the exact source text that was matched
	Value  Const  // set only for CONST tokens
}

func (t Token) String() string {
	if t.Kind == CONST {
		return fmt.Sprintf("%-10s %-14q  pos %d  %s", t.Kind, t.Lexeme, t.Pos, t.Value.Type)
	}
	return fmt.Sprintf("%-10s %-14q  pos %d", t.Kind, t.Lexeme, t.Pos)
}

// describe is the short form used in error messages.
func (t Token) describe() string {
	if t.Kind == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Lexeme)
}
