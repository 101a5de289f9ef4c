package compiler

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	operatorChars = "+-*/!<>.%&|^"
	symbolChars   = ";{}[]():,="
)

// Lexer holds all mutable state for a single scanning pass over src.
// Positions are byte offsets; the language itself is ASCII.
type Lexer struct {
	src  string
	pos  int // index of the next byte to consume
	opts Options
}

func newLexer(src string, opts Options) *Lexer {
	return &Lexer{src: src, opts: opts}
}

// peek returns the byte at the current position, or 0 at end of input.
func (l *Lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// peek2 returns the byte one position ahead of the current position.
func (l *Lexer) peek2() byte {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) && isWhitespace(l.src[l.pos]) {
		l.pos++
	}
}

// scanNumber collects digits, then at most one '.' that is followed by
// more digits. A second '.' ends the literal.
func (l *Lexer) scanNumber() (Token, error) {
	start := l.pos
	if l.peek() == '-' {
		l.pos++
	}
	for isDigit(l.peek()) {
		l.pos++
	}

	isFloat := false
	if l.peek() == '.' && isDigit(l.peek2()) {
		isFloat = true
		l.pos++ // consume '.'
		for isDigit(l.peek()) {
			l.pos++
		}
	}

	lexeme := l.src[start:l.pos]
	tok := Token{Kind: CONST, Pos: start, Lexeme: lexeme}
	if isFloat {
		v, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return Token{}, &Error{Kind: LexicalError, Pos: start, Msg: fmt.Sprintf("float literal %q out of range", lexeme)}
		}
		tok.Value = FloatConst(v)
		return tok, nil
	}

	v, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return Token{}, &Error{Kind: LexicalError, Pos: start, Msg: fmt.Sprintf("integer literal %q out of range", lexeme)}
	}
	tok.Value = IntConst(v)
	return tok, nil
}

// scanIdent collects a full identifier or keyword token.
// The first character (letter or '_') must still be at l.peek().
func (l *Lexer) scanIdent() Token {
	start := l.pos
	for l.pos < len(l.src) && isIdentChar(l.src[l.pos]) {
		l.pos++
	}
	lexeme := l.src[start:l.pos]
	kind := IDENTIFIER
	if IsKeyword(lexeme) {
		kind = KEYWORD
	}
	return Token{Kind: kind, Pos: start, Lexeme: lexeme}
}

// scanOperator collects a one or two character operator.
func (l *Lexer) scanOperator() Token {
	start := l.pos
	ch, next := l.peek(), l.peek2()

	width := 1
	switch {
	case next == '=' && (ch == '!' || ch == '<' || ch == '>'):
		width = 2
	case l.opts.Pairing == AnyPairs && isOperator(next):
		width = 2
	}
	l.pos += width
	return Token{Kind: OPERATOR, Pos: start, Lexeme: l.src[start:l.pos]}
}

// nextToken skips whitespace and returns the next Token.
func (l *Lexer) nextToken() (Token, error) {
	l.skipWhitespace()
	if l.pos >= len(l.src) {
		return Token{Kind: EOF, Pos: len(l.src)}, nil
	}

	ch := l.peek()
	start := l.pos

	switch {
	case isDigit(ch), ch == '-' && l.opts.SignedLiterals && isDigit(l.peek2()):
		return l.scanNumber()
	case isIdentStart(ch):
		return l.scanIdent(), nil
	case isOperator(ch):
		return l.scanOperator(), nil
	case ch == '=' && l.peek2() == '=': // lookahead: distinguish = vs ==
		l.pos += 2
		return Token{Kind: OPERATOR, Pos: start, Lexeme: "=="}, nil
	case isSymbol(ch):
		l.pos++
		return Token{Kind: SYMBOL, Pos: start, Lexeme: l.src[start:l.pos]}, nil
	}

	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return Token{}, lexError(start, r)
}

// Lex tokenises src with DefaultOptions and returns all tokens including
// the final EOF token.
func Lex(src string) ([]Token, error) {
	return LexWith(src, DefaultOptions())
}

// LexWith tokenises src. It fails on the first character that starts no
// token; no tokens are returned in that case.
func LexWith(src string, opts Options) ([]Token, error) {
	l := newLexer(src, opts)
	var tokens []Token
	for {
		tok, err := l.nextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens, nil
		}
	}
}

func isWhitespace(c byte) bool { return c <= ' ' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentChar(c byte) bool { return isIdentStart(c) || isDigit(c) }

func isOperator(c byte) bool { return c != 0 && strings.IndexByte(operatorChars, c) >= 0 }

func isSymbol(c byte) bool { return c != 0 && strings.IndexByte(symbolChars, c) >= 0 }
