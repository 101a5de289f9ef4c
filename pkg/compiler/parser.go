package compiler

import "fmt"

// Parser consumes the flat token slice produced by the Lexer and builds an AST.
//
// Grammar:
//
//	program       = statement* EOF
//	statement     = block | ifStatement | declaration | exprStatement
//	block         = "{" statement* "}"
//	ifStatement   = "if" "(" expression ")" statement ("else" statement)?
//	declaration   = "let" IDENTIFIER "=" expression ";"
//	exprStatement = expression ";"
//	expression    = equality
//	equality      = comparison (("==" | "!=") comparison)*
//	comparison    = term (("<" | ">" | "<=" | ">=") term)*
//	term          = factor (("+" | "-") factor)*
//	factor        = unary (("*" | "/") unary)*
//	unary         = ("-" | "!") unary | primary
//	primary       = CONST | IDENTIFIER | "(" expression ")"
//
// A Parser is used by exactly one Parse call and is not safe for concurrent use.
type Parser struct {
	tokens   []Token
	pos      int
	depth    int
	maxDepth int
}

func newParser(tokens []Token, opts Options) *Parser {
	return &Parser{tokens: tokens, maxDepth: opts.maxDepth()}
}

// peek returns the current token without consuming it. Running off the end
// of a slice that lacks its EOF yields a synthetic EOF.
func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		end := 0
		if n := len(p.tokens); n > 0 {
			last := p.tokens[n-1]
			end = last.Pos + len(last.Lexeme)
		}
		return Token{Kind: EOF, Pos: end}
	}
	return p.tokens[p.pos]
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// check reports whether the current token has the given kind and, when
// values are given, one of those lexemes.
func (p *Parser) check(kind TokenKind, values ...string) bool {
	tok := p.peek()
	if tok.Kind != kind {
		return false
	}
	if len(values) == 0 {
		return true
	}
	for _, v := range values {
		if tok.Lexeme == v {
			return true
		}
	}
	return false
}

// match is check for a single optional value; "" matches any lexeme.
func (p *Parser) match(kind TokenKind, value string) bool {
	if value == "" {
		return p.check(kind)
	}
	return p.check(kind, value)
}

// advanceIf consumes the current token if it matches kind and value.
func (p *Parser) advanceIf(kind TokenKind, value string) bool {
	if !p.match(kind, value) {
		return false
	}
	p.advance()
	return true
}

// advanceIfAny consumes the current token if it matches kind and any of
// values, returning the consumed token.
func (p *Parser) advanceIfAny(kind TokenKind, values ...string) (Token, bool) {
	if !p.check(kind, values...) {
		return Token{}, false
	}
	return p.advance(), true
}

// expect consumes the current token if it matches kind (and value, when
// non-empty), otherwise returns a SyntaxError.
func (p *Parser) expect(kind TokenKind, value string) (Token, error) {
	if !p.match(kind, value) {
		want := kind.String()
		if value != "" {
			want = fmt.Sprintf("%s %q", kind, value)
		}
		return Token{}, p.errorf(want, "")
	}
	return p.advance(), nil
}

// errorf builds a SyntaxError at the current token.
func (p *Parser) errorf(expected, format string, args ...any) *Error {
	tok := p.peek()
	return &Error{
		Kind:     SyntaxError,
		Pos:      tok.Pos,
		Expected: expected,
		Found:    tok.describe(),
		Msg:      fmt.Sprintf(format, args...),
	}
}

// enter records one more level of nesting and fails once the configured
// limit is passed. Every successful enter is paired with a deferred leave.
func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return &Error{
			Kind: NestingError,
			Pos:  p.peek().Pos,
			Msg:  fmt.Sprintf("nesting deeper than %d levels", p.maxDepth),
		}
	}
	return nil
}

func (p *Parser) leave() { p.depth-- }

// parseExpression is the entry point for expression parsing.
func (p *Parser) parseExpression() (Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	return p.parseEquality()
}

// parseBinaryLevel parses next (op next)* for one precedence level.
func (p *Parser) parseBinaryLevel(next func() (Expr, error), ops ...string) (Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.advanceIfAny(OPERATOR, ops...)
		if !ok {
			break
		}
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Op: op.Lexeme, Right: right}
	}
	return expr, nil
}

// parseEquality handles == and !=
func (p *Parser) parseEquality() (Expr, error) {
	return p.parseBinaryLevel(p.parseComparison, "==", "!=")
}

// parseComparison handles <, >, <= and >=
func (p *Parser) parseComparison() (Expr, error) {
	return p.parseBinaryLevel(p.parseTerm, "<", ">", "<=", ">=")
}

// parseTerm handles + and -
func (p *Parser) parseTerm() (Expr, error) {
	return p.parseBinaryLevel(p.parseFactor, "+", "-")
}

// parseFactor handles * and /
func (p *Parser) parseFactor() (Expr, error) {
	return p.parseBinaryLevel(p.parseUnary, "*", "/")
}

// parseUnary handles prefix - and !. A chain such as "- - x" nests one
// Unary per operator.
func (p *Parser) parseUnary() (Expr, error) {
	op, ok := p.advanceIfAny(OPERATOR, "-", "!")
	if !ok {
		return p.parsePrimary()
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &Unary{Op: op.Lexeme, Operand: operand}, nil
}

// parsePrimary handles literals, variables, and parenthesised expressions.
func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.peek()
	switch {
	case tok.Kind == CONST:
		p.advance()
		return &Literal{Value: tok.Value}, nil

	case tok.Kind == IDENTIFIER:
		p.advance()
		return &Identifier{Name: tok.Lexeme}, nil

	case p.advanceIf(SYMBOL, "("):
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(SYMBOL, ")"); err != nil {
			return nil, err
		}
		return &Group{Inner: inner}, nil

	default:
		return nil, p.errorf("expression", "")
	}
}

// parseStatement dispatches on the leading token.
func (p *Parser) parseStatement() (Stmt, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch {
	case p.advanceIf(SYMBOL, "{"):
		return p.parseBlock()
	case p.advanceIf(KEYWORD, "if"):
		return p.parseIf()
	case p.advanceIf(KEYWORD, "let"):
		return p.parseDeclaration()
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SYMBOL, ";"); err != nil {
		return nil, err
	}
	return &ExprStmt{Expr: expr}, nil
}

// parseBlock parses { stmt1; stmt2; ... }
// The leading "{" has already been consumed by parseStatement.
func (p *Parser) parseBlock() (Stmt, error) {
	stmts := []Stmt{}
	for !p.advanceIf(SYMBOL, "}") {
		if p.check(EOF) {
			return nil, p.errorf(`SYMBOL "}"`, "unterminated block")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return &Block{Stmts: stmts}, nil
}

// parseIf parses ( cond ) then [ else otherwise ]
// The leading "if" has already been consumed by parseStatement.
func (p *Parser) parseIf() (Stmt, error) {
	if _, err := p.expect(SYMBOL, "("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SYMBOL, ")"); err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	var otherwise Stmt
	if p.advanceIf(KEYWORD, "else") {
		otherwise, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	return &IfStmt{Condition: cond, Then: then, Else: otherwise}, nil
}

// parseDeclaration parses name = init ;
// The leading "let" has already been consumed by parseStatement.
func (p *Parser) parseDeclaration() (Stmt, error) {
	name, err := p.expect(IDENTIFIER, "")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SYMBOL, "="); err != nil {
		return nil, err
	}
	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SYMBOL, ";"); err != nil {
		return nil, err
	}
	return &Declaration{Name: name.Lexeme, Init: init}, nil
}

// Parse parses a whole program with DefaultOptions.
func Parse(tokens []Token) ([]Stmt, error) {
	return ParseWith(tokens, DefaultOptions())
}

// ParseWith parses statements until EOF. It stops at the first error and
// returns no statements in that case.
func ParseWith(tokens []Token, opts Options) ([]Stmt, error) {
	p := newParser(tokens, opts)
	stmts := []Stmt{}
	for !p.check(EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// ParseExpression parses a single expression that must span the whole
// token slice.
func ParseExpression(tokens []Token) (Expr, error) {
	return ParseExpressionWith(tokens, DefaultOptions())
}

// ParseExpressionWith is ParseExpression with explicit options.
func ParseExpressionWith(tokens []Token, opts Options) (Expr, error) {
	p := newParser(tokens, opts)
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.check(EOF) {
		return nil, p.errorf("EOF", "trailing tokens after expression")
	}
	return expr, nil
}
