package compiler

// ParseSource runs the whole front end: Lex, then Parse.
func ParseSource(src string, opts Options) ([]Stmt, error) {
	tokens, err := LexWith(src, opts)
	if err != nil {
		return nil, err
	}
	return ParseWith(tokens, opts)
}

// ParseExpressionSource lexes src and parses it as a single expression.
func ParseExpressionSource(src string, opts Options) (Expr, error) {
	tokens, err := LexWith(src, opts)
	if err != nil {
		return nil, err
	}
	return ParseExpressionWith(tokens, opts)
}
