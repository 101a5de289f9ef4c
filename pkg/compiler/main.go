// Package compiler provides the lexer and recursive-descent parser for
// minilang, a small language of arithmetic expressions, let declarations,
// if/else statements and blocks.
//
// Pipeline: source → Lex → Parse → []Stmt
//
// The AST is left untyped: every Expr carries a Type that stays Unresolved
// until a later semantic pass assigns it.
package compiler
