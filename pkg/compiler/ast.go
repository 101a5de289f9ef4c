package compiler

import (
	"fmt"
	"strings"
)

// Node is any AST node. The set of implementations is closed: every node
// type lives in this file.
type Node interface {
	String() string
}

//  Expression nodes

// Expr is implemented by every node that produces a value. Each carries a
// Type that the parser leaves Unresolved.
type Expr interface {
	Node
	exprNode()
}

// Literal is a numeric constant.
//
//	let x = 10;
//	        ^^  Literal{Value: IntConst(10)}
type Literal struct {
	Value Const
	Type  Type
}

func (*Literal) exprNode()        {}
func (l *Literal) String() string { return l.Value.String() }

// Identifier is a read of a named variable.
type Identifier struct {
	Name string
	Type Type
}

func (*Identifier) exprNode()        {}
func (i *Identifier) String() string { return i.Name }

// Group is a parenthesised expression. It is kept in the tree so that the
// source grouping survives.
type Group struct {
	Inner Expr
	Type  Type
}

func (*Group) exprNode()        {}
func (g *Group) String() string { return fmt.Sprintf("(group %s)", g.Inner) }

// Unary represents Op Operand, where Op is "-" or "!".
type Unary struct {
	Op      string
	Operand Expr
	Type    Type
}

func (*Unary) exprNode()        {}
func (u *Unary) String() string { return fmt.Sprintf("(%s %s)", u.Op, u.Operand) }

// Binary represents Left Op Right.
//
//	x + 1
//	^ ^ ^
//	| | Right
//	| Op
//	Left
type Binary struct {
	Left  Expr
	Op    string
	Right Expr
	Type  Type
}

func (*Binary) exprNode() {}
func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

//  Statement nodes

// Stmt is implemented by every node that does not produce a value.
type Stmt interface {
	Node
	stmtNode()
}

// Declaration represents  let name = init;
type Declaration struct {
	Name string
	Init Expr
}

func (*Declaration) stmtNode() {}
func (d *Declaration) String() string {
	return fmt.Sprintf("Declaration(%s = %s)", d.Name, d.Init)
}

// IfStmt represents if (cond) then [else otherwise]
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt // may be nil
}

func (*IfStmt) stmtNode() {}
func (i *IfStmt) String() string {
	if i.Else != nil {
		return fmt.Sprintf("IfStmt(if %s then %s else %s)", i.Condition, i.Then, i.Else)
	}
	return fmt.Sprintf("IfStmt(if %s then %s)", i.Condition, i.Then)
}

// Block represents { statement; ... }
type Block struct {
	Stmts []Stmt
}

func (*Block) stmtNode() {}
func (b *Block) String() string {
	parts := make([]string, len(b.Stmts))
	for i, s := range b.Stmts {
		parts[i] = s.String()
	}
	return "Block[" + strings.Join(parts, "; ") + "]"
}

// ExprStmt represents an expression evaluated as a statement.
type ExprStmt struct {
	Expr Expr
}

func (*ExprStmt) stmtNode() {}
func (e *ExprStmt) String() string {
	return fmt.Sprintf("ExprStmt(%s)", e.Expr)
}

// Walk traverses the tree rooted at n depth first, in source order. If fn
// returns false the children of that node are skipped. Nil nodes are
// ignored.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch n := n.(type) {
	case *Literal, *Identifier:
	case *Group:
		Walk(n.Inner, fn)
	case *Unary:
		Walk(n.Operand, fn)
	case *Binary:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *Declaration:
		Walk(n.Init, fn)
	case *IfStmt:
		Walk(n.Condition, fn)
		Walk(n.Then, fn)
		if n.Else != nil {
			Walk(n.Else, fn)
		}
	case *Block:
		for _, s := range n.Stmts {
			Walk(s, fn)
		}
	case *ExprStmt:
		Walk(n.Expr, fn)
	default:
		panic(fmt.Sprintf("compiler.Walk: unexpected node %T", n))
	}
}
