// Package astdump renders minilang tokens and syntax trees for inspection.
//
// Trees are first converted into Tree values, which carry one labelled edge
// per child so that the YAML and JSON encodings read like the grammar.
package astdump

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"minilang/pkg/compiler"
)

// Tree is the serialisable form of one AST node.
type Tree struct {
	Node  string `json:"node" yaml:"node"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Op    string `json:"op,omitempty" yaml:"op,omitempty"`
	Value any    `json:"value,omitempty" yaml:"value,omitempty"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`

	Condition *Tree   `json:"condition,omitempty" yaml:"condition,omitempty"`
	Then      *Tree   `json:"then,omitempty" yaml:"then,omitempty"`
	Else      *Tree   `json:"else,omitempty" yaml:"else,omitempty"`
	Init      *Tree   `json:"init,omitempty" yaml:"init,omitempty"`
	Inner     *Tree   `json:"inner,omitempty" yaml:"inner,omitempty"`
	Operand   *Tree   `json:"operand,omitempty" yaml:"operand,omitempty"`
	Left      *Tree   `json:"left,omitempty" yaml:"left,omitempty"`
	Right     *Tree   `json:"right,omitempty" yaml:"right,omitempty"`
	Body      []*Tree `json:"body,omitempty" yaml:"body,omitempty"`
	Statement *Tree   `json:"expr,omitempty" yaml:"expr,omitempty"`
}

// Program converts a parsed program.
func Program(stmts []compiler.Stmt) []*Tree {
	out := make([]*Tree, len(stmts))
	for i, s := range stmts {
		out[i] = Node(s)
	}
	return out
}

// Node converts a single statement or expression. A nil node yields nil.
func Node(n compiler.Node) *Tree {
	switch n := n.(type) {
	case nil:
		return nil
	case *compiler.Literal:
		return &Tree{Node: "literal", Value: constValue(n.Value), Type: n.Value.Type.String()}
	case *compiler.Identifier:
		return &Tree{Node: "identifier", Name: n.Name}
	case *compiler.Group:
		return &Tree{Node: "group", Inner: Node(n.Inner)}
	case *compiler.Unary:
		return &Tree{Node: "unary", Op: n.Op, Operand: Node(n.Operand)}
	case *compiler.Binary:
		return &Tree{Node: "binary", Op: n.Op, Left: Node(n.Left), Right: Node(n.Right)}
	case *compiler.Declaration:
		return &Tree{Node: "declaration", Name: n.Name, Init: Node(n.Init)}
	case *compiler.IfStmt:
		t := &Tree{Node: "if", Condition: Node(n.Condition), Then: Node(n.Then)}
		if n.Else != nil {
			t.Else = Node(n.Else)
		}
		return t
	case *compiler.Block:
		return &Tree{Node: "block", Body: Program(n.Stmts)}
	case *compiler.ExprStmt:
		return &Tree{Node: "expr", Statement: Node(n.Expr)}
	default:
		panic(fmt.Sprintf("astdump: unexpected node %T", n))
	}
}

func constValue(c compiler.Const) any {
	if c.Type == compiler.Float {
		return c.Float
	}
	return c.Int
}

// label is the one-line heading used by the text renderer.
func (t *Tree) label() string {
	parts := []string{t.Node}
	for _, s := range []string{t.Name, t.Op} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if t.Value != nil {
		parts = append(parts, fmt.Sprint(t.Value), t.Type)
	}
	return strings.Join(parts, " ")
}

type edge struct {
	name string
	tree *Tree
}

func (t *Tree) edges() []edge {
	all := []edge{
		{"condition", t.Condition},
		{"then", t.Then},
		{"else", t.Else},
		{"init", t.Init},
		{"inner", t.Inner},
		{"operand", t.Operand},
		{"left", t.Left},
		{"right", t.Right},
		{"expr", t.Statement},
	}
	var out []edge
	for _, e := range all {
		if e.tree != nil {
			out = append(out, e)
		}
	}
	for _, b := range t.Body {
		out = append(out, edge{"", b})
	}
	return out
}

func writeTree(b *strings.Builder, t *Tree, name string, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	if name != "" {
		b.WriteString(name)
		b.WriteString(": ")
	}
	b.WriteString(t.label())
	b.WriteByte('\n')
	for _, e := range t.edges() {
		writeTree(b, e.tree, e.name, depth+1)
	}
}

// Text writes an indented outline, one node per line.
//
//	declaration a
//	  init: binary +
//	    left: literal 1 int
//	    right: identifier b
func Text(w io.Writer, trees []*Tree) error {
	var b strings.Builder
	for _, t := range trees {
		writeTree(&b, t, "", 0)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// TokenRow is the serialisable form of a token.
type TokenRow struct {
	Kind   string `json:"kind" yaml:"kind"`
	Pos    int    `json:"pos" yaml:"pos"`
	Lexeme string `json:"lexeme,omitempty" yaml:"lexeme,omitempty"`
	Type   string `json:"type,omitempty" yaml:"type,omitempty"`
	Value  any    `json:"value,omitempty" yaml:"value,omitempty"`
}

// TokenTable converts a token stream.
func TokenTable(tokens []compiler.Token) []TokenRow {
	rows := make([]TokenRow, len(tokens))
	for i, tok := range tokens {
		rows[i] = TokenRow{Kind: tok.Kind.String(), Pos: tok.Pos, Lexeme: tok.Lexeme}
		if tok.Kind == compiler.CONST {
			rows[i].Type = tok.Value.Type.String()
			rows[i].Value = constValue(tok.Value)
		}
	}
	return rows
}

// Tokens writes one token per line.
func Tokens(w io.Writer, tokens []compiler.Token) error {
	for _, tok := range tokens {
		if _, err := fmt.Fprintln(w, " ", tok); err != nil {
			return err
		}
	}
	return nil
}

// YAML encodes v (a Tree, a slice of them or a token table) as YAML.
func YAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

// JSON encodes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}
