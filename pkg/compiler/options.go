package compiler

import "fmt"

// Pairing controls which adjacent operator characters the lexer joins into
// a single OPERATOR token.
type Pairing int

const (
	// StrictPairs joins only ==, !=, <= and >=.
	StrictPairs Pairing = iota
	// AnyPairs joins any two adjacent operator characters ("+-", "<>", "..")
	// and leaves it to the parser to reject the ones it does not know.
	AnyPairs
)

func (p Pairing) String() string {
	switch p {
	case StrictPairs:
		return "strict"
	case AnyPairs:
		return "any"
	default:
		return fmt.Sprintf("Pairing(%d)", int(p))
	}
}

// ParsePairing accepts the names printed by Pairing.String.
func ParsePairing(s string) (Pairing, error) {
	switch s {
	case "strict", "":
		return StrictPairs, nil
	case "any":
		return AnyPairs, nil
	}
	return 0, fmt.Errorf("unknown operator pairing %q (want strict or any)", s)
}

// DefaultMaxDepth bounds statement and expression nesting.
const DefaultMaxDepth = 256

// Options tune the lexer and parser. The zero value is usable and equals
// DefaultOptions().
type Options struct {
	Pairing Pairing

	// SignedLiterals folds a '-' directly followed by a digit into the
	// numeric literal. When false, '-' is always an OPERATOR and negation
	// is a Unary node, so "a -3" parses as a subtraction.
	SignedLiterals bool

	// MaxDepth is the deepest statement/expression nesting a parse accepts.
	// Values <= 0 select DefaultMaxDepth.
	MaxDepth int
}

func DefaultOptions() Options {
	return Options{Pairing: StrictPairs, MaxDepth: DefaultMaxDepth}
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}
