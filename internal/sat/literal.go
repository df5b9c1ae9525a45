package sat

import "fmt"

// Literal follows spec.md §3's data model directly: a nonzero signed
// integer. Its absolute value is the ID of the underlying variable, a
// positive integer starting at 1 — index 0 is deliberately left unassigned
// by AddVariable so that a literal's sign alone carries polarity; negation
// of a literal is arithmetic negation.
type Literal int

// PositiveLiteral returns the literal asserting that variable v is true.
func PositiveLiteral(v int) Literal {
	return Literal(v)
}

// NegativeLiteral returns the literal asserting that variable v is false.
func NegativeLiteral(v int) Literal {
	return Literal(-v)
}

// VarID returns the ID of the literal's underlying variable.
func (l Literal) VarID() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// IsPositive reports whether l asserts its variable's value directly (as
// opposed to its negation).
func (l Literal) IsPositive() bool {
	return l > 0
}

// Opposite returns the negation of l.
func (l Literal) Opposite() Literal {
	return -l
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.VarID())
	}
	return fmt.Sprintf("!%d", l.VarID())
}
