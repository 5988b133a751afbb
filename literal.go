package cdcl

import "strconv"

// Literal is a signed atomic proposition: a variable identifier together
// with its polarity. Sign == true means the variable appears unnegated.
type Literal struct {
	ID   string
	Sign bool
}

// NewLiteral builds a literal over an integer variable id, following the
// DIMACS convention that negative integers denote negation.
func NewLiteral(v int) Literal {
	if v == 0 {
		panic(InvariantViolated("literal variable id must be nonzero"))
	}
	if v < 0 {
		return Literal{ID: strconv.Itoa(-v), Sign: false}
	}
	return Literal{ID: strconv.Itoa(v), Sign: true}
}

// Negate flips the literal's sign, leaving its identifier unchanged.
func (l Literal) Negate() Literal {
	return Literal{ID: l.ID, Sign: !l.Sign}
}

// Positive returns the sign-true form of the literal's variable.
func (l Literal) Positive() Literal {
	return Literal{ID: l.ID, Sign: true}
}

// IsPositive reports whether l is already in its positive (sign-true) form.
func (l Literal) IsPositive() bool {
	return l.Sign
}

func (l Literal) String() string {
	if l.Sign {
		return l.ID
	}
	return "-" + l.ID
}

// conflictLiteral is the reserved "conflict node" literal used when the
// implication graph records the falsified clause explicitly (spec.md
// section 4.2). The core analyzer does not require this node, but
// ImplicationGraph supports adding it.
var conflictLiteral = Literal{ID: "K", Sign: true}
