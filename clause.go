package cdcl

import "strings"

// Clause is a disjunction of literals: satisfied iff at least one of its
// literals is true. Spec.md treats a clause as an unordered multiset; the
// ordered slice here is just its representation; no code relies on
// ordering for correctness, only for matching DIMACS input/output order.
type Clause []Literal

func (c Clause) String() string {
	parts := make([]string, len(c))
	for i, l := range c {
		parts[i] = l.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// contains reports whether x (compared by ID and sign) appears in c.
func (c Clause) contains(x Literal) bool {
	for _, l := range c {
		if l == x {
			return true
		}
	}
	return false
}

// resolve produces the clause containing every literal of w and a other
// than x's variable, deduplicated, per spec.md section 4.6.2. Its
// precondition is that x appears in w with one polarity and in a with the
// opposite polarity; violating it is a programming error.
func resolve(w, a Clause, x Literal) Clause {
	xPos := x.Positive()
	if !w.contains(xPos) && !w.contains(xPos.Negate()) {
		panic(InvariantViolated("resolve: pivot " + xPos.ID + " does not appear in the left clause"))
	}
	if !a.contains(xPos) && !a.contains(xPos.Negate()) {
		panic(InvariantViolated("resolve: pivot " + xPos.ID + " does not appear in the right clause"))
	}
	wHasPos := w.contains(xPos)
	aHasPos := a.contains(xPos)
	if wHasPos == aHasPos {
		panic(InvariantViolated("resolve: pivot " + xPos.ID + " does not appear with opposite polarities"))
	}

	seen := make(map[Literal]bool)
	var out Clause
	add := func(lits Clause) {
		for _, l := range lits {
			if l.ID == xPos.ID {
				continue
			}
			if !seen[l] {
				seen[l] = true
				out = append(out, l)
			}
		}
	}
	add(w)
	add(a)
	return out
}
