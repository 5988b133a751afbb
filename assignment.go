package cdcl

// TriState is the value of a literal under a partial assignment.
type TriState uint8

const (
	Unassigned TriState = iota
	True
	False
)

func (v TriState) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unassigned"
	}
}

// Assignment is a total map from every literal and its negation to a
// truth value. extend keeps both polarities of a variable in sync: the
// invariant value(L) == !value(¬L) holds whenever either is assigned, and
// both are unassigned together.
type Assignment struct {
	m map[Literal]TriState
}

// NewAssignment builds an all-unassigned Assignment over vars (given in
// positive form); both polarities of each variable get an entry.
func NewAssignment(vars []Literal) *Assignment {
	a := &Assignment{m: make(map[Literal]TriState, len(vars)*2)}
	for _, v := range vars {
		pos := v.Positive()
		a.m[pos] = Unassigned
		a.m[pos.Negate()] = Unassigned
	}
	return a
}

// Extend sets l to v and its negation to the opposite value. It requires
// the variable to currently be unassigned at both polarities.
func (a *Assignment) Extend(l Literal, v TriState) {
	if v == Unassigned {
		panic(InvariantViolated("extend: cannot extend " + l.String() + " to unassigned"))
	}
	if cur, ok := a.m[l]; !ok {
		panic(InvariantViolated("extend: " + l.String() + " is not a known literal"))
	} else if cur != Unassigned {
		panic(InvariantViolated("extend: " + l.String() + " is already assigned"))
	}
	a.m[l] = v
	a.m[l.Negate()] = invert(v)
}

func invert(v TriState) TriState {
	switch v {
	case True:
		return False
	case False:
		return True
	default:
		return Unassigned
	}
}

// Value returns l's current truth value.
func (a *Assignment) Value(l Literal) TriState {
	v, ok := a.m[l]
	if !ok {
		panic(InvariantViolated("value: " + l.String() + " is not a known literal"))
	}
	return v
}

// Status returns True iff some literal of c is true, False iff every
// literal is false, and Unassigned otherwise.
func (a *Assignment) Status(c Clause) TriState {
	anyUnassigned := false
	for _, l := range c {
		switch a.Value(l) {
		case True:
			return True
		case Unassigned:
			anyUnassigned = true
		}
	}
	if anyUnassigned {
		return Unassigned
	}
	return False
}

// Unit reports whether exactly one literal of c is unassigned with every
// other literal false, returning that literal in its original polarity
// as it appears in c (not canonicalized), so BCP can propagate it as-is.
func (a *Assignment) Unit(c Clause) (bool, Literal) {
	var candidate Literal
	unassignedCount := 0
	for _, l := range c {
		switch a.Value(l) {
		case Unassigned:
			unassignedCount++
			candidate = l
		case True:
			return false, Literal{}
		}
	}
	if unassignedCount == 1 {
		return true, candidate
	}
	return false, Literal{}
}

// Revert sets every variable not present (in positive form) in keep back
// to unassigned, at both polarities.
func (a *Assignment) Revert(keep map[string]bool) {
	for l := range a.m {
		if !l.IsPositive() {
			continue
		}
		if keep[l.ID] {
			continue
		}
		a.m[l] = Unassigned
		a.m[l.Negate()] = Unassigned
	}
}

// StatusOfFormula reports true iff every clause of f (originals and
// learnts) currently evaluates to true.
func (a *Assignment) StatusOfFormula(f *Formula) bool {
	for _, c := range f.AllClauses() {
		if a.Status(c) != True {
			return false
		}
	}
	return true
}
