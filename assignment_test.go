package cdcl

import "testing"

func newTestAssignment(vars ...string) *Assignment {
	lits := make([]Literal, len(vars))
	for i, v := range vars {
		lits[i] = lit(v)
	}
	return NewAssignment(lits)
}

func TestAssignmentExtendAndValue(t *testing.T) {
	a := newTestAssignment("x", "y")
	a.Extend(lit("x"), True)
	if a.Value(lit("x")) != True {
		t.Fatalf("Value(x) = %s, want true", a.Value(lit("x")))
	}
	if a.Value(lit("-x")) != False {
		t.Fatalf("Value(-x) = %s, want false (dual-polarity invariant)", a.Value(lit("-x")))
	}
	if a.Value(lit("y")) != Unassigned {
		t.Fatalf("Value(y) = %s, want unassigned", a.Value(lit("y")))
	}
}

func TestAssignmentExtendNegativeLiteral(t *testing.T) {
	a := newTestAssignment("x")
	a.Extend(lit("-x"), True)
	if a.Value(lit("x")) != False {
		t.Fatalf("extending -x to true should make x false, got %s", a.Value(lit("x")))
	}
}

func TestAssignmentExtendAlreadyAssignedPanics(t *testing.T) {
	a := newTestAssignment("x")
	a.Extend(lit("x"), True)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic re-extending an assigned variable")
		}
	}()
	a.Extend(lit("x"), False)
}

func TestAssignmentExtendToUnassignedPanics(t *testing.T) {
	a := newTestAssignment("x")
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic extending to Unassigned")
		}
	}()
	a.Extend(lit("x"), Unassigned)
}

// StatusOfFormula is true when every clause has at least one true
// literal, whether or not every variable is assigned.
func TestAssignmentStatus(t *testing.T) {
	a := newTestAssignment("a", "b", "c", "d")
	a.Extend(lit("a"), True)
	a.Extend(lit("b"), True)
	a.Extend(lit("c"), True)
	a.Extend(lit("d"), True)

	f := NewFormula([]Clause{cl("a", "b"), cl("c", "d")})
	if !a.StatusOfFormula(f) {
		t.Fatal("expected formula to be fully satisfied")
	}

	b := newTestAssignment("a", "b", "c", "d")
	b.Extend(lit("a"), True)
	b.Extend(lit("b"), True)
	b.Extend(lit("d"), True)
	// c left unassigned; d alone satisfies (c d)
	if !b.StatusOfFormula(f) {
		t.Fatal("expected formula to stay satisfied while c is unassigned, since d is true")
	}
}

func TestAssignmentStatusFalseClause(t *testing.T) {
	a := newTestAssignment("a", "b")
	a.Extend(lit("a"), False)
	a.Extend(lit("b"), False)
	if got := a.Status(cl("a", "b")); got != False {
		t.Fatalf("Status() = %s, want false", got)
	}
}

func TestAssignmentUnit(t *testing.T) {
	a := newTestAssignment("a", "b")
	a.Extend(lit("a"), False)
	ok, unit := a.Unit(cl("a", "b"))
	if !ok || unit != lit("b") {
		t.Fatalf("Unit() = (%v, %v), want (true, b)", ok, unit)
	}
}

func TestAssignmentUnitNotUnitWhenTwoUnassigned(t *testing.T) {
	a := newTestAssignment("a", "b")
	ok, _ := a.Unit(cl("a", "b"))
	if ok {
		t.Fatal("Unit() should be false with two unassigned literals")
	}
}

func TestAssignmentRevert(t *testing.T) {
	a := newTestAssignment("a", "b")
	a.Extend(lit("a"), True)
	a.Extend(lit("b"), False)
	a.Revert(map[string]bool{"a": true})
	if a.Value(lit("a")) != True {
		t.Fatal("a should remain assigned after revert (kept)")
	}
	if a.Value(lit("b")) != Unassigned {
		t.Fatal("b should be unassigned after revert (not kept)")
	}
}
