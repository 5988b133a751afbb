package cdcl

import "testing"

func TestDefaultHeuristicPicksFirstInOrder(t *testing.T) {
	sm := newTestStateManager("a", "b", "c")
	f := NewFormula([]Clause{cl("a", "b")})
	l, polarity := DefaultHeuristic(sm, f)
	if l != lit("a") || !polarity {
		t.Fatalf("DefaultHeuristic() = (%v, %v), want (a, true)", l, polarity)
	}
}

func TestDLISHeuristicPicksMostFrequentLiteral(t *testing.T) {
	sm := newTestStateManager("a", "b")
	// a appears (positively) in three clauses; b appears in one. DLIS
	// should pick a with polarity true.
	f := NewFormula([]Clause{cl("a", "b"), cl("a"), cl("a", "-b")})
	l, polarity := DLISHeuristic(sm, f)
	if l != lit("a") || !polarity {
		t.Fatalf("DLISHeuristic() = (%v, %v), want (a, true)", l, polarity)
	}
}

func TestJWOSHeuristicPrefersShorterClauses(t *testing.T) {
	sm := newTestStateManager("a", "b")
	// a appears only in a long clause; b appears in a unit clause, which
	// carries Jeroslow-Wang weight 2^-1 versus a's 2^-3.
	f := NewFormula([]Clause{cl("a", "x", "y"), cl("b")})
	sm2 := newTestStateManager("a", "b", "x", "y")
	_ = sm
	l, polarity := JWOSHeuristic(sm2, f)
	if l != lit("b") || !polarity {
		t.Fatalf("JWOSHeuristic() = (%v, %v), want (b, true)", l, polarity)
	}
}

func TestMOMSHeuristicRestrictsToMinimumSizeClauses(t *testing.T) {
	sm := newTestStateManager("a", "b", "c")
	// The minimum-size clause is (b), so MOMS must pick b. Scored over all
	// clauses, a, a_dup_placeholder and b would each score 1 and the tie
	// would go to a, the first in order.
	f := NewFormula([]Clause{cl("a", "a_dup_placeholder"), cl("b")})
	_ = sm
	smAll := newTestStateManager("a", "a_dup_placeholder", "b")
	l, polarity := MOMSHeuristic(smAll, f)
	if l != lit("b") || !polarity {
		t.Fatalf("MOMSHeuristic() = (%v, %v), want (b, true)", l, polarity)
	}
}

func TestRDLISHeuristicPicksSameVariableAsDLIS(t *testing.T) {
	sm := newTestStateManager("a", "b")
	f := NewFormula([]Clause{cl("a", "b"), cl("a"), cl("a", "-b")})
	l, _ := RDLISHeuristic(sm, f)
	if l != lit("a") {
		t.Fatalf("RDLISHeuristic() variable = %v, want a", l)
	}
}
