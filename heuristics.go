package cdcl

import "math/rand"

// BranchingHeuristic picks the next decision variable (always returned in
// positive form) and its polarity, given the current state and formula.
// Every scoring strategy below (all but DefaultHeuristic) shares the
// scaffold of scoring over unresolvedClauses once; they differ only in
// the scoring function,
// per spec.md section 9.
type BranchingHeuristic func(sm *StateManager, f *Formula) (Literal, bool)

// unresolvedClauses returns the clauses of f (originals and learnts)
// whose status is currently Unassigned.
func unresolvedClauses(f *Formula, a *Assignment) []Clause {
	var out []Clause
	for _, c := range f.AllClauses() {
		if a.Status(c) == Unassigned {
			out = append(out, c)
		}
	}
	return out
}

// DefaultHeuristic picks the first unassigned variable in insertion
// order, polarity true.
func DefaultHeuristic(sm *StateManager, f *Formula) (Literal, bool) {
	vars := sm.UnassignedList()
	if len(vars) == 0 {
		panic(InvariantViolated("defaultHeuristic: no unassigned variables"))
	}
	return vars[0], true
}

// literalOccurrenceScores counts, for every literal appearing in clauses,
// how many of those clauses it occurs in.
func literalOccurrenceScores(clauses []Clause) map[Literal]int {
	scores := make(map[Literal]int)
	for _, c := range clauses {
		for _, l := range c {
			scores[l]++
		}
	}
	return scores
}

// dlisPick implements the variable choice shared by DLIS and RDLIS:
// score(L) = occurrences of L among unresolved clauses; pick the
// variable maximizing max(score(x), score(not x)).
func dlisPick(sm *StateManager, f *Formula) (Literal, int, int) {
	vars := sm.UnassignedList()
	if len(vars) == 0 {
		panic(InvariantViolated("dlis: no unassigned variables"))
	}
	scores := literalOccurrenceScores(unresolvedClauses(f, sm.Assignment))

	best := vars[0]
	bestPos, bestNeg := scores[vars[0]], scores[vars[0].Negate()]
	bestMax := maxInt(bestPos, bestNeg)
	for _, v := range vars[1:] {
		pos, neg := scores[v], scores[v.Negate()]
		if m := maxInt(pos, neg); m > bestMax {
			best, bestPos, bestNeg, bestMax = v, pos, neg, m
		}
	}
	return best, bestPos, bestNeg
}

// DLISHeuristic is Dynamic Largest Individual Sum.
func DLISHeuristic(sm *StateManager, f *Formula) (Literal, bool) {
	v, pos, neg := dlisPick(sm, f)
	return v, pos >= neg
}

// RDLISHeuristic picks the same variable as DLIS but a uniformly random
// polarity.
func RDLISHeuristic(sm *StateManager, f *Formula) (Literal, bool) {
	v, _, _ := dlisPick(sm, f)
	return v, rand.Intn(2) == 0
}

// jeroslowWangScores computes, for every literal appearing in clauses,
// the sum of 2^-|C| over clauses C containing it.
func jeroslowWangScores(clauses []Clause) map[Literal]float64 {
	scores := make(map[Literal]float64)
	for _, c := range clauses {
		weight := jwWeight(len(c))
		for _, l := range c {
			scores[l] += weight
		}
	}
	return scores
}

func jwWeight(size int) float64 {
	w := 1.0
	for i := 0; i < size; i++ {
		w /= 2
	}
	return w
}

// JWOSHeuristic is Jeroslow-Wang one-sided: score(v) sums both polarities
// of v; the maximizing variable is chosen with polarity true.
func JWOSHeuristic(sm *StateManager, f *Formula) (Literal, bool) {
	vars := sm.UnassignedList()
	if len(vars) == 0 {
		panic(InvariantViolated("jwos: no unassigned variables"))
	}
	scores := jeroslowWangScores(unresolvedClauses(f, sm.Assignment))

	best := vars[0]
	bestScore := scores[vars[0]] + scores[vars[0].Negate()]
	for _, v := range vars[1:] {
		s := scores[v] + scores[v.Negate()]
		if s > bestScore {
			best, bestScore = v, s
		}
	}
	return best, true
}

// JWTSHeuristic is Jeroslow-Wang two-sided: the maximizing literal (either
// polarity) is found by score(L) + score(not L), and its own polarity
// becomes the decision's.
func JWTSHeuristic(sm *StateManager, f *Formula) (Literal, bool) {
	vars := sm.UnassignedList()
	if len(vars) == 0 {
		panic(InvariantViolated("jwts: no unassigned variables"))
	}
	scores := jeroslowWangScores(unresolvedClauses(f, sm.Assignment))

	best := vars[0]
	bestPos, bestNeg := scores[vars[0]], scores[vars[0].Negate()]
	bestCombined := bestPos + bestNeg
	for _, v := range vars[1:] {
		pos, neg := scores[v], scores[v.Negate()]
		if combined := pos + neg; combined > bestCombined {
			best, bestPos, bestNeg, bestCombined = v, pos, neg, combined
		}
	}
	return best, bestPos >= bestNeg
}

// minUnresolvedClauses restricts clauses to the subset of minimum
// literal count, per spec.md section 9's resolution of the
// get_min_unresolved_clauses ambiguity.
func minUnresolvedClauses(clauses []Clause) []Clause {
	if len(clauses) == 0 {
		return nil
	}
	min := len(clauses[0])
	for _, c := range clauses[1:] {
		if len(c) < min {
			min = len(c)
		}
	}
	var out []Clause
	for _, c := range clauses {
		if len(c) == min {
			out = append(out, c)
		}
	}
	return out
}

// MOMSHeuristic is Maximum Occurrences in Minimum-Size clauses: score by
// literal occurrence count restricted to the unresolved clauses of
// smallest length, maximized, polarity true.
func MOMSHeuristic(sm *StateManager, f *Formula) (Literal, bool) {
	vars := sm.UnassignedList()
	if len(vars) == 0 {
		panic(InvariantViolated("moms: no unassigned variables"))
	}
	scores := literalOccurrenceScores(minUnresolvedClauses(unresolvedClauses(f, sm.Assignment)))

	best := vars[0]
	bestScore := maxInt(scores[vars[0]], scores[vars[0].Negate()])
	for _, v := range vars[1:] {
		s := maxInt(scores[v], scores[v.Negate()])
		if s > bestScore {
			best, bestScore = v, s
		}
	}
	return best, true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Heuristics maps CLI/config names to strategies, per spec.md section 6.
var Heuristics = map[string]BranchingHeuristic{
	"DEFAULT": DefaultHeuristic,
	"DLIS":    DLISHeuristic,
	"RDLIS":   RDLISHeuristic,
	"JWOS":    JWOSHeuristic,
	"JWTS":    JWTSHeuristic,
	"MOMS":    MOMSHeuristic,
}
