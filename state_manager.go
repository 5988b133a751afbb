package cdcl

// StateManager composes the Assignment, ImplicationGraph, History, and
// unassigned-variable pool, and is the sole means by which callers
// mutate them: every transition below keeps all four structures
// consistent with each other, per spec.md section 4.4.
type StateManager struct {
	Assignment *Assignment
	Graph      *ImplicationGraph
	History    *History
	unassigned *unassignedPool
}

// NewStateManager builds a StateManager over vars (positive form), with
// every variable initially unassigned and in the pool.
func NewStateManager(vars []Literal) *StateManager {
	sm := &StateManager{
		Assignment: NewAssignment(vars),
		Graph:      NewImplicationGraph(),
		History:    NewHistory(),
		unassigned: newUnassignedPool(),
	}
	for _, v := range vars {
		sm.unassigned.Insert(v.Positive())
	}
	return sm
}

// UnassignedList returns every currently-unassigned positive literal, in
// insertion order. Used by branching heuristics that score every
// candidate.
func (sm *StateManager) UnassignedList() []Literal {
	return sm.unassigned.List()
}

// UnassignedLen reports how many variables remain unassigned.
func (sm *StateManager) UnassignedLen() int {
	return sm.unassigned.Len()
}

// RecordDecision extends the assignment, adds a decision node (no
// antecedent) to the graph, appends to history, and removes l from the
// unassigned pool — atomically, per spec.md section 4.4.
func (sm *StateManager) RecordDecision(l Literal, v bool, level int) {
	sm.Assignment.Extend(l, boolToTri(v))
	sm.Graph.AddNode(l, v, nil, false, level)
	sm.History.Append(level, l.Positive())
	sm.unassigned.Remove(l)
}

// RecordImplication extends the assignment, adds an implication node
// (with antecedent) to the graph, appends to history, and removes l from
// the unassigned pool. It first verifies every other literal of
// antecedent already resolves to false, per spec.md section 4.4.
func (sm *StateManager) RecordImplication(l Literal, v bool, antecedent Clause, level int) {
	pos := l.Positive()
	for _, al := range antecedent {
		if al.ID == pos.ID {
			continue
		}
		if sm.Assignment.Value(al) != False {
			panic(InvariantViolated("recordImplication: antecedent literal " + al.String() + " does not resolve to false"))
		}
	}
	sm.Assignment.Extend(l, boolToTri(v))
	sm.Graph.AddNode(l, v, antecedent, true, level)
	sm.History.Append(level, pos)
	sm.unassigned.Remove(l)
}

// RevertTo undoes every level strictly greater than lLow: for each such
// level, its history's variables are dropped from the graph and
// assignment and returned to the unassigned pool, then its history entry
// is erased. Children references to the removed nodes are pruned by
// ImplicationGraph.Remove as it goes.
func (sm *StateManager) RevertTo(lLow int) {
	var toErase []int
	for _, d := range sm.History.Levels() {
		if d > lLow {
			toErase = append(toErase, d)
		}
	}
	for _, d := range toErase {
		for _, p := range sm.History.At(d) {
			sm.Graph.Remove(p)
			sm.unassigned.Insert(p)
		}
		sm.History.Erase(d)
	}
	keep := make(map[string]bool)
	for d := 0; d <= lLow; d++ {
		if !sm.History.Has(d) {
			continue
		}
		for _, p := range sm.History.At(d) {
			keep[p.ID] = true
		}
	}
	sm.Assignment.Revert(keep)
}

// PopUnassignedFIFO removes and returns the earliest-inserted unassigned
// literal, with polarity true, for the DEFAULT branching strategy.
func (sm *StateManager) PopUnassignedFIFO() (Literal, bool, bool) {
	l, ok := sm.unassigned.PopFront()
	return l, true, ok
}

// Parents is a passthrough to the graph.
func (sm *StateManager) Parents(p Literal) []Literal { return sm.Graph.Parents(p) }

// ParentsAtLevel is a passthrough to the graph.
func (sm *StateManager) ParentsAtLevel(p Literal, d int) []Literal {
	return sm.Graph.ParentsAtLevel(p, d)
}

// LevelOf is a passthrough to the graph.
func (sm *StateManager) LevelOf(p Literal) int { return sm.Graph.Level(p) }

// AntecedentOf is a passthrough to the graph.
func (sm *StateManager) AntecedentOf(p Literal) (Clause, bool) { return sm.Graph.Antecedent(p) }

// HistoryAt is a passthrough to the history.
func (sm *StateManager) HistoryAt(level int) []Literal { return sm.History.At(level) }

func boolToTri(v bool) TriState {
	if v {
		return True
	}
	return False
}
