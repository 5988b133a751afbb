package cdcl

import (
	"log"
	"sort"

	"github.com/kr/pretty"
)

// Result is the outcome of a solver run: whether the formula is
// satisfiable and, if so, a total truth assignment witnessing it, keyed
// by variable identifier.
type Result struct {
	Satisfiable bool
	Model       map[string]bool
}

// Solver is the CDCL driver: it ties together Formula, StateManager, and
// a BranchingHeuristic into the propagate/analyze/backtrack/decide loop
// of spec.md section 4.6.
//
// Trace is an optional logger (nil-safe, matching spec.md section 9's
// "out parameter that may be null" guidance for ancillary state) used to
// narrate decisions and conflicts; when set, it also pretty-prints
// implication-graph/history snapshots via kr/pretty at points where the
// teacher's own saturday.go left an unconditional debug dump in bcp() —
// here that dump becomes opt-in trace output instead of always-on
// production noise.
type Solver struct {
	formula   *Formula
	sm        *StateManager
	heuristic BranchingHeuristic
	level     int

	Trace *log.Logger
	Stats *Stats
}

// NewSolver builds a Solver over f using heuristic for branching. trace
// and stats may both be nil.
func NewSolver(f *Formula, heuristic BranchingHeuristic, trace *log.Logger, stats *Stats) *Solver {
	return &Solver{
		formula:   f,
		sm:        NewStateManager(f.Symbols().List()),
		heuristic: heuristic,
		Trace:     trace,
		Stats:     stats,
	}
}

func (s *Solver) tracef(format string, args ...interface{}) {
	if s.Trace != nil {
		s.Trace.Printf(format, args...)
	}
}

func (s *Solver) traceState() {
	if s.Trace != nil {
		s.Trace.Printf("state: %s", pretty.Sprint(s.sm))
	}
}

// Solve runs the CDCL loop to completion and returns the SAT/UNSAT
// verdict, with a witnessing assignment when satisfiable.
func (s *Solver) Solve() *Result {
	if s.Stats != nil {
		defer s.Stats.Stop()
	}
	for {
		conflict, hasConflict := s.propagate()
		if hasConflict {
			s.tracef("conflict at level %d: %s", s.level, conflict)
			if s.level == 0 {
				return &Result{Satisfiable: false}
			}
			learnt, backLevel := s.analyzeConflict(conflict)
			if backLevel < 0 {
				return &Result{Satisfiable: false}
			}
			s.tracef("learnt %s, backtrack to level %d", learnt, backLevel)
			s.sm.RevertTo(backLevel)
			s.formula.AddLearnt(learnt)
			s.level = backLevel
			s.traceState()
			continue
		}

		if s.sm.UnassignedLen() == 0 {
			return &Result{Satisfiable: true, Model: s.extractModel()}
		}

		s.level++
		lit, polarity := s.heuristic(s.sm, s.formula)
		s.tracef("decide %s = %v at level %d", lit, polarity, s.level)
		s.sm.RecordDecision(lit, polarity, s.level)
		if s.Stats != nil {
			s.Stats.incDecision()
		}
	}
}

func (s *Solver) extractModel() map[string]bool {
	model := make(map[string]bool)
	for _, v := range s.formula.Symbols().List() {
		model[v.ID] = s.sm.Assignment.Value(v) == True
	}
	return model
}

// propagate runs BCP to a fixpoint, following spec.md section 4.6.1: each
// round rescans every clause in formula order, stopping at the first
// falsified clause (the conflict), and otherwise collecting one unit
// implication per distinct variable before restarting the scan.
func (s *Solver) propagate() (Clause, bool) {
	type pending struct {
		lit        Literal
		antecedent Clause
	}
	for {
		var queue []pending
		seenVar := make(map[string]bool)
		for _, c := range s.formula.AllClauses() {
			switch s.sm.Assignment.Status(c) {
			case True:
				continue
			case False:
				return c, true
			default:
				if ok, unit := s.sm.Assignment.Unit(c); ok {
					id := unit.Positive().ID
					if seenVar[id] {
						continue
					}
					seenVar[id] = true
					queue = append(queue, pending{lit: unit, antecedent: c})
				}
			}
		}
		if len(queue) == 0 {
			return nil, false
		}
		for _, p := range queue {
			s.tracef("imply %s from %s at level %d", p.lit, p.antecedent, s.level)
			s.sm.RecordImplication(p.lit, true, p.antecedent, s.level)
		}
	}
}

// analyzeConflict performs first-UIP conflict analysis per spec.md
// section 4.6.2, walking the current level's history from the most
// recently assigned variable backwards, resolving away every implied
// variable encountered until exactly one literal of the working clause
// was assigned at the current level.
func (s *Solver) analyzeConflict(conf Clause) (Clause, int) {
	d := s.level
	if d == 0 {
		return nil, -1
	}

	trail := s.sm.HistoryAt(d)
	trailIndex := make(map[string]int, len(trail))
	for i, v := range trail {
		trailIndex[v.ID] = i
	}

	working := make(map[string]Literal)
	for _, l := range conf {
		working[l.Positive().ID] = l
	}
	done := make(map[string]bool)

	atLevelD := func() int {
		n := 0
		for id := range working {
			if s.sm.LevelOf(Literal{ID: id, Sign: true}) == d {
				n++
			}
		}
		return n
	}

	for atLevelD() > 1 {
		bestIdx := -1
		var bestID string
		for id := range working {
			if done[id] {
				continue
			}
			idx, ok := trailIndex[id]
			if !ok {
				continue
			}
			if idx > bestIdx {
				bestIdx = idx
				bestID = id
			}
		}
		if bestIdx == -1 {
			panic(InvariantViolated("analyzeConflict: no resolvable literal at the current level"))
		}

		pos := Literal{ID: bestID, Sign: true}
		antecedent, hasAntecedent := s.sm.AntecedentOf(pos)
		done[bestID] = true
		if !hasAntecedent {
			// Decision variable: nothing to resolve through. If it is
			// the only remaining level-d literal we'd already have
			// stopped; otherwise leave it in the working clause and
			// keep scanning for another candidate.
			continue
		}

		w := clauseFromSet(working)
		resolved := resolve(w, antecedent, pos)
		working = make(map[string]Literal, len(resolved))
		for _, l := range resolved {
			working[l.Positive().ID] = l
		}
	}

	learnt := clauseFromSet(working)
	return learnt, s.backtrackLevel(learnt)
}

func clauseFromSet(m map[string]Literal) Clause {
	out := make(Clause, 0, len(m))
	for _, l := range m {
		out = append(out, l)
	}
	return out
}

// backtrackLevel collects the decision levels of learnt's literals and
// returns the second-largest distinct level, or 0 if at most one
// distinct level remains (spec.md section 4.6.2 / section 9's open
// question #1).
func (s *Solver) backtrackLevel(learnt Clause) int {
	levelSet := make(map[int]bool)
	for _, l := range learnt {
		levelSet[s.sm.LevelOf(l.Positive())] = true
	}
	if len(levelSet) <= 1 {
		return 0
	}
	levels := make([]int, 0, len(levelSet))
	for lv := range levelSet {
		levels = append(levels, lv)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(levels)))
	return levels[1]
}
