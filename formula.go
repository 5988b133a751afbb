package cdcl

// Symbols is the set of variables appearing in a formula, always stored
// in positive form, in first-seen order. It backs both Formula's
// variable cache and the branching heuristics' default iteration order.
type Symbols struct {
	order []Literal
	seen  map[string]bool
}

// NewSymbols builds an empty variable set.
func NewSymbols() *Symbols {
	return &Symbols{seen: make(map[string]bool)}
}

// Add inserts the positive form of l if it isn't already present.
func (s *Symbols) Add(l Literal) {
	pos := l.Positive()
	if s.seen[pos.ID] {
		return
	}
	s.seen[pos.ID] = true
	s.order = append(s.order, pos)
}

// List returns the variables in insertion order.
func (s *Symbols) List() []Literal {
	out := make([]Literal, len(s.order))
	copy(out, s.order)
	return out
}

// Len reports the number of distinct variables.
func (s *Symbols) Len() int { return len(s.order) }

// Formula holds the original clauses (immutable after parsing) plus the
// learnt clauses appended during search, and caches the variable set.
type Formula struct {
	originals []Clause
	learnts   []Clause
	symbols   *Symbols
}

// NewFormula builds a Formula from the original clause list, computing
// its variable set.
func NewFormula(clauses []Clause) *Formula {
	f := &Formula{
		originals: clauses,
		symbols:   NewSymbols(),
	}
	for _, c := range clauses {
		for _, l := range c {
			f.symbols.Add(l)
		}
	}
	return f
}

// Symbols returns the formula's cached variable set (positive form).
func (f *Formula) Symbols() *Symbols { return f.symbols }

// Originals returns the immutable original clause list.
func (f *Formula) Originals() []Clause { return f.originals }

// Learnts returns the clauses learnt so far, in the order they were added.
func (f *Formula) Learnts() []Clause { return f.learnts }

// AddLearnt appends a learnt clause. It becomes visible to the next BCP
// scan, per spec.md section 5: the in-flight scan that triggered the
// conflict analysis producing c has already stopped.
func (f *Formula) AddLearnt(c Clause) {
	f.learnts = append(f.learnts, c)
}

// AllClauses returns every clause in the order BCP scans them: learnt
// clauses first (in the order they were learnt), then the originals,
// matching original_source's
// Formula.get_clauses_with_learnt (learnt_clist + clist).
func (f *Formula) AllClauses() []Clause {
	all := make([]Clause, 0, len(f.originals)+len(f.learnts))
	all = append(all, f.learnts...)
	all = append(all, f.originals...)
	return all
}
