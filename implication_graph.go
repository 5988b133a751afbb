package cdcl

// Node is a vertex of the implication graph: an assigned variable (always
// stored in positive form) together with its value, the decision level
// it was assigned at, the clause that forced it (nil for decisions), and
// its parent/child edges.
//
// Parents and children are mutually referential, but spec.md invariant 4
// guarantees the graph is acyclic, so ordinary Go pointers (rather than
// an arena of indices) are safe here: Go's garbage collector handles the
// back-references without the manual lifetime bookkeeping that the
// arena-with-indices approach in spec.md section 9 is defending against
// in languages without a tracing collector.
type Node struct {
	Symbol     Literal
	Value      bool
	Level      int
	Antecedent Clause
	HasAntecedent bool
	Parents    []*Node
	Children   []*Node
}

// ImplicationGraph maps each assigned variable (positive form) to its
// node.
type ImplicationGraph struct {
	nodes map[string]*Node
}

// NewImplicationGraph builds an empty graph.
func NewImplicationGraph() *ImplicationGraph {
	return &ImplicationGraph{nodes: make(map[string]*Node)}
}

// Has reports whether p (must be positive) has a node.
func (g *ImplicationGraph) Has(p Literal) bool {
	_, ok := g.nodes[p.ID]
	return ok
}

// AddNode canonicalizes l to positive form p with value v xor sign(l),
// and inserts a node for p with the given antecedent and level. It wires
// bidirectional parent/child edges to every other literal of antecedent
// that already has a node, per spec.md section 4.2.
func (g *ImplicationGraph) AddNode(l Literal, v bool, antecedent Clause, hasAntecedent bool, level int) {
	p := l.Positive()
	if g.Has(p) {
		panic(InvariantViolated("graph: node for " + p.ID + " already present"))
	}
	vPos := v
	if !l.Sign {
		vPos = !v
	}
	node := &Node{Symbol: p, Value: vPos, Level: level, Antecedent: antecedent, HasAntecedent: hasAntecedent}
	g.nodes[p.ID] = node

	if hasAntecedent {
		for _, al := range antecedent {
			if al.ID == p.ID {
				continue
			}
			pPos := al.Positive()
			if parent, ok := g.nodes[pPos.ID]; ok {
				node.Parents = append(node.Parents, parent)
				parent.Children = append(parent.Children, node)
			}
		}
	}
}

// AddConflictNode records the reserved conflict literal K as a node whose
// antecedent is the falsified clause at the current level. Optional per
// spec.md section 4.2; conflict analysis in this implementation operates
// directly on the falsified clause and does not require it.
func (g *ImplicationGraph) AddConflictNode(antecedent Clause, level int) {
	g.AddNode(conflictLiteral, true, antecedent, true, level)
}

// Node returns the node for p, if any.
func (g *ImplicationGraph) Node(p Literal) (*Node, bool) {
	n, ok := g.nodes[p.ID]
	return n, ok
}

// Parents returns p's parent variables (positive form).
func (g *ImplicationGraph) Parents(p Literal) []Literal {
	n, ok := g.nodes[p.ID]
	if !ok {
		panic(InvariantViolated("graph: parents: " + p.ID + " not present"))
	}
	out := make([]Literal, len(n.Parents))
	for i, parent := range n.Parents {
		out[i] = parent.Symbol
	}
	return out
}

// ParentsAtLevel returns p's parent variables assigned exactly at level d.
func (g *ImplicationGraph) ParentsAtLevel(p Literal, d int) []Literal {
	n, ok := g.nodes[p.ID]
	if !ok {
		panic(InvariantViolated("graph: parentsAtLevel: " + p.ID + " not present"))
	}
	var out []Literal
	for _, parent := range n.Parents {
		if parent.Level == d {
			out = append(out, parent.Symbol)
		}
	}
	return out
}

// Antecedent returns p's antecedent clause and whether it has one (false
// for decision nodes).
func (g *ImplicationGraph) Antecedent(p Literal) (Clause, bool) {
	n, ok := g.nodes[p.ID]
	if !ok {
		panic(InvariantViolated("graph: antecedent: " + p.ID + " not present"))
	}
	return n.Antecedent, n.HasAntecedent
}

// Level returns the decision level at which p was assigned.
func (g *ImplicationGraph) Level(p Literal) int {
	n, ok := g.nodes[p.ID]
	if !ok {
		panic(InvariantViolated("graph: level: " + p.ID + " not present"))
	}
	return n.Level
}

// Remove drops p's node and purges it from every remaining node's
// children list.
func (g *ImplicationGraph) Remove(p Literal) {
	n, ok := g.nodes[p.ID]
	if !ok {
		panic(InvariantViolated("graph: remove: " + p.ID + " not present"))
	}
	delete(g.nodes, p.ID)
	for _, parent := range n.Parents {
		parent.Children = removeNode(parent.Children, n)
	}
	for _, child := range n.Children {
		child.Parents = removeNode(child.Parents, n)
	}
}

func removeNode(nodes []*Node, target *Node) []*Node {
	out := nodes[:0]
	for _, n := range nodes {
		if n != target {
			out = append(out, n)
		}
	}
	return out
}
