package cdcl

import "testing"

func TestGraphAddNodeDecision(t *testing.T) {
	g := NewImplicationGraph()
	g.AddNode(lit("x"), true, nil, false, 1)
	if !g.Has(lit("x")) {
		t.Fatal("expected node for x")
	}
	if g.Level(lit("x")) != 1 {
		t.Fatalf("Level(x) = %d, want 1", g.Level(lit("x")))
	}
	if _, ok := g.Antecedent(lit("x")); ok {
		t.Fatal("decision node should report no antecedent")
	}
}

// AddNode must canonicalize to positive form with value xor sign, per
// spec.md section 4.2.
func TestGraphAddNodeCanonicalizesNegativeLiteral(t *testing.T) {
	g := NewImplicationGraph()
	g.AddNode(lit("-x"), true, nil, false, 0)
	n, ok := g.Node(lit("x"))
	if !ok {
		t.Fatal("expected node keyed by positive x")
	}
	if n.Value != false {
		t.Fatalf("canonicalized value = %v, want false (true xor negative sign)", n.Value)
	}
}

func TestGraphParentChildWiring(t *testing.T) {
	g := NewImplicationGraph()
	g.AddNode(lit("a"), true, nil, false, 1)
	g.AddNode(lit("b"), true, nil, false, 1)
	// c is implied by clause (-a -b c), antecedent contains a and b.
	g.AddNode(lit("c"), true, cl("-a", "-b", "c"), true, 1)

	parents := g.Parents(lit("c"))
	if len(parents) != 2 {
		t.Fatalf("Parents(c) = %v, want 2 entries", parents)
	}
	atLevel := g.ParentsAtLevel(lit("c"), 1)
	if len(atLevel) != 2 {
		t.Fatalf("ParentsAtLevel(c, 1) = %v, want 2 entries", atLevel)
	}
	if len(g.ParentsAtLevel(lit("c"), 2)) != 0 {
		t.Fatal("ParentsAtLevel(c, 2) should be empty")
	}
}

func TestGraphRemovePrunesChildren(t *testing.T) {
	g := NewImplicationGraph()
	g.AddNode(lit("a"), true, nil, false, 1)
	g.AddNode(lit("c"), true, cl("-a", "c"), true, 1)

	g.Remove(lit("a"))
	if g.Has(lit("a")) {
		t.Fatal("a should be gone after Remove")
	}
	n, _ := g.Node(lit("c"))
	if len(n.Parents) != 0 {
		t.Fatalf("c's parents should be pruned after removing a, got %v", n.Parents)
	}
}

func TestGraphAddNodeDuplicatePanics(t *testing.T) {
	g := NewImplicationGraph()
	g.AddNode(lit("x"), true, nil, false, 0)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic adding a node that already exists")
		}
	}()
	g.AddNode(lit("x"), false, nil, false, 0)
}
