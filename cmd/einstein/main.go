// Command einstein encodes the classic five-houses constraint puzzle
// ("who owns the zebra") as a DIMACS CNF formula, supplementing the
// feature original_source/einstein_puzzle/translate.go dropped from the
// distilled specification (spec.md section 1 non-goals exclude a
// runtime-plotting script, not this).
//
// The puzzle's 125 propositions and their at-least-one/at-most-one
// structure follow translate.go's numbering scheme (5 categories x 5
// houses x 5 values); the clue clauses here are expressed directly in
// terms of same-house/left-of/next-to helpers rather than
// translate.go's brute-force Cartesian-product CNF, since the two are
// logically equivalent and the helper form is the idiomatic way to
// write this encoding in Go (see DESIGN.md).
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alexflint/go-arg"

	cdcl "github.com/ashwinnair/cdcl"
)

const numHouses = 5

var categories = []struct {
	name   string
	values []string
}{
	{"nat", []string{"British", "Swedish", "Danish", "Norwegian", "German"}},
	{"color", []string{"Red", "Green", "White", "Yellow", "Blue"}},
	{"bev", []string{"Tea", "Coffee", "Milk", "Beer", "Water"}},
	{"cig", []string{"PallMall", "Dunhill", "Blend", "BlueMaster", "Prince"}},
	{"pet", []string{"Dog", "Bird", "Cat", "Horse", "Fish"}},
}

// variable returns the Literal for "house h has categories[cat] = value",
// h and value zero-indexed.
func variable(cat int, value string, h int) cdcl.Literal {
	id := fmt.Sprintf("%s_%s_h%d", categories[cat].name, value, h)
	return cdcl.Literal{ID: id, Sign: true}
}

type builder struct {
	clauses []cdcl.Clause
}

func (b *builder) add(lits ...cdcl.Literal) {
	b.clauses = append(b.clauses, cdcl.Clause(lits))
}

// uniqueness emits, for every category, the at-least-one-house and
// at-most-one-house-per-value clauses plus the at-most-one-value-per-house
// clauses, matching translate.go's three structural loops.
func (b *builder) uniqueness() {
	for cat := range categories {
		for _, value := range categories[cat].values {
			var atLeastOne cdcl.Clause
			for h := 0; h < numHouses; h++ {
				atLeastOne = append(atLeastOne, variable(cat, value, h))
			}
			b.clauses = append(b.clauses, atLeastOne)
			for h1 := 0; h1 < numHouses; h1++ {
				for h2 := h1 + 1; h2 < numHouses; h2++ {
					b.add(variable(cat, value, h1).Negate(), variable(cat, value, h2).Negate())
				}
			}
		}
		for h := 0; h < numHouses; h++ {
			for i1, v1 := range categories[cat].values {
				for _, v2 := range categories[cat].values[i1+1:] {
					b.add(variable(cat, v1, h).Negate(), variable(cat, v2, h).Negate())
				}
			}
		}
	}
}

// sameHouse asserts the two (category, value) pairs hold at the same
// house, via a per-house biconditional.
func (b *builder) sameHouse(catA int, valA string, catB int, valB string) {
	for h := 0; h < numHouses; h++ {
		a, c := variable(catA, valA, h), variable(catB, valB, h)
		b.add(a.Negate(), c)
		b.add(c.Negate(), a)
	}
}

// fact asserts (category, value) holds at the fixed house index h.
func (b *builder) fact(cat int, value string, h int) {
	b.add(variable(cat, value, h))
}

// leftOf asserts catA=valA's house is immediately left of catB=valB's.
func (b *builder) leftOf(catA int, valA string, catB int, valB string) {
	b.add(variable(catA, valA, numHouses-1).Negate())
	for h := 0; h < numHouses-1; h++ {
		b.add(variable(catA, valA, h).Negate(), variable(catB, valB, h+1))
	}
}

// nextTo asserts catA=valA's house is adjacent (either side) to catB=valB's.
func (b *builder) nextTo(catA int, valA string, catB int, valB string) {
	for h := 0; h < numHouses; h++ {
		var neighbors cdcl.Clause
		if h > 0 {
			neighbors = append(neighbors, variable(catB, valB, h-1))
		}
		if h < numHouses-1 {
			neighbors = append(neighbors, variable(catB, valB, h+1))
		}
		b.clauses = append(b.clauses, append(cdcl.Clause{variable(catA, valA, h).Negate()}, neighbors...))
	}
}

const (
	nat = iota
	color
	bev
	cig
	pet
)

func buildPuzzle() []cdcl.Clause {
	b := &builder{}
	b.uniqueness()

	b.sameHouse(nat, "British", color, "Red")
	b.sameHouse(nat, "Swedish", pet, "Dog")
	b.sameHouse(nat, "Danish", bev, "Tea")
	b.leftOf(color, "Green", color, "White")
	b.sameHouse(color, "Green", bev, "Coffee")
	b.sameHouse(cig, "PallMall", pet, "Bird")
	b.sameHouse(color, "Yellow", cig, "Dunhill")
	b.fact(bev, "Milk", 2)
	b.fact(nat, "Norwegian", 0)
	b.nextTo(cig, "Blend", pet, "Cat")
	b.nextTo(pet, "Horse", cig, "Dunhill")
	b.sameHouse(cig, "BlueMaster", bev, "Beer")
	b.sameHouse(nat, "German", cig, "Prince")
	b.nextTo(nat, "Norwegian", color, "Blue")
	b.nextTo(cig, "Blend", bev, "Water")

	return b.clauses
}

type cliArgs struct {
	Output string `arg:"-o,--output" help:"Also write the DIMACS CNF to this path."`
	Solve  bool   `arg:"-s,--solve" default:"true" help:"Solve and print who owns the fish."`
}

func main() {
	log.SetFlags(0)
	var args cliArgs
	arg.MustParse(&args)

	clauses := buildPuzzle()
	formula := cdcl.NewFormula(clauses)

	if args.Output != "" {
		f, err := os.Create(args.Output)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := cdcl.WriteDIMACS(f, formula.Symbols(), formula); err != nil {
			log.Fatal(err)
		}
	}

	if !args.Solve {
		return
	}

	solver := cdcl.NewSolver(formula, cdcl.DefaultHeuristic, nil, nil)
	result := solver.Solve()
	if !result.Satisfiable {
		fmt.Println("UNSAT")
		return
	}
	for h := 0; h < numHouses; h++ {
		if result.Model[variable(pet, "Fish", h).ID] {
			fmt.Printf("house %d owns the fish\n", h+1)
		}
	}
}
