package cdcl

import "strings"

// lit parses a token like "x" or "-x" into a Literal, for terse
// table-driven test construction across this package's test files.
func lit(tok string) Literal {
	if strings.HasPrefix(tok, "-") {
		return Literal{ID: tok[1:], Sign: false}
	}
	return Literal{ID: tok, Sign: true}
}

// cl builds a Clause from tokens understood by lit.
func cl(toks ...string) Clause {
	c := make(Clause, len(toks))
	for i, t := range toks {
		c[i] = lit(t)
	}
	return c
}
