// Command cdcl runs the CDCL SAT solver over a single DIMACS CNF file
// or every *.cnf file in a directory, per spec.md section 6 and
// original_source/main.go's argparse surface.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"sort"

	"github.com/alexflint/go-arg"

	cdcl "github.com/ashwinnair/cdcl"
	"github.com/ashwinnair/cdcl/internal/logging"
)

type cliArgs struct {
	File      string `arg:"-f,--file" help:"Input file in DIMACS CNF format."`
	Dir       string `arg:"-d,--dir" help:"Directory to read *.cnf files from."`
	LogLevel  string `arg:"-l,--log-level" default:"NONE" help:"TRACE/DEBUG/INFO/ERROR/NONE."`
	Heuristic string `arg:"-b,--branch-heuristic" default:"DEFAULT" help:"DEFAULT/DLIS/RDLIS/JWOS/JWTS/MOMS."`
	Stats     bool   `arg:"-s,--stats" help:"Print decision count and elapsed time."`
	Profile   string `arg:"-p,--profile" help:"Write a pprof CPU profile to this path."`
}

func (cliArgs) Description() string {
	return "CDCL SAT Solver.\nSpecify either -f or -d."
}

func main() {
	log.SetFlags(0)

	var args cliArgs
	p := arg.MustParse(&args)

	if (args.File == "") == (args.Dir == "") {
		p.Fail("exactly one of -f or -d must be given")
	}

	level, err := logging.ParseLevel(args.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.New(level, os.Stderr)

	heuristic, ok := cdcl.Heuristics[args.Heuristic]
	if !ok {
		log.Fatalf("unknown branching heuristic %q", args.Heuristic)
	}

	if args.Profile != "" {
		f, err := os.Create(args.Profile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	var files []string
	if args.File != "" {
		files = []string{args.File}
	} else {
		entries, err := os.ReadDir(args.Dir)
		if err != nil {
			log.Fatal(err)
		}
		for _, e := range entries {
			if e.IsDir() || filepath.Ext(e.Name()) != ".cnf" {
				continue
			}
			files = append(files, filepath.Join(args.Dir, e.Name()))
		}
		sort.Strings(files)
	}

	failed := false
	for _, path := range files {
		if err := runFile(path, heuristic, logger, args.Stats); err != nil {
			logger.Error("%s: %v", path, err)
			failed = true
		}
	}
	if failed {
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}

func runFile(path string, heuristic cdcl.BranchingHeuristic, logger *logging.Logger, withStats bool) error {
	logger.Info("solving %s", path)

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, formula, err := cdcl.ParseDIMACS(f)
	if err != nil {
		return err
	}

	var trace *log.Logger
	if logger.Enabled(logging.TRACE) {
		trace = log.New(os.Stderr, "[TRACE] ", 0)
	}

	var stats *cdcl.Stats
	if withStats {
		stats = cdcl.NewStats()
	}

	solver := cdcl.NewSolver(formula, heuristic, trace, stats)
	result := solver.Solve()

	if !result.Satisfiable {
		fmt.Println("UNSAT")
	} else {
		fmt.Println("SAT")
		printModel(result.Model)
	}

	if stats != nil {
		printStats(path, stats)
	}
	return nil
}

func printModel(model map[string]bool) {
	ids := make([]string, 0, len(model))
	for id := range model {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for i, id := range ids {
		if i > 0 {
			fmt.Print(" ")
		}
		if !model[id] {
			fmt.Print("-")
		}
		fmt.Print(id)
	}
	fmt.Println()
}

func printStats(path string, stats *cdcl.Stats) {
	keys := []string{"decisions", "elapsed"}
	var maxLen int
	for _, k := range keys {
		if len(k) > maxLen {
			maxLen = len(k)
		}
	}
	for _, k := range keys {
		switch k {
		case "decisions":
			log.Printf("%*s %d\n", maxLen, k, stats.Decisions)
		case "elapsed":
			log.Printf("%*s %s\n", maxLen, k, stats.Elapsed)
		}
	}
}
