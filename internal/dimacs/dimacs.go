// Package dimacs loads DIMACS CNF input into a sat.Solver, extracting the
// Sudoku metadata comments (c SIZE / c MAP / c FIXED) that the Sudoku-to-CNF
// encoder emits alongside the formula itself.
package dimacs

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	rhdimacs "github.com/rhartert/dimacs"

	"github.com/cdclsat/sudokusat/internal/sat"
)

// Solver is the subset of *sat.Solver that loading a formula needs. Using an
// interface here, rather than depending on the concrete type, keeps this
// package testable without a real solver and keeps the parser decoupled
// from the solver's internals.
type Solver interface {
	AddVariable() int
	AddClause([]sat.Literal) error
}

// VarCell maps a DIMACS variable to the Sudoku cell and value it represents.
type VarCell struct {
	Row, Col, Value int
}

// FixedCell is a pre-assigned cell from a "c FIXED r c v" comment — a clue
// baked into the puzzle before encoding, not represented by any variable.
type FixedCell struct {
	Row, Col, Value int
}

// Metadata holds the Sudoku board information recovered from CNF comments.
// Size is 0 when the file carried no "c SIZE" comment, meaning the formula
// is not (or is not known to be) a Sudoku encoding.
type Metadata struct {
	Size  int
	Cells map[int]VarCell
	Fixed []FixedCell
}

// Formula is the result of loading a DIMACS file: the formula itself, loaded
// directly into the given Solver, plus whatever Sudoku metadata its comments
// carried.
type Formula struct {
	NumVariables int
	NumClauses   int
	Metadata     Metadata
}

// Load reads filename (transparently gunzipping it if gzipped is true),
// declares its variables and clauses on solver, and returns the problem
// header counts together with any Sudoku metadata found in its comments.
func Load(filename string, gzipped bool, solver Solver) (Formula, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Formula{}, errors.Wrapf(err, "dimacs: opening %q", filename)
	}
	defer f.Close()

	var r io.Reader = f
	if gzipped {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return Formula{}, errors.Wrapf(err, "dimacs: opening %q as gzip", filename)
		}
		defer gz.Close()
		r = gz
	}

	b := &builder{
		solver:   solver,
		metadata: Metadata{Cells: map[int]VarCell{}},
	}
	if err := rhdimacs.ReadBuilder(r, b); err != nil {
		return Formula{}, errors.Wrapf(err, "dimacs: parsing %q", filename)
	}

	return Formula{
		NumVariables: b.numVars,
		NumClauses:   b.numClauses,
		Metadata:     b.metadata,
	}, nil
}

// builder adapts a Solver plus Sudoku metadata accumulation onto
// github.com/rhartert/dimacs's streaming Builder interface.
type builder struct {
	solver     Solver
	numVars    int
	numClauses int
	metadata   Metadata
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("dimacs: unsupported problem type %q, want \"cnf\"", problem)
	}
	b.numVars = nVars
	b.numClauses = nClauses
	for i := 0; i < nVars; i++ {
		b.solver.AddVariable()
	}
	return nil
}

func (b *builder) Clause(lits []int) error {
	clause := make([]sat.Literal, len(lits))
	for i, l := range lits {
		if l < 0 {
			clause[i] = sat.NegativeLiteral(-l)
		} else {
			clause[i] = sat.PositiveLiteral(l)
		}
	}
	return b.solver.AddClause(clause)
}

// Comment recognizes the three Sudoku metadata comment forms emitted by the
// Sudoku-to-CNF encoder:
//
//	c SIZE <N>                board is N x N
//	c MAP <var> <r> <c> <v>   DIMACS variable <var> represents cell(r,c)=v
//	c FIXED <r> <c> <v>       cell(r,c) is pre-assigned to v, not in the CNF
//
// Any other comment is ignored, matching the original encoder's parser,
// which never treated unrecognized comments as an error.
func (b *builder) Comment(text string) error {
	// The library's Comment callback is not guaranteed to strip DIMACS's
	// leading "c" marker, so tolerate either form.
	text = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), "c"))

	var n, v, r, c int

	if k, _ := fmt.Sscanf(text, "SIZE %d", &n); k == 1 {
		b.metadata.Size = n
		return nil
	}
	if k, _ := fmt.Sscanf(text, "MAP %d %d %d %d", &v, &r, &c, &n); k == 4 {
		b.metadata.Cells[v] = VarCell{Row: r, Col: c, Value: n}
		return nil
	}
	if k, _ := fmt.Sscanf(text, "FIXED %d %d %d", &r, &c, &v); k == 3 {
		b.metadata.Fixed = append(b.metadata.Fixed, FixedCell{Row: r, Col: c, Value: v})
		return nil
	}
	return nil
}
