// Package sudoku decodes a SAT assignment back into a Sudoku grid, using the
// "c SIZE" / "c MAP" / "c FIXED" metadata a DIMACS CNF file carries alongside
// a Sudoku-to-CNF encoding.
package sudoku

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cdclsat/sudokusat/internal/dimacs"
)

// ErrNoMetadata is returned by Decode when the formula carried no "c SIZE"
// comment, meaning it is not known to be a Sudoku encoding at all.
var ErrNoMetadata = errors.New("sudoku: no 'c SIZE N' comment found in CNF")

// Conflict records a decode-time inconsistency: two different SAT variables
// (or a fixed clue and a variable) both claim the same cell with different
// values. A satisfying assignment that is internally consistent should never
// produce one, but the decoder reports rather than panics on one, mirroring
// the original decoder's behavior of printing a warning and continuing.
type Conflict struct {
	Row, Col      int
	Existing, New int
}

func (c Conflict) String() string {
	return fmt.Sprintf("cell(%d,%d): existing=%d new=%d", c.Row, c.Col, c.Existing, c.New)
}

// Grid is a decoded N x N Sudoku board. Cell (r, c) for r, c in [0, N) is
// grid[r][c]; 0 means empty.
type Grid struct {
	Size  int
	Cells [][]int
}

// Decode reconstructs the Sudoku grid that a satisfying assignment
// represents, given the metadata recovered from the CNF's comments. It
// returns ErrNoMetadata if meta carries no size, matching the original
// encoder's "decode skipped" behavior rather than treating it as fatal.
//
// Fixed cells are stamped in first, then every SAT variable assigned true is
// mapped through meta.Cells onto its (row, col, value) and stamped in turn.
// Any stamp that would overwrite a different existing value is recorded as a
// Conflict instead of silently applied or aborting the decode.
func Decode(meta dimacs.Metadata, assignment []bool) (Grid, []Conflict, error) {
	if meta.Size <= 0 {
		return Grid{}, nil, ErrNoMetadata
	}

	n := meta.Size
	cells := make([][]int, n)
	for i := range cells {
		cells[i] = make([]int, n)
	}

	for _, f := range meta.Fixed {
		if f.Row < 1 || f.Row > n || f.Col < 1 || f.Col > n {
			continue
		}
		cells[f.Row-1][f.Col-1] = f.Value
	}

	var conflicts []Conflict
	for v, ok := range assignment {
		if !ok {
			continue
		}
		cell, known := meta.Cells[v+1] // DIMACS variables are 1-based
		if !known {
			continue
		}
		if cell.Row < 1 || cell.Row > n || cell.Col < 1 || cell.Col > n || cell.Value < 1 {
			continue
		}

		r, c := cell.Row-1, cell.Col-1
		if existing := cells[r][c]; existing != 0 && existing != cell.Value {
			conflicts = append(conflicts, Conflict{
				Row: cell.Row, Col: cell.Col,
				Existing: existing, New: cell.Value,
			})
		}
		cells[r][c] = cell.Value
	}

	return Grid{Size: n, Cells: cells}, conflicts, nil
}

// String renders the grid with box-drawing separators sized to base =
// ceil(sqrt(Size)), the same layout the original decoder prints: "." for an
// empty cell, the digit for values up to 9, and 'A'-up for larger values (as
// can occur in 16x16 boards).
func (g Grid) String() string {
	base := 1
	for base*base < g.Size {
		base++
	}

	var sb strings.Builder
	for r := 0; r < g.Size; r++ {
		if r > 0 && r%base == 0 {
			dashes := g.Size*2 + (g.Size/base-1)*2
			sb.WriteString(strings.Repeat("-", dashes))
			sb.WriteByte('\n')
		}
		for c := 0; c < g.Size; c++ {
			if c > 0 && c%base == 0 {
				sb.WriteString("| ")
			}
			switch v := g.Cells[r][c]; {
			case v == 0:
				sb.WriteString(". ")
			case v <= 9:
				fmt.Fprintf(&sb, "%d ", v)
			default:
				sb.WriteByte(byte('A' + v - 10))
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
