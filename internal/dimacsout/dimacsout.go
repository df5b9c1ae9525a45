// Package dimacsout formats a solver result in the conventional DIMACS
// output format: a first line reading "SAT" or "UNSAT" followed, when satisfiable,
// by a "v" line listing the assignment as signed 1-based variable numbers.
package dimacsout

import (
	"fmt"
	"strings"

	"github.com/cdclsat/sudokusat/internal/sat"
)

// FormatResult renders result the way the original solver's print_result
// does: "SAT" followed by a "v " line of signed variables terminated by 0,
// or plain "UNSAT".
func FormatResult(result sat.Result) string {
	if result.Status != sat.Sat {
		return "UNSAT\n"
	}

	var sb strings.Builder
	sb.WriteString("SAT\nv ")
	for i, b := range result.Assignment {
		if b {
			fmt.Fprintf(&sb, "%d ", i+1)
		} else {
			fmt.Fprintf(&sb, "-%d ", i+1)
		}
	}
	sb.WriteString("0\n")
	return sb.String()
}
