package dimacsout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cdclsat/sudokusat/internal/sat"
)

func TestFormatResultUnsat(t *testing.T) {
	got := FormatResult(sat.Result{Status: sat.Unsat})
	assert.Equal(t, "UNSAT\n", got)
}

func TestFormatResultSat(t *testing.T) {
	got := FormatResult(sat.Result{
		Status:     sat.Sat,
		Assignment: []bool{true, false, true},
	})
	assert.Equal(t, "SAT\nv 1 -2 3 0\n", got)
}

func TestFormatResultSatEmptyAssignment(t *testing.T) {
	got := FormatResult(sat.Result{Status: sat.Sat, Assignment: nil})
	assert.Equal(t, "SAT\nv 0\n", got)
}
