package sat

import "testing"

// cnf builds a Solver with n variables and adds one clause per row of
// clauses, where a positive int i means variable i true and a negative int
// -i means variable i false. This mirrors DIMACS's 1-based signed literal
// convention directly (variable IDs start at 1, per Literal's doc comment),
// which keeps these test tables readable as DIMACS clause lines.
func cnf(t *testing.T, n int, clauses ...[]int) *Solver {
	t.Helper()

	s := NewDefaultSolver()
	for i := 0; i < n; i++ {
		s.AddVariable()
	}
	for _, row := range clauses {
		lits := make([]Literal, len(row))
		for i, x := range row {
			if x > 0 {
				lits[i] = PositiveLiteral(x)
			} else {
				lits[i] = NegativeLiteral(-x)
			}
		}
		if err := s.AddClause(lits); err != nil {
			t.Fatalf("AddClause(%v): %v", row, err)
		}
	}
	return s
}
