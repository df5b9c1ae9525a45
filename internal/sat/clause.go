package sat

import "strings"

// Clause is an ordered, append-only sequence of literals interpreted as
// their disjunction. Once stored, a clause's literals are never mutated by
// the core (the propagator and analyzer only ever read them). An empty
// clause is admissible — it is simply always falsified, which the
// propagator detects on its first sweep.
type Clause struct {
	literals []Literal

	// learnt records whether the clause was produced by conflict analysis,
	// as opposed to having been part of the original problem.
	learnt bool

	// lbd (literal block distance: the number of distinct decision levels
	// represented in the clause) is computed once for learnt clauses purely
	// for structured logging. It never influences propagation, analysis, or
	// search — there is no clause-database reduction in this solver.
	lbd int
}

// newClause builds a clause from the given literals. For non-learnt
// (problem) clauses it also removes duplicate literals and root-level false
// literals, and detects root-level tautologies, mirroring the
// simplification the original parser performs while loading input clauses.
//
// It returns (clause, ok). ok is false only when the clause is always true
// at the root level — it holds both x and !x, or a literal already assigned
// True — and therefore not worth storing at all. Every
// other outcome, including the literals reducing to zero or one, produces a
// clause that is stored and left for the propagator to act on.
func newClause(s *Solver, lits []Literal, learnt bool) (*Clause, bool) {
	size := len(lits)

	if !learnt {
		seen := make(map[Literal]struct{}, size)
		for i := size - 1; i >= 0; i-- {
			if _, ok := seen[lits[i].Opposite()]; ok {
				return nil, false // tautology: x and !x both present
			}
			if _, ok := seen[lits[i]]; ok {
				size--
				lits[i], lits[size] = lits[size], lits[i]
				continue
			}
			seen[lits[i]] = struct{}{}

			switch s.literalValue(lits[i]) {
			case True:
				return nil, false // already satisfied at the root level
			case False:
				size--
				lits[i], lits[size] = lits[size], lits[i]
			}
		}
		lits = lits[:size]
	}

	c := &Clause{
		literals: append([]Literal(nil), lits...),
		learnt:   learnt,
	}
	if learnt {
		c.lbd = countDistinctLevels(s, c.literals)
	}
	return c, true
}

func countDistinctLevels(s *Solver, lits []Literal) int {
	seen := map[int]struct{}{}
	for _, l := range lits {
		seen[s.level[l.VarID()]] = struct{}{}
	}
	return len(seen)
}

// classify scans c under the solver's current assignment, reporting whether
// it is already satisfied and, if not, how many of its literals are
// Unassigned (and, when there is exactly one, which literal that is).
func (c *Clause) classify(s *Solver) (unassignedCount int, unassignedLit Literal, satisfied bool) {
	for _, l := range c.literals {
		switch s.literalValue(l) {
		case True:
			return 0, 0, true
		case Unknown:
			unassignedCount++
			unassignedLit = l
		}
	}
	return unassignedCount, unassignedLit, false
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
