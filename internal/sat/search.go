package sat

// Status is the outcome of a completed Solve call.
type Status int

const (
	// Unsat means the formula is unsatisfiable: the empty clause was derived
	// (directly or via conflict analysis) at decision level 0.
	Unsat Status = iota
	// Sat means every variable has been assigned a value under which every
	// clause in the store is satisfied.
	Sat
)

func (st Status) String() string {
	if st == Sat {
		return "SAT"
	}
	return "UNSAT"
}

// Result is the outcome of Solve: a Status and, when Status is Sat, the
// satisfying assignment, where Assignment[v-1] is the value of variable v.
type Result struct {
	Status     Status
	Assignment []bool
}

// Solve runs the CDCL search loop to completion: propagate, and on conflict
// either report Unsat (if the conflict occurs at decision level 0) or learn
// a clause and backjump; on a fixed point, decide a new variable or report
// Sat if none remain. There is no restart policy and no learned-clause
// deletion: every clause ever learned stays in the store for the rest of
// the call.
func (s *Solver) Solve() Result {
	if s.unsat {
		return Result{Status: Unsat}
	}

	for {
		conflict := s.Propagate()

		if conflict != nil {
			s.TotalConflicts++
			s.Observer.OnConflict(s.decisionLevel(), s.TotalConflicts)

			if s.decisionLevel() == 0 {
				s.unsat = true
				return Result{Status: Unsat}
			}

			learned, backtrackLevel := s.analyze(conflict)
			c, ok := newClause(s, learned, true)

			s.cancelUntil(backtrackLevel)

			if ok {
				idx := s.store.Add(c)
				s.Observer.OnLearn(c.literals, c.lbd, backtrackLevel)
				// The asserting literal is now unit under the post-backjump
				// assignment; enqueue it directly rather than waiting for the
				// next Propagate sweep to rediscover it.
				s.enqueue(c.literals[0], idx)
			}
			continue
		}

		lit, ok := s.decision.Pick(s)
		if !ok {
			return Result{Status: Sat, Assignment: s.extractAssignment()}
		}

		s.TotalDecisions++
		s.assume(lit)
		s.Observer.OnDecision(s.decisionLevel(), lit)
	}
}

func (s *Solver) extractAssignment() []bool {
	out := make([]bool, s.NumVariables())
	for v := 1; v <= s.NumVariables(); v++ {
		out[v-1] = s.VarValue(v) == True
	}
	return out
}
