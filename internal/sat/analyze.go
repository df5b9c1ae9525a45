package sat

// analyze performs First-UIP conflict analysis against conflict, a clause
// falsified under the current assignment at decision level L > 0 (the
// search loop never calls analyze at L = 0; it reports Unsat directly
// instead). It returns the learned clause, with the asserting (First UIP)
// literal first, and the level to backjump to, which always satisfies
// 0 <= backtrackLevel < L.
//
// The algorithm resolves the conflict clause, then each subsequently
// selected variable's reason clause, against a marked "cut" of variables
// until exactly one variable at the current level remains unresolved — the
// First Unique Implication Point. This is the standard MiniSat-style
// formulation of First-UIP analysis; marking uses the Solver's own
// generation-counter seen-set (clearSeen/markSeen/isSeen in solver.go) so
// that repeated calls across a long search never pay an O(numVars) clear.
func (s *Solver) analyze(conflict *Clause) (learned []Literal, backtrackLevel int) {
	level := s.decisionLevel()
	if level == 0 {
		panic("sat: analyze called at decision level 0")
	}

	s.clearSeen()
	nAtLevel := 0
	learned = append(learned, 0) // placeholder for the UIP literal, set below

	// resolve merges c's antecedents into the cut. A literal whose variable
	// sits at the current decision level is still a candidate for further
	// resolution, so it only bumps nAtLevel; anything from an earlier level
	// is final and is appended to the learned clause right away, extending
	// the backjump level as needed.
	resolve := func(c *Clause) {
		for _, l := range c.literals {
			v := l.VarID()
			if s.isSeen(v) {
				continue
			}
			s.markSeen(v)

			if s.level[v] == level {
				nAtLevel++
				continue
			}
			learned = append(learned, negationOf(s, v))
			if s.level[v] > backtrackLevel {
				backtrackLevel = s.level[v]
			}
		}
	}

	resolve(conflict)

	cursor := len(s.trail) - 1
	var pivot Literal
	for {
		for !s.isSeen(s.trail[cursor].VarID()) {
			cursor--
		}
		pivot = s.trail[cursor]
		cursor--

		nAtLevel--
		if nAtLevel <= 0 {
			break // pivot is the First UIP
		}

		r := s.reason[pivot.VarID()]
		if r == reasonNone {
			panic("sat: analyze reached a decision literal before the implication point was found")
		}
		rc := s.store.Get(r)
		containsPivot := false
		for _, l := range rc.literals {
			if l == pivot {
				containsPivot = true
				break
			}
		}
		if !containsPivot {
			panic("sat: reason clause does not contain the literal it forced")
		}
		resolve(rc)
	}

	learned[0] = pivot.Opposite()
	return learned, backtrackLevel
}

// negationOf returns the literal that is false under the current
// assignment for variable v, i.e. the one the learned clause must carry so
// that the clause forbids exactly the assignment that produced the
// conflict.
func negationOf(s *Solver, v int) Literal {
	if s.VarValue(v) == True {
		return NegativeLiteral(v)
	}
	return PositiveLiteral(v)
}
