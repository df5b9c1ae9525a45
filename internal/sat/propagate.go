package sat

// Propagate extends the current partial assignment by repeatedly scanning
// every clause in the store for unit clauses, until either a conflict is
// found or a fixed point is reached. This is a deliberately naive full-scan
// propagator, not watched literals. The naive scan is still deterministic —
// the same assignment state always yields the same first conflict, because
// clauses are scanned in a fixed, clause-store insertion order — which is
// exactly what the end-to-end test scenarios rely on.
//
// On return nil, every clause is either satisfied or has at least two
// Unassigned literals. On return non-nil, the returned clause is falsified
// by the current assignment and must be passed to analyze.
func (s *Solver) Propagate() *Clause {
	for {
		progress := false

		for i := 0; i < s.store.Count(); i++ {
			c := s.store.Get(i)

			unassigned, unit, satisfied := c.classify(s)
			if satisfied {
				continue
			}
			switch unassigned {
			case 0:
				return c // conflict: no true literal, none left to try
			case 1:
				s.enqueue(unit, i)
				progress = true
			}
		}

		if !progress {
			return nil
		}
	}
}
