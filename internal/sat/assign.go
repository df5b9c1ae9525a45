package sat

// assume pushes a new decision level and assigns l to True as a decision
// (reasonNone). It is the only place the solver increments its decision
// level.
func (s *Solver) assume(l Literal) {
	s.trailLim = append(s.trailLim, len(s.trail))
	s.enqueue(l, reasonNone)
}

// undoOne pops the most recently assigned trail literal and resets its
// variable to Unassigned.
func (s *Solver) undoOne() {
	l := s.trail[len(s.trail)-1]
	v := l.VarID()

	s.assigns[v] = Unknown
	s.reason[v] = reasonNone
	s.level[v] = -1

	s.trail = s.trail[:len(s.trail)-1]
}

// cancelUntil pops trail entries down to decision level L, leaving
// assignments at level <= L untouched. It is a no-op if the solver is
// already at or below L.
func (s *Solver) cancelUntil(level int) {
	for s.decisionLevel() > level {
		limit := s.trailLim[len(s.trailLim)-1]
		for len(s.trail) > limit {
			s.undoOne()
		}
		s.trailLim = s.trailLim[:len(s.trailLim)-1]
	}
}
