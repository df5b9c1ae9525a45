package sat

// Observer receives structured notifications of search milestones. The
// core has no dependency on any logging library; the root package's
// zerologObserver adapts an Observer onto zerolog. All methods must return
// quickly and must not call back into the Solver.
type Observer interface {
	// OnDecision is called each time the search loop makes a decision, with
	// the new decision level and the literal assigned.
	OnDecision(level int, decided Literal)

	// OnConflict is called each time propagation finds a conflict, with the
	// solver's decision level at the conflict (pre-backjump) and the
	// conflict's sequence number (1-based).
	OnConflict(level int, conflictNumber int64)

	// OnLearn is called after conflict analysis, once per conflict, with the
	// learned clause, its LBD, and the level the search backjumped to.
	OnLearn(learned []Literal, lbd int, backtrackLevel int)
}

// NoopObserver implements Observer by doing nothing. It is the Solver's
// default so that using the core never requires a logging dependency.
type NoopObserver struct{}

func (NoopObserver) OnDecision(int, Literal)     {}
func (NoopObserver) OnConflict(int, int64)       {}
func (NoopObserver) OnLearn([]Literal, int, int) {}
