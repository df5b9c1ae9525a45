package sat

import "fmt"

// reasonNone marks a variable that was assigned by decision (or is
// unassigned), as opposed to one forced by unit propagation from a clause.
// Reasons are stored as clause-store indices rather than clause pointers:
// integer handles stay valid across the store's growth, have no cyclic
// ownership with the clauses they point into, and make the analyzer
// trivially safe even though learnt clauses are appended while the trail is
// still being walked.
const reasonNone = -1

// Solver owns every piece of state involved in deciding a CNF formula: the
// clause store, the assignment trail, and the search loop that drives them.
// A Solver is not safe for concurrent use; exactly one goroutine may call
// its methods for the lifetime of a Solve call.
type Solver struct {
	store ClauseStore

	// Per-variable assignment state, indexed by variable ID (spec.md §3's
	// value(v)/level(v)/reason(v)). Index 0 is an unused placeholder, kept
	// so that variable IDs can start at 1 (see Literal's doc comment);
	// assigns holds one three-valued slot per variable rather than one per
	// literal, with literalValue flipping the polarity on read instead of
	// indexing a separate slot for each sign.
	assigns []LBool
	level   []int
	reason  []int

	// trail records every assigned literal in assignment order,
	// non-decreasing in level. trailLim[i] is the trail length immediately
	// before the i-th decision was pushed, so decisionLevel() is simply
	// len(trailLim) and backtracking to level L truncates both trail and
	// trailLim without any separate bookkeeping.
	trail    []Literal
	trailLim []int

	// unsat is latched once a conflict is detected at the root level; a
	// latched Solver always reports Unsat without re-running search.
	unsat bool

	decision DecisionHeuristic

	// Observer, if set, is notified of search milestones. It defaults to a
	// no-op so the core has no required dependency on any logging library.
	Observer Observer

	// seenAt/seenGen implement conflict analysis's marked-variable set: an
	// O(1) Clear via a generation counter (seenAt[v] == seenGen means v is
	// currently marked), rather than an O(numVars) memset per conflict. This
	// is analyze's own bookkeeping, not a general-purpose set type, so it
	// lives directly on Solver instead of behind a separate container.
	seenAt  []uint32
	seenGen uint32

	// Search statistics, exported for callers that want to report them.
	TotalConflicts int64
	TotalDecisions int64
}

// Options configures a new Solver.
type Options struct {
	// Decision selects which unassigned variable to branch on next. If nil,
	// FirstUnassigned is used, keeping default search runs deterministic.
	Decision DecisionHeuristic

	// Observer receives structured notifications of search milestones. If
	// nil, notifications are dropped.
	Observer Observer
}

// NewSolver returns an empty Solver configured with the given options.
func NewSolver(opts Options) *Solver {
	decision := opts.Decision
	if decision == nil {
		decision = FirstUnassigned{}
	}
	observer := opts.Observer
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Solver{
		decision: decision,
		Observer: observer,
		// Reserve index 0 in every per-variable slice so the first call to
		// AddVariable hands out ID 1, per spec.md §3.
		assigns: []LBool{Unknown},
		level:   []int{-1},
		reason:  []int{reasonNone},
		seenAt:  []uint32{0},
		// Generation 0 is never current, so a zero seenAt entry (every
		// freshly added variable) reads as unmarked.
		seenGen: 1,
	}
}

// NewDefaultSolver returns a Solver using the default decision heuristic and
// no observer.
func NewDefaultSolver() *Solver {
	return NewSolver(Options{})
}

// NumVariables returns the number of variables declared with AddVariable.
func (s *Solver) NumVariables() int {
	return len(s.level) - 1
}

// NumAssigns returns the number of variables currently assigned.
func (s *Solver) NumAssigns() int {
	return len(s.trail)
}

// NumClauses returns the number of clauses (initial and learnt) in the
// store.
func (s *Solver) NumClauses() int {
	return s.store.Count()
}

// VarValue returns the current value of variable v.
func (s *Solver) VarValue(v int) LBool {
	return s.assigns[v]
}

// LitValue returns the current value of literal l.
func (s *Solver) LitValue(l Literal) LBool {
	return s.literalValue(l)
}

func (s *Solver) literalValue(l Literal) LBool {
	val := s.assigns[l.VarID()]
	if l.IsPositive() {
		return val
	}
	return val.Opposite()
}

// AddVariable declares a new variable and returns its ID.
func (s *Solver) AddVariable() int {
	id := len(s.level)

	s.assigns = append(s.assigns, Unknown)
	s.level = append(s.level, -1)
	s.reason = append(s.reason, reasonNone)
	s.seenAt = append(s.seenAt, 0)

	return id
}

// AddClause adds a problem (non-learnt) clause. It must only be called at
// decision level 0. An empty clause (or one simplified down to empty by
// root-level false literals) is admissible: it is stored and the next
// Propagate call will report it as an immediate conflict, which Solve
// reports as Unsat since it occurs at level 0.
func (s *Solver) AddClause(literals []Literal) error {
	if s.decisionLevel() != 0 {
		return fmt.Errorf("sat: AddClause called at decision level %d, must be 0", s.decisionLevel())
	}
	c, ok := newClause(s, literals, false)
	if ok {
		s.store.Add(c)
	}
	return nil
}

func (s *Solver) decisionLevel() int {
	return len(s.trailLim)
}

// enqueue assigns l to True with the given reason (a clause-store index, or
// reasonNone for a decision) at the current decision level and pushes it
// onto the trail, returning true. Enqueueing a literal whose variable is
// already assigned is a double assignment, an internal invariant violation,
// and panics.
func (s *Solver) enqueue(l Literal, reason int) bool {
	v := l.VarID()
	if s.assigns[v] != Unknown {
		panic(fmt.Sprintf("sat: double assignment of variable %d", v))
	}
	if l.IsPositive() {
		s.assigns[v] = True
	} else {
		s.assigns[v] = False
	}
	s.level[v] = s.decisionLevel()
	s.reason[v] = reason
	s.trail = append(s.trail, l)
	return true
}

// clearSeen resets analyze's marked-variable set in O(1).
func (s *Solver) clearSeen() {
	s.seenGen++
	if s.seenGen == 0 { // overflow, once every 2^32 calls
		s.seenGen = 1
		for i := range s.seenAt {
			s.seenAt[i] = 0
		}
	}
}

// markSeen marks variable v in analyze's current marked-variable set.
func (s *Solver) markSeen(v int) {
	s.seenAt[v] = s.seenGen
}

// isSeen reports whether v is marked in analyze's current marked-variable
// set.
func (s *Solver) isSeen(v int) bool {
	return s.seenAt[v] == s.seenGen
}
