package sat

import "testing"

func TestNewClauseTautology(t *testing.T) {
	s := NewDefaultSolver()
	s.AddVariable()
	s.AddVariable()

	_, ok := newClause(s, []Literal{PositiveLiteral(1), NegativeLiteral(1)}, false)
	if ok {
		t.Errorf("newClause with x and !x: ok = true, want false (tautology)")
	}
}

func TestNewClauseDedup(t *testing.T) {
	s := NewDefaultSolver()
	s.AddVariable()

	c, ok := newClause(s, []Literal{PositiveLiteral(1), PositiveLiteral(1)}, false)
	if !ok {
		t.Fatalf("newClause with duplicate literal: ok = false, want true")
	}
	if len(c.literals) != 1 {
		t.Errorf("len(c.literals) = %d, want 1 after dedup", len(c.literals))
	}
}

func TestNewClauseAlreadySatisfiedAtRoot(t *testing.T) {
	s := NewDefaultSolver()
	s.AddVariable()
	s.enqueue(PositiveLiteral(1), reasonNone)

	_, ok := newClause(s, []Literal{PositiveLiteral(1), PositiveLiteral(1)}, false)
	if ok {
		t.Errorf("newClause already satisfied at root: ok = true, want false")
	}
}

// A root-level clause that reduces to a single literal must still be stored
// as an ordinary clause and left for Propagate to assign with a real
// clause-store reason — it must never be special-cased into a bare
// enqueue with no reason, since that would make its variable look as if it
// had been a decision.
func TestUnitClauseGetsAPropagatedReasonNotADecision(t *testing.T) {
	s := cnf(t, 1, []int{1})

	conflict := s.Propagate()
	if conflict != nil {
		t.Fatalf("Propagate() = %v, want nil", conflict)
	}
	if got := s.VarValue(1); got != True {
		t.Fatalf("VarValue(1) = %v, want True", got)
	}
	if s.reason[1] == reasonNone {
		t.Errorf("reason[1] = reasonNone, want a clause-store index (unit clause is the reason, not a decision)")
	}
}

func TestClauseClassify(t *testing.T) {
	s := NewDefaultSolver()
	for i := 0; i < 3; i++ {
		s.AddVariable()
	}
	c := &Clause{literals: []Literal{PositiveLiteral(1), PositiveLiteral(2), PositiveLiteral(3)}}

	unassigned, _, satisfied := c.classify(s)
	if satisfied || unassigned != 3 {
		t.Errorf("classify on all-unassigned = (%d, _, %v), want (3, _, false)", unassigned, satisfied)
	}

	s.enqueue(PositiveLiteral(1), reasonNone)
	unassigned, _, satisfied = c.classify(s)
	if !satisfied {
		t.Errorf("classify with a true literal present: satisfied = false, want true")
	}

	s2 := NewDefaultSolver()
	for i := 0; i < 3; i++ {
		s2.AddVariable()
	}
	c2 := &Clause{literals: []Literal{PositiveLiteral(1), PositiveLiteral(2), PositiveLiteral(3)}}
	s2.enqueue(NegativeLiteral(1), reasonNone)
	s2.enqueue(NegativeLiteral(2), reasonNone)
	unassigned, unit, satisfied := c2.classify(s2)
	if satisfied || unassigned != 1 || unit != PositiveLiteral(3) {
		t.Errorf("classify with one literal left = (%d, %v, %v), want (1, %v, false)", unassigned, unit, satisfied, PositiveLiteral(3))
	}
}

func TestClauseString(t *testing.T) {
	c := &Clause{literals: []Literal{PositiveLiteral(1), NegativeLiteral(2)}}
	if got, want := c.String(), "Clause[1 !2]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := (&Clause{}).String(), "Clause[]"; got != want {
		t.Errorf("empty Clause.String() = %q, want %q", got, want)
	}
}
