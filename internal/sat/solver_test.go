package sat

import "testing"

func TestSeenSetMarkAndClear(t *testing.T) {
	s := NewDefaultSolver()
	for i := 0; i < 4; i++ {
		s.AddVariable()
	}

	for v := 1; v <= 4; v++ {
		if s.isSeen(v) {
			t.Errorf("isSeen(%d) = true before any markSeen, want false", v)
		}
	}

	s.markSeen(2)
	s.markSeen(3)
	if !s.isSeen(2) || !s.isSeen(3) {
		t.Errorf("isSeen(2)=%v isSeen(3)=%v, want both true after markSeen", s.isSeen(2), s.isSeen(3))
	}
	if s.isSeen(1) || s.isSeen(4) {
		t.Errorf("isSeen(1)=%v isSeen(4)=%v, want both false (never marked)", s.isSeen(1), s.isSeen(4))
	}

	s.clearSeen()
	for v := 1; v <= 4; v++ {
		if s.isSeen(v) {
			t.Errorf("isSeen(%d) = true after clearSeen, want false", v)
		}
	}

	// A variable marked before a clearSeen must not resurface as seen once
	// marked again under the new generation only if it actually is remarked;
	// an unmarked variable from a prior generation must stay unseen.
	s.markSeen(2)
	if !s.isSeen(2) {
		t.Errorf("isSeen(2) = false after remarking in the new generation, want true")
	}
	if s.isSeen(3) {
		t.Errorf("isSeen(3) = true, want false (marked only in the cleared generation)")
	}
}

func TestSeenSetGrowsWithVariables(t *testing.T) {
	s := NewDefaultSolver()
	s.AddVariable()
	s.markSeen(1)

	v2 := s.AddVariable()
	if s.isSeen(v2) {
		t.Errorf("isSeen(%d) = true for a freshly added variable, want false", v2)
	}
	if !s.isSeen(1) {
		t.Errorf("isSeen(1) = false after AddVariable grew seenAt, want true (existing marks must survive growth)")
	}
}
