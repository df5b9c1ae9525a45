package sat

// ClauseStore owns every clause in the problem — initial and learnt alike —
// behind a single, append-only, monotonically-indexed sequence. Initial and
// learnt clauses share one index space and one insertion order: the
// propagator's full-scan sweep (see propagate.go) depends on iterating the
// store in exactly that order for its result to be reproducible.
type ClauseStore struct {
	clauses []*Clause
}

// Add appends c to the store and returns its stable index.
func (cs *ClauseStore) Add(c *Clause) int {
	cs.clauses = append(cs.clauses, c)
	return len(cs.clauses) - 1
}

// Get returns the clause at the given index.
func (cs *ClauseStore) Get(index int) *Clause {
	return cs.clauses[index]
}

// Count returns the number of clauses currently in the store.
func (cs *ClauseStore) Count() int {
	return len(cs.clauses)
}
