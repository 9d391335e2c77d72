package engine

import "sync/atomic"

// Sequence issues review ids.
//
// Ids start at 1 and strictly increase. An id is never issued twice during
// the life of a Sequence, even after the review holding it is deleted.
//
// Thread-safety: Sequence is safe for concurrent use (atomic operations).
type Sequence struct {
	last atomic.Int64 // last issued id, 0 before the first call to Next
}

// NewSequence creates a sequence whose first id is 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next issues the next id.
// Calls are linearizable - each call returns a unique, increasing value.
func (s *Sequence) Next() int {
	return int(s.last.Add(1))
}

// Peek returns the id the next call to Next will issue.
func (s *Sequence) Peek() int {
	return int(s.last.Load()) + 1
}

// AdvancePast guarantees that every later id is greater than id.
// It never moves the sequence backwards.
func (s *Sequence) AdvancePast(id int) {
	for {
		cur := s.last.Load()
		if int64(id) <= cur {
			return
		}
		if s.last.CompareAndSwap(cur, int64(id)) {
			return
		}
	}
}
