package store

import (
	"strings"
	"sync"

	"github.com/roach88/critic/internal/review"
)

// Store is a concurrency-safe mapping from review id to Review.
type Store struct {
	mu      sync.RWMutex
	reviews map[int]review.Review
	order   []int // insertion order of live ids
}

// New creates an empty store.
func New() *Store {
	return &Store{
		reviews: make(map[int]review.Review),
	}
}

// Insert adds r under r.ID. Returns *review.DuplicateIDError if the id is
// already present; the store is unchanged in that case.
func (s *Store) Insert(r review.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.reviews[r.ID]; exists {
		return &review.DuplicateIDError{ID: r.ID}
	}
	s.reviews[r.ID] = r
	s.order = append(s.order, r.ID)
	return nil
}

// Get returns the review with the given id, or an error wrapping
// review.ErrNotFound.
func (s *Store) Get(id int) (review.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reviews[id]
	if !ok {
		return review.Review{}, review.NotFound(id)
	}
	return r, nil
}

// Delete removes the review with the given id. Deleting an absent id
// returns an error wrapping review.ErrNotFound and changes nothing.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[id]; !ok {
		return review.NotFound(id)
	}
	delete(s.reviews, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// SearchBySubstring returns every review whose text contains needle
// (case-sensitive). The empty needle matches every review. The result is
// never nil.
func (s *Store) SearchBySubstring(needle string) []review.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]review.Review, 0)
	for _, id := range s.order {
		r := s.reviews[id]
		if strings.Contains(r.Text, needle) {
			matches = append(matches, r)
		}
	}
	return matches
}

// Size returns the number of stored reviews.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reviews)
}

// AllValues returns a snapshot of every stored review in insertion order.
func (s *Store) AllValues() []review.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]review.Review, 0, len(s.reviews))
	for _, id := range s.order {
		all = append(all, s.reviews[id])
	}
	return all
}

// MaxID returns the largest stored id, or 0 when the store is empty.
func (s *Store) MaxID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	maxID := 0
	for id := range s.reviews {
		if id > maxID {
			maxID = id
		}
	}
	return maxID
}

// Replace swaps the entire contents of the store for reviews, keeping their
// order. If two reviews share an id, Replace returns *review.DuplicateIDError
// and the store keeps its previous contents.
func (s *Store) Replace(reviews []review.Review) error {
	next := make(map[int]review.Review, len(reviews))
	order := make([]int, 0, len(reviews))
	for _, r := range reviews {
		if _, exists := next[r.ID]; exists {
			return &review.DuplicateIDError{ID: r.ID}
		}
		next[r.ID] = r
		order = append(order, r.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = next
	s.order = order
	return nil
}

// Clear removes every review.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = make(map[int]review.Review)
	s.order = nil
}
