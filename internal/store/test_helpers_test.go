package store

import (
	"fmt"
	"testing"

	"github.com/roach88/critic/internal/review"
)

// createTestReview creates a review with minimal required fields.
func createTestReview(id int, text string) review.Review {
	return review.Review{
		ID:         id,
		SourcePath: fmt.Sprintf("reviews/%d.txt", id),
		Text:       text,
		Actual:     review.Negative,
		Predicted:  review.Unknown,
	}
}

// createFilledStore creates a store holding the given texts under ids 1..n.
func createFilledStore(t *testing.T, texts ...string) *Store {
	t.Helper()
	s := New()
	for i, text := range texts {
		if err := s.Insert(createTestReview(i+1, text)); err != nil {
			t.Fatalf("Insert(%d) failed: %v", i+1, err)
		}
	}
	return s
}

func ids(reviews []review.Review) []int {
	out := make([]int, len(reviews))
	for i, r := range reviews {
		out[i] = r.ID
	}
	return out
}
