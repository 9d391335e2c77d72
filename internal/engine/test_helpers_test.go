package engine

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/roach88/critic/internal/logging"
	"github.com/roach88/critic/internal/review"
	"github.com/roach88/critic/internal/testutil"
)

// createTestEngine creates an engine over testutil.Lexicon with its database
// in a temp dir. mutate may adjust the options before construction.
func createTestEngine(t *testing.T, mutate ...func(*Options)) *Engine {
	t.Helper()
	opts := Options{
		DatabasePath: filepath.Join(t.TempDir(), "database.txt"),
		BatchIDs:     testutil.NewFixedBatchGenerator("test-batch"),
		Logger:       logging.Discard(),
		Pool: PoolConfig{
			MinWorkers:  4,
			MaxWorkers:  8,
			QueueSize:   16,
			IdleTimeout: time.Second,
		},
	}
	for _, m := range mutate {
		m(&opts)
	}
	return New(testutil.Lexicon(), opts)
}

func reviewIDs(reviews []review.Review) []int {
	out := make([]int, len(reviews))
	for i, r := range reviews {
		out[i] = r.ID
	}
	return out
}
