package engine

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/critic/internal/review"
	"github.com/roach88/critic/internal/testutil"
)

func TestUUIDv7Generator_ValidFormat(t *testing.T) {
	id := UUIDv7Generator{}.Generate()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id)
}

func TestUUIDv7Generator_Concurrent(t *testing.T) {
	gen := UUIDv7Generator{}
	const goroutines = 100

	ids := make(chan string, goroutines)
	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- gen.Generate()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		require.False(t, seen[id], "duplicate batch id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, goroutines)
}

func TestFixedGenerator_Sequential(t *testing.T) {
	gen := NewFixedGenerator("a", "b")
	assert.Equal(t, "a", gen.Generate())
	assert.Equal(t, "b", gen.Generate())
	assert.Panics(t, func() { gen.Generate() })
}

func TestLoad_StampsEachBatch(t *testing.T) {
	eng := createTestEngine(t, func(o *Options) {
		o.BatchIDs = NewFixedGenerator("batch-1", "batch-2")
	})
	dir := t.TempDir()
	testutil.WriteReviews(t, dir, "good")
	ctx := context.Background()

	first, err := eng.Load(ctx, dir, review.Positive)
	require.NoError(t, err)
	second, err := eng.Load(ctx, dir, review.Positive)
	require.NoError(t, err)

	assert.Equal(t, "batch-1", first.BatchID)
	assert.Equal(t, "batch-2", second.BatchID)
	assert.Equal(t, 2, eng.Size(), "reloading the same files creates new reviews")
}
