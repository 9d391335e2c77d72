package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence_StartsAtOne(t *testing.T) {
	s := NewSequence()
	assert.Equal(t, 1, s.Peek())
	assert.Equal(t, 1, s.Next())
	assert.Equal(t, 2, s.Next())
	assert.Equal(t, 3, s.Peek())
}

func TestSequence_AdvancePast(t *testing.T) {
	s := NewSequence()
	s.AdvancePast(41)
	assert.Equal(t, 42, s.Next())

	// Never moves backwards.
	s.AdvancePast(10)
	assert.Equal(t, 43, s.Next())

	// Advancing to the current position is a no-op.
	s.AdvancePast(43)
	assert.Equal(t, 44, s.Peek())
}

func TestSequence_ConcurrentUnique(t *testing.T) {
	s := NewSequence()
	const goroutines, perGoroutine = 50, 200

	var (
		mu   sync.Mutex
		seen = make(map[int]bool, goroutines*perGoroutine)
		wg   sync.WaitGroup
	)
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]int, 0, perGoroutine)
			for range perGoroutine {
				local = append(local, s.Next())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range local {
				require.False(t, seen[id], "id %d issued twice", id)
				seen[id] = true
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, goroutines*perGoroutine)
	for id := 1; id <= goroutines*perGoroutine; id++ {
		assert.True(t, seen[id], "gap at id %d", id)
	}
}

func TestFixedGenerator(t *testing.T) {
	gen := NewFixedGenerator("b-1", "b-2")
	assert.Equal(t, "b-1", gen.Generate())
	assert.Equal(t, "b-2", gen.Generate())
	assert.Panics(t, func() { gen.Generate() })
}

func TestUUIDv7Generator(t *testing.T) {
	gen := UUIDv7Generator{}
	a, b := gen.Generate(), gen.Generate()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
	assert.LessOrEqual(t, a, b, "UUIDv7 ids sort by creation time")
}
