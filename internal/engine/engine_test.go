package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/critic/internal/persist"
	"github.com/roach88/critic/internal/review"
	"github.com/roach88/critic/internal/testutil"
)

func TestNew_Defaults(t *testing.T) {
	eng := New(testutil.Lexicon(), Options{})

	assert.Equal(t, DefaultExtension, eng.ext)
	assert.Equal(t, DefaultPoolConfig(), eng.pool)
	assert.Equal(t, "database.txt", eng.DatabasePath())
	assert.Equal(t, persist.TextCodec{}, eng.codec)
	assert.Equal(t, 0, eng.Size())
	assert.Equal(t, 1, eng.NextID())
}

func TestEngine_SearchByID(t *testing.T) {
	eng := createTestEngine(t)
	path := testutil.WriteFile(t, t.TempDir(), "a.txt", "great")
	_, err := eng.Load(context.Background(), path, review.Positive)
	require.NoError(t, err)

	r, err := eng.SearchByID(1)
	require.NoError(t, err)
	assert.Equal(t, "great", r.Text)

	_, err = eng.SearchByID(2)
	assert.True(t, review.IsNotFound(err))
}

func TestEngine_DeleteByID(t *testing.T) {
	eng := createTestEngine(t)
	dir := t.TempDir()
	testutil.WriteReviews(t, dir, "good", "bad", "boring")
	_, err := eng.Load(context.Background(), dir, review.Unknown)
	require.NoError(t, err)

	require.NoError(t, eng.DeleteByID(2))
	assert.Equal(t, 2, eng.Size())

	_, err = eng.SearchByID(2)
	assert.True(t, review.IsNotFound(err))

	err = eng.DeleteByID(2)
	assert.True(t, review.IsNotFound(err), "second delete reports not found")
	assert.True(t, review.IsNotFound(eng.DeleteByID(99)))
	assert.Equal(t, 4, eng.NextID())
}

func TestEngine_SearchBySubstring(t *testing.T) {
	eng := createTestEngine(t)
	dir := t.TempDir()
	testutil.WriteReviews(t, dir, "The plot was good", "the plot was bad", "No story at all")
	_, err := eng.Load(context.Background(), dir, review.Unknown)
	require.NoError(t, err)

	got := eng.SearchBySubstring("plot")
	assert.Len(t, got, 2)

	got = eng.SearchBySubstring("The plot")
	require.Len(t, got, 1, "matching is case-sensitive")
	assert.Equal(t, "The plot was good", got[0].Text)

	got = eng.SearchBySubstring("missing")
	assert.NotNil(t, got)
	assert.Empty(t, got)

	assert.Len(t, eng.SearchBySubstring(""), 3)
}

func TestEngine_Classify(t *testing.T) {
	eng := createTestEngine(t)

	label, score := eng.Classify("Good, great... but BORING.")
	assert.Equal(t, review.Positive, label)
	assert.Equal(t, 2, score.Positive)
	assert.Equal(t, 1, score.Negative)

	label, _ = eng.Classify("good bad")
	assert.Equal(t, review.Unknown, label)

	label, _ = eng.Classify("")
	assert.Equal(t, review.Unknown, label)
	assert.Equal(t, 0, eng.Size(), "classify does not store")
	assert.Equal(t, 1, eng.NextID())
}

func TestEngine_Stats(t *testing.T) {
	eng := createTestEngine(t)
	root := t.TempDir()
	ctx := context.Background()

	_, err := eng.Load(ctx, testutil.WriteFile(t, root, "n1.txt", "bad"), review.Negative)
	require.NoError(t, err)
	_, err = eng.Load(ctx, testutil.WriteFile(t, root, "n2.txt", "good"), review.Negative)
	require.NoError(t, err)
	_, err = eng.Load(ctx, testutil.WriteFile(t, root, "u1.txt", "nothing"), review.Unknown)
	require.NoError(t, err)

	st := eng.Stats()
	assert.Equal(t, 3, st.Size)
	assert.Equal(t, 4, st.NextID)
	assert.Equal(t, map[string]int{"NEGATIVE": 2, "UNKNOWN": 1}, st.Actual)
	assert.Equal(t, map[string]int{"NEGATIVE": 1, "POSITIVE": 1, "UNKNOWN": 1}, st.Predicted)
	assert.Equal(t, 1, st.Correct)
	assert.Equal(t, 1, st.Misclassified)
}
