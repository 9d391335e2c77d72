package classifier

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/critic/internal/lexicon"
	"github.com/roach88/critic/internal/review"
)

func testLexicon() *lexicon.Lexicon {
	return lexicon.New([]string{"good", "great"}, []string{"bad", "awful"})
}

func TestClassify_Counts(t *testing.T) {
	lex := testLexicon()

	tests := []struct {
		name string
		text string
		want review.Label
	}{
		{"more positive", "good good bad", review.Positive},
		{"more negative", "bad bad good", review.Negative},
		{"tie", "good bad", review.Unknown},
		{"no markers", "the film was long", review.Unknown},
		{"empty", "", review.Unknown},
		{"case folding", "GOOD Great awful", review.Positive},
		{"punctuation split", "bad,awful...good!", review.Negative},
		{"line break marker", "good<br />good<br />bad", review.Positive},
		{"apostrophe splits", "it's bad", review.Negative},
		{"hyphen splits", "good-bad-bad", review.Negative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text, lex))
		})
	}
}

func TestCompute_OverlappingWordCountsTwice(t *testing.T) {
	lex := lexicon.New([]string{"fine", "good"}, []string{"fine"})

	s := Compute("fine fine good", lex)
	assert.Equal(t, Score{Positive: 3, Negative: 2}, s)
	assert.Equal(t, review.Positive, s.Label())

	s = Compute("fine", lex)
	assert.Equal(t, Score{Positive: 1, Negative: 1}, s)
	assert.Equal(t, review.Unknown, s.Label())
}

func TestTokenize(t *testing.T) {
	toks := Tokenize("A <br />Great\tmovie;  really(GREAT)")
	assert.Equal(t, []string{"a", "great", "movie", "really", "great"}, toks)

	assert.Empty(t, Tokenize("  ...  "))
}

func TestTokenize_NonASCIIPunctuationKept(t *testing.T) {
	// Only ASCII punctuation is a separator; typographic quotes stay attached.
	toks := Tokenize("“good”")
	require.Len(t, toks, 1)
	assert.Equal(t, "“good”", toks[0])
}

func TestIsPunct(t *testing.T) {
	for _, r := range "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~" {
		assert.True(t, isPunct(r), "%q should be punctuation", r)
	}
	for _, r := range "aZ09 \té" {
		assert.False(t, isPunct(r), "%q should not be punctuation", r)
	}
}

func TestClassify_ConcurrentUse(t *testing.T) {
	lex := testLexicon()

	var wg sync.WaitGroup
	results := make([]review.Label, 64)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = Classify("great great awful", lex)
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, review.Positive, got)
	}
}
