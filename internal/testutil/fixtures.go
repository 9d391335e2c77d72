package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/roach88/critic/internal/lexicon"
)

// Marker words understood by Lexicon.
var (
	PositiveWords = []string{"good", "great", "excellent"}
	NegativeWords = []string{"bad", "awful", "boring"}
)

// Lexicon returns an in-memory lexicon built from PositiveWords and
// NegativeWords.
func Lexicon() *lexicon.Lexicon {
	return lexicon.New(PositiveWords, NegativeWords)
}

// WriteLexicon writes PositiveWords and NegativeWords to word-list files in
// dir and returns their paths.
func WriteLexicon(t testing.TB, dir string) (positive, negative string) {
	t.Helper()
	positive = WriteFile(t, dir, "positive-words.txt", "; positive words\n"+strings.Join(PositiveWords, "\n")+"\n")
	negative = WriteFile(t, dir, "negative-words.txt", "; negative words\n"+strings.Join(NegativeWords, "\n")+"\n")
	return positive, negative
}

// WriteFile writes content to dir/name, creating dir if needed, and returns
// the full path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteReviews writes one review file per text into dir, named
// review_000.txt, review_001.txt, ... and returns their paths in order.
func WriteReviews(t testing.TB, dir string, texts ...string) []string {
	t.Helper()
	paths := make([]string, len(texts))
	for i, text := range texts {
		paths[i] = WriteFile(t, dir, fmt.Sprintf("review_%03d.txt", i), text)
	}
	return paths
}

// RepeatText returns n copies of text, for building large batches.
func RepeatText(text string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = text
	}
	return out
}
