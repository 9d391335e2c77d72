// Package lexicon loads the positive and negative word lists used to score
// reviews.
//
// A Lexicon is built once at startup and never mutated afterwards, so any
// number of classification workers may read it without locking.
package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/critic/internal/review"
)

// Lexicon holds the two marker-word sets. A word may appear in both.
type Lexicon struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

// New builds a Lexicon from in-memory word lists. Words are normalized with
// Normalize; blank entries are ignored.
func New(positive, negative []string) *Lexicon {
	return &Lexicon{
		positive: toSet(positive),
		negative: toSet(negative),
	}
}

// Load reads the positive and negative word lists from disk. Any failure is
// returned as a *review.ConfigError because the engine cannot start without
// both lists.
func Load(positivePath, negativePath string) (*Lexicon, error) {
	pos, err := readWordFile(positivePath)
	if err != nil {
		return nil, &review.ConfigError{Key: "lexicon.positive", Path: positivePath, Err: err}
	}
	neg, err := readWordFile(negativePath)
	if err != nil {
		return nil, &review.ConfigError{Key: "lexicon.negative", Path: negativePath, Err: err}
	}
	return &Lexicon{positive: pos, negative: neg}, nil
}

// IsPositive reports whether token is a positive marker word.
// The token must already be normalized.
func (l *Lexicon) IsPositive(token string) bool {
	_, ok := l.positive[token]
	return ok
}

// IsNegative reports whether token is a negative marker word.
// The token must already be normalized.
func (l *Lexicon) IsNegative(token string) bool {
	_, ok := l.negative[token]
	return ok
}

// Sizes returns the number of positive and negative words.
func (l *Lexicon) Sizes() (positive, negative int) {
	return len(l.positive), len(l.negative)
}

// Normalize lower-cases a word and puts it in Unicode NFC form so that
// composed and decomposed spellings compare equal.
func Normalize(word string) string {
	return norm.NFC.String(strings.ToLower(word))
}

// Parse reads one word per line. Blank lines and lines starting with ';'
// (the comment marker used by the common opinion-lexicon distributions)
// are skipped.
func Parse(r io.Reader) (map[string]struct{}, error) {
	set := make(map[string]struct{})
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		set[Normalize(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan word list: %w", err)
	}
	return set, nil
}

func readWordFile(path string) (map[string]struct{}, error) {
	if path == "" {
		return nil, errors.New("word list path not set")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	set, err := Parse(f)
	if err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return nil, errors.New("word list is empty")
	}
	return set, nil
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		set[Normalize(w)] = struct{}{}
	}
	return set
}
