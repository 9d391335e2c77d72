// Package classifier scores review text against a lexicon.
//
// Classification is a pure function of the text and the lexicon: no state,
// no I/O, safe to call from any number of goroutines.
package classifier

import (
	"strings"

	"github.com/roach88/critic/internal/lexicon"
	"github.com/roach88/critic/internal/review"
)

// LineBreakMarker is the HTML line break embedded in the review corpus.
const LineBreakMarker = "<br />"

// Score holds the marker-word counts for one text.
type Score struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
}

// Label converts the counts into a verdict. Ties, including 0-0, are Unknown.
func (s Score) Label() review.Label {
	switch {
	case s.Positive > s.Negative:
		return review.Positive
	case s.Negative > s.Positive:
		return review.Negative
	default:
		return review.Unknown
	}
}

// Classify returns the predicted polarity of text.
func Classify(text string, lex *lexicon.Lexicon) review.Label {
	return Compute(text, lex).Label()
}

// Compute counts positive and negative marker words in text. A token found
// in both word lists counts toward both totals.
func Compute(text string, lex *lexicon.Lexicon) Score {
	var s Score
	for _, tok := range Tokenize(text) {
		if lex.IsPositive(tok) {
			s.Positive++
		}
		if lex.IsNegative(tok) {
			s.Negative++
		}
	}
	return s
}

// Tokenize normalizes text and splits it into lexicon-comparable tokens:
// line break markers and ASCII punctuation become spaces, the text is
// lower-cased and NFC-normalized, then split on whitespace runs.
func Tokenize(text string) []string {
	text = strings.ReplaceAll(text, LineBreakMarker, " ")
	text = strings.Map(func(r rune) rune {
		if isPunct(r) {
			return ' '
		}
		return r
	}, text)
	return strings.Fields(lexicon.Normalize(text))
}

// isPunct matches the POSIX [:punct:] class: !"#$%&'()*+,-./:;<=>?@[\]^_`{|}~
func isPunct(r rune) bool {
	return (r >= '!' && r <= '/') ||
		(r >= ':' && r <= '@') ||
		(r >= '[' && r <= '`') ||
		(r >= '{' && r <= '~')
}
