package engine

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/roach88/critic/internal/classifier"
)

// ReadReviewText reads a review file and normalizes it the way every stored
// review text is normalized:
//   - the file must be valid UTF-8
//   - lines are concatenated with their separators dropped (not replaced by
//     spaces), so "end of\nline" reads as "end ofline"
//   - every "<br />" marker becomes a single space
//
// Reload relies on this being deterministic: the persisted database keeps
// only the source path and the text is re-derived from it.
func ReadReviewText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	if _, _, err := transform.Bytes(encoding.UTF8Validator, data); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}

	text := string(data)
	text = strings.ReplaceAll(text, "\r\n", "")
	text = strings.ReplaceAll(text, "\n", "")
	text = strings.ReplaceAll(text, "\r", "")
	return strings.ReplaceAll(text, classifier.LineBreakMarker, " "), nil
}
