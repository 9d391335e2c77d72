package persist

import (
	"context"
	"errors"
	"fmt"

	"github.com/roach88/critic/internal/review"
)

// ErrNoDatabase is returned by Load when the target does not exist.
var ErrNoDatabase = errors.New("no database found")

// Supported codec formats.
const (
	FormatText   = "text"
	FormatSQLite = "sqlite"
)

// ValidFormats lists the accepted values for the database.format setting.
var ValidFormats = []string{FormatText, FormatSQLite}

// Entry is the persisted form of a review.
type Entry struct {
	ID         int
	SourcePath string
	Actual     review.Label
	Predicted  review.Label
}

// EntryOf strips the text from a review.
func EntryOf(r review.Review) Entry {
	return Entry{
		ID:         r.ID,
		SourcePath: r.SourcePath,
		Actual:     r.Actual,
		Predicted:  r.Predicted,
	}
}

// Review rebuilds a review from the entry and freshly read text.
func (e Entry) Review(text string) review.Review {
	return review.Review{
		ID:         e.ID,
		SourcePath: e.SourcePath,
		Text:       text,
		Actual:     e.Actual,
		Predicted:  e.Predicted,
	}
}

// Codec saves and loads store entries.
type Codec interface {
	// Save overwrites path with entries.
	Save(ctx context.Context, path string, entries []Entry) error

	// Load returns every entry stored at path, or ErrNoDatabase.
	Load(ctx context.Context, path string) ([]Entry, error)
}

// New returns the codec for format.
func New(format string) (Codec, error) {
	switch format {
	case FormatText, "":
		return TextCodec{}, nil
	case FormatSQLite:
		return SQLiteCodec{}, nil
	}
	return nil, fmt.Errorf("unknown database format %q: must be one of %v", format, ValidFormats)
}

// checkUniqueIDs reports the first repeated id as a corrupt record.
func checkUniqueIDs(entries []Entry, lines []int, contents []string) error {
	seen := make(map[int]struct{}, len(entries))
	for i, e := range entries {
		if _, dup := seen[e.ID]; dup {
			return &review.CorruptRecordError{Line: lines[i], Content: contents[i], Reason: fmt.Sprintf("duplicate id %d", e.ID)}
		}
		seen[e.ID] = struct{}{}
	}
	return nil
}
