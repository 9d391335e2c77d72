package engine

import (
	"log/slog"

	"github.com/roach88/critic/internal/classifier"
	"github.com/roach88/critic/internal/lexicon"
	"github.com/roach88/critic/internal/persist"
	"github.com/roach88/critic/internal/review"
	"github.com/roach88/critic/internal/store"
)

// DefaultExtension is the suffix a file must carry to be ingested.
const DefaultExtension = ".txt"

// Options configures an Engine. Zero fields fall back to defaults.
type Options struct {
	// Extension is the required review file suffix (case-sensitive).
	Extension string

	// Pool sizes the directory ingestion worker pool.
	Pool PoolConfig

	// DatabasePath is where SaveDatabase and ReloadDatabase operate.
	DatabasePath string

	// Codec serializes the store. Defaults to persist.TextCodec.
	Codec persist.Codec

	// BatchIDs stamps ingestion reports. Defaults to UUIDv7Generator.
	BatchIDs BatchIDGenerator

	Logger *slog.Logger
}

// Engine is the ingestion and classification engine.
type Engine struct {
	lexicon *lexicon.Lexicon
	store   *store.Store
	seq     *Sequence

	ext      string
	pool     PoolConfig
	dbPath   string
	codec    persist.Codec
	batchIDs BatchIDGenerator
	log      *slog.Logger
}

// New creates an engine with an empty store around lex.
func New(lex *lexicon.Lexicon, opts Options) *Engine {
	e := &Engine{
		lexicon:  lex,
		store:    store.New(),
		seq:      NewSequence(),
		ext:      opts.Extension,
		pool:     opts.Pool,
		dbPath:   opts.DatabasePath,
		codec:    opts.Codec,
		batchIDs: opts.BatchIDs,
		log:      opts.Logger,
	}
	if e.ext == "" {
		e.ext = DefaultExtension
	}
	if e.pool == (PoolConfig{}) {
		e.pool = DefaultPoolConfig()
	}
	if e.dbPath == "" {
		e.dbPath = "database.txt"
	}
	if e.codec == nil {
		e.codec = persist.TextCodec{}
	}
	if e.batchIDs == nil {
		e.batchIDs = UUIDv7Generator{}
	}
	if e.log == nil {
		e.log = slog.Default()
	}
	return e
}

// DeleteByID removes a review. The id is not recycled.
func (e *Engine) DeleteByID(id int) error {
	if err := e.store.Delete(id); err != nil {
		return err
	}
	e.log.Debug("review deleted", "id", id)
	return nil
}

// SearchByID returns the review with the given id, or an error wrapping
// review.ErrNotFound.
func (e *Engine) SearchByID(id int) (review.Review, error) {
	return e.store.Get(id)
}

// SearchBySubstring returns every review whose text contains needle,
// case-sensitively. An empty needle returns every review.
func (e *Engine) SearchBySubstring(needle string) []review.Review {
	return e.store.SearchBySubstring(needle)
}

// Size returns the number of stored reviews.
func (e *Engine) Size() int {
	return e.store.Size()
}

// AllValues returns every stored review in insertion order.
func (e *Engine) AllValues() []review.Review {
	return e.store.AllValues()
}

// NextID returns the id the next successfully read review will receive.
func (e *Engine) NextID() int {
	return e.seq.Peek()
}

// Classify scores arbitrary text without storing anything.
func (e *Engine) Classify(text string) (review.Label, classifier.Score) {
	s := classifier.Compute(text, e.lexicon)
	return s.Label(), s
}

// Stats summarizes the store.
type Stats struct {
	Size          int            `json:"size"`
	NextID        int            `json:"next_id"`
	Actual        map[string]int `json:"actual"`
	Predicted     map[string]int `json:"predicted"`
	Correct       int            `json:"correct"`
	Misclassified int            `json:"misclassified"`
}

// Stats counts stored reviews by label and verdict.
func (e *Engine) Stats() Stats {
	all := e.store.AllValues()
	st := Stats{
		Size:      len(all),
		NextID:    e.seq.Peek(),
		Actual:    make(map[string]int, 3),
		Predicted: make(map[string]int, 3),
	}
	for _, r := range all {
		st.Actual[r.Actual.String()]++
		st.Predicted[r.Predicted.String()]++
		switch r.Verdict() {
		case review.VerdictCorrect:
			st.Correct++
		case review.VerdictMisclassified:
			st.Misclassified++
		}
	}
	return st
}
