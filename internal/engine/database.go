package engine

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/roach88/critic/internal/persist"
	"github.com/roach88/critic/internal/review"
)

// DatabasePath returns the configured database location.
func (e *Engine) DatabasePath() string {
	return e.dbPath
}

// SaveDatabase overwrites the database with every stored review, in id order.
func (e *Engine) SaveDatabase(ctx context.Context) error {
	all := e.store.AllValues()
	slices.SortFunc(all, func(a, b review.Review) int { return cmp.Compare(a.ID, b.ID) })

	entries := make([]persist.Entry, len(all))
	for i, r := range all {
		entries[i] = persist.EntryOf(r)
	}

	if err := e.codec.Save(ctx, e.dbPath, entries); err != nil {
		return err
	}
	e.log.InfoContext(ctx, "database saved", "path", e.dbPath, "reviews", len(entries))
	return nil
}

// ReloadDatabase replaces the store with the persisted database.
//
// Each review's text is re-read from its source path. Any failure (a corrupt
// line, an unreadable source file, a duplicate id) aborts the reload and
// leaves the store and id sequence exactly as they were.
//
// A missing database is not an error: the store is cleared and the report
// has Found == false.
func (e *Engine) ReloadDatabase(ctx context.Context) (*ReloadReport, error) {
	entries, err := e.codec.Load(ctx, e.dbPath)
	if errors.Is(err, persist.ErrNoDatabase) {
		e.store.Clear()
		e.log.InfoContext(ctx, "no database found", "path", e.dbPath)
		return &ReloadReport{Path: e.dbPath, NextID: e.seq.Peek()}, nil
	}
	if err != nil {
		return nil, err
	}

	reviews := make([]review.Review, 0, len(entries))
	for _, entry := range entries {
		text, err := ReadReviewText(entry.SourcePath)
		if err != nil {
			return nil, fmt.Errorf("reload review %d: %w", entry.ID, &review.FileReadError{Path: entry.SourcePath, Err: err})
		}
		reviews = append(reviews, entry.Review(text))
	}

	if err := e.store.Replace(reviews); err != nil {
		return nil, err
	}
	e.seq.AdvancePast(e.store.MaxID())

	report := &ReloadReport{
		Path:   e.dbPath,
		Found:  true,
		Loaded: len(reviews),
		NextID: e.seq.Peek(),
	}
	e.log.InfoContext(ctx, "database loaded", "path", e.dbPath, "reviews", report.Loaded, "next_id", report.NextID)
	return report, nil
}
