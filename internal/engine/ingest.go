package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/roach88/critic/internal/classifier"
	"github.com/roach88/critic/internal/review"
)

// Load ingests a single review file or every matching file directly inside a
// directory, labelling each review with actual.
//
// A single file without the configured extension is rejected with
// *review.UnsupportedFileTypeError. A single file that cannot be read returns
// *review.FileReadError. For directories, per-file read failures are
// recorded in the report and never abort the batch.
//
// Load blocks until all work has finished. ctx only carries logging context;
// a dispatched batch is not cancellable.
func (e *Engine) Load(ctx context.Context, path string, actual review.Label) (*Report, error) {
	if !actual.Valid() {
		return nil, fmt.Errorf("load %s: invalid label %d", path, int(actual))
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, &review.FileReadError{Path: path, Err: err}
	}

	if info.IsDir() {
		return e.loadDirectory(ctx, path, actual)
	}
	return e.loadFile(ctx, path, actual)
}

func (e *Engine) loadFile(ctx context.Context, path string, actual review.Label) (*Report, error) {
	if !e.matches(path) {
		return nil, &review.UnsupportedFileTypeError{Path: path, Extension: e.ext}
	}

	r, err := e.ingest(path, actual)
	if err != nil {
		return nil, err
	}

	batchID := e.batchIDs.Generate()
	e.log.InfoContext(ctx, "review imported",
		"batch", batchID,
		"id", r.ID,
		"path", path,
		"actual", r.Actual,
		"predicted", r.Predicted,
	)
	return newReport(batchID, path, KindFile, actual, 1, []review.Review{r}, nil), nil
}

func (e *Engine) loadDirectory(ctx context.Context, dir string, actual review.Label) (*Report, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &review.FileReadError{Path: dir, Err: err}
	}

	var files []string
	for _, entry := range entries {
		if e.matches(entry.Name()) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	batchID := e.batchIDs.Generate()
	start := time.Now()
	e.log.InfoContext(ctx, "batch started",
		"batch", batchID,
		"dir", dir,
		"files", len(files),
		"label", actual,
	)

	var (
		mu       sync.Mutex
		imported []review.Review
		failures []FileFailure
	)

	pool := NewPool(e.pool)
	for _, file := range files {
		pool.Submit(func() {
			r, err := e.ingest(file, actual)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, FileFailure{Path: file, Error: err.Error(), Err: err})
				return
			}
			imported = append(imported, r)
		})
	}
	pool.Close()

	for _, f := range failures {
		e.log.WarnContext(ctx, "review skipped", "batch", batchID, "path", f.Path, "error", f.Err)
	}

	report := newReport(batchID, dir, KindDirectory, actual, len(files), imported, failures)
	attrs := []any{
		"batch", batchID,
		"attempted", report.Attempted,
		"imported", report.Imported,
		"failed", len(report.Failures),
		"peak_workers", pool.Peak(),
		"elapsed", time.Since(start),
	}
	if report.Accuracy != nil {
		attrs = append(attrs, "correct", report.Accuracy.Correct, "accuracy", report.Accuracy.Percent)
	}
	e.log.InfoContext(ctx, "batch finished", attrs...)

	return report, nil
}

// ingest runs the per-file flow: read, issue id, classify, insert.
func (e *Engine) ingest(path string, actual review.Label) (review.Review, error) {
	text, err := ReadReviewText(path)
	if err != nil {
		return review.Review{}, &review.FileReadError{Path: path, Err: err}
	}

	r := review.Review{
		ID:         e.seq.Next(),
		SourcePath: path,
		Text:       text,
		Actual:     actual,
		Predicted:  classifier.Classify(text, e.lexicon),
	}

	if err := e.store.Insert(r); err != nil {
		// Ids come from the sequence, so this means the sequence and store
		// disagree.
		e.log.Error("review id invariant violated", "id", r.ID, "path", path, "error", err)
		return review.Review{}, err
	}
	return r, nil
}

func (e *Engine) matches(name string) bool {
	return strings.HasSuffix(name, e.ext)
}
