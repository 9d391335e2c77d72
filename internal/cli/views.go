package cli

import (
	"fmt"
	"strings"

	"github.com/roach88/critic/internal/classifier"
	"github.com/roach88/critic/internal/engine"
	"github.com/roach88/critic/internal/review"
)

// Views wrap engine results for OutputFormatter.Success: JSON encodes the
// underlying value, text mode prints String().

var allLabels = []review.Label{review.Negative, review.Positive, review.Unknown}

type loadView engine.Report

func (v *loadView) String() string {
	var b strings.Builder
	if v.Kind == engine.KindFile && len(v.Reviews) == 1 {
		r := v.Reviews[0]
		fmt.Fprintf(&b, "Imported review #%d from %s (batch %s)\n", r.ID, r.SourcePath, v.BatchID)
		fmt.Fprintf(&b, "  actual %s, predicted %s: %s", r.Actual, r.Predicted, r.Verdict())
	} else {
		fmt.Fprintf(&b, "Imported %d of %d review(s) from %s (batch %s)", v.Imported, v.Attempted, v.Path, v.BatchID)
	}

	if len(v.Failures) > 0 {
		fmt.Fprintf(&b, "\nFailed (%d):", len(v.Failures))
		for _, f := range v.Failures {
			fmt.Fprintf(&b, "\n  %s: %s", f.Path, f.Error)
		}
	}
	if v.Accuracy != nil {
		fmt.Fprintf(&b, "\nAccuracy: %d/%d correct (%.2f%%), %d misclassified",
			v.Accuracy.Correct, v.Attempted, v.Accuracy.Percent, v.Accuracy.Misclassified)
	}
	return b.String()
}

type reviewView review.Review

func (v reviewView) String() string {
	r := review.Review(v)
	return fmt.Sprintf("#%d [%s -> %s, %s] %s\n%s", r.ID, r.Actual, r.Predicted, r.Verdict(), r.SourcePath, r.Text)
}

type reviewListView []review.Review

func (v reviewListView) String() string {
	if len(v) == 0 {
		return "No reviews"
	}
	var b strings.Builder
	for _, r := range v {
		fmt.Fprintf(&b, "#%-6d %-8s -> %-8s %s\n", r.ID, r.Actual, r.Predicted, r.SourcePath)
	}
	fmt.Fprintf(&b, "%d review(s)", len(v))
	return b.String()
}

type deleteView struct {
	ID        int `json:"id"`
	Remaining int `json:"remaining"`
}

func (v deleteView) String() string {
	return fmt.Sprintf("Deleted review #%d (%d remaining)", v.ID, v.Remaining)
}

type classifyView struct {
	Text  string           `json:"text"`
	Label review.Label     `json:"label"`
	Score classifier.Score `json:"score"`
}

func (v classifyView) String() string {
	return fmt.Sprintf("%s (positive %d, negative %d)", v.Label, v.Score.Positive, v.Score.Negative)
}

type statsView struct {
	Database string `json:"database"`
	Format   string `json:"format"`
	engine.Stats
}

func (v statsView) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Database:  %s (%s)\n", v.Database, v.Format)
	fmt.Fprintf(&b, "Reviews:   %d (next id %d)\n", v.Size, v.NextID)
	fmt.Fprintf(&b, "Actual:    %s\n", distribution(v.Actual))
	fmt.Fprintf(&b, "Predicted: %s\n", distribution(v.Predicted))
	fmt.Fprintf(&b, "Verdicts:  %d correct, %d misclassified", v.Correct, v.Misclassified)
	return b.String()
}

func distribution(counts map[string]int) string {
	parts := make([]string, len(allLabels))
	for i, l := range allLabels {
		parts[i] = fmt.Sprintf("%s %d", l, counts[l.String()])
	}
	return strings.Join(parts, ", ")
}
