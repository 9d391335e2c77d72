package engine

import (
	"cmp"
	"slices"

	"github.com/roach88/critic/internal/review"
)

// Kind tells whether a Load targeted one file or a directory.
type Kind string

const (
	KindFile      Kind = "file"
	KindDirectory Kind = "directory"
)

// Report summarizes one Load call.
type Report struct {
	BatchID string       `json:"batch_id"`
	Path    string       `json:"path"`
	Kind    Kind         `json:"kind"`
	Label   review.Label `json:"label"`

	// Attempted counts matching files, including ones that failed to read.
	Attempted int `json:"attempted"`

	// Imported counts reviews inserted into the store.
	Imported int `json:"imported"`

	// Reviews holds the imported reviews ordered by id.
	Reviews []review.Review `json:"reviews"`

	// Failures lists the files that could not be imported.
	Failures []FileFailure `json:"failures,omitempty"`

	// Accuracy is nil when the actual label is Unknown.
	Accuracy *Accuracy `json:"accuracy,omitempty"`
}

// FileFailure records one file that could not be imported.
type FileFailure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
	Err   error  `json:"-"`
}

// Accuracy compares predictions with the operator-supplied label.
//
// Correct + Misclassified + len(Failures) == Attempted.
type Accuracy struct {
	Correct       int     `json:"correct"`
	Misclassified int     `json:"misclassified"`
	Percent       float64 `json:"percent"` // Correct / Attempted * 100
}

// newReport assembles a report from the raw outcome of a load.
func newReport(batchID, path string, kind Kind, label review.Label, attempted int, imported []review.Review, failures []FileFailure) *Report {
	slices.SortFunc(imported, func(a, b review.Review) int { return cmp.Compare(a.ID, b.ID) })
	slices.SortFunc(failures, func(a, b FileFailure) int { return cmp.Compare(a.Path, b.Path) })

	if imported == nil {
		imported = []review.Review{}
	}

	r := &Report{
		BatchID:   batchID,
		Path:      path,
		Kind:      kind,
		Label:     label,
		Attempted: attempted,
		Imported:  len(imported),
		Reviews:   imported,
		Failures:  failures,
	}

	if label != review.Unknown {
		acc := &Accuracy{}
		for _, rv := range imported {
			switch rv.Verdict() {
			case review.VerdictCorrect:
				acc.Correct++
			case review.VerdictMisclassified:
				acc.Misclassified++
			}
		}
		if attempted > 0 {
			acc.Percent = float64(acc.Correct) / float64(attempted) * 100
		}
		r.Accuracy = acc
	}
	return r
}

// ReloadReport summarizes a ReloadDatabase call.
type ReloadReport struct {
	Path   string `json:"path"`
	Found  bool   `json:"found"`
	Loaded int    `json:"loaded"`
	NextID int    `json:"next_id"`
}
