package review

// Review is a single classified text record.
//
// ID, SourcePath, Text and Actual are fixed when the source file is read.
// Predicted is assigned once by the classifier before the review is
// inserted into a store; after insertion no field changes.
type Review struct {
	ID         int    `json:"id"`
	SourcePath string `json:"source_path"`
	Text       string `json:"text"`
	Actual     Label  `json:"actual"`
	Predicted  Label  `json:"predicted"`
}

// Verdict compares the predicted label with the ground truth.
type Verdict string

const (
	// VerdictCorrect means the prediction matched the actual label.
	VerdictCorrect Verdict = "correct"
	// VerdictMisclassified means the prediction differed from the actual label.
	VerdictMisclassified Verdict = "misclassified"
	// VerdictNoGroundTruth means the actual label is Unknown, so the
	// prediction cannot be judged.
	VerdictNoGroundTruth Verdict = "unknown"
)

// Verdict judges the review's prediction against its actual label.
func (r Review) Verdict() Verdict {
	if r.Actual == Unknown {
		return VerdictNoGroundTruth
	}
	if r.Predicted == r.Actual {
		return VerdictCorrect
	}
	return VerdictMisclassified
}
