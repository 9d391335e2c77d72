package review

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Label is the polarity of a review, either supplied by the operator
// (actual) or computed by the classifier (predicted).
type Label int

const (
	// Negative is integer 0 on the command line.
	Negative Label = iota
	// Positive is integer 1.
	Positive
	// Unknown is integer 2. Used for ties and for missing ground truth.
	Unknown
)

// Canonical names used by the persisted database format.
const (
	NameNegative = "NEGATIVE"
	NamePositive = "POSITIVE"
	NameUnknown  = "UNKNOWN"
)

// String returns the canonical name of the label.
func (l Label) String() string {
	switch l {
	case Negative:
		return NameNegative
	case Positive:
		return NamePositive
	case Unknown:
		return NameUnknown
	default:
		return fmt.Sprintf("Label(%d)", int(l))
	}
}

// Valid reports whether l is one of the three defined labels.
func (l Label) Valid() bool {
	return l >= Negative && l <= Unknown
}

// ParseLabel parses a canonical label name. Matching is case-insensitive so
// that "negative" typed on a command line is accepted.
func ParseLabel(name string) (Label, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case NameNegative:
		return Negative, nil
	case NamePositive:
		return Positive, nil
	case NameUnknown:
		return Unknown, nil
	}
	return Unknown, fmt.Errorf("unknown label %q: must be one of %s, %s, %s",
		name, NameNegative, NamePositive, NameUnknown)
}

// LabelFromInt maps the legacy integer encoding (0, 1, 2) to a Label.
func LabelFromInt(n int) (Label, error) {
	l := Label(n)
	if !l.Valid() {
		return Unknown, fmt.Errorf("unknown label value %d: must be 0, 1 or 2", n)
	}
	return l, nil
}

// ParseLabelArg accepts either a canonical name or the legacy integer form.
func ParseLabelArg(s string) (Label, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return LabelFromInt(n)
	}
	return ParseLabel(s)
}

// MarshalJSON renders the label by its canonical name.
func (l Label) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON parses a canonical label name.
func (l *Label) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("label: %w", err)
	}
	parsed, err := ParseLabel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
