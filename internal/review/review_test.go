package review

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabel_String(t *testing.T) {
	assert.Equal(t, "NEGATIVE", Negative.String())
	assert.Equal(t, "POSITIVE", Positive.String())
	assert.Equal(t, "UNKNOWN", Unknown.String())
	assert.Equal(t, "Label(7)", Label(7).String())
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		in   string
		want Label
	}{
		{"NEGATIVE", Negative},
		{"POSITIVE", Positive},
		{"UNKNOWN", Unknown},
		{"negative", Negative},
		{" Positive ", Positive},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLabel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLabel("NEUTRAL")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NEUTRAL")
}

func TestParseLabelArg(t *testing.T) {
	l, err := ParseLabelArg("0")
	require.NoError(t, err)
	assert.Equal(t, Negative, l)

	l, err = ParseLabelArg("2")
	require.NoError(t, err)
	assert.Equal(t, Unknown, l)

	l, err = ParseLabelArg("positive")
	require.NoError(t, err)
	assert.Equal(t, Positive, l)

	_, err = ParseLabelArg("3")
	assert.Error(t, err)
}

func TestLabel_JSON(t *testing.T) {
	data, err := json.Marshal(Review{ID: 3, SourcePath: "a.txt", Actual: Negative, Predicted: Unknown})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"source_path":"a.txt","text":"","actual":"NEGATIVE","predicted":"UNKNOWN"}`, string(data))

	var r Review
	require.NoError(t, json.Unmarshal(data, &r))
	assert.Equal(t, Negative, r.Actual)
	assert.Equal(t, Unknown, r.Predicted)

	var l Label
	assert.Error(t, json.Unmarshal([]byte(`"MAYBE"`), &l))
}

func TestReview_Verdict(t *testing.T) {
	assert.Equal(t, VerdictCorrect, Review{Actual: Positive, Predicted: Positive}.Verdict())
	assert.Equal(t, VerdictMisclassified, Review{Actual: Positive, Predicted: Unknown}.Verdict())
	assert.Equal(t, VerdictMisclassified, Review{Actual: Negative, Predicted: Positive}.Verdict())
	assert.Equal(t, VerdictNoGroundTruth, Review{Actual: Unknown, Predicted: Positive}.Verdict())
}

func TestErrorHelpers(t *testing.T) {
	notFound := NotFound(42)
	assert.True(t, IsNotFound(notFound))
	assert.Contains(t, notFound.Error(), "42")
	assert.Equal(t, ErrCodeNotFound, CodeOf(notFound))

	cfg := fmt.Errorf("startup: %w", &ConfigError{Key: "lexicon.positive", Path: "pos.txt", Err: errors.New("missing")})
	assert.True(t, IsConfigError(cfg))
	assert.Equal(t, ErrCodeConfig, CodeOf(cfg))
	assert.Contains(t, cfg.Error(), "pos.txt")

	read := &FileReadError{Path: "x.txt", Err: errors.New("boom")}
	assert.True(t, IsFileReadError(read))
	assert.Equal(t, "boom", errors.Unwrap(read).Error())

	rec := &CorruptRecordError{Line: 3, Content: "abc @ x", Reason: "bad id"}
	assert.True(t, IsCorruptRecord(rec))
	assert.Contains(t, rec.Error(), "line 3")

	assert.Equal(t, ErrCodeDuplicateID, CodeOf(&DuplicateIDError{ID: 1}))
	assert.Equal(t, ErrCodeUnsupportedFileType, CodeOf(&UnsupportedFileTypeError{Path: "a.pdf", Extension: ".txt"}))
	assert.Equal(t, ErrorCode(""), CodeOf(errors.New("other")))
	assert.Equal(t, ErrorCode(""), CodeOf(nil))
}
