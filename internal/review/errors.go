package review

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes critic errors for display and exit-code mapping.
type ErrorCode string

const (
	// ErrCodeConfig indicates missing or unreadable configuration (fatal at startup).
	ErrCodeConfig ErrorCode = "CONFIG"

	// ErrCodeUnsupportedFileType indicates a single-file load with the wrong extension.
	ErrCodeUnsupportedFileType ErrorCode = "UNSUPPORTED_FILE_TYPE"

	// ErrCodeFileRead indicates a review file could not be read or decoded.
	ErrCodeFileRead ErrorCode = "FILE_READ"

	// ErrCodeCorruptRecord indicates a malformed line in the persisted database.
	ErrCodeCorruptRecord ErrorCode = "CORRUPT_RECORD"

	// ErrCodeDuplicateID indicates two reviews shared an id. This is an
	// internal invariant violation, never a user error.
	ErrCodeDuplicateID ErrorCode = "DUPLICATE_ID"

	// ErrCodeNotFound indicates a lookup or delete by an unknown id.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// ErrNotFound is returned (wrapped) when no review has the requested id.
var ErrNotFound = errors.New("review not found")

// NotFound wraps ErrNotFound with the missing id.
func NotFound(id int) error {
	return fmt.Errorf("id %d: %w", id, ErrNotFound)
}

// ConfigError reports a configuration problem that prevents startup,
// such as a missing word-list file.
type ConfigError struct {
	// Key is the configuration key at fault (e.g. "lexicon.positive").
	Key string

	// Path is the file involved, if any.
	Path string

	Err error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: config %s (%s): %v", ErrCodeConfig, e.Key, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: config %s: %v", ErrCodeConfig, e.Key, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// UnsupportedFileTypeError reports a single file that does not carry the
// recognized review extension.
type UnsupportedFileTypeError struct {
	Path      string
	Extension string // the required extension
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("%s: %s is neither a %s file nor a directory", ErrCodeUnsupportedFileType, e.Path, e.Extension)
}

// FileReadError reports a review file that could not be read.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrCodeFileRead, e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// CorruptRecordError reports a persisted database line that cannot be decoded.
type CorruptRecordError struct {
	// Line is the 1-based line number (or row number for non-text codecs).
	Line int

	// Content is the offending line as read.
	Content string

	Reason string
}

func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("%s: line %d: %s: %q", ErrCodeCorruptRecord, e.Line, e.Reason, e.Content)
}

// DuplicateIDError reports an insert under an id that is already present.
type DuplicateIDError struct {
	ID int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("%s: review id %d already present", ErrCodeDuplicateID, e.ID)
}

// IsNotFound returns true if err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConfigError returns true if err is or wraps a *ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsFileReadError returns true if err is or wraps a *FileReadError.
func IsFileReadError(err error) bool {
	var fe *FileReadError
	return errors.As(err, &fe)
}

// IsCorruptRecord returns true if err is or wraps a *CorruptRecordError.
func IsCorruptRecord(err error) bool {
	var ce *CorruptRecordError
	return errors.As(err, &ce)
}

// CodeOf returns the ErrorCode for err, or "" if err is not a critic error.
func CodeOf(err error) ErrorCode {
	var (
		cfg  *ConfigError
		typ  *UnsupportedFileTypeError
		read *FileReadError
		rec  *CorruptRecordError
		dup  *DuplicateIDError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &cfg):
		return ErrCodeConfig
	case errors.As(err, &typ):
		return ErrCodeUnsupportedFileType
	case errors.As(err, &read):
		return ErrCodeFileRead
	case errors.As(err, &rec):
		return ErrCodeCorruptRecord
	case errors.As(err, &dup):
		return ErrCodeDuplicateID
	case errors.Is(err, ErrNotFound):
		return ErrCodeNotFound
	}
	return ""
}
