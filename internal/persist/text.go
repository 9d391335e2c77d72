package persist

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/roach88/critic/internal/review"
)

// Separator joins the fields of one persisted line.
const Separator = " @ "

const fieldCount = 4

// maxLineSize bounds a single database line. Lines only carry an id, a path
// and two labels, so this is generous.
const maxLineSize = 1 << 20

// TextCodec implements the line-oriented database format:
//
//	<id> @ <sourcePath> @ <ACTUAL_LABEL> @ <PREDICTED_LABEL>
type TextCodec struct{}

// Save writes entries to a temporary file next to path and renames it over
// path, so readers never see a half-written database.
func (TextCodec) Save(ctx context.Context, path string, entries []Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("save database: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := Encode(tmp, entries); err != nil {
		tmp.Close()
		return fmt.Errorf("save database: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save database: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("save database: %w", err)
	}
	return nil
}

// Load reads every entry from path. A missing file returns ErrNoDatabase.
func (TextCodec) Load(ctx context.Context, path string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoDatabase
	}
	if err != nil {
		return nil, fmt.Errorf("load database: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Encode writes one line per entry.
func Encode(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		line, err := EncodeLine(e)
		if err != nil {
			return err
		}
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// EncodeLine renders a single entry without the trailing newline. Paths that
// contain the separator or a line break cannot be represented.
func EncodeLine(e Entry) (string, error) {
	if strings.Contains(e.SourcePath, Separator) || strings.ContainsAny(e.SourcePath, "\r\n") {
		return "", fmt.Errorf("review %d: source path %q cannot be encoded", e.ID, e.SourcePath)
	}
	if !e.Actual.Valid() || !e.Predicted.Valid() {
		return "", fmt.Errorf("review %d: invalid label", e.ID)
	}
	return strings.Join([]string{
		strconv.Itoa(e.ID),
		e.SourcePath,
		e.Actual.String(),
		e.Predicted.String(),
	}, Separator), nil
}

// Decode parses a whole database. Blank lines are ignored; any malformed
// line aborts decoding with a *review.CorruptRecordError.
func Decode(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		entries  []Entry
		lines    []int
		contents []string
	)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := DecodeLine(lineNo, line)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
		lines = append(lines, lineNo)
		contents = append(contents, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("load database: line %d: %w", lineNo+1, err)
	}

	if err := checkUniqueIDs(entries, lines, contents); err != nil {
		return nil, err
	}
	return entries, nil
}

// DecodeLine parses one database line. lineNo is only used for errors.
func DecodeLine(lineNo int, line string) (Entry, error) {
	corrupt := func(reason string) error {
		return &review.CorruptRecordError{Line: lineNo, Content: line, Reason: reason}
	}

	fields := strings.Split(line, Separator)
	if len(fields) != fieldCount {
		return Entry{}, corrupt(fmt.Sprintf("expected %d fields, got %d", fieldCount, len(fields)))
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return Entry{}, corrupt(fmt.Sprintf("id %q is not an integer", fields[0]))
	}
	if id <= 0 {
		return Entry{}, corrupt(fmt.Sprintf("id %d is not positive", id))
	}
	if fields[1] == "" {
		return Entry{}, corrupt("empty source path")
	}

	actual, err := review.ParseLabel(fields[2])
	if err != nil {
		return Entry{}, corrupt(err.Error())
	}
	predicted, err := review.ParseLabel(fields[3])
	if err != nil {
		return Entry{}, corrupt(err.Error())
	}

	return Entry{
		ID:         id,
		SourcePath: fields[1],
		Actual:     actual,
		Predicted:  predicted,
	}, nil
}
