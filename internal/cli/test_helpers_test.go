package cli

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/roach88/critic/internal/testutil"
)

// testEnv is a scratch working directory holding a lexicon and a config
// file. Paths inside it are relative so command output is stable.
type testEnv struct {
	dir    string
	config string
}

// createTestEnv changes into a fresh temp dir and writes a config that uses
// testutil's lexicon, a relative text database and a single ingest worker
// (so ids follow directory order).
func createTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)

	pos, neg := testutil.WriteLexicon(t, "data")
	config := testutil.WriteFile(t, dir, "critic.yaml", fmt.Sprintf(`lexicon:
  positive: %q
  negative: %q
database:
  path: database.txt
ingest:
  min_workers: 1
  max_workers: 1
  queue_size: 64
log:
  level: debug
`, pos, neg))

	return &testEnv{dir: dir, config: config}
}

// run executes one critic invocation and returns its stdout and stderr.
func (e *testEnv) run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	opts := &RootOptions{BatchIDs: testutil.NewFixedBatchGenerator("test-batch")}
	cmd := newRootCommand(opts)

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", e.config}, args...))

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// writeReviews writes review files under the relative directory dir.
func (e *testEnv) writeReviews(t *testing.T, dir string, texts ...string) []string {
	t.Helper()
	return testutil.WriteReviews(t, dir, texts...)
}

func goldenDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.Abs(filepath.Join("testdata", "golden"))
	if err != nil {
		t.Fatalf("golden dir: %v", err)
	}
	return dir
}
