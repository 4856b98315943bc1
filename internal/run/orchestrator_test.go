package run

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linesort/internal/ingest"
	"linesort/internal/output"
	"linesort/internal/sorting"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestRunner(t *testing.T, outDir string) *Runner {
	t.Helper()
	return NewRunner(ingest.NewFileSource(nil), output.NewWriter(outDir), nil)
}

func TestRunner_Do_SequentialAscending(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	files := []string{
		writeInput(t, inDir, "one.txt", "banana\nApple\ncherry\n"),
		writeInput(t, inDir, "two.txt", "apple\nBanana\n"),
	}

	r := newTestRunner(t, outDir)
	report, err := r.Do(context.Background(), files, Spec{
		Label:  "AlphabeticalAscendingTextOutput",
		Policy: sorting.AlphaAscending,
		Mode:   ModeSequential,
	})
	require.NoError(t, err)

	assert.Equal(t, "AlphabeticalAscendingTextOutput", report.Label)
	assert.Equal(t, ModeSequential, report.Mode)
	assert.Equal(t, 2, report.Files)
	assert.Equal(t, 5, report.Lines)
	assert.GreaterOrEqual(t, report.Elapsed.Nanoseconds(), int64(0))

	b, err := os.ReadFile(filepath.Join(outDir, "AlphabeticalAscendingTextOutput.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Apple\nBanana\napple\nbanana\ncherry\n", string(b))
}

func TestRunner_Do_ConcurrentMatchesSequential(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	files := []string{
		writeInput(t, inDir, "a.txt", "cat\nbat\n"),
		writeInput(t, inDir, "b.txt", "dog\n"),
	}

	r := newTestRunner(t, outDir)
	ctx := context.Background()

	_, err := r.Do(ctx, files, Spec{Label: "LastLetterAscendingTextOutput", Policy: sorting.LastLetterAscending, Mode: ModeSequential})
	require.NoError(t, err)
	_, err = r.Do(ctx, files, Spec{Label: "MultiLastLetterTextOutput", Policy: sorting.LastLetterAscending, Mode: ModeConcurrent})
	require.NoError(t, err)

	seq, err := os.ReadFile(filepath.Join(outDir, "LastLetterAscendingTextOutput.txt"))
	require.NoError(t, err)
	con, err := os.ReadFile(filepath.Join(outDir, "MultiLastLetterTextOutput.txt"))
	require.NoError(t, err)

	assert.Equal(t, "dog\ncat\nbat\n", string(seq))
	assert.Equal(t, string(seq), string(con))
}

func TestRunner_Do_TruncatesPriorOutput(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	files := []string{writeInput(t, inDir, "a.txt", "only\n")}

	stale := filepath.Join(outDir, "AlphabeticalAscendingTextOutput.txt")
	require.NoError(t, os.WriteFile(stale, []byte("stale content that is much longer\n"), 0o644))

	r := newTestRunner(t, outDir)
	_, err := r.Do(context.Background(), files, Spec{
		Label:  "AlphabeticalAscendingTextOutput",
		Policy: sorting.AlphaAscending,
		Mode:   ModeSequential,
	})
	require.NoError(t, err)

	b, err := os.ReadFile(stale)
	require.NoError(t, err)
	assert.Equal(t, "only\n", string(b))
}

func TestRunner_Do_UnknownMode(t *testing.T) {
	r := newTestRunner(t, t.TempDir())
	_, err := r.Do(context.Background(), nil, Spec{Label: "X", Policy: sorting.AlphaAscending, Mode: Mode("bogus")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown ingestion mode")
}
