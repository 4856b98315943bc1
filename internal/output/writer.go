// Package output writes sorted results to the output directory.
package output

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// Writer writes one newline-delimited text file per run into Dir.
type Writer struct {
	Dir string
}

// NewWriter creates a Writer rooted at dir. The directory is created lazily
// on the first write.
func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir}
}

// WriteLines writes lines to "<label>.txt" under Dir, truncating any prior
// file of the same name, and returns the written path.
func (w *Writer) WriteLines(label string, lines []string) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %q: %w", w.Dir, err)
	}

	path := filepath.Join(w.Dir, label+".txt")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %q: %w", path, err)
	}

	bw := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			f.Close()
			return "", fmt.Errorf("writing %q: %w", path, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			f.Close()
			return "", fmt.Errorf("writing %q: %w", path, err)
		}
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return "", fmt.Errorf("flushing %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %q: %w", path, err)
	}
	return path, nil
}
