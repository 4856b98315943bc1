package ingest

import (
	"fmt"
	"os"
	"path/filepath"
)

// DiscoverFiles enumerates the non-directory entries of dir.
//
// The result is name-sorted (os.ReadDir guarantees this), so discovery order
// is deterministic across runs and platforms. Subdirectories are not
// descended into.
func DiscoverFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing input directory %q: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}
