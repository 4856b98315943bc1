package ingest

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Collector builds the combined line sequence from a list of input files.
//
// Both implementations honor the same contract: per-file line order is
// preserved, and per-file results are concatenated in the order the files
// were given (discovery order), never in completion order.
type Collector interface {
	Collect(ctx context.Context, files []string) ([]string, error)
}

// Sequential reads each file one after another on the calling goroutine.
type Sequential struct {
	Source *FileSource
}

// Collect accumulates accepted lines file by file, in order.
func (s *Sequential) Collect(_ context.Context, files []string) ([]string, error) {
	var combined []string
	for _, f := range files {
		combined = append(combined, s.Source.Read(f)...)
	}
	return combined, nil
}

// Concurrent launches one reading task per input file.
//
// Each task owns exactly one slot of the results slice; no two tasks share
// mutable state. The join blocks until every task has completed — there is
// no timeout, so a stuck read blocks the whole run — and then concatenates
// the slots in original file-index order, keeping the combined sequence
// identical to what Sequential would produce.
type Concurrent struct {
	Source *FileSource
}

// Collect fans out one goroutine per file and joins by file index.
func (c *Concurrent) Collect(ctx context.Context, files []string) ([]string, error) {
	results := make([][]string, len(files))

	g, _ := errgroup.WithContext(ctx)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			results[i] = c.Source.Read(f)
			return nil
		})
	}
	// Read never fails the group; Wait is purely the completion barrier.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var combined []string
	for _, r := range results {
		combined = append(combined, r...)
	}
	return combined, nil
}
