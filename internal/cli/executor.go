package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"linesort/internal/ingest"
	"linesort/internal/output"
	"linesort/internal/run"
	"linesort/internal/sorting"
)

// Result is what a full invocation produced, for black-box assertions.
type Result struct {
	ExitCode int
	Reports  []run.Report
}

// runMatrix is the fixed set of runs one invocation performs: the three
// sequential runs always, the three concurrent ones when enabled. Labels
// are the historical output file names.
var runMatrix = []run.Spec{
	{Label: "AlphabeticalAscendingTextOutput", Policy: sorting.AlphaAscending, Mode: run.ModeSequential},
	{Label: "AlphabeticalDescendingTextOutput", Policy: sorting.AlphaDescending, Mode: run.ModeSequential},
	{Label: "LastLetterAscendingTextOutput", Policy: sorting.LastLetterAscending, Mode: run.ModeSequential},
	{Label: "MultiAscTextOutput", Policy: sorting.AlphaAscending, Mode: run.ModeConcurrent},
	{Label: "MultiDescTextOutput", Policy: sorting.AlphaDescending, Mode: run.ModeConcurrent},
	{Label: "MultiLastLetterTextOutput", Policy: sorting.LastLetterAscending, Mode: run.ModeConcurrent},
}

// Execute maps a canonical Invocation to the six (or three) runs.
//
// Responsibilities:
//   - Discover input files once; every run sees the same file list.
//   - Drive the orchestrator per run matrix entry.
//   - Optionally write the canonical summary.
//   - Translate outcomes to semantic exit codes.
//
// Data-level failures (rejected lines, unreadable files) are diagnostics
// only and never change the exit code.
func Execute(ctx context.Context, inv Invocation, log *zap.Logger) (Result, error) {
	if log == nil {
		log = zap.NewNop()
	}

	files, err := ingest.DiscoverFiles(inv.InputDir)
	if err != nil {
		return Result{ExitCode: ExitConfigError}, err
	}
	log.Debug("discovered input files",
		zap.String("dir", inv.InputDir),
		zap.Int("count", len(files)))

	runner := run.NewRunner(
		ingest.NewFileSource(log),
		output.NewWriter(inv.OutputDir),
		log,
	)

	var reports []run.Report
	for _, spec := range runMatrix {
		if spec.Mode == run.ModeConcurrent && !inv.Concurrent {
			continue
		}
		report, err := runner.Do(ctx, files, spec)
		if err != nil {
			return Result{ExitCode: ExitRunFailure, Reports: reports}, err
		}
		reports = append(reports, report)
	}

	if inv.WriteSummary {
		if err := writeSummary(inv.OutputDir, reports); err != nil {
			return Result{ExitCode: ExitRunFailure, Reports: reports}, err
		}
	}

	return Result{ExitCode: ExitSuccess, Reports: reports}, nil
}

func writeSummary(dir string, reports []run.Report) error {
	summary := run.Summary{Reports: reports}
	b, err := summary.CanonicalJSON()
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	path := filepath.Join(dir, "summary.json")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}
