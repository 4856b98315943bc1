package ingest

import (
	"bufio"
	"os"

	"go.uber.org/zap"
)

// FileSource reads accepted lines from individual files.
//
// Failure behavior: nothing a FileSource encounters is fatal. An unopenable
// file contributes zero lines; a rejected line is excluded. Both are reported
// through the logger so a run degrades to "fewer lines processed" instead of
// aborting.
type FileSource struct {
	Log *zap.Logger
}

// NewFileSource creates a FileSource. A nil logger is replaced with a no-op
// logger so callers never have to guard diagnostics.
func NewFileSource(log *zap.Logger) *FileSource {
	if log == nil {
		log = zap.NewNop()
	}
	return &FileSource{Log: log}
}

// Read returns the accepted lines of the named file in file order.
//
// Empty lines are silently skipped. Lines failing Acceptable are logged with
// the offending line and source file, then excluded. An unreadable file is
// logged and contributes nil.
func (s *FileSource) Read(name string) []string {
	f, err := os.Open(name)
	if err != nil {
		s.Log.Warn("unable to open input file",
			zap.String("file", name),
			zap.Error(err))
		return nil
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		if !Acceptable(line) {
			s.Log.Warn("line rejected: contains digits or non-alphabetic characters",
				zap.String("line", line),
				zap.String("file", name))
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		// Mid-file read errors degrade the same way as open failures:
		// whatever was read so far still contributes.
		s.Log.Warn("error while reading input file",
			zap.String("file", name),
			zap.Error(err))
	}
	return lines
}
