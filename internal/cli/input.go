package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"linesort/internal/config"
)

const (
	ExitSuccess           = 0
	ExitRunFailure        = 1
	ExitInvalidInvocation = 2
	ExitConfigError       = 3
	ExitInternalError     = 4
)

// Invocation is the fully canonicalized, deterministic description of a run.
//
// All directories are absolute: relative -input-dir/-output-dir (from flags
// or the config file) are resolved under WorkDir, never under the process
// current working directory.
type Invocation struct {
	WorkDir      string
	InputDir     string
	OutputDir    string
	Concurrent   bool
	WriteSummary bool
	WaitForKey   bool
	Verbose      bool

	OriginalInput  string
	OriginalOutput string
	ConfigPath     string
}

type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

func configErrorf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitConfigError, Message: fmt.Sprintf(format, args...)}
}

// ParseInvocation parses CLI flags (and the optional config file) into a
// canonical Invocation.
//
// Determinism goals:
//   - Does not read env vars.
//   - Does not read/assume the process CWD.
//   - Requires WorkDir to be explicit and absolute.
//
// Precedence: defaults < config file < flags explicitly set.
func ParseInvocation(args []string) (Invocation, error) {
	fs := flag.NewFlagSet("linesort", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // parsing errors are returned, not printed

	var (
		workDir    string
		inputDir   string
		outputDir  string
		configPath string
		concurrent bool
		summary    bool
		wait       bool
		verbose    bool
	)

	fs.StringVar(&workDir, "workdir", "", "Absolute working directory. Required.")
	fs.StringVar(&inputDir, "input-dir", "", "Input directory (default from config: InputText).")
	fs.StringVar(&outputDir, "output-dir", "", "Output directory (default from config: OutputText).")
	fs.StringVar(&configPath, "config", "", "YAML config path (optional).")
	fs.BoolVar(&concurrent, "concurrent", true, "Also perform the three concurrent runs.")
	fs.BoolVar(&summary, "summary", false, "Write canonical summary.json to the output directory.")
	fs.BoolVar(&wait, "wait", false, "Wait for a keypress before exiting.")
	fs.BoolVar(&verbose, "verbose", false, "Enable debug logging.")

	if err := fs.Parse(args); err != nil {
		return Invocation{}, invalidInvocationf("%v", err)
	}
	if fs.NArg() != 0 {
		return Invocation{}, invalidInvocationf("unexpected positional arguments: %q", strings.Join(fs.Args(), " "))
	}

	if workDir == "" {
		return Invocation{}, invalidInvocationf("--workdir is required")
	}
	workDir = filepath.Clean(workDir)
	if !filepath.IsAbs(workDir) {
		return Invocation{}, invalidInvocationf("--workdir must be an absolute path (got %q)", workDir)
	}

	cfg := config.Default()
	if configPath != "" {
		resolved, err := resolveUnderWorkDir(workDir, configPath)
		if err != nil {
			return Invocation{}, err
		}
		cfg, err = config.Load(resolved)
		if err != nil {
			return Invocation{}, configErrorf("%v", err)
		}
		configPath = resolved
	}

	// Flags explicitly set on the command line win over the config file.
	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if inputDir == "" {
		inputDir = cfg.InputDir
	}
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	if !explicit["concurrent"] {
		concurrent = cfg.Concurrent
	}
	if !explicit["summary"] {
		summary = cfg.WriteSummary
	}
	if !explicit["wait"] {
		wait = cfg.WaitForKey
	}

	resolvedInput, err := resolveUnderWorkDir(workDir, inputDir)
	if err != nil {
		return Invocation{}, err
	}
	resolvedOutput, err := resolveUnderWorkDir(workDir, outputDir)
	if err != nil {
		return Invocation{}, err
	}

	return Invocation{
		WorkDir:        workDir,
		InputDir:       resolvedInput,
		OutputDir:      resolvedOutput,
		Concurrent:     concurrent,
		WriteSummary:   summary,
		WaitForKey:     wait,
		Verbose:        verbose,
		OriginalInput:  inputDir,
		OriginalOutput: outputDir,
		ConfigPath:     configPath,
	}, nil
}

func resolveUnderWorkDir(workDir, p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", invalidInvocationf("path must not be empty")
	}
	clean := filepath.Clean(p)

	// If absolute, accept as-is; it is still deterministic.
	// If relative, resolve under WorkDir.
	if filepath.IsAbs(clean) {
		return clean, nil
	}

	// WorkDir is required to be absolute, so Join does not consult process CWD.
	return filepath.Clean(filepath.Join(workDir, clean)), nil
}

// ExitCode extracts a semantic exit code from a ParseInvocation error.
// If the error is not a known invocation error, it returns ExitInternalError.
func ExitCode(err error) int {
	var invErr *InvocationError
	if errors.As(err, &invErr) && invErr != nil {
		if invErr.ExitCode != 0 {
			return invErr.ExitCode
		}
		return ExitInvalidInvocation
	}
	if err == nil {
		return ExitSuccess
	}
	return ExitInternalError
}
