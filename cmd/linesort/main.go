package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"linesort/internal/cli"
)

// main is a deterministic boundary: it canonicalizes all CLI inputs into an
// Invocation before any engine logic is invoked.
func main() {
	inv, err := cli.ParseInvocation(os.Args[1:])
	if err != nil {
		var invErr *cli.InvocationError
		if errors.As(err, &invErr) {
			fmt.Fprintln(os.Stderr, invErr.Message)
			os.Exit(invErr.ExitCode)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitInternalError)
	}

	logger, err := buildLogger(inv.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(cli.ExitInternalError)
	}
	defer logger.Sync()

	result, execErr := cli.Execute(context.Background(), inv, logger)
	if execErr != nil {
		fmt.Fprintln(os.Stderr, execErr)
	}

	if inv.WaitForKey {
		waitForKey()
	}
	os.Exit(result.ExitCode)
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// waitForKey blocks until one byte arrives on stdin.
func waitForKey() {
	fmt.Fprint(os.Stderr, "\nDone...")
	_, _ = bufio.NewReader(os.Stdin).ReadByte()
}
