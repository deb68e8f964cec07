package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ohadschn/igdb-enricher/pkg/config"
	"github.com/ohadschn/igdb-enricher/pkg/enricher"
	"github.com/ohadschn/igdb-enricher/pkg/environ"
)

const (
	exitOK        = 0
	exitFailure   = 1
	exitCancelled = 130
)

// run executes the command line in args and returns the process exit code.
// The environment is read through getenv only after any .env file has been
// loaded, so it is passed as a function.
func run(ctx context.Context, args []string, getenv func() environ.Map, stdout, stderr io.Writer) int {
	cmd := rootCmd(getenv, stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	return exitCode(err, stderr)
}

func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return exitOK
	}
	if errors.Is(err, enricher.ErrCancelled) {
		_, _ = fmt.Fprintln(stderr, "Cancelled.")
		return exitCancelled
	}

	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)

	var (
		cfgErr *config.ConfigurationError
		reqErr *enricher.RequestFailure
	)
	if !errors.As(err, &cfgErr) && !errors.As(err, &reqErr) {
		_, _ = fmt.Fprintln(stderr, "Run 'enricher --help' for usage.")
	}
	return exitFailure
}
