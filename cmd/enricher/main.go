// Package main is the entry point for the enricher CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ohadschn/igdb-enricher/pkg/environ"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], environ.OS, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
