package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ohadschn/igdb-enricher/pkg/cli"
	"github.com/ohadschn/igdb-enricher/pkg/config"
	"github.com/ohadschn/igdb-enricher/pkg/enricher"
	"github.com/ohadschn/igdb-enricher/pkg/environ"
	"github.com/ohadschn/igdb-enricher/pkg/logger"
)

func rootCmd(getenv func() environ.Map, stderr io.Writer) *cobra.Command {
	var flags *cli.Flags

	cmd := &cobra.Command{
		Use:   "enricher",
		Short: "Send a chat completion request for an input file",
		Long: `Send a single chat completion request to an OpenAI-compatible API and log the reply.

Endpoint and model are resolved in the following order (later sources override earlier):
  1. Default values
  2. YAML profile (--config)
  3. Command line flags

Environment variables (a .env file is loaded first if present):
  OPENAI_API_KEY               API key (required, never accepted as a flag)
  ENRICHER_LOG_LEVEL           Log level: debug, info, warn, error (default: info)
  ENRICHER_LOG_FORMAT          Log format: pretty, json (default: pretty)`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values, err := flags.Values()
			if err != nil {
				return err
			}
			return runEnrich(cmd, values, getenv, stderr)
		},
	}

	flags = cli.Bind(cmd.Flags())
	_ = cmd.MarkFlagRequired(cli.InputFlag)

	cmd.AddCommand(versionCmd())
	return cmd
}

func runEnrich(cmd *cobra.Command, values cli.Values, getenv func() environ.Map, stderr io.Writer) error {
	if err := environ.LoadDotEnv(values.EnvFile); err != nil {
		return err
	}

	env := getenv()
	settings, err := environ.LoadSettings(env)
	if err != nil {
		return err
	}
	log := logger.WithRunID(logger.New(stderr, settings.LogLevel, settings.LogFormat))

	var profile *config.File
	if values.ConfigFile != "" {
		if profile, err = config.LoadFile(values.ConfigFile); err != nil {
			return err
		}
	}

	opts, err := config.Assemble(values, profile, env)
	if err != nil {
		return err
	}
	log.Debug("configuration resolved", "options", opts)

	svc := enricher.New(opts, enricher.WithLogger(log))
	if _, err := svc.Run(cmd.Context()); err != nil {
		return fmt.Errorf("enrich %s: %w", opts.Input(), err)
	}
	return nil
}
