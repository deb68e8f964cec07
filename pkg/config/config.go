// Package config assembles the validated settings for an enricher run.
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/ohadschn/igdb-enricher/pkg/cli"
	"github.com/ohadschn/igdb-enricher/pkg/environ"
)

// DefaultPrompt is the user message sent when no profile overrides it.
const DefaultPrompt = "Say 'this is a test.'"

// EnricherOptions holds the validated settings for one enricher run.
// The zero value is not usable; build it with Assemble or New.
type EnricherOptions struct {
	input    string
	output   string
	endpoint url.URL
	apiKey   string
	model    string
	prompt   string
}

// Input returns the input file path.
func (o EnricherOptions) Input() string { return o.input }

// Output returns the output file path.
func (o EnricherOptions) Output() string { return o.output }

// Endpoint returns a copy of the API endpoint.
func (o EnricherOptions) Endpoint() *url.URL {
	u := o.endpoint
	return &u
}

// APIKey returns the API secret.
func (o EnricherOptions) APIKey() string { return o.apiKey }

// Model returns the chat model identifier.
func (o EnricherOptions) Model() string { return o.model }

// Prompt returns the user message.
func (o EnricherOptions) Prompt() string { return o.prompt }

// LogValue renders the options for slog with the API key redacted.
func (o EnricherOptions) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("input", o.input),
		slog.String("output", o.output),
		slog.String("endpoint", o.endpoint.String()),
		slog.String("model", o.model),
		slog.String("api_key", "[REDACTED]"),
	)
}

// ConfigurationError reports a missing or invalid setting found while
// assembling EnricherOptions.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// Params are the raw inputs accepted by New.
type Params struct {
	Input    string
	Output   string
	Endpoint string
	APIKey   string
	Model    string
	Prompt   string
}

// New validates p and builds EnricherOptions. Empty Output, Endpoint, Model
// and Prompt take their defaults; Input and APIKey are required.
func New(p Params) (EnricherOptions, error) {
	o, err := resolve(p)
	if err != nil {
		return EnricherOptions{}, err
	}

	o.apiKey = strings.TrimSpace(p.APIKey)
	if o.apiKey == "" {
		return EnricherOptions{}, &ConfigurationError{
			Field: "APIKey",
			Err:   &environ.MissingError{Name: environ.APIKeyVar},
		}
	}
	return o, nil
}

// resolve validates everything except the API key.
func resolve(p Params) (EnricherOptions, error) {
	input, err := cli.ParsePath(cli.InputFlag, p.Input)
	if err != nil {
		return EnricherOptions{}, &ConfigurationError{Field: "Input", Err: err}
	}

	output := cli.DefaultOutput(input)
	if strings.TrimSpace(p.Output) != "" {
		if output, err = cli.ParsePath(cli.OutputFlag, p.Output); err != nil {
			return EnricherOptions{}, &ConfigurationError{Field: "Output", Err: err}
		}
	}

	endpoint := strings.TrimSpace(p.Endpoint)
	if endpoint == "" {
		endpoint = cli.DefaultEndpoint
	}
	u, err := cli.ParseEndpoint([]string{endpoint})
	if err != nil {
		return EnricherOptions{}, &ConfigurationError{Field: "Endpoint", Err: err}
	}

	model := strings.TrimSpace(p.Model)
	if model == "" {
		model = cli.DefaultModel
	}

	prompt := strings.TrimSpace(p.Prompt)
	if prompt == "" {
		prompt = DefaultPrompt
	}

	return EnricherOptions{
		input:    input,
		output:   output,
		endpoint: *u,
		model:    model,
		prompt:   prompt,
	}, nil
}

// Assemble merges parsed command-line values with an optional profile, then
// reads the API key from r. Endpoint and model precedence is flag, then
// profile, then default. The API key is resolved last and only from the
// environment.
func Assemble(v cli.Values, profile *File, r environ.Resolver) (EnricherOptions, error) {
	p := Params{
		Input:  v.Input,
		Output: v.Output,
	}

	switch {
	case v.EndpointSet && v.Endpoint != nil:
		p.Endpoint = v.Endpoint.String()
	case profile != nil && profile.Endpoint != "":
		p.Endpoint = profile.Endpoint
	}

	switch {
	case v.ModelSet:
		p.Model = v.Model
	case profile != nil && profile.Model != "":
		p.Model = profile.Model
	}

	if profile != nil {
		p.Prompt = profile.Prompt
	}

	o, err := resolve(p)
	if err != nil {
		return EnricherOptions{}, err
	}

	if o.apiKey, err = environ.RequiredValue(r, environ.APIKeyVar); err != nil {
		return EnricherOptions{}, &ConfigurationError{Field: "APIKey", Err: err}
	}
	return o, nil
}
