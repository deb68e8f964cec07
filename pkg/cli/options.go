// Package cli defines the enricher's command-line options and the pure
// validation functions behind them.
package cli

import (
	"fmt"
	"net/url"
	"strings"
)

// Option names.
const (
	InputFlag    = "input"
	OutputFlag   = "output"
	EndpointFlag = "openai-endpoint"
	ModelFlag    = "openai-model"
	ConfigFlag   = "config"
	EnvFileFlag  = "env-file"
)

// Defaults applied when an option is omitted.
const (
	DefaultEndpoint = "https://api.openai.com/v1/"
	DefaultModel    = "gpt-4o-mini"
	OutputSuffix    = ".enriched"
)

// ValidationError reports an option value that failed validation.
type ValidationError struct {
	Option string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("--%s: %s", e.Option, e.Reason)
}

// ParseEndpoint validates the tokens given for the endpoint option. Exactly
// one non-empty token is accepted and it must be an absolute URI with a host.
func ParseEndpoint(tokens []string) (*url.URL, error) {
	if len(tokens) != 1 || strings.TrimSpace(tokens[0]) == "" {
		return nil, &ValidationError{
			Option: EndpointFlag,
			Reason: "A single argument is required for the OpenAI endpoint",
		}
	}

	u, err := url.Parse(strings.TrimSpace(tokens[0]))
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, &ValidationError{
			Option: EndpointFlag,
			Reason: "The OpenAI endpoint must be a valid absolute URI",
		}
	}
	return u, nil
}

// ParsePath validates a file path option.
func ParsePath(option, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", &ValidationError{Option: option, Reason: "a file path is required"}
	}
	if strings.ContainsRune(value, 0) {
		return "", &ValidationError{Option: option, Reason: "the file path contains a NUL byte"}
	}
	return value, nil
}

// ParseModel validates a model identifier.
func ParseModel(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", &ValidationError{Option: ModelFlag, Reason: "a model name is required"}
	}
	return value, nil
}

// DefaultOutput derives the output path from the input path.
func DefaultOutput(input string) string {
	return input + OutputSuffix
}
