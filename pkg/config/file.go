package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is an optional YAML profile with lower precedence than the command
// line. It never carries the API key.
type File struct {
	Endpoint string `yaml:"endpoint,omitempty"`
	Model    string `yaml:"model,omitempty"`
	Prompt   string `yaml:"prompt,omitempty"`
}

// LoadFile reads and parses a YAML profile. Unknown keys are rejected so a
// misplaced api_key is not silently ignored.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}

	f.Endpoint = strings.TrimSpace(f.Endpoint)
	f.Model = strings.TrimSpace(f.Model)
	f.Prompt = strings.TrimSpace(f.Prompt)
	return &f, nil
}
