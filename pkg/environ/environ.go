// Package environ resolves values from the process environment.
package environ

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// APIKeyVar holds the chat API secret. It is never accepted on the command line.
const APIKeyVar = "OPENAI_API_KEY"

// Resolver looks up named environment values.
type Resolver interface {
	LookupEnv(name string) (string, bool)
}

// Map is a Resolver backed by a fixed set of key/value pairs.
type Map map[string]string

// LookupEnv returns the value stored under name.
func (m Map) LookupEnv(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// OS snapshots the current process environment.
func OS() Map {
	return env.ToMap(os.Environ())
}

// MissingError reports a required variable that is unset or blank.
type MissingError struct {
	Name string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%s environment variable is not set", e.Name)
}

// RequiredValue returns the trimmed value of name, or a *MissingError.
func RequiredValue(r Resolver, name string) (string, error) {
	if r == nil {
		return "", &MissingError{Name: name}
	}
	v, ok := r.LookupEnv(name)
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return "", &MissingError{Name: name}
	}
	return v, nil
}
