package environ

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings holds optional, non-secret environment configuration. Endpoint
// and model are not read from the environment.
type Settings struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"ENRICHER_LOG_LEVEL" envDefault:"info"`

	// LogFormat is pretty or json.
	LogFormat string `env:"ENRICHER_LOG_FORMAT" envDefault:"pretty"`
}

// LoadSettings decodes Settings from m.
func LoadSettings(m Map) (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, env.Options{Environment: m}); err != nil {
		return Settings{}, fmt.Errorf("parse environment: %w", err)
	}
	s.LogLevel = strings.TrimSpace(s.LogLevel)
	s.LogFormat = strings.TrimSpace(s.LogFormat)
	return s, nil
}

// LoadDotEnv loads variables from a .env file into the process environment.
// An empty path means ".env" in the working directory, which is skipped when
// missing. An explicitly named file must exist.
func LoadDotEnv(path string) error {
	if path == "" {
		if _, err := os.Stat(".env"); os.IsNotExist(err) {
			return nil
		}
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}
