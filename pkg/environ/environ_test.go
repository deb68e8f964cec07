package environ

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredValue(t *testing.T) {
	r := Map{APIKeyVar: "  sk-test  "}

	v, err := RequiredValue(r, APIKeyVar)
	require.NoError(t, err)
	assert.Equal(t, "sk-test", v)
}

func TestRequiredValue_Missing(t *testing.T) {
	tests := []struct {
		name string
		r    Resolver
	}{
		{name: "unset", r: Map{}},
		{name: "empty", r: Map{APIKeyVar: ""}},
		{name: "blank", r: Map{APIKeyVar: "   "}},
		{name: "nil resolver", r: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RequiredValue(tt.r, APIKeyVar)
			require.Error(t, err)

			var missing *MissingError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, APIKeyVar, missing.Name)
			assert.Equal(t, "OPENAI_API_KEY environment variable is not set", err.Error())
		})
	}
}

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings(Map{})
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "pretty", s.LogFormat)
}

func TestLoadSettings_Overrides(t *testing.T) {
	s, err := LoadSettings(Map{
		"ENRICHER_LOG_LEVEL":  " debug ",
		"ENRICHER_LOG_FORMAT": "json",
	})
	require.NoError(t, err)

	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "json", s.LogFormat)
}

func TestLoadSettings_IgnoresAPIKey(t *testing.T) {
	s, err := LoadSettings(Map{APIKeyVar: "sk-secret"})
	require.NoError(t, err)
	assert.NotContains(t, []string{s.LogLevel, s.LogFormat}, "sk-secret")
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ENRICHER_DOTENV_TEST=loaded\n"), 0o600))
	t.Setenv("ENRICHER_DOTENV_TEST", "")
	require.NoError(t, os.Unsetenv("ENRICHER_DOTENV_TEST"))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("ENRICHER_DOTENV_TEST"))
}

func TestLoadDotEnv_ExplicitMissingFile(t *testing.T) {
	err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}

func TestLoadDotEnv_DefaultMissingIsSkipped(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, LoadDotEnv(""))
}
