package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatelog/gatelog/pkg/errors"
	"github.com/gatelog/gatelog/pkg/logging"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gatelog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv(logging.EnvLevel, "")

	path := writeConfig(t, "logging:\n  level: INFO\n  stderr: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Stderr)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv(logging.EnvLevel, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "DISABLED", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Stderr)
}

func TestLoadEnvironmentOverrideWins(t *testing.T) {
	t.Setenv(logging.EnvLevel, "DEBUG")

	path := writeConfig(t, "logging:\n  level: ERROR\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
}

func TestLoadRejectsUnknownLevel(t *testing.T) {
	t.Setenv(logging.EnvLevel, "")

	path := writeConfig(t, "logging:\n  level: VERBOSE\n")

	_, err := Load(path)
	require.Error(t, err)

	var customErr *errors.Error
	require.True(t, stderrors.As(err, &customErr))
	assert.Equal(t, errors.ValidationFailed, customErr.Code())
}

func TestLoadRejectsLowercaseLevel(t *testing.T) {
	t.Setenv(logging.EnvLevel, "")

	path := writeConfig(t, "logging:\n  level: info\n")

	_, err := Load(path)
	assert.Error(t, err, "level names are exact case")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	t.Setenv(logging.EnvLevel, "")

	path := writeConfig(t, "logging: [not a mapping\n")

	_, err := Load(path)
	require.Error(t, err)

	var customErr *errors.Error
	require.True(t, stderrors.As(err, &customErr))
	assert.Equal(t, errors.InvalidConfig, customErr.Code())
}

func TestLoadEmptyPath(t *testing.T) {
	t.Setenv(logging.EnvLevel, "WARNING")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "WARNING", cfg.Logging.Level)
}

func TestBuildLogger(t *testing.T) {
	cfg := &Config{Logging: LoggingConfig{Level: "INFO"}}
	assert.NotNil(t, cfg.BuildLogger())
}
