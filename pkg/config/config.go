// Package config loads the startup configuration consumed once when the
// process wires its logger. There is no reload: the file is read, the
// environment override applied, the result validated, and the values
// are fixed for the process lifetime.
package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/gatelog/gatelog/pkg/errors"
	"github.com/gatelog/gatelog/pkg/logging"
)

// Config represents the complete configuration for the process.
type Config struct {
	// Logging configuration
	Logging LoggingConfig `yaml:"logging,omitempty" validate:"omitempty"`
}

// LoggingConfig holds the logging threshold and output target.
type LoggingConfig struct {
	// Level names the severity threshold, one of the seven recognized
	// names, exact case. The façade itself fails closed on anything
	// else; validation here surfaces the typo at startup instead.
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=DISABLED CRITICAL ERROR WARNING INFO DEBUG ENABLED"`

	// Stderr redirects log lines to standard error.
	Stderr bool `yaml:"stderr,omitempty"`
}

// Default returns the configuration used when no file and no override
// are present: everything suppressed, stdout target.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: logging.DISABLED.String(),
		},
	}
}

// Load reads the YAML file at path, applies the environment override,
// and validates the result. A missing file is not an error; defaults
// apply and the override can still set the level.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults apply.
		case err != nil:
			return nil, errors.Wrap(err, errors.ConfigNotFound, "failed to read config file")
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrap(err, errors.InvalidConfig, "failed to parse config file")
			}
		}
	}

	// Deployment override wins over the file.
	if lvl := os.Getenv(logging.EnvLevel); lvl != "" {
		cfg.Logging.Level = lvl
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.WithFields(
			errors.Wrap(err, errors.ValidationFailed, "invalid configuration"),
			errors.Fields{"level": c.Logging.Level},
		)
	}
	return nil
}

// BuildLogger constructs the logger this configuration describes. The
// returned logger's threshold is fixed; install it with
// logging.SetLogger before anything logs.
func (c *Config) BuildLogger() *logging.Logger {
	return logging.NewLogger(logging.Config{
		Threshold: logging.ParseSeverity(c.Logging.Level),
		Output:    logging.NewConsoleOutput(c.Logging.Stderr),
	})
}
