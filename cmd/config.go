package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const (
	DefaultLogFormat      = "text"
	DefaultLogLevel       = "info"
	DefaultTeardownLength = 200_000
)

// LogConfig defines the log output of the commands.
type LogConfig struct {
	// Format is the log format to use in the log output (e.g. 'text' or 'json')
	Format string

	// Level is the log level to use in the log output (e.g. 'none', 'debug', or 'info')
	Level string
}

type TraceConfig struct {
	// Fixed runs the trace against the int32 list.
	Fixed bool

	// Strict turns an empty-list result into an error.
	Strict bool
}

type TeardownConfig struct {
	// Length is the number of nodes built and then released.
	Length int
}

type Config struct {
	Log      LogConfig
	Trace    TraceConfig
	Teardown TeardownConfig
}

// DefaultConfig returns the configuration used when no flag, env variable or config file overrides it.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Format: DefaultLogFormat,
			Level:  DefaultLogLevel,
		},
		Teardown: TeardownConfig{
			Length: DefaultTeardownLength,
		},
	}
}

// Verify checks that the configuration values are usable.
func (cfg *Config) Verify() error {
	if cfg.Log.Format != "text" && cfg.Log.Format != "json" {
		return fmt.Errorf("config 'log.format' must be one of ['text', 'json']")
	}

	switch cfg.Log.Level {
	case "none", "debug", "info", "warn", "error", "panic", "fatal":
	default:
		return fmt.Errorf(
			"config 'log.level' must be one of ['none', 'debug', 'info', 'warn', 'error', 'panic', 'fatal']",
		)
	}

	if cfg.Teardown.Length < 0 {
		return fmt.Errorf("config 'teardown.length' must be non-negative, got %d", cfg.Teardown.Length)
	}

	return nil
}

// ReadConfig merges flags, env variables and config.yaml over the defaults and verifies the result.
func ReadConfig() (*Config, error) {
	config := DefaultConfig()

	viper.SetTypeByDefaultValue(true)
	err := viper.ReadInConfig()
	if err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Verify(); err != nil {
		return nil, err
	}

	return config, nil
}
