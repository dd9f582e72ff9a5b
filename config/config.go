// Package config loads the settings of the iwfg command: built-in defaults,
// then an optional YAML file, then IWFG_* environment variables. Command
// line flags are applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/iwfg/adapter"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	K           int           `yaml:"k"`
	Sense       string        `yaml:"sense"`
	Reference   []float64     `yaml:"reference"`
	OneBased    bool          `yaml:"one_based"`
	Workers     int           `yaml:"workers"`
	MetricsFile string        `yaml:"metrics_file"`
	Logging     LoggingConfig `yaml:"logging"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		K:       1,
		Sense:   "max",
		Workers: 1,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (if
// path is not empty) and the environment. It does not validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("IWFG_K"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.K = n
		}
	}
	if v := os.Getenv("IWFG_SENSE"); v != "" {
		cfg.Sense = v
	}
	if v := os.Getenv("IWFG_REFERENCE"); v != "" {
		ref, err := ParseReference(v)
		if err != nil {
			return fmt.Errorf("IWFG_REFERENCE: %w", err)
		}
		cfg.Reference = ref
	}
	if v := os.Getenv("IWFG_ONE_BASED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.OneBased = b
		}
	}
	if v := os.Getenv("IWFG_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Workers = n
		}
	}
	if v := os.Getenv("IWFG_METRICS_FILE"); v != "" {
		cfg.MetricsFile = v
	}
	if v := os.Getenv("IWFG_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("IWFG_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	return nil
}

// ParseReference parses a comma-separated list of numbers.
func ParseReference(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	ref := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: reference value %d: %q", ErrInvalid, i+1, f)
		}
		ref[i] = v
	}
	return ref, nil
}

// Validate reports the first setting the command cannot use.
func (c *Config) Validate() error {
	if c.K < 1 {
		return fmt.Errorf("%w: k must be at least 1, got %d", ErrInvalid, c.K)
	}
	if _, err := adapter.ParseSense(c.Sense); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalid, c.Workers)
	}
	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Logging.Format)
	}
	return nil
}

// SlogLevel maps the level name to a slog.Level.
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalid, l.Level)
	}
	return level, nil
}
