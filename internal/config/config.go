// Package config loads ecocalc settings from a YAML file and ECOCALC_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"github.com/rshade/ecocalc/internal/logging"
)

// EnvConfigPath overrides the default config file location.
const EnvConfigPath = "ECOCALC_CONFIG"

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Default values, kept in sync with the env-default tags below.
const (
	defaultLogLevel     = "warn"
	defaultLogFormat    = logging.FormatConsole
	defaultOutputFormat = OutputText
)

// ErrInvalidConfig is returned by Validate and wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the ecocalc configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" json:"logging"`
	Output  OutputConfig  `yaml:"output" json:"output"`

	path string
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level" env:"ECOCALC_LOG_LEVEL" env-default:"warn"`
	Format string `yaml:"format" json:"format" env:"ECOCALC_LOG_FORMAT" env-default:"console"`
	// File, when set, receives logs instead of stderr.
	File string `yaml:"file,omitempty" json:"file,omitempty" env:"ECOCALC_LOG_FILE"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format  string `yaml:"format" json:"format" env:"ECOCALC_OUTPUT" env-default:"text"`
	NoColor bool   `yaml:"no_color" json:"no_color" env:"ECOCALC_NO_COLOR" env-default:"false"`
}

// New returns a configuration holding the default values, bound to the
// default config path.
func New() *Config {
	return &Config{
		Logging: LoggingConfig{Level: defaultLogLevel, Format: defaultLogFormat},
		Output:  OutputConfig{Format: defaultOutputFormat},
		path:    DefaultPath(),
	}
}

// DefaultPath returns ~/.ecocalc/config.yaml, or config.yaml in the working
// directory when the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "config.yaml"
	}
	return filepath.Join(home, ".ecocalc", "config.yaml")
}

// ResolvePath picks the config file: the flag value, then ECOCALC_CONFIG,
// then DefaultPath.
func ResolvePath(flagPath string, lookupEnv func(string) (string, bool)) string {
	if flagPath != "" {
		return flagPath
	}
	if lookupEnv != nil {
		if p, ok := lookupEnv(EnvConfigPath); ok && p != "" {
			return p
		}
	}
	return DefaultPath()
}

// Load reads the config file at path and applies environment overrides.
// A missing file is not an error: defaults and environment are used.
func Load(path string) (*Config, error) {
	cfg := &Config{path: path}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	case errors.Is(statErr, os.ErrNotExist):
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("read config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("cannot access config path %s: %w", path, statErr)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if !slices.Contains([]string{OutputText, OutputJSON, OutputYAML}, c.Output.Format) {
		return fmt.Errorf("%w: output format %q (want text, json or yaml)", ErrInvalidConfig, c.Output.Format)
	}
	if !slices.Contains([]string{logging.FormatJSON, logging.FormatConsole}, c.Logging.Format) {
		return fmt.Errorf("%w: log format %q (want json or console)", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}

// ConfigPath returns the file the configuration is bound to.
func (c *Config) ConfigPath() string {
	return c.path
}

// SetConfigPath rebinds the configuration to another file.
func (c *Config) SetConfigPath(path string) {
	c.path = path
}

// Save writes the configuration as YAML to its path, creating the directory.
func (c *Config) Save() error {
	if c.path == "" {
		return errors.New("config path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", c.path, err)
	}
	return nil
}

// ToLoggingConfig converts the logging section for logging.NewLoggerWithPath.
func (c *Config) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:  c.Logging.Level,
		Format: c.Logging.Format,
		File:   c.Logging.File,
	}
}
