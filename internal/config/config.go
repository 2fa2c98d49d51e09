// =============================================================================
// oss-this - Configuration Module
// =============================================================================
//
// This module loads the optional YAML configuration file. Every setting has a
// default, so the tool runs without a configuration file; command-line flags
// take precedence over the values loaded here.
//
// EXAMPLE (.oss-this.yaml):
//   template_dir: ./my-templates
//   destination: ../my-project
//   continue_on_error: true
//   log_level: info
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up when --config is not given.
const DefaultFile = ".oss-this.yaml"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// TemplateDir overrides the bundled template root. The directory must
	// contain the github/ and docs/ trees.
	// Default: "" (use the bundled templates)
	TemplateDir string `yaml:"template_dir"`

	// Destination is the default destination root.
	// Default: "." (the working directory)
	Destination string `yaml:"destination"`

	// ContinueOnError determines whether a failed copy lets the remaining
	// copies run.
	// Default: true
	ContinueOnError *bool `yaml:"continue_on_error"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "error"
	LogLevel string `yaml:"log_level"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var config Config
	applyDefaults(&config)
	return &config
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Load loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//   - required: When false, a missing file yields the default configuration.
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file cannot be read, parsed or validated.
func Load(configPath string, required bool) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(config *Config) {
	if config.Destination == "" {
		config.Destination = "."
	}
	if config.ContinueOnError == nil {
		continueOnError := true
		config.ContinueOnError = &continueOnError
	}
	if config.LogLevel == "" {
		config.LogLevel = "error"
	}
}

// validate checks the configuration after defaults are applied.
func validate(config *Config) error {
	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", config.LogLevel)
	}

	if config.TemplateDir != "" {
		info, err := os.Stat(config.TemplateDir)
		if err != nil {
			return fmt.Errorf("template_dir %s: %w", config.TemplateDir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("template_dir %s is not a directory", config.TemplateDir)
		}
	}

	return nil
}

// =============================================================================
// ACCESSORS
// =============================================================================

// TemplateFS returns the configured template root, or nil when the bundled
// templates should be used.
func (c *Config) TemplateFS() fs.FS {
	if c.TemplateDir == "" {
		return nil
	}
	return os.DirFS(c.TemplateDir)
}

// Level returns the slog level for LogLevel.
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
