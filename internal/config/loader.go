package config

import (
	"os"
	"path/filepath"
	"time"

	"monet/internal/logging"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config     *Config
	configPath string
}

// NewLoader creates a new configuration loader. The config file is taken from
// MONET_CONFIG, falling back to ~/.monet/config.yaml when it exists.
func NewLoader() *Loader {
	return NewLoaderWithPath(DefaultConfigPath())
}

// NewLoaderWithPath creates a loader that reads the YAML file at path. An
// empty path skips the file step.
func NewLoaderWithPath(path string) *Loader {
	return &Loader{
		config:     NewConfig(),
		configPath: path,
	}
}

// DefaultConfigPath returns the config file location, or "" when there is
// none.
func DefaultConfigPath() string {
	if path := os.Getenv("MONET_CONFIG"); path != "" {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(homeDir, ".monet", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML config file
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	if l.configPath != "" {
		logging.Debugf("loading config file %s\n", l.configPath)
		if err := l.config.LoadFromFile(l.configPath); err != nil {
			return nil, err
		}
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Storage overrides
	Dir            *string
	Filename       *string
	Backend        *string
	WriteTimeout   *time.Duration
	DirPermissions *uint32

	// Display overrides
	DateFormat *string
	NoColor    *bool

	// Validation overrides
	DescriptionMaxLength *int

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.Dir != nil {
		config.Storage.Dir = *overrides.Dir
	}
	if overrides.Filename != nil {
		config.Storage.Filename = *overrides.Filename
	}
	if overrides.Backend != nil {
		config.Storage.Backend = *overrides.Backend
	}
	if overrides.WriteTimeout != nil {
		config.Storage.WriteTimeout = *overrides.WriteTimeout
	}
	if overrides.DirPermissions != nil {
		config.Storage.DirPermissions = *overrides.DirPermissions
	}

	if overrides.DateFormat != nil {
		config.Display.DateFormat = *overrides.DateFormat
	}
	if overrides.NoColor != nil && *overrides.NoColor {
		config.Display.Color = false
	}

	if overrides.DescriptionMaxLength != nil {
		config.Validation.DescriptionMaxLength = *overrides.DescriptionMaxLength
	}

	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}
