package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"monet/internal/domain"
	"monet/internal/errors"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Default storage file names, used when no filename is configured.
const (
	DefaultDataFilename     = "monet.txt"
	DefaultDatabaseFilename = "monet.db"
)

// Config holds all configuration options for monet
type Config struct {
	Storage     StorageConfig     `yaml:"storage"`
	Display     DisplayConfig     `yaml:"display"`
	Validation  ValidationConfig  `yaml:"validation"`
	Application ApplicationConfig `yaml:"application"`
}

// StorageConfig holds storage-related configuration
type StorageConfig struct {
	Dir            string        `yaml:"dir" env:"MONET_DIR"`
	Filename       string        `yaml:"filename" env:"MONET_FILENAME"`
	Backend        string        `yaml:"backend" env:"MONET_BACKEND"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"MONET_WRITE_TIMEOUT"`
	DirPermissions uint32        `yaml:"dir_permissions" env:"MONET_DIR_PERMISSIONS"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DateFormat string `yaml:"date_format" env:"MONET_DATE_FORMAT"`
	Divider    string `yaml:"divider" env:"MONET_DIVIDER"`
	Color      bool   `yaml:"color" env:"MONET_COLOR"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	DescriptionMaxLength int `yaml:"description_max_length" env:"MONET_DESCRIPTION_MAX"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"MONET_TIMEOUT"`
	Verbose bool          `yaml:"verbose" env:"MONET_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Storage: StorageConfig{
			Dir:            filepath.Join(homeDir, ".monet"),
			Filename:       "",
			Backend:        BackendFile,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Display: DisplayConfig{
			DateFormat: domain.DefaultDisplayLayout,
			Divider:    "____________________________________________________________",
			Color:      true,
		},
		Validation: ValidationConfig{
			DescriptionMaxLength: 255,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// StorageFilename returns the configured filename, or the default for the
// selected backend when none is set
func (c *Config) StorageFilename() string {
	if c.Storage.Filename != "" {
		return c.Storage.Filename
	}
	if c.Storage.Backend == BackendSQLite {
		return DefaultDatabaseFilename
	}
	return DefaultDataFilename
}

// GetStoragePath returns the full path to the data file or database
func (c *Config) GetStoragePath() string {
	return filepath.Join(c.Storage.Dir, c.StorageFilename())
}

// GetWriteTimeout returns the time allowed for one save
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Storage.WriteTimeout
}

// LoadFromFile merges the YAML file at path over the current values. Keys
// missing from the file keep their current value.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewConfigError("config_file", err.Error())
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.NewConfigError("config_file", "invalid YAML in "+path+": "+err.Error())
	}
	return nil
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if dir := os.Getenv("MONET_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("MONET_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if backend := os.Getenv("MONET_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if timeout := os.Getenv("MONET_WRITE_TIMEOUT"); timeout != "" {
		c.Storage.WriteTimeout = ParseDurationWithFallback(timeout, c.Storage.WriteTimeout)
	}
	if perms := os.Getenv("MONET_DIR_PERMISSIONS"); perms != "" {
		c.Storage.DirPermissions = ParseUint32WithFallback(perms, 8, c.Storage.DirPermissions)
	}

	// Display configuration
	if format := os.Getenv("MONET_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}
	if divider := os.Getenv("MONET_DIVIDER"); divider != "" {
		c.Display.Divider = divider
	}
	if color := os.Getenv("MONET_COLOR"); color != "" {
		c.Display.Color = ParseBoolWithFallback(color, c.Display.Color)
	}
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		c.Display.Color = false
	}

	// Validation configuration
	if maxLen := os.Getenv("MONET_DESCRIPTION_MAX"); maxLen != "" {
		c.Validation.DescriptionMaxLength = ParseIntWithFallback(maxLen, c.Validation.DescriptionMaxLength)
	}

	// Application configuration
	if timeout := os.Getenv("MONET_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("MONET_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate storage configuration
	if c.Storage.Dir == "" {
		return errors.NewConfigError("storage.dir", "storage directory cannot be empty")
	}
	if strings.ContainsAny(c.Storage.Filename, `/\`) {
		return errors.NewConfigError("storage.filename", "storage filename must not contain a directory; use storage.dir")
	}
	if c.Storage.Backend != BackendFile && c.Storage.Backend != BackendSQLite {
		return errors.NewConfigError("storage.backend", "backend must be \"file\" or \"sqlite\"")
	}
	if c.Storage.WriteTimeout <= 0 {
		return errors.NewConfigError("storage.write_timeout", "write timeout must be positive")
	}
	if c.Storage.DirPermissions == 0 || c.Storage.DirPermissions > 0777 {
		return errors.NewConfigError("storage.dir_permissions", "directory permissions must be between 0001 and 0777")
	}

	// Validate display configuration
	if c.Display.DateFormat == "" {
		return errors.NewConfigError("display.date_format", "date format cannot be empty")
	}

	// Validate validation configuration
	if c.Validation.DescriptionMaxLength < 1 {
		return errors.NewConfigError("validation.description_max_length", "description maximum length must be at least 1")
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return errors.NewConfigError("application.timeout", "application timeout must be positive")
	}

	return nil
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
