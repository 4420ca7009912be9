// ABOUTME: Configuration loading and parsing for dex-mcp
// ABOUTME: Supports YAML files with environment variable expansion and duration parsing

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// KeySettingsURL is where Dex users mint and manage API keys.
const KeySettingsURL = "https://getdex.com/appv3/settings/api"

// Config represents the complete dex-mcp configuration
type Config struct {
	API     APIConfig     `yaml:"api"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig holds Dex API connection configuration
type APIConfig struct {
	Key     string        `yaml:"key"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"-"`

	// Raw string value for YAML unmarshaling
	TimeoutRaw string `yaml:"timeout"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Path returns the configuration file location. The DEX_CONFIG
// environment variable wins; otherwise the XDG config directory is
// used, falling back to ~/.config.
func Path() string {
	if p := os.Getenv("DEX_CONFIG"); p != "" {
		return p
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "config.yaml"
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "dex-mcp", "config.yaml")
}

// Load reads a configuration file from the given path and returns a parsed Config.
// A missing file is not an error: the server is usually configured entirely
// through environment variables. Environment variables in the format
// ${VAR_NAME} are expanded, and duration strings are parsed into
// time.Duration values.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No file; fall through to env-only configuration.
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		expandedData := expandEnvVars(string(data))
		if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := parseDurations(&cfg); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
// If the environment variable is not set, it is replaced with an empty string.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// applyEnv overlays environment variables onto the parsed file.
// Environment values take precedence over file values.
func (c *Config) applyEnv() {
	if v := os.Getenv("DEX_API_KEY"); v != "" {
		c.API.Key = v
	}
	if v := os.Getenv("DEX_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
}

// Validate checks that all required configuration fields are present and valid.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	if c.API.Key == "" {
		return fmt.Errorf("DEX_API_KEY environment variable is required. Get your API key from %s", KeySettingsURL)
	}
	return nil
}

// parseDurations converts the raw duration strings into time.Duration values
func parseDurations(cfg *Config) error {
	var err error

	if cfg.API.TimeoutRaw != "" {
		cfg.API.Timeout, err = time.ParseDuration(cfg.API.TimeoutRaw)
		if err != nil {
			return fmt.Errorf("parsing timeout %q: %w", cfg.API.TimeoutRaw, err)
		}
	}

	return nil
}
