// Package config manages yagc configuration and the .yagc directory
// structure. It handles locating the repository root, and loading,
// saving, and initializing the repository configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/ryandancy/yagc/internal/apperrors"
)

const (
	YagcDir      = ".yagc"
	ConfigFile   = "config"
	DatabaseFile = "yagc.db"
	CommitsDir   = "commits"
)

// Config represents the yagc repository configuration.
type Config struct {
	Editor           string `toml:"editor"`             // editor command for commit messages; $EDITOR when empty
	RetryMaxAttempts int    `toml:"retry_max_attempts"` // retries for transient storage errors
	RetryBackoffMs   int    `toml:"retry_backoff_ms"`   // initial retry backoff in milliseconds

	path string // path to the .yagc directory
}

// defaults fills in zero-valued tuning fields.
func (c *Config) defaults() {
	if c.RetryMaxAttempts == 0 {
		c.RetryMaxAttempts = 3
	}
	if c.RetryBackoffMs == 0 {
		c.RetryBackoffMs = 250
	}
}

// FindRoot finds the .yagc directory by walking up from the given
// directory. An empty start means the current working directory.
func FindRoot(start string) (string, error) {
	dir := start
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return "", err
		}
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		yagcPath := filepath.Join(dir, YagcDir)
		if info, err := os.Stat(yagcPath); err == nil && info.IsDir() {
			return yagcPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", apperrors.ErrNotARepository
		}
		dir = parent
	}
}

// Load loads the configuration for the repository containing start.
func Load(start string) (*Config, error) {
	yagcPath, err := FindRoot(start)
	if err != nil {
		return nil, err
	}
	return LoadAt(yagcPath)
}

// LoadAt loads the configuration from a known .yagc directory.
func LoadAt(yagcPath string) (*Config, error) {
	configPath := filepath.Join(yagcPath, ConfigFile)
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.path = yagcPath
	cfg.defaults()
	return &cfg, nil
}

// Save saves the configuration to disk.
func (c *Config) Save() error {
	configPath := filepath.Join(c.path, ConfigFile)
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(configPath, data, 0644)
}

// YagcPath returns the path to the .yagc directory.
func (c *Config) YagcPath() string {
	return c.path
}

// Root returns the repository root (the parent of the .yagc directory).
func (c *Config) Root() string {
	return filepath.Dir(c.path)
}

// DatabasePath returns the path to the state database.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.path, DatabaseFile)
}

// CommitsPath returns the path to the commit snapshots directory.
func (c *Config) CommitsPath() string {
	return filepath.Join(c.path, CommitsDir)
}

// Initialize creates a .yagc directory with initial configuration under
// root. It reports created=false without error when the repository is
// already initialized. An existing but empty .yagc directory is adopted
// rather than rejected.
func Initialize(root string) (cfg *Config, created bool, err error) {
	root, err = filepath.Abs(root)
	if err != nil {
		return nil, false, err
	}
	yagcPath := filepath.Join(root, YagcDir)

	if _, err := os.Stat(filepath.Join(yagcPath, ConfigFile)); err == nil {
		cfg, err := LoadAt(yagcPath)
		return cfg, false, err
	}

	if err := os.MkdirAll(yagcPath, 0755); err != nil {
		return nil, false, fmt.Errorf("create %s directory: %w", YagcDir, err)
	}
	if err := os.MkdirAll(filepath.Join(yagcPath, CommitsDir), 0755); err != nil {
		return nil, false, fmt.Errorf("create commits directory: %w", err)
	}

	cfg = &Config{path: yagcPath}
	cfg.defaults()
	if err := cfg.Save(); err != nil {
		return nil, false, err
	}

	return cfg, true, nil
}
