// Package config loads the decor CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Config mirrors decor.yaml. JSON files parse too since YAML is a superset.
type Config struct {
	Template     string            `yaml:"template"`
	Output       string            `yaml:"output"`
	Renderer     string            `yaml:"renderer"`
	Strict       bool              `yaml:"strict"`
	SanitizeHTML bool              `yaml:"sanitize_html"`
	Extensions   []string          `yaml:"extensions,omitempty"`
	Jobs         int               `yaml:"jobs"`
	LogLevel     string            `yaml:"log_level"`
	HTTPTimeout  time.Duration     `yaml:"http_timeout"`
	Parameters   map[string]string `yaml:"parameters,omitempty"`
	Theme        Theme             `yaml:"theme"`
}

// Theme feeds theme.RendererConfig.
type Theme struct {
	Name    string            `yaml:"name"`
	Variant string            `yaml:"variant"`
	CSSVars map[string]string `yaml:"css_vars,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Renderer:    "template",
		Jobs:        4,
		LogLevel:    "info",
		HTTPTimeout: 10 * time.Second,
		Parameters:  map[string]string{},
	}
}

// ConfigPath returns the default config location.
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "decor.yaml"
	}
	return filepath.Join(home, ".config", "decor", "config.yaml")
}

// Load reads path, or ConfigPath when path is empty. A missing default file
// yields DefaultConfig; a missing explicit file is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = ConfigPath()
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Parameters == nil {
		cfg.Parameters = map[string]string{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	base := filepath.Dir(path)
	cfg.Template = resolve(base, cfg.Template)
	cfg.Output = resolve(base, cfg.Output)
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Renderer) == "" {
		return fmt.Errorf("renderer cannot be empty")
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative")
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http_timeout must not be negative")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level '%s': %w", c.LogLevel, err)
	}
	return nil
}

// resolve makes relative file paths relative to the config file. URLs and
// absolute paths are kept.
func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) || strings.Contains(path, "://") {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return filepath.Join(base, path)
}
