// Package config loads tada settings from an optional YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	appDir         = "tada"
	configFileName = "config.yml"
)

// Themes lists the accepted theme names.
var Themes = []string{"classic", "neon", "mono"}

// Config is the top-level settings document.
type Config struct {
	Theme   string  `yaml:"theme"`
	NoColor bool    `yaml:"no_color"`
	Logging Logging `yaml:"logging"`
}

// Logging controls the shared logger.
type Logging struct {
	Level  string `yaml:"level"`
	File   string `yaml:"file"`
	Format string `yaml:"format"` // "text" | "json"
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		Theme: "classic",
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/tada/config.yml (or the platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(dir, appDir, configFileName), nil
}

// Load reads the YAML file at path on top of Default. An empty path means
// DefaultPath, which may be absent. An explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays TADA_* variables. getenv is usually os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv("TADA_THEME")); v != "" {
		c.Theme = v
	}
	if v := strings.TrimSpace(getenv("TADA_LOG_LEVEL")); v != "" {
		c.Logging.Level = v
	}
	if v := strings.TrimSpace(getenv("TADA_LOG_FILE")); v != "" {
		c.Logging.File = v
	}
	if v := strings.TrimSpace(getenv("TADA_NO_COLOR")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.NoColor = b
		}
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if !validTheme(c.Theme) {
		return fmt.Errorf("theme %q: want one of %s", c.Theme, strings.Join(Themes, ", "))
	}
	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format %q: want text or json", c.Logging.Format)
	}
	return nil
}

func validTheme(name string) bool {
	for _, t := range Themes {
		if strings.EqualFold(t, name) {
			return true
		}
	}
	return false
}
