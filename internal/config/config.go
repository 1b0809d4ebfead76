// Package config loads picksync settings from an optional YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/marcus/picksync/internal/mapping"
	"github.com/marcus/picksync/internal/metadata"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = ".picksync.yaml"

// Config holds tool settings shared by every command.
type Config struct {
	Namespace  string   `yaml:"namespace"`
	Indent     int      `yaml:"indent"`
	LogLevel   string   `yaml:"log_level"`  // "debug", "info", "warn" (default), "error"
	LogFormat  string   `yaml:"log_format"` // "text" (default) or "json"
	Extensions []string `yaml:"extensions"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Namespace:  metadata.Namespace,
		Indent:     metadata.DefaultIndent,
		LogLevel:   "warn",
		LogFormat:  "text",
		Extensions: append([]string(nil), mapping.DefaultExtensions...),
	}
}

// Load reads the config at path on top of the defaults, then applies
// PICKSYNC_* environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
		default:
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PICKSYNC_NAMESPACE"); v != "" {
		c.Namespace = v
	}
	if v := os.Getenv("PICKSYNC_INDENT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PICKSYNC_INDENT: %w", err)
		}
		c.Indent = n
	}
	if v := os.Getenv("PICKSYNC_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("PICKSYNC_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv("PICKSYNC_EXTENSIONS"); v != "" {
		c.Extensions = splitList(v)
	}
	return nil
}

// Validate normalizes extensions and rejects unusable values.
func (c *Config) Validate() error {
	if c.Indent < 0 {
		return fmt.Errorf("indent must not be negative, got %d", c.Indent)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log_format %q (want text or json)", c.LogFormat)
	}

	exts := make([]string, 0, len(c.Extensions))
	for _, e := range c.Extensions {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts = append(exts, e)
	}
	if len(exts) == 0 {
		exts = append(exts, mapping.DefaultExtensions...)
	}
	c.Extensions = exts
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
