// Package config loads the settings of the JSH document server.
//
// Settings come from defaults, then an optional YAML or TOML file, then
// the positional command line arguments `[jsonPath|-] [port]`.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// MemoryDocument as the document path keeps the document in memory only.
const MemoryDocument = "-"

// Config holds the server settings.
type Config struct {
	// Addr is the listen address.
	Addr string `yaml:"addr" toml:"addr"`
	// Document is the location of the persisted document, or "-".
	Document string `yaml:"document" toml:"document"`
	// Backend is one of file, bolt or memory.
	Backend string `yaml:"backend" toml:"backend"`
	// Bucket is the bbolt bucket name.
	Bucket string `yaml:"bucket" toml:"bucket"`
	// System is stored under the "system" memory key.
	System string `yaml:"system" toml:"system"`
	// MaxDepth bounds evaluation nesting.
	MaxDepth int `yaml:"max_depth" toml:"max_depth"`
	// MaxScopeDepth bounds scope nesting in parsed sources.
	MaxScopeDepth int `yaml:"max_scope_depth" toml:"max_scope_depth"`
	// CacheSize is the number of parsed expressions kept; 0 disables the
	// cache.
	CacheSize int `yaml:"cache_size" toml:"cache_size"`
	// Timeout bounds one evaluation, as a Go duration. Empty means none.
	Timeout string `yaml:"timeout" toml:"timeout"`
	// Extensions lists the pkg/ext categories to enable.
	Extensions []string `yaml:"extensions" toml:"extensions"`
	Log        Log      `yaml:"log" toml:"log"`
}

// Log configures the process logger.
type Log struct {
	// Level is one of debug, info, warn or error.
	Level string `yaml:"level" toml:"level"`
	// Format is text, json or auto (text on a terminal).
	Format string `yaml:"format" toml:"format"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Addr:          ":8080",
		Document:      MemoryDocument,
		Backend:       "file",
		Bucket:        "jsh",
		System:        "RYJSH",
		MaxDepth:      10000,
		MaxScopeDepth: 1000,
		CacheSize:     256,
		Log: Log{
			Level:  "info",
			Format: "auto",
		},
	}
}

// Load reads the file at path over the defaults. The format follows the
// extension: .yaml, .yml or .toml.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		_, err = toml.Decode(string(data), &cfg)
	default:
		return cfg, fmt.Errorf("config %s: unsupported format %q", path, filepath.Ext(path))
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyArgs applies the positional arguments `[jsonPath|-] [port]`.
func (c *Config) ApplyArgs(args []string) error {
	if len(args) > 2 {
		return fmt.Errorf("too many arguments: %q", args)
	}
	if len(args) > 0 && args[0] != "" {
		c.Document = args[0]
	}
	if len(args) > 1 && args[1] != "" {
		port := args[1]
		for _, r := range port {
			if r < '0' || r > '9' {
				return fmt.Errorf("invalid port %q", port)
			}
		}
		c.Addr = ":" + port
	}
	return nil
}

// StoreBackend returns the backend to open: memory when the document is
// "-" or empty, the configured backend otherwise.
func (c Config) StoreBackend() string {
	if c.Document == "" || c.Document == MemoryDocument {
		return "memory"
	}
	return c.Backend
}

// TimeoutDuration parses Timeout. An empty value yields 0.
func (c Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("timeout: %w", err)
	}
	if d < 0 {
		return 0, errors.New("timeout: must not be negative")
	}
	return d, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Backend {
	case "file", "bolt", "memory":
	default:
		return fmt.Errorf("backend: unknown value %q", c.Backend)
	}
	if c.Addr == "" {
		return errors.New("addr: must not be empty")
	}
	if c.MaxDepth < 1 {
		return errors.New("max_depth: must be positive")
	}
	if c.MaxScopeDepth < 0 {
		return errors.New("max_scope_depth: must not be negative")
	}
	if c.CacheSize < 0 {
		return errors.New("cache_size: must not be negative")
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unknown value %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "auto", "text", "json":
	default:
		return fmt.Errorf("log.format: unknown value %q", c.Log.Format)
	}
	return nil
}
