// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for topics configuration.
	DefaultConfigDir = ".topics"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// MemoryAuditPath keeps the audit log in memory for the process lifetime.
	MemoryAuditPath = ":memory:"
)

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	Server  ServerConfig  `yaml:"server,omitempty"`
	Log     LogConfig     `yaml:"log,omitempty"`
	Audit   AuditConfig   `yaml:"audit,omitempty"`
	Metrics MetricsConfig `yaml:"metrics,omitempty"`
}

// ServerConfig holds configuration for the HTTP API.
type ServerConfig struct {
	Addr            string        `yaml:"addr,omitempty"`
	ReadTimeout     time.Duration `yaml:"read_timeout,omitempty"`
	WriteTimeout    time.Duration `yaml:"write_timeout,omitempty"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout,omitempty"`
}

// LogConfig holds configuration for structured logging.
type LogConfig struct {
	Level  string        `yaml:"level,omitempty"`  // debug, info, warn, error
	Format string        `yaml:"format,omitempty"` // json, console
	Output string        `yaml:"output,omitempty"` // console, file, both
	File   LogFileConfig `yaml:"file,omitempty"`
}

// LogFileConfig holds log file rotation settings.
type LogFileConfig struct {
	Filename   string `yaml:"filename,omitempty"`
	MaxSize    int    `yaml:"max_size,omitempty"` // megabytes
	MaxAge     int    `yaml:"max_age,omitempty"`  // days
	MaxBackups int    `yaml:"max_backups,omitempty"`
	Compress   bool   `yaml:"compress,omitempty"`
}

// AuditConfig holds configuration for the SQLite audit log.
type AuditConfig struct {
	// Path is the SQLite database file, or ":memory:".
	Path string `yaml:"path,omitempty"`
}

// MetricsConfig holds configuration for Prometheus metrics.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
			Output: "console",
			File: LogFileConfig{
				Filename:   "logs/topics.log",
				MaxSize:    100,
				MaxAge:     30,
				MaxBackups: 10,
				Compress:   true,
			},
		},
		Audit: AuditConfig{
			Path: MemoryAuditPath,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "topics",
		},
	}
}

// Load loads configuration from the .topics directory in the given path.
// A missing config file yields the defaults.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	// Start with defaults
	cfg := Default()

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		cfg.applyEnvOverrides()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply environment variable overrides
	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if addr := os.Getenv("TOPICS_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if level := os.Getenv("TOPICS_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if path := os.Getenv("TOPICS_AUDIT_PATH"); path != "" {
		c.Audit.Path = path
	}
}

// ConfigDir returns the path to the .topics config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// Exists checks if a topics config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
