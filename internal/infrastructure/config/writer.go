package config

import (
	"fmt"
	"os"
)

// DefaultConfigYAML is the default configuration content.
const DefaultConfigYAML = `# Topics Configuration

server:
  addr: ":8080"
  read_timeout: 15s
  write_timeout: 15s
  shutdown_timeout: 10s

log:
  level: info        # debug, info, warn, error
  format: json       # json, console
  output: console    # console, file, both
  file:
    filename: logs/topics.log
    max_size: 100
    max_age: 30
    max_backups: 10
    compress: true

audit:
  path: ":memory:"   # or a file such as .topics/audit.db

metrics:
  enabled: true
  namespace: topics
`

// WriteDefault creates the .topics directory and writes a default config file.
func WriteDefault(basePath string) error {
	configDir := ConfigDir(basePath)
	configFile := ConfigFilePath(basePath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists: %s", configFile)
	}

	if err := os.WriteFile(configFile, []byte(DefaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
