package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"hypr-desktops/pkg/logger"
)

// LoadFromFile loads the configuration from a JSON or TOML file.
// Keys missing from the file keep their current values.
func (c *Config) LoadFromFile(path string, log *logger.Logger) error {
	log.Debug("Loading configuration from file", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("Failed to read config file", err, "path", path)
		return err
	}
	log.Debug("Config file read successfully", "size_bytes", len(data))

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), c); err != nil {
			log.Error("Failed to parse config TOML", err)
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, c); err != nil {
			log.Error("Failed to parse config JSON", err)
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	log.Debug("Config parsed successfully")

	return c.Validate()
}

// loadConfigFromPath loads the configuration from a file on top of the defaults.
func loadConfigFromPath(path string, log *logger.Logger) (*Config, error) {
	config := DefaultConfig()
	if err := config.LoadFromFile(path, log); err != nil {
		return nil, err
	}
	return config, nil
}
