package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"hypr-desktops/pkg/logger"
)

const (
	configDirName  = "hypr-desktops"
	configFileName = "config.json"
)

// initializeConfig creates or loads the configuration.
func initializeConfig(providedPath string, defaultPath string, log *logger.Logger) (*Config, error) {
	if providedPath != "" {
		config, err := loadConfigFromPath(providedPath, log)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from provided path: %w", err)
		}
		return config, nil
	}

	if _, err := os.Stat(defaultPath); os.IsNotExist(err) {
		config := DefaultConfig()
		data, err := json.MarshalIndent(config, "", "    ")
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(defaultPath, data, 0644); err != nil {
			return nil, err
		}
		log.Info("Wrote default configuration", "path", defaultPath)
		return config, nil
	}

	config, err := loadConfigFromPath(defaultPath, log)
	if err != nil {
		log.Warn("Falling back to default configuration", "path", defaultPath, "error", err.Error())
		return DefaultConfig(), nil
	}
	return config, nil
}

// FindConfig locates and initializes the configuration.
//
// A provided path must load. Otherwise the user config file is used,
// written with defaults on first run, and the built-in defaults are the
// last resort.
func FindConfig(providedPath string, log *logger.Logger) (*Config, error) {
	log.Info("Looking for configuration", "provided_path", providedPath)

	homeConfigDir, err := os.UserConfigDir()
	if err != nil {
		log.Error("Failed to get user config directory", err)
		return nil, err
	}

	defaultConfigDir := filepath.Join(homeConfigDir, configDirName)
	defaultConfigPath := filepath.Join(defaultConfigDir, configFileName)

	log.Debug("Configuration paths",
		"config_dir", defaultConfigDir,
		"config_path", defaultConfigPath)

	if err := os.MkdirAll(defaultConfigDir, 0755); err != nil {
		log.Error("Failed to create directory", err, "path", defaultConfigDir)
		return nil, err
	}

	return initializeConfig(providedPath, defaultConfigPath, log)
}
