package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileNameInCurrentDir is the config file name looked for in the current directory (higher priority than default path).
const ConfigFileNameInCurrentDir = "kafka-unauth.yaml"

// DefaultConfigPath returns the default config file path (~/.kafka-unauth/config.yaml).
// Returns empty string if UserHomeDir fails.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".kafka-unauth", "config.yaml")
}

// ResolveConfigPath returns the path used when path is empty: first kafka-unauth.yaml in the current directory (if present), then default path.
func ResolveConfigPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("unable to get current directory: %w", err)
	}
	currentDirConfig := filepath.Join(wd, ConfigFileNameInCurrentDir)
	if _, err := os.Stat(currentDirConfig); err == nil {
		return currentDirConfig, nil
	}
	p := DefaultConfigPath()
	if p == "" {
		return "", fmt.Errorf("unable to determine home directory for default config path: %w", os.ErrInvalid)
	}
	return p, nil
}

// LoadConfig loads configuration from the given path.
// An explicit path must exist. When path is empty the search path is used,
// and a missing file there yields an empty config.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = ResolveConfigPath()
		if err != nil {
			return Config{}, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}
