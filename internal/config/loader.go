package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".qaradar"

// ErrConfigNotFound is returned when the configuration file does not
// exist. Callers decide whether that is fatal based on whether the path
// was given explicitly.
var ErrConfigNotFound = errors.New("configuration file not found")

// LoadConfigFile loads origin configurations from a YAML file.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	if cf.Origins == nil {
		cf.Origins = make(map[string]OriginConfig)
	}

	return &cf, nil
}

// FindConfigFile locates the configuration file:
//  1. an explicitly provided path wins,
//  2. .qaradar in the current directory,
//  3. .qaradar in the user's home directory.
//
// Returns the path, or empty string if nothing was found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		return configPath
	}

	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	candidate := filepath.Join(home, DefaultConfigFile)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}

	return ""
}
