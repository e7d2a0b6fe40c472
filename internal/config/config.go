// Package config resolves where the tag store lives. The file name
// defaults to ftag.db in the working directory and can be overridden by
// the FTAG_DB environment variable (also honored from a .env file) or by
// the global config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in
// $XDG_CONFIG_HOME/ftag/config.yml.
type GlobalConfig struct {
	DBName string `yaml:"db_name,omitempty"` // Store file name, defaults to ftag.db
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "ftag"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"

	// DBNameEnv overrides the store file name when set.
	DBNameEnv = "FTAG_DB"
)

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/ftag/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobal loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobal() (*GlobalConfig, error) {
	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}
	return &cfg, nil
}

// Save writes the global configuration, creating the directory if needed.
func (c *GlobalConfig) Save() error {
	path := GlobalConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// DBName resolves the store file name. Precedence: FTAG_DB environment
// variable, then the global config, then the given default.
func DBName(defaultName string) string {
	if name := os.Getenv(DBNameEnv); name != "" {
		return name
	}
	if cfg, err := LoadGlobal(); err == nil && cfg.DBName != "" {
		return cfg.DBName
	}
	return defaultName
}

// DBPath returns the store path inside dir after name resolution.
func DBPath(dir, defaultName string) string {
	return filepath.Join(dir, DBName(defaultName))
}
