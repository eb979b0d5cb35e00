/*
Package config manages TOML config for the TextIT client.
*/
package config

import (
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/prostmich/textit-go/internal/utils"
	"github.com/prostmich/textit-go/pkg/api"
)

// Config holds the entire config structure
type Config struct {
	API APIConfig `toml:"api"`
	Log LogConfig `toml:"log"`
}

// APIConfig has endpoint and transport related options.
type APIConfig struct {
	URL               string  `toml:"url"`
	HelpURL           string  `toml:"help_url"`
	TimeoutMS         int     `toml:"timeout_ms"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			URL:               api.DefaultURL,
			HelpURL:           api.HelpURL,
			TimeoutMS:         30000,
			RequestsPerSecond: 0,
			Burst:             1,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// LoadConfig loads from a TOML file, overlaying values onto defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return nil, err
	}
	return config, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
