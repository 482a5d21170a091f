package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the optional config file overrides
type FileConfig struct {
	Language        string `toml:"language"`
	GridColumns     int    `toml:"grid_columns"`
	MinFontSize     int    `toml:"min_font_size"`
	MaxFontSize     int    `toml:"max_font_size"`
	DefaultFontSize int    `toml:"default_font_size"`
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "memegrid", "config.toml")
}

// LoadFileConfig loads the config file. A missing file is not an
// error; the zero value applies no overrides.
func LoadFileConfig() (*FileConfig, error) {
	return LoadFileConfigFrom(GetConfigFilePath())
}

// LoadFileConfigFrom loads overrides from an explicit path
func LoadFileConfigFrom(path string) (*FileConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &FileConfig{}, nil
	}

	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	return &cfg, nil
}
