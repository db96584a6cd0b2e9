package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file looked up on disk.
const FileName = ".verdict.yaml"

// FileConfig mirrors .verdict.yaml. Pointer fields distinguish an explicit
// false from an absent key.
type FileConfig struct {
	NoColor  *bool  `yaml:"no_color"`
	CI       *bool  `yaml:"ci"`
	Debug    *bool  `yaml:"debug"`
	Verbose  *bool  `yaml:"verbose"`
	MaxDepth *int   `yaml:"max_depth"`
	Theme    string `yaml:"theme"`
}

// FindConfigPath determines the path to the configuration file.
// It checks the working directory first, then the user config directory.
// It returns "" when neither holds a config file.
func FindConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	userPath := filepath.Join(configHome, "verdict", FileName)
	if _, err := os.Stat(userPath); err == nil {
		return userPath
	}
	return ""
}

// LoadFile reads and parses the config file at path. An empty path yields an
// empty FileConfig.
func LoadFile(path string) (*FileConfig, error) {
	fc := &FileConfig{}
	if path == "" {
		return fc, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fc, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, fc); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return fc, nil
}
