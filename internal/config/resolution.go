package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

// Source names where a resolved value came from.
const (
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// Theme names accepted by the Theme setting.
const (
	ThemeDefault = "default"
	ThemeMono    = "mono"
)

// Config holds the final resolved configuration after applying all priority rules.
type Config struct {
	NoColor  bool
	CI       bool
	Debug    bool
	Verbose  bool
	MaxDepth int // 0 keeps the formatter default
	Theme    string

	// Resolution metadata (for debugging)
	NoColorSource  string
	CISource       string
	DebugSource    string
	VerboseSource  string
	MaxDepthSource string
	ThemeSource    string
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() *Config {
	return &Config{
		Theme:          ThemeDefault,
		NoColorSource:  SourceDefault,
		CISource:       SourceDefault,
		DebugSource:    SourceDefault,
		VerboseSource:  SourceDefault,
		MaxDepthSource: SourceDefault,
		ThemeSource:    SourceDefault,
	}
}

// Resolve merges file settings and environment overrides onto the defaults.
// getenv is consulted for environment variables; a nil file means no file.
//
// Resolution order:
//  1. Start from defaults
//  2. Apply file config
//  3. Apply environment variables
//  4. Apply CI mode overrides (CI implies NoColor)
func Resolve(file *FileConfig, getenv func(string) string) (*Config, error) {
	cfg := Default()
	if file != nil {
		applyFile(cfg, file)
	}
	if err := applyEnv(cfg, getenv); err != nil {
		return nil, err
	}

	if cfg.CI {
		cfg.NoColor = true
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func applyFile(cfg *Config, file *FileConfig) {
	setBool(&cfg.NoColor, &cfg.NoColorSource, file.NoColor, SourceFile)
	setBool(&cfg.CI, &cfg.CISource, file.CI, SourceFile)
	setBool(&cfg.Debug, &cfg.DebugSource, file.Debug, SourceFile)
	setBool(&cfg.Verbose, &cfg.VerboseSource, file.Verbose, SourceFile)
	if file.MaxDepth != nil {
		cfg.MaxDepth = *file.MaxDepth
		cfg.MaxDepthSource = SourceFile
	}
	if file.Theme != "" {
		cfg.Theme = file.Theme
		cfg.ThemeSource = SourceFile
	}
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	setBool(&cfg.NoColor, &cfg.NoColorSource, getEnvBool(getenv, "VERDICT_NO_COLOR", "NO_COLOR"), SourceEnv)
	setBool(&cfg.CI, &cfg.CISource, getEnvBool(getenv, "VERDICT_CI", "CI"), SourceEnv)
	setBool(&cfg.Debug, &cfg.DebugSource, getEnvBool(getenv, "VERDICT_DEBUG"), SourceEnv)
	setBool(&cfg.Verbose, &cfg.VerboseSource, getEnvBool(getenv, "VERDICT_VERBOSE"), SourceEnv)

	if val := getenv("VERDICT_MAX_DEPTH"); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid VERDICT_MAX_DEPTH %q: %w", val, err)
		}
		cfg.MaxDepth = n
		cfg.MaxDepthSource = SourceEnv
	}
	if val := getenv("VERDICT_THEME"); val != "" {
		cfg.Theme = val
		cfg.ThemeSource = SourceEnv
	}
	return nil
}

func setBool(dst *bool, source *string, val *bool, from string) {
	if val != nil {
		*dst = *val
		*source = from
	}
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// Returns nil if none are set, or a pointer to the boolean value.
func getEnvBool(getenv func(string) string, keys ...string) *bool {
	for _, key := range keys {
		if val := getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}

// validate returns errors for invalid resolved states.
func validate(cfg *Config) error {
	if cfg.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got: %d", cfg.MaxDepth)
	}
	switch cfg.Theme {
	case ThemeDefault, ThemeMono:
	default:
		return fmt.Errorf("invalid theme value: %s (must be: %s, %s)", cfg.Theme, ThemeDefault, ThemeMono)
	}
	return nil
}

// Load resolves configuration from the config file on disk and the process
// environment.
func Load() (*Config, error) {
	file, err := LoadFile(FindConfigPath())
	if err != nil {
		return nil, err
	}
	return Resolve(file, os.Getenv)
}

var (
	currentOnce sync.Once
	current     *Config
)

// Current returns the process-wide configuration, loading it on first use.
// A broken config file or environment is reported on stderr once and the
// defaults are used instead.
func Current() *Config {
	currentOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v. Using defaults.\n", err)
			cfg = Default()
		}
		current = cfg
	})
	return current
}
