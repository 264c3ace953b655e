package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvLogLevel overrides the configured log level when set.
const EnvLogLevel = "CASEWORK_LOG_LEVEL"

const (
	configDir  = ".casework"
	configFile = "config.yaml"
)

// Config represents the casework configuration
type Config struct {
	Version  string       `yaml:"version"`
	LogLevel string       `yaml:"log_level"` // debug, info, warn, error
	Span     SpanConfig   `yaml:"span"`
	Dragon   DragonConfig `yaml:"dragon"`
}

// SpanConfig holds defaults for random sequence generation.
type SpanConfig struct {
	Size int `yaml:"size"`
	Min  int `yaml:"min"`
	Max  int `yaml:"max"`
}

// DragonConfig holds the head counts used by the dragon reports.
type DragonConfig struct {
	SuiteHeads       []int `yaml:"suite_heads"`
	CompositionHeads []int `yaml:"composition_heads"`
	VerifyLimit      int   `yaml:"verify_limit"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version:  "1",
		LogLevel: "warn",
		Span: SpanConfig{
			Size: 10,
			Min:  -10,
			Max:  10,
		},
		Dragon: DragonConfig{
			SuiteHeads:       []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 15, 20, 25, 30, 50, 99},
			CompositionHeads: []int{21, 24, 27, 30},
			VerifyLimit:      20,
		},
	}
}

// Path returns the config file location for dir.
func Path(dir string) string {
	return filepath.Join(dir, configDir, configFile)
}

// LoadConfig reads .casework/config.yaml from the specified directory.
// Keys missing from the file keep their default values.
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault reads the config from dir, falling back to Default when no
// file exists. Parse errors are still returned. The EnvLogLevel override is
// applied in both cases.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := LoadConfig(dir)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = Default(), nil
	}
	if err != nil {
		return nil, err
	}

	if lvl := strings.TrimSpace(os.Getenv(EnvLogLevel)); lvl != "" {
		cfg.LogLevel = lvl
	}
	return cfg, nil
}

// SaveConfig writes config.yaml to directory
func SaveConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Join(dir, configDir), 0755); err != nil {
		return fmt.Errorf("failed to create %s dir: %w", configDir, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
