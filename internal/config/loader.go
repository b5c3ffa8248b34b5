package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a loaded config came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// localConfigPath is relative to the working directory.
const localConfigPath = "configs/runner.yaml"

// Load loads the runner configuration.
// Search order: customPath -> ~/.runner/config.yaml -> ./configs/runner.yaml -> embedded default.
// Only a custom path produces read or parse errors; the other locations are skipped
// when missing or malformed. The returned config is always validated.
func Load(customPath string) (RunnerConfig, Source, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		return cfg, SourceCustom, nil
	}

	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, SourceUser, nil
		}
	}

	if cfg, err := loadFile(localConfigPath); err == nil {
		return cfg, SourceLocal, nil
	}

	var cfg RunnerConfig
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultRunnerConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// loadFile reads a YAML file on top of the built-in defaults, so a file
// only needs to list the values it changes.
func loadFile(path string) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "config.yaml")
}

// Marshal renders a config as YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
