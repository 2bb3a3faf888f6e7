package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDefender loads the Star Defender configuration.
// Search order: customPath -> ~/.defender/configs/defender.yaml -> ./configs/defender.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial YAML only overrides the keys it sets.
// A custom path that cannot be read, parsed or validated is an error; the other
// locations are skipped silently when unusable.
func LoadDefender(customPath string) (DefenderConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefenderConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefenderConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("defender.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "defender.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := Parse(defaultDefenderYAML); err == nil {
		return cfg, nil
	}
	return DefaultDefenderConfig(), nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (DefenderConfig, error) {
	cfg := DefaultDefenderConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefenderConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DefenderConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Marshal encodes the configuration back to YAML.
func Marshal(cfg DefenderConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".defender", "configs", filename)
}
