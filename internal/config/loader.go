package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadShmup loads the shoot-'em-up configuration.
// Search order: customPath -> ~/.arcade/configs/shmup.yaml -> ./configs/shmup.yaml -> embedded default.
// Files only need to name the keys they override. An unreadable custom path is an
// error; broken files elsewhere in the search order are skipped.
func LoadShmup(customPath string) (ShmupConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ShmupConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseShmup(data)
		if err != nil {
			return ShmupConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("shmup.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseShmup(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "shmup.yaml")); err == nil {
		if cfg, err := ParseShmup(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseShmup(defaultShmupYAML)
	if err != nil {
		return DefaultShmupConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseShmup decodes YAML on top of the built-in defaults and validates the result.
func ParseShmup(data []byte) (ShmupConfig, error) {
	cfg := DefaultShmupConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShmupConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ShmupConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
