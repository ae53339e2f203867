package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.skyfall/config.yaml -> ./configs/skyfall.yaml -> embedded default.
// Files are merged onto the defaults, so they only need the keys they change.
// A broken custom file is an error; broken search-path files are skipped and
// reported in skipped so the caller can log them.
func Load(customPath string) (cfg Config, skipped []error, err error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, nil, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, nil, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil, nil
	}

	for _, path := range []string{userConfigPath("config.yaml"), "configs/skyfall.yaml"} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := parse(data)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("failed to parse config %s: %w", path, err))
			continue
		}
		return cfg, skipped, nil
	}

	// Use embedded default YAML
	cfg, err = parse(defaultYAML)
	if err != nil {
		return Default(), skipped, nil // Fallback to hardcoded if embed fails
	}
	return cfg, skipped, nil
}

func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyfall", filename)
}
