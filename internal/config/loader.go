package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadWorld loads a world definition.
// Search order: customPath -> ~/.idle/worlds/default.yaml -> ./worlds/default.yaml -> embedded default
func LoadWorld(customPath string) (World, error) {
	var w World

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return w, fmt.Errorf("failed to read world %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &w); err != nil {
			return w, fmt.Errorf("failed to parse world %s: %w", customPath, err)
		}
		return w, nil
	}

	// Try user config directory
	if userPath := userWorldPath("default.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &w); err == nil {
				return w, nil
			}
		}
	}

	// Try local worlds directory
	if data, err := os.ReadFile("worlds/default.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &w); err == nil {
			return w, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultWorldYAML, &w); err != nil {
		return DefaultWorld(), nil // Fallback to hardcoded if embed fails
	}
	return w, nil
}

// userWorldPath returns the path to a user world file, or empty if home is
// unavailable.
func userWorldPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".idle", "worlds", filename)
}
