package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"sem-planner/internal/core/planner"
)

// LoadPlannerSettings returns the planner tunables. Values in the YAML
// file at path replace the built-in defaults key by key; lists are
// replaced as a whole. An empty path yields the defaults.
func LoadPlannerSettings(path string) (planner.Settings, error) {
	settings := planner.DefaultSettings()
	if path == "" {
		return settings, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return planner.Settings{}, fmt.Errorf("read planner config: %w", err)
	}
	if err = yaml.Unmarshal(raw, &settings); err != nil {
		return planner.Settings{}, fmt.Errorf("parse planner config: %w", err)
	}
	return settings, nil
}
