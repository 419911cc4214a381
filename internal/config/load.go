package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load builds the configuration from defaults merged with an optional YAML
// file. An empty path falls back to ./voxgfx.yaml when present; a missing
// fallback file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = "voxgfx.yaml"
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
