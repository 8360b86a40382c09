package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// applyFile overlays values from the YAML file named by LQO_CONFIG_FILE.
// Keys absent from the file keep their current values. An unset variable is
// not an error; a configured file that cannot be read or parsed is.
func applyFile(cfg *Config) error {
	path := os.Getenv(envConfigFile)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return nil
}
