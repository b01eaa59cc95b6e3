package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the optional hexfetch settings. Missing keys keep their
// defaults; the report layout and colors themselves are not configurable.
type Config struct {
	Color  string `yaml:"color"`  // auto, always, never
	Format string `yaml:"format"` // default export format: yaml, json, table
}

// Default returns the built-in settings.
func Default() Config {
	return Config{Color: "auto", Format: "yaml"}
}

// DefaultPath returns the conventional config location, or an empty string
// when the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "hexfetch", "config.yaml")
}

// Load reads the YAML config at path. An empty path means the conventional
// location, where a missing file yields the defaults; an explicitly given
// path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("%s: %v", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %v", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("%s: %v", path, err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q", c.Color)
	}

	switch c.Format {
	case "yaml", "json", "table":
	default:
		return fmt.Errorf("invalid format %q", c.Format)
	}

	return nil
}
