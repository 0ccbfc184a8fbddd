// Package config loads optional defaults for fss from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that overrides the config file location.
const EnvPath = "FSS_CONFIG"

// Config holds defaults for command-line flags. Flags given explicitly take precedence.
type Config struct {
	GroupBy      string   `yaml:"group_by"`
	SizeFormat   string   `yaml:"size_format"`
	ApparentSize bool     `yaml:"apparent_size"`
	Threads      int      `yaml:"threads"`
	Verbose      bool     `yaml:"verbose"`
	Output       string   `yaml:"output"`
	Engine       string   `yaml:"engine"`
	Top          int      `yaml:"top"`
	Sizes        []string `yaml:"sizes"`
}

// DefaultPath returns $FSS_CONFIG if set, else fss/config.yaml under the
// user configuration directory.
func DefaultPath() (string, error) {
	if path := os.Getenv(EnvPath); path != "" {
		return path, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config directory: %w", err)
	}

	return filepath.Join(dir, "fss", "config.yaml"), nil
}

// Load reads and parses the config file at path and applies defaults.
// A missing file is only an error when mustExist is set.
func Load(path string, mustExist bool) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)

	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %q: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !mustExist:
	default:
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	ApplyDefaults(cfg)

	return cfg, nil
}
