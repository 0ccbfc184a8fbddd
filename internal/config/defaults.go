package config

import (
	"strings"

	"github.com/idelchi/fss/internal/walk"
)

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.GroupBy == "" {
		cfg.GroupBy = "extension"
	}

	if cfg.SizeFormat == "" {
		cfg.SizeFormat = "decimal"
	}

	if cfg.Threads <= 0 {
		cfg.Threads = walk.DefaultThreads()
	}

	if cfg.Output == "" {
		cfg.Output = "table"
	}

	if cfg.Engine == "" {
		cfg.Engine = string(walk.Native)
	}

	if cfg.Top < 0 {
		cfg.Top = 0
	}

	cfg.GroupBy = strings.ToLower(cfg.GroupBy)
	cfg.SizeFormat = strings.ToLower(cfg.SizeFormat)
	cfg.Output = strings.ToLower(cfg.Output)
	cfg.Engine = strings.ToLower(cfg.Engine)
}
