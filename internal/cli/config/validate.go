package config

import (
	"fmt"

	"github.com/leapstack-labs/pandalint/pkg/lint"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Preset {
	case lint.PresetAll, lint.PresetRecommended:
	default:
		return fmt.Errorf("preset: unknown preset %q (want %q or %q)", c.Preset, lint.PresetRecommended, lint.PresetAll)
	}

	switch c.OutputFormat {
	case "", "auto", "text", "markdown", "json":
	default:
		return fmt.Errorf("output: unknown format %q (want auto, text, markdown or json)", c.OutputFormat)
	}

	for _, ext := range c.Extensions {
		if len(ext) < 2 || ext[0] != '.' {
			return fmt.Errorf("extensions: %q must start with a dot", ext)
		}
	}

	return c.Lint.Validate()
}
