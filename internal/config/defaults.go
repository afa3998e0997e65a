package config

import "github.com/leapstack-labs/pandalint/pkg/lint"

// Default configuration values.
const (
	DefaultPreset = lint.PresetRecommended
	DefaultOutput = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// DefaultExtensions lists the file extensions linted when none are configured.
var DefaultExtensions = []string{".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs"}

// DefaultIgnore lists the globs skipped by directory walks.
var DefaultIgnore = []string{"**/node_modules/**", "**/styled-system/**", "**/dist/**", "**/.git/**"}

// ApplyDefaults fills unset fields of c.
func (c *ProjectConfig) ApplyDefaults() {
	if c == nil {
		return
	}
	if c.Preset == "" {
		c.Preset = DefaultPreset
	}
	if len(c.Extensions) == 0 {
		c.Extensions = append([]string(nil), DefaultExtensions...)
	}
	if c.Ignore == nil {
		c.Ignore = append([]string(nil), DefaultIgnore...)
	}
}
