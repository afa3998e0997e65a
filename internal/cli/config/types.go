// Package config provides configuration management for the pandalint CLI.
//
// This package extends the shared configuration types from internal/config
// with CLI-specific fields and functionality. The shared types (LintConfig,
// RuleOptions) are re-exported here via type aliases for convenience.
package config

import (
	sharedcfg "github.com/leapstack-labs/pandalint/internal/config"
)

// LintConfig is an alias for the shared lint configuration.
// This allows CLI code to use config.LintConfig without importing internal/config.
type LintConfig = sharedcfg.LintConfig

// RuleOptions is an alias for the shared rule options type.
type RuleOptions = sharedcfg.RuleOptions

// Config holds all CLI configuration options.
type Config struct {
	DesignConfig string      `koanf:"design_config"`
	Preset       string      `koanf:"preset"`
	Extensions   []string    `koanf:"extensions"`
	Ignore       []string    `koanf:"ignore"`
	Lint         *LintConfig `koanf:"lint"`
	Verbose      bool        `koanf:"verbose"`
	OutputFormat string      `koanf:"output"`

	// ProjectRoot is the directory holding the config file, or the working
	// directory when there is none.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values - uses shared defaults from internal/config
const (
	DefaultPreset = sharedcfg.DefaultPreset
	DefaultOutput = sharedcfg.DefaultOutput
)

// Project returns the shared project view of c.
func (c *Config) Project() *sharedcfg.ProjectConfig {
	return &sharedcfg.ProjectConfig{
		DesignConfig: c.DesignConfig,
		Preset:       c.Preset,
		Extensions:   c.Extensions,
		Ignore:       c.Ignore,
		Lint:         c.Lint,
	}
}
