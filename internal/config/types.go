// Package config provides shared configuration types for pandalint.
// This package is decoupled from CLI concerns and can be used by the LSP
// and other tools that need to load project configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/lint"
)

// LintConfig holds lint rule configuration.
type LintConfig struct {
	// Disabled contains rule IDs to disable
	Disabled []string `koanf:"disabled"`

	// Severity maps rule ID to severity override (error, warning, info, hint, off)
	Severity map[string]string `koanf:"severity"`

	// Rules contains rule-specific options
	Rules map[string]RuleOptions `koanf:"rules"`
}

// RuleOptions holds rule-specific configuration options.
type RuleOptions map[string]any

// ProjectConfig holds the project configuration shared by the CLI and the LSP.
type ProjectConfig struct {
	DesignConfig string      `koanf:"design_config"`
	Preset       string      `koanf:"preset"`
	Extensions   []string    `koanf:"extensions"`
	Ignore       []string    `koanf:"ignore"`
	Lint         *LintConfig `koanf:"lint"`
}

// BuildLintConfig turns a preset name and the project lint section into an
// analyzer configuration. Unknown severities are rejected; "off" disables
// the rule.
func BuildLintConfig(preset string, lc *LintConfig) (*lint.Config, error) {
	cfg, err := lint.Preset(preset)
	if err != nil {
		return nil, err
	}
	if lc == nil {
		return cfg, nil
	}

	for _, id := range lc.Disabled {
		cfg.Disable(strings.TrimSpace(id))
	}
	for id, sev := range lc.Severity {
		if strings.EqualFold(strings.TrimSpace(sev), "off") {
			cfg.Disable(id)
			continue
		}
		s, ok := core.ParseSeverity(sev)
		if !ok {
			return nil, fmt.Errorf("lint.severity.%s: unknown severity %q", id, sev)
		}
		cfg.Enable(id)
		cfg.SetSeverity(id, s)
	}
	for id, opts := range lc.Rules {
		cfg.SetRuleOptions(id, opts)
	}
	if err := lint.ValidateOptions(cfg); err != nil {
		return nil, fmt.Errorf("lint.rules: %w", err)
	}
	return cfg, nil
}

// Validate checks the rule IDs named by the lint section against the
// registry.
func (c *LintConfig) Validate() error {
	if c == nil {
		return nil
	}
	for _, id := range c.Disabled {
		if _, ok := lint.GetByID(strings.TrimSpace(id)); !ok {
			return fmt.Errorf("lint.disabled: unknown rule %q", id)
		}
	}
	for id := range c.Severity {
		if _, ok := lint.GetByID(id); !ok {
			return fmt.Errorf("lint.severity: unknown rule %q", id)
		}
	}
	return nil
}
