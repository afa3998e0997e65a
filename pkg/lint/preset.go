package lint

import (
	"fmt"

	"github.com/leapstack-labs/pandalint/pkg/core"
)

// Preset names.
const (
	PresetAll         = "all"
	PresetRecommended = "recommended"
)

// recommendedSeverity lists rules the recommended preset runs at a severity
// other than their default.
var recommendedSeverity = map[string]core.Severity{
	"no-invalid-nesting": core.SeverityError,
}

// Preset returns the configuration of a named rule set. "all" enables every
// registered rule at its default severity; "recommended" enables the rules
// marked recommended.
func Preset(name string) (*Config, error) {
	cfg := NewConfig()
	switch name {
	case PresetAll, "":
		return cfg, nil
	case PresetRecommended:
		cfg.EnabledRules = make(map[string]bool)
		for _, rule := range GetAll() {
			if rule.Recommended() {
				cfg.EnabledRules[rule.ID()] = true
			}
		}
		for id, sev := range recommendedSeverity {
			cfg.SeverityOverrides[id] = sev
		}
		return cfg, nil
	default:
		return nil, fmt.Errorf("unknown preset %q (want %q or %q)", name, PresetRecommended, PresetAll)
	}
}
