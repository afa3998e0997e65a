package lint

import (
	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/token"
)

// =============================================================================
// Rule Definitions
// =============================================================================

// RuleDef is a data-driven rule definition.
// Rules are stateless - all context comes via the Pass handed to Check.
type RuleDef struct {
	ID          string            // Unique identifier, e.g., "no-debug"
	Name        string            // Human-readable name, e.g., "Disallow debug"
	Group       string            // Category, e.g., "tokens", "styling", "properties", "config"
	Description string            // Human-readable description
	Severity    core.Severity     // Default severity
	Check       CheckFunc         // The check function
	Messages    map[string]string // Message templates keyed by message ID, with {{placeholders}}
	ConfigKeys  []string          // Configuration keys this rule accepts (for rule-specific options)
	Recommended bool              // Enabled by the recommended preset
	Suggestions bool              // Reports carry suggested fixes

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Code showing the anti-pattern
	GoodExample string // Code showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// CheckFunc analyzes one file through pass and reports findings on it.
type CheckFunc func(pass *Pass)

// =============================================================================
// Diagnostics
// =============================================================================

// Diagnostic represents a lint finding.
type Diagnostic struct {
	RuleID    string
	Severity  core.Severity
	MessageID string            // Key into the rule's message templates
	Data      map[string]string // Placeholder values used to render Message
	Message   string
	Pos       token.Position
	EndPos    token.Position // End of the problematic range (exclusive)
	Fixes     []Fix          // Suggested fixes, offered as LSP code actions

	// Remediation metadata
	DocumentationURL string // URL to rule documentation
	ImpactScore      int    // 0-100, used for summary weighting
	AutoFixable      bool   // true if Fixes can be applied without review
}

// Fix represents a suggested code fix.
type Fix struct {
	Description string
	TextEdits   []TextEdit
}

// TextEdit represents a text replacement.
type TextEdit struct {
	Pos     token.Position
	EndPos  token.Position
	NewText string
}

// =============================================================================
// Rule Interface
// =============================================================================

// Rule is the interface all lint rules implement.
type Rule interface {
	// ID returns the unique identifier, e.g., "no-debug"
	ID() string

	// Name returns the human-readable name
	Name() string

	// Group returns the category, e.g., "tokens", "styling"
	Group() string

	// Description returns a human-readable description
	Description() string

	// DefaultSeverity returns the default severity for this rule
	DefaultSeverity() core.Severity

	// ConfigKeys returns configuration keys this rule accepts
	ConfigKeys() []string

	// Messages returns the message templates keyed by message ID
	Messages() map[string]string

	// Recommended reports whether the recommended preset enables the rule
	Recommended() bool

	// HasSuggestions reports whether diagnostics may carry fixes
	HasSuggestions() bool

	// Documentation methods for richer rule documentation
	Rationale() string   // Why this rule exists, what problems it prevents
	BadExample() string  // Code showing the anti-pattern
	GoodExample() string // Code showing the correct pattern
	Fix() string         // How to fix violations (when not obvious)

	// Check analyzes a file and reports through pass.
	Check(pass *Pass)
}

// RuleInfo is the documentation view of a rule.
type RuleInfo = core.RuleInfo

// GetRuleInfo extracts metadata from a Rule for documentation/tooling.
func GetRuleInfo(r Rule) core.RuleInfo {
	return core.RuleInfo{
		ID:              r.ID(),
		Name:            r.Name(),
		Group:           r.Group(),
		Description:     r.Description(),
		DefaultSeverity: r.DefaultSeverity(),
		ConfigKeys:      r.ConfigKeys(),
		Recommended:     r.Recommended(),
		HasSuggestions:  r.HasSuggestions(),
		Type:            "file",
		Rationale:       r.Rationale(),
		BadExample:      r.BadExample(),
		GoodExample:     r.GoodExample(),
		Fix:             r.Fix(),
	}
}

// =============================================================================
// Wrapped RuleDef
// =============================================================================

// wrappedRuleDef wraps a RuleDef to implement Rule.
type wrappedRuleDef struct {
	def RuleDef
}

// WrapRuleDef wraps a RuleDef to implement the Rule interface.
func WrapRuleDef(def RuleDef) Rule {
	return &wrappedRuleDef{def: def}
}

func (w *wrappedRuleDef) ID() string                     { return w.def.ID }
func (w *wrappedRuleDef) Name() string                   { return w.def.Name }
func (w *wrappedRuleDef) Group() string                  { return w.def.Group }
func (w *wrappedRuleDef) Description() string            { return w.def.Description }
func (w *wrappedRuleDef) DefaultSeverity() core.Severity { return w.def.Severity }
func (w *wrappedRuleDef) ConfigKeys() []string           { return w.def.ConfigKeys }
func (w *wrappedRuleDef) Messages() map[string]string    { return w.def.Messages }
func (w *wrappedRuleDef) Recommended() bool              { return w.def.Recommended }
func (w *wrappedRuleDef) HasSuggestions() bool           { return w.def.Suggestions }

// Documentation methods
func (w *wrappedRuleDef) Rationale() string   { return w.def.Rationale }
func (w *wrappedRuleDef) BadExample() string  { return w.def.BadExample }
func (w *wrappedRuleDef) GoodExample() string { return w.def.GoodExample }
func (w *wrappedRuleDef) Fix() string         { return w.def.Fix }

func (w *wrappedRuleDef) Check(pass *Pass) {
	if w.def.Check != nil {
		w.def.Check(pass)
	}
}

// Unwrap returns the underlying RuleDef.
func (w *wrappedRuleDef) Unwrap() RuleDef {
	return w.def
}
