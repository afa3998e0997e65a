// Package lint provides the design-system lint framework: rule contracts,
// the global rule registry, per-file passes, configuration and fixes.
//
// # Architecture
//
// Analysis of one file happens in three layers:
//
//  1. pkg/jsast parses the source into a small ESTree-style tree
//  2. pkg/analysis wraps the tree in a File that answers classification
//     questions (is this a style prop, a recipe variant, a valid token) and
//     memoizes the answers for every rule
//  3. this package runs each enabled rule through a Pass that collects
//     diagnostics and suggested fixes
//
// # Rule Registration
//
// Rules are automatically registered via init() functions when their
// packages are imported:
//
//	import _ "github.com/leapstack-labs/pandalint/pkg/lint/rules"
//
// # Rule Groups
//
//   - config: where the design system may be used
//   - tokens: token references and color values
//   - styling: how style objects and props are written
//   - properties: which property names are used
//
// # Using the Registry
//
//	rules := lint.AllRules()
//	rule, ok := lint.GetByID("no-debug")
//	tokenRules := lint.GetByGroup("tokens")
//
// # Configuration
//
// Use Config, or start from a preset, to control which rules run:
//
//	config, _ := lint.Preset(lint.PresetRecommended)
//	config.Enable("no-margin-properties")
//	config.SetSeverity("no-debug", core.SeverityError)
//	config.SetRuleOptions("no-hardcoded-color", map[string]any{"noOpacity": true})
//
// # Creating Custom Rules
//
//	var MyRule = lint.RuleDef{
//		ID:          "no-red",
//		Name:        "custom.no_red",
//		Group:       "custom",
//		Description: "Disallow red.",
//		Severity:    core.SeverityWarning,
//		Messages:    map[string]string{"red": "`{{value}}` is red."},
//		Check:       checkNoRed,
//	}
//
//	func init() {
//		lint.Register(MyRule)
//	}
//
// A check function walks pass.File and calls pass.Report with a message ID
// from Messages and the placeholder data to render it with.
package lint
