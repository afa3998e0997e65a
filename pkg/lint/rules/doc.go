// Package rules provides the design-system lint rules.
//
// Rules are organized by group:
//   - config: where the design system may be used (file-not-included,
//     no-config-function-in-source)
//   - tokens: token references (no-invalid-token-paths, no-deprecated-tokens,
//     no-unsafe-token-fn-usage, no-hardcoded-color)
//   - styling: how styles are written (no-debug, no-dynamic-styling,
//     no-escape-hatch, no-important, no-invalid-nesting, no-property-renaming)
//   - properties: which property names are used (no-margin-properties,
//     no-physical-properties, prefer-atomic-properties,
//     prefer-composite-properties, prefer-longhand-properties,
//     prefer-shorthand-properties, prefer-unified-property-style)
//
// To register all rules with the global lint registry, import this package
// with a blank identifier:
//
//	import _ "github.com/leapstack-labs/pandalint/pkg/lint/rules"
//
// Individual groups can also be imported:
//
//	import _ "github.com/leapstack-labs/pandalint/pkg/lint/rules/tokens"
package rules
