// Package core defines the shared vocabulary of pandalint.
//
// This package contains:
//   - Severity levels for diagnostics
//   - The RuleInfo DTO consumed by documentation and tooling
//   - FileKind, the source-language classification used to pick a grammar
//
// The Golden Rule: pkg/core imports ONLY pkg/token and stdlib.
// All other packages depend on core, not the reverse.
package core
