// Package analysis classifies syntax nodes of one source file against a
// design-system configuration.
//
// A File is created when analysis of a source file starts and discarded when
// it ends. It owns every per-file memo table: the raw and filtered import
// bindings, classification results keyed by node identity, and token
// validation results keyed by value string. Nothing is shared across files,
// since aliasing and local declarations are file-scoped.
//
// The main entry points are:
//
//   - File.IsPandaProp for JSX attributes
//   - File.IsPandaAttribute for object properties
//   - File.IsRecipeVariant for keys inside cva/sva definitions
//   - File.Classify, which combines the three
//   - File.InvalidTokens and File.DeprecatedTokens for token references
//
// A File is not safe for concurrent use.
package analysis
