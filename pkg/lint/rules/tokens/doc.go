// Package tokens provides lint rules about design token references.
//
// Rules in this package:
//   - no-invalid-token-paths: token references must exist in the registry
//   - no-deprecated-tokens: deprecated tokens should not be used
//   - no-unsafe-token-fn-usage: token() and {path} wrappers around a plain token
//   - no-hardcoded-color: color properties should use color tokens
package tokens
