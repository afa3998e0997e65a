// Package styling provides lint rules about how style objects and style
// props are written.
//
// Rules in this package:
//   - no-debug: the debug utility must not ship
//   - no-dynamic-styling: style values must be statically extractable
//   - no-escape-hatch: [value] escape hatches bypass the token system
//   - no-important: !important and ! markers
//   - no-invalid-nesting: nested selectors must contain &
//   - no-property-renaming: style props passed through under another name
package styling
