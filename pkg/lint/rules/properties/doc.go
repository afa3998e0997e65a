// Package properties provides lint rules about which style property names
// are used: margins, physical directions, shorthands and composites.
//
// Every rule here takes a whitelist option listing property names it
// leaves alone.
package properties
