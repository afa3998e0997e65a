// Package config provides lint rules about where the design system may be
// used and configured.
package config
