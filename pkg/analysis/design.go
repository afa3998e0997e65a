package analysis

import "github.com/leapstack-labs/pandalint/pkg/design"

// Design is the read-only view of a design-system configuration that
// classification needs. *design.Context implements it.
type Design interface {
	IsValidProperty(name string) bool
	Longhand(name string) (string, bool)
	Shorthands(name string) []string
	PropertyCategory(name string) (string, bool)
	Composite(name string) ([]string, bool)
	CompositesOf(name string) []string
	Token(path string) (design.TokenInfo, bool)
	PatternFor(name string) (*design.Pattern, bool)
	IncludesFile(path string) bool
	MatchImport(file, mod string) bool
}

var _ Design = (*design.Context)(nil)
