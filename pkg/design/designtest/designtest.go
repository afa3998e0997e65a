// Package designtest provides an in-memory design context for tests.
//
// The fixture imports the runtime from "./panda", includes
// ./src/**/*.{tsx,jsx,ts}, marks colors.red.400, colors.legacy and
// spacing.gutter as deprecated, and adds the colors.deep.test.* tokens.
package designtest

import (
	_ "embed"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/pandalint/pkg/design"
)

const (
	// Root is the project directory of the fixture.
	Root = "/project"
	// File is an included source file.
	File = "/project/src/App.tsx"
	// ExcludedFile is a source file outside the include globs.
	ExcludedFile = "/project/lib/theme.tsx"
)

//go:embed fixture.yaml
var fixtureYAML []byte

// New builds the fixture context.
func New() (*design.Context, error) {
	cfg, err := design.ParseConfig(fixtureYAML)
	if err != nil {
		return nil, err
	}
	return design.New(cfg, Root)
}

// Context builds the fixture context or fails the test.
func Context(t testing.TB) *design.Context {
	t.Helper()
	c, err := New()
	require.NoError(t, err)
	return c
}
