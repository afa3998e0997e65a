// Package linttest runs single lint rules against source snippets for tests.
package linttest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/pandalint/pkg/analysis"
	"github.com/leapstack-labs/pandalint/pkg/design/designtest"
	"github.com/leapstack-labs/pandalint/pkg/jsast"
	"github.com/leapstack-labs/pandalint/pkg/lint"
)

// Run parses src as the fixture's included source file and returns the
// diagnostics of ruleID. opts may be nil.
func Run(t testing.TB, ruleID, src string, opts map[string]any) []lint.Diagnostic {
	t.Helper()
	return RunFile(t, designtest.File, ruleID, src, opts)
}

// RunFile is Run for a source file at path.
func RunFile(t testing.TB, path, ruleID, src string, opts map[string]any) []lint.Diagnostic {
	t.Helper()
	_, ok := lint.GetByID(ruleID)
	require.True(t, ok, "rule %s is not registered", ruleID)

	prog, err := jsast.Parse(context.Background(), path, []byte(src))
	require.NoError(t, err)

	cfg := lint.NewConfig()
	cfg.EnabledRules = map[string]bool{ruleID: true}
	if opts != nil {
		cfg.SetRuleOptions(ruleID, opts)
	}
	return lint.NewAnalyzer(cfg).Analyze(analysis.NewFile(prog, designtest.Context(t)))
}

// MessageIDs returns the message IDs of diags in order.
func MessageIDs(diags []lint.Diagnostic) []string {
	ids := make([]string, len(diags))
	for i, d := range diags {
		ids[i] = d.MessageID
	}
	return ids
}

// ApplyFirstFix applies the first fix of d to src.
func ApplyFirstFix(t testing.TB, src string, d lint.Diagnostic) string {
	t.Helper()
	require.NotEmpty(t, d.Fixes, "diagnostic %s has no fix", d.MessageID)
	out, err := lint.ApplyFix([]byte(src), d.Fixes[0])
	require.NoError(t, err)
	return string(out)
}

// Snippet returns the source text a diagnostic covers.
func Snippet(src string, d lint.Diagnostic) string {
	return src[d.Pos.Offset:d.EndPos.Offset]
}
