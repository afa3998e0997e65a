package tokens

import (
	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/lint"
	"github.com/leapstack-labs/pandalint/pkg/lint/internal/styles"
)

func init() {
	lint.Register(DeprecatedTokens)
}

// DeprecatedTokens reports values that resolve to tokens marked deprecated,
// whether referenced explicitly or by a bare value in a token category.
var DeprecatedTokens = lint.RuleDef{
	ID:          "no-deprecated-tokens",
	Name:        "tokens.deprecated",
	Group:       "tokens",
	Description: "Disallow the use of deprecated tokens within token function syntax.",
	Severity:    core.SeverityWarning,
	Check:       checkDeprecatedTokens,
	Messages: map[string]string{
		"noDeprecatedTokenPaths": "`{{token}}` is a deprecated token.",
		"noDeprecatedTokens":     "`{{token}}` is a deprecated {{category}} token.",
	},
	Recommended: true,
	Rationale:   "Deprecated tokens are scheduled for removal from the design system.",
	BadExample:  "css({ color: 'red.400' }) // colors.red.400 is deprecated",
	GoodExample: "css({ color: 'red.500' })",
	Fix:         "Replace the token with its documented successor.",
}

func checkDeprecatedTokens(pass *lint.Pass) {
	f := pass.File
	for _, d := range styles.Named(f) {
		text, node, ok := d.Static()
		if !ok {
			continue
		}
		for _, ref := range f.DeprecatedTokens(d.Name, text) {
			if ref.Implicit {
				pass.Report(node, "noDeprecatedTokens", map[string]string{
					"token":    ref.Path,
					"category": ref.Category,
				})
				continue
			}
			pass.Report(node, "noDeprecatedTokenPaths", map[string]string{"token": ref.Path})
		}
	}
}
