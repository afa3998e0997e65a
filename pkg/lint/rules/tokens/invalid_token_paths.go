package tokens

import (
	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/jsast"
	"github.com/leapstack-labs/pandalint/pkg/lint"
	"github.com/leapstack-labs/pandalint/pkg/lint/internal/styles"
)

func init() {
	lint.Register(InvalidTokenPaths)
}

// InvalidTokenPaths reports token() and {path} references that name no
// registered token.
var InvalidTokenPaths = lint.RuleDef{
	ID:          "no-invalid-token-paths",
	Name:        "tokens.invalid_paths",
	Group:       "tokens",
	Description: "Disallow the use of invalid token paths within token function syntax.",
	Severity:    core.SeverityError,
	Check:       checkInvalidTokenPaths,
	Messages: map[string]string{
		"noInvalidTokenPaths": "`{{token}}` is an invalid token path.",
	},
	Recommended: true,
	Rationale:   "A reference to a missing token compiles to an empty CSS variable and the style silently disappears.",
	BadExample:  "css({ color: 'token(colors.notexist)' })",
	GoodExample: "css({ color: 'token(colors.red.400)' })",
	Fix:         "Correct the path or add the token to the design system.",
}

func checkInvalidTokenPaths(pass *lint.Pass) {
	f := pass.File
	for _, d := range styles.All(f) {
		if d.Prop != nil && d.Key == nil {
			continue
		}
		text, node, ok := d.Static()
		if !ok {
			continue
		}
		for _, ref := range f.InvalidTokens(text) {
			pass.Report(node, "noInvalidTokenPaths", map[string]string{"token": ref.Path})
		}
	}

	for _, t := range jsast.Collect[*jsast.TaggedTemplateExpression](f.Program) {
		if !f.IsStyledTaggedTemplate(t) || t.Quasi == nil {
			continue
		}
		for _, q := range t.Quasi.Quasis {
			for _, ref := range f.InvalidTokens(q.Raw) {
				start := jsast.Start(q) + ref.Offset
				pass.ReportRange(start, start+len(ref.Path), "noInvalidTokenPaths", map[string]string{"token": ref.Path})
			}
		}
	}
}
