package styling

import (
	"strings"

	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/jsast"
	"github.com/leapstack-labs/pandalint/pkg/lint"
)

func init() {
	lint.Register(InvalidNesting)
}

// InvalidNesting reports nested selector keys that do not reference the
// parent selector with &.
var InvalidNesting = lint.RuleDef{
	ID:          "no-invalid-nesting",
	Name:        "styling.invalid_nesting",
	Group:       "styling",
	Description: "Warn against invalid nesting. i.e. nested styles that do not contain the `&` character.",
	Severity:    core.SeverityWarning,
	Check:       checkInvalidNesting,
	Messages: map[string]string{
		"nesting": "Invalid style nesting. Nested styles must contain the `&` character.",
	},
	Recommended: true,
	Rationale:   "A nested selector without & generates a descendant rule that never matches the element.",
	BadExample:  "css({ ':hover': { color: 'red.400' } })",
	GoodExample: "css({ '&:hover': { color: 'red.400' } })",
	Fix:         "Prefix the selector with &.",
}

func checkInvalidNesting(pass *lint.Pass) {
	f := pass.File
	for _, p := range jsast.Collect[*jsast.Property](f.Program) {
		if _, ok := p.Key.(*jsast.Identifier); ok {
			continue
		}
		if _, ok := p.Value.(*jsast.ObjectExpression); !ok {
			continue
		}
		if _, ok := f.InPandaFunction(p); !ok && !f.IsInJSXProp(p) {
			continue
		}
		if f.IsRecipeVariant(p) || f.IsStyledProperty(p, "") {
			continue
		}
		selector, ok := jsast.StringValue(p.Key)
		if ok && !strings.Contains(selector, "&") {
			pass.Report(p.Key, "nesting", nil)
		}
	}
}
