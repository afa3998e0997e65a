package styling

import (
	"github.com/leapstack-labs/pandalint/pkg/analysis"
	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/lint"
	"github.com/leapstack-labs/pandalint/pkg/lint/internal/styles"
)

func init() {
	lint.Register(EscapeHatch)
}

// EscapeHatch reports bracketed arbitrary values such as [12px].
var EscapeHatch = lint.RuleDef{
	ID:          "no-escape-hatch",
	Name:        "styling.escape_hatch",
	Group:       "styling",
	Description: "Prohibit the use of escape hatch syntax in the code.",
	Severity:    core.SeverityWarning,
	Check:       checkEscapeHatch,
	Messages: map[string]string{
		"escapeHatch": "Avoid using the escape hatch [value] for undefined tokens. Define a corresponding token in your design system for better consistency and maintainability.",
		"remove":      "Remove the square brackets (`[]`).",
	},
	Suggestions: true,
	Rationale:   "Arbitrary values are not type checked against the token registry.",
	BadExample:  "css({ marginTop: '[12px]' })",
	GoodExample: "css({ marginTop: '3' })",
	Fix:         "Define a token for the value, or drop the brackets.",
}

func checkEscapeHatch(pass *lint.Pass) {
	for _, d := range styles.All(pass.File) {
		if d.Prop != nil && d.Key == nil {
			continue
		}
		text, node, ok := d.Static()
		if !ok || !analysis.HasEscapeHatch(text) {
			continue
		}
		start, end := analysis.InnerSpan(node)
		pass.Report(node, "escapeHatch", nil,
			pass.Suggest("remove", nil, pass.ReplaceRange(start, end, analysis.ArbitraryValue(text))))
	}
}
