package styling

import (
	"github.com/leapstack-labs/pandalint/pkg/analysis"
	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/lint"
	"github.com/leapstack-labs/pandalint/pkg/lint/internal/styles"
)

func init() {
	lint.Register(Important)
}

// Important reports values ending in !important or its ! shorthand.
var Important = lint.RuleDef{
	ID:          "no-important",
	Name:        "styling.important",
	Group:       "styling",
	Description: "Disallow usage of !important keyword. Prioritize specificity for a maintainable and predictable styling structure.",
	Severity:    core.SeverityWarning,
	Check:       checkImportant,
	Messages: map[string]string{
		"important": "Avoid using the {{keyword}} keyword. Refactor your code to prioritize specificity for predictable styling.",
		"remove":    "Remove the `{{keyword}}` keyword.",
	},
	Suggestions: true,
	Rationale:   "!important breaks the cascade layers the generated stylesheet relies on.",
	BadExample:  "css({ color: 'red.400!' })",
	GoodExample: "css({ color: 'red.400' })",
	Fix:         "Remove the keyword and raise specificity with a selector or recipe instead.",
}

func checkImportant(pass *lint.Pass) {
	for _, d := range styles.All(pass.File) {
		if d.Prop != nil && d.Key == nil {
			continue
		}
		text, node, ok := d.Static()
		if !ok {
			continue
		}
		keyword, fixed, ok := analysis.ImportantMarker(text)
		if !ok {
			continue
		}
		data := map[string]string{"keyword": keyword}
		start, end := analysis.InnerSpan(node)
		pass.Report(node, "important", data,
			pass.Suggest("remove", data, pass.ReplaceRange(start, end, fixed)))
	}
}
