package properties

import (
	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/lint"
	"github.com/leapstack-labs/pandalint/pkg/lint/internal/styles"
)

func init() {
	lint.Register(ShorthandProperties)
}

// ShorthandProperties reports longhand property names that have a shorthand.
var ShorthandProperties = lint.RuleDef{
	ID:          "prefer-shorthand-properties",
	Name:        "properties.prefer_shorthand",
	Group:       "properties",
	Description: "Discourage the use of longhand properties and promote the preference for shorthand properties in the codebase.",
	Severity:    core.SeverityWarning,
	Check:       checkShorthandProperties,
	Messages: map[string]string{
		"shorthand": "Use shorthand property instead of `{{longhand}}`. Prefer {{shorthands}}.",
		"replace":   "Replace `{{longhand}}` with `{{shorthand}}`.",
	},
	ConfigKeys:  []string{"whitelist"},
	Suggestions: true,
	Rationale:   "Shorthands keep dense style objects short.",
	BadExample:  "css({ background: 'red.400' })",
	GoodExample: "css({ bg: 'red.400' })",
	Fix:         "Rename the property to its first shorthand.",
}

func checkShorthandProperties(pass *lint.Pass) {
	var opts styles.Whitelist
	pass.DecodeOptions(&opts)

	f := pass.File
	for _, d := range styles.Named(f) {
		if opts.Allows(d.Name) {
			continue
		}
		if _, ok := f.Design.Longhand(d.Name); ok {
			continue
		}
		shorthands := f.Design.Shorthands(d.Name)
		if len(shorthands) == 0 {
			continue
		}
		data := map[string]string{
			"longhand":   d.Name,
			"shorthand":  shorthands[0],
			"shorthands": styles.Quote(shorthands, ", "),
		}
		pass.Report(d.Key, "shorthand", data,
			pass.Suggest("replace", data, pass.Replace(d.Key, styles.Rename(d, shorthands[0]))))
	}
}
