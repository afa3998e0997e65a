package properties

import (
	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/lint"
	"github.com/leapstack-labs/pandalint/pkg/lint/internal/styles"
)

func init() {
	lint.Register(LonghandProperties)
}

// LonghandProperties reports shorthand property names such as bg or mx.
var LonghandProperties = lint.RuleDef{
	ID:          "prefer-longhand-properties",
	Name:        "properties.prefer_longhand",
	Group:       "properties",
	Description: "Discourage the use of shorthand properties and promote the preference for longhand properties in the codebase.",
	Severity:    core.SeverityWarning,
	Check:       checkLonghandProperties,
	Messages: map[string]string{
		"longhand": "Use longhand property instead of `{{shorthand}}`. Prefer `{{longhand}}`.",
		"replace":  "Replace `{{shorthand}}` with `{{longhand}}`.",
	},
	ConfigKeys:  []string{"whitelist"},
	Suggestions: true,
	Rationale:   "Longhand names read the same as the CSS they produce.",
	BadExample:  "css({ bg: 'red.400' })",
	GoodExample: "css({ background: 'red.400' })",
	Fix:         "Rename the property to its longhand.",
}

func checkLonghandProperties(pass *lint.Pass) {
	var opts styles.Whitelist
	pass.DecodeOptions(&opts)

	f := pass.File
	for _, d := range styles.Named(f) {
		if opts.Allows(d.Name) {
			continue
		}
		longhand, ok := f.Design.Longhand(d.Name)
		if !ok || longhand == d.Name {
			continue
		}
		data := map[string]string{"shorthand": d.Name, "longhand": longhand}
		pass.Report(d.Key, "longhand", data,
			pass.Suggest("replace", data, pass.Replace(d.Key, styles.Rename(d, longhand))))
	}
}
