package properties

import (
	"github.com/leapstack-labs/pandalint/pkg/analysis/props"
	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/lint"
	"github.com/leapstack-labs/pandalint/pkg/lint/internal/styles"
)

func init() {
	lint.Register(MarginProperties)
}

// MarginProperties reports margin properties, including their shorthands.
var MarginProperties = lint.RuleDef{
	ID:          "no-margin-properties",
	Name:        "properties.margin",
	Group:       "properties",
	Description: "Discourage using margin properties for spacing. Prefer gap in parent elements.",
	Severity:    core.SeverityWarning,
	Check:       checkMarginProperties,
	Messages: map[string]string{
		"noMargin": "Use flex or grid with the `gap` property to define spacing in parent elements for a more resilient layout.",
	},
	ConfigKeys:  []string{"whitelist"},
	Rationale:   "Margins leak outside the component box and collapse unpredictably.",
	BadExample:  "<Circle marginX=\"2\" />",
	GoodExample: "<Flex gap=\"2\" />",
	Fix:         "Move the spacing to the parent with gap.",
}

func checkMarginProperties(pass *lint.Pass) {
	var opts styles.Whitelist
	pass.DecodeOptions(&opts)

	f := pass.File
	for _, d := range styles.Named(f) {
		if opts.Allows(d.Name) {
			continue
		}
		if props.IsMargin(f.Longhand(d.Name)) {
			pass.Report(d.Key, "noMargin", nil)
		}
	}
}
