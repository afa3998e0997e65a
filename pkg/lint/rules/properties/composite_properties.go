package properties

import (
	"slices"

	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/lint"
	"github.com/leapstack-labs/pandalint/pkg/lint/internal/styles"
)

func init() {
	lint.Register(CompositeProperties)
}

// CompositeProperties reports atomic properties set next to other members
// of the same composite.
var CompositeProperties = lint.RuleDef{
	ID:          "prefer-composite-properties",
	Name:        "properties.prefer_composite",
	Group:       "properties",
	Description: "Encourage the use of composite properties instead of atomic properties in the codebase.",
	Severity:    core.SeverityWarning,
	Check:       checkCompositeProperties,
	Messages: map[string]string{
		"composite": "Use composite property `{{composite}}` instead of `{{atomic}}`.",
	},
	ConfigKeys:  []string{"whitelist"},
	Rationale:   "One composite declaration is shorter than several atomic ones that together describe it.",
	BadExample:  "css({ rowGap: '4', columnGap: '4' })",
	GoodExample: "css({ gap: '4' })",
	Fix:         "Merge the atomic properties into the composite.",
}

func checkCompositeProperties(pass *lint.Pass) {
	var opts styles.Whitelist
	pass.DecodeOptions(&opts)

	f := pass.File
	for _, d := range styles.Named(f) {
		if opts.Allows(d.Name) {
			continue
		}
		candidates := f.Design.CompositesOf(f.Longhand(d.Name))
		if len(candidates) == 0 {
			continue
		}

		var longhands []string
		for _, s := range styles.Siblings(d) {
			if s == "" {
				continue
			}
			if lh := f.Longhand(s); !slices.Contains(longhands, lh) {
				longhands = append(longhands, lh)
			}
		}

		best, bestCount := "", 0
		for _, c := range candidates {
			members, _ := f.Design.Composite(c)
			n := 0
			for _, lh := range longhands {
				if slices.Contains(members, lh) {
					n++
				}
			}
			if n > bestCount {
				best, bestCount = c, n
			}
		}
		if bestCount < 2 {
			continue
		}
		pass.Report(d.Key, "composite", map[string]string{"composite": best, "atomic": d.Name})
	}
}
