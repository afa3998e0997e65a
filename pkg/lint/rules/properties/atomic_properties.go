package properties

import (
	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/lint"
	"github.com/leapstack-labs/pandalint/pkg/lint/internal/styles"
)

func init() {
	lint.Register(AtomicProperties)
}

// AtomicProperties reports composite properties such as gap or border.
var AtomicProperties = lint.RuleDef{
	ID:          "prefer-atomic-properties",
	Name:        "properties.prefer_atomic",
	Group:       "properties",
	Description: "Encourage the use of atomic properties instead of composite properties in the codebase.",
	Severity:    core.SeverityWarning,
	Check:       checkAtomicProperties,
	Messages: map[string]string{
		"atomic": "Use atomic properties instead of `{{composite}}`. Prefer: \n{{atomics}}",
	},
	ConfigKeys:  []string{"whitelist"},
	Rationale:   "Atomic properties each map to one class and override predictably.",
	BadExample:  "css({ gap: '4' })",
	GoodExample: "css({ rowGap: '4', columnGap: '4' })",
	Fix:         "Split the composite into its atomic members.",
}

func checkAtomicProperties(pass *lint.Pass) {
	var opts styles.Whitelist
	pass.DecodeOptions(&opts)

	f := pass.File
	for _, d := range styles.Named(f) {
		if opts.Allows(d.Name) {
			continue
		}
		composite, ok := f.ResolveComposite(d.Name)
		if !ok {
			continue
		}
		members, _ := f.Design.Composite(composite)
		pass.Report(d.Key, "atomic", map[string]string{
			"composite": d.Name,
			"atomics":   styles.Quote(members, ",\n"),
		})
	}
}
