package properties

import (
	"slices"

	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/jsast"
	"github.com/leapstack-labs/pandalint/pkg/lint"
	"github.com/leapstack-labs/pandalint/pkg/lint/internal/styles"
)

func init() {
	lint.Register(UnifiedPropertyStyle)
}

// UnifiedPropertyStyle reports a composite property set next to some of its
// own atomic members.
var UnifiedPropertyStyle = lint.RuleDef{
	ID:          "prefer-unified-property-style",
	Name:        "properties.unified_style",
	Group:       "properties",
	Description: "Discourage mixing atomic and composite forms of the same property in a style declaration. Atomic styles give more consistent results.",
	Severity:    core.SeverityWarning,
	Check:       checkUnifiedPropertyStyle,
	Messages: map[string]string{
		"unify": "You're mixing atomic {{atomicProperties}} with composite property `{{composite}}`. Prefer atomic styling to mixing atomic and composite properties. Remove `{{composite}}` and use one or more of {{atomics}} instead.",
	},
	Rationale:   "Which of a composite and its members wins depends on generated class order.",
	BadExample:  "css({ borderColor: 'red.400', borderTopColor: 'blue.400' })",
	GoodExample: "css({ borderTopColor: 'blue.400', borderBottomColor: 'red.400' })",
	Fix:         "Replace the composite with the atomic members it stands for.",
}

func checkUnifiedPropertyStyle(pass *lint.Pass) {
	f := pass.File
	for _, d := range styles.Named(f) {
		composite, ok := f.ResolveComposite(d.Name)
		if !ok {
			continue
		}
		members, _ := f.Design.Composite(composite)

		var atomic []string
		for _, s := range styles.Siblings(d) {
			if s == "" || s == d.Name || slices.Contains(atomic, s) {
				continue
			}
			if slices.Contains(members, f.Longhand(s)) {
				atomic = append(atomic, s)
			}
		}
		if len(atomic) == 0 {
			continue
		}

		var at jsast.Node = d.Key
		if d.Attr != nil {
			at = d.Attr
		}
		pass.Report(at, "unify", map[string]string{
			"atomicProperties": styles.Quote(atomic, ", "),
			"atomics":          styles.Quote(members, ", "),
			"composite":        composite,
		})
	}
}
