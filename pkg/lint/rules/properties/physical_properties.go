package properties

import (
	"github.com/leapstack-labs/pandalint/pkg/analysis/props"
	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/jsast"
	"github.com/leapstack-labs/pandalint/pkg/lint"
	"github.com/leapstack-labs/pandalint/pkg/lint/internal/styles"
)

func init() {
	lint.Register(PhysicalProperties)
}

// PhysicalProperties reports physical properties and physical keyword values
// that have a logical equivalent.
var PhysicalProperties = lint.RuleDef{
	ID:          "no-physical-properties",
	Name:        "properties.physical",
	Group:       "properties",
	Description: "Encourage the use of logical properties over physical properties, to foster a responsive and adaptable user interface.",
	Severity:    core.SeverityWarning,
	Check:       checkPhysicalProperties,
	Messages: map[string]string{
		"physical":      "Use logical property instead of {{physical}}. Prefer `{{logical}}`.",
		"physicalValue": "Use logical value instead of {{physical}}. Prefer `{{logical}}`.",
		"replace":       "Replace `{{physical}}` with `{{logical}}`.",
	},
	ConfigKeys:  []string{"whitelist"},
	Suggestions: true,
	Rationale:   "Logical properties follow the writing direction, so layouts mirror correctly in right-to-left locales.",
	BadExample:  "css({ marginLeft: '4', textAlign: 'left' })",
	GoodExample: "css({ marginInlineStart: '4', textAlign: 'start' })",
	Fix:         "Use the logical property or value.",
}

func checkPhysicalProperties(pass *lint.Pass) {
	var opts styles.Whitelist
	pass.DecodeOptions(&opts)

	f := pass.File
	for _, d := range styles.Named(f) {
		if !opts.Allows(d.Name) {
			checkPhysicalName(pass, d)
		}
		checkPhysicalValue(pass, d)
	}
}

func checkPhysicalName(pass *lint.Pass, d styles.Decl) {
	longhand := pass.File.Longhand(d.Name)
	logical, ok := props.Logical(longhand)
	if !ok {
		return
	}
	physical := "`" + d.Name + "`"
	if longhand != d.Name {
		physical += " (resolved to `" + longhand + "`)"
	}
	pass.Report(d.Key, "physical", map[string]string{"physical": physical, "logical": logical},
		pass.Suggest("replace", map[string]string{"physical": d.Name, "logical": logical},
			pass.Replace(d.Key, styles.Rename(d, logical))))
}

func checkPhysicalValue(pass *lint.Pass, d styles.Decl) {
	if !props.HasPhysicalValues(d.Name) {
		return
	}
	lit, ok := d.Value.(*jsast.Literal)
	if !ok {
		return
	}
	value, ok := lit.Value.(string)
	if !ok {
		return
	}
	logical, ok := props.LogicalValue(d.Name, value)
	if !ok {
		return
	}
	data := map[string]string{"physical": `"` + value + `"`, "logical": `"` + logical + `"`}
	pass.Report(d.RawValue(), "physicalValue", data,
		pass.Suggest("replace", data, pass.Replace(lit, `"`+logical+`"`)))
}
