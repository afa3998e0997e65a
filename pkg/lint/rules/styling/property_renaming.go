package styling

import (
	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/jsast"
	"github.com/leapstack-labs/pandalint/pkg/lint"
	"github.com/leapstack-labs/pandalint/pkg/lint/internal/styles"
)

func init() {
	lint.Register(PropertyRenaming)
}

// PropertyRenaming reports style props fed from a binding of another name,
// which the extractor cannot follow.
var PropertyRenaming = lint.RuleDef{
	ID:          "no-property-renaming",
	Name:        "styling.property_renaming",
	Group:       "styling",
	Description: "Ensure that properties for patterns or style props are not renamed, as it prevents proper tracking.",
	Severity:    core.SeverityWarning,
	Check:       checkPropertyRenaming,
	Messages: map[string]string{
		"noRenaming": "Incoming `{{prop}}` prop is different from the expected `{{expected}}` attribute. Panda will not track this prop.",
	},
	Recommended: true,
	Rationale:   "Static extraction matches style props by name; a renamed prop is never seen.",
	BadExample:  "const Text = ({ color }) => <Box bg={color} />",
	GoodExample: "const Text = ({ bg }) => <Box bg={bg} />",
	Fix:         "Pass the prop through under its own name.",
}

func checkPropertyRenaming(pass *lint.Pass) {
	for _, d := range styles.All(pass.File) {
		if d.Key == nil {
			continue
		}
		at := d.Value
		if d.Attr != nil {
			if _, ok := d.Attr.Value.(*jsast.JSXExpressionContainer); !ok {
				continue
			}
			at = d.Attr.Value
		}
		if incoming, ok := incomingName(d.Value); ok && incoming != d.Name {
			pass.Report(at, "noRenaming", map[string]string{"prop": incoming, "expected": d.Name})
		}
	}
}

// incomingName returns the name a value is read from: an identifier, or the
// identifier property of a member expression.
func incomingName(n jsast.Node) (string, bool) {
	switch v := n.(type) {
	case *jsast.Identifier:
		return v.Name, true
	case *jsast.MemberExpression:
		if id, ok := v.Property.(*jsast.Identifier); ok {
			return id.Name, true
		}
	}
	return "", false
}
