package styling

import (
	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/jsast"
	"github.com/leapstack-labs/pandalint/pkg/lint"
	"github.com/leapstack-labs/pandalint/pkg/lint/internal/styles"
)

func init() {
	lint.Register(Debug)
}

// Debug reports the debug style utility.
var Debug = lint.RuleDef{
	ID:          "no-debug",
	Name:        "styling.debug",
	Group:       "styling",
	Description: "Disallow the inclusion of the debug attribute when shipping code to the production environment.",
	Severity:    core.SeverityWarning,
	Check:       checkDebug,
	Messages: map[string]string{
		"debug":    "Unnecessary debug utility.",
		"prop":     "Remove the debug prop.",
		"property": "Remove the debug property.",
	},
	Recommended: true,
	Suggestions: true,
	Rationale:   "debug outlines every element it touches and is meant for local development only.",
	BadExample:  "css({ debug: true })",
	GoodExample: "css({ color: 'red.400' })",
	Fix:         "Remove the debug prop or property.",
}

func checkDebug(pass *lint.Pass) {
	seen := make(map[*jsast.Property]bool)
	report := func(p *jsast.Property) {
		if seen[p] {
			return
		}
		seen[p] = true
		pass.Report(p.Key, "debug", nil, pass.Suggest("property", nil, removeProperty(pass, p)))
	}

	for _, d := range styles.Attributes(pass.File) {
		if d.Name == "debug" {
			pass.Report(d.Attr, "debug", nil, pass.Suggest("prop", nil, pass.Remove(d.Attr)))
			continue
		}
		if obj, ok := d.Value.(*jsast.ObjectExpression); ok {
			scanDebug(obj, report)
		}
	}

	for _, d := range styles.Properties(pass.File) {
		if d.Key != nil && d.Name == "debug" {
			report(d.Prop)
		}
	}
}

// scanDebug calls report for every debug key in obj and its nested objects.
func scanDebug(obj *jsast.ObjectExpression, report func(*jsast.Property)) {
	for _, n := range obj.Properties {
		p, ok := n.(*jsast.Property)
		if !ok {
			continue
		}
		if id, ok := p.Key.(*jsast.Identifier); ok && !p.Computed && id.Name == "debug" {
			report(p)
		}
		if nested, ok := p.Value.(*jsast.ObjectExpression); ok {
			scanDebug(nested, report)
		}
	}
}

// removeProperty deletes p together with the comma and blanks that follow
// it.
func removeProperty(pass *lint.Pass, p *jsast.Property) lint.TextEdit {
	src := pass.File.Program.Source
	end := jsast.End(p)
	if i := skipBlanks(src, end); i < len(src) && src[i] == ',' {
		end = skipBlanks(src, i+1)
	}
	return pass.ReplaceRange(jsast.Start(p), end, "")
}

func skipBlanks(src []byte, i int) int {
	for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
		i++
	}
	return i
}
