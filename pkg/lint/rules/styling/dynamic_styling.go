package styling

import (
	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/jsast"
	"github.com/leapstack-labs/pandalint/pkg/lint"
	"github.com/leapstack-labs/pandalint/pkg/lint/internal/styles"
)

func init() {
	lint.Register(DynamicStyling)
}

// DynamicStyling reports style values and keys the static extractor cannot
// evaluate.
var DynamicStyling = lint.RuleDef{
	ID:          "no-dynamic-styling",
	Name:        "styling.dynamic",
	Group:       "styling",
	Description: "Ensure users don't use dynamic styling. Prefer static styles, leverage CSS variables, or recipes for known dynamic styles.",
	Severity:    core.SeverityWarning,
	Check:       checkDynamicStyling,
	Messages: map[string]string{
		"dynamic":              "Remove dynamic value. Prefer static styles.",
		"dynamicProperty":      "Remove dynamic property. Prefer static style property.",
		"dynamicRecipeVariant": "Remove dynamic variant. Prefer static variant definition.",
	},
	Recommended: true,
	Rationale:   "Styles are generated at build time; a value only known at runtime produces no CSS.",
	BadExample:  "<Box color={color} />",
	GoodExample: "<Box color=\"red.400\" />",
	Fix:         "Use a static value, a CSS variable, or a recipe variant.",
}

func checkDynamicStyling(pass *lint.Pass) {
	f := pass.File
	for _, d := range styles.Attributes(f) {
		if _, ok := d.Attr.Value.(*jsast.JSXExpressionContainer); !ok {
			continue
		}
		checkDynamicValue(pass, d.Value, d.Attr.Value)
	}

	for _, d := range styles.Properties(f) {
		if d.Key == nil {
			continue
		}
		checkDynamicValue(pass, d.Value, d.Value)
	}

	for _, p := range jsast.Collect[*jsast.Property](f.Program) {
		if !p.Computed {
			continue
		}
		if _, ok := f.InPandaFunction(p); !ok {
			continue
		}
		id := "dynamicProperty"
		if f.IsRecipeVariant(p) {
			id = "dynamicRecipeVariant"
		}
		pass.Report(p.Key, id, nil)
	}
}

// checkDynamicValue reports value, or at for its position, unless it is
// static. Arrays are checked element by element.
func checkDynamicValue(pass *lint.Pass, value, at jsast.Node) {
	if value == nil || jsast.IsStatic(value) {
		return
	}
	if arr, ok := value.(*jsast.ArrayExpression); ok {
		for _, el := range arr.Elements {
			if el == nil || jsast.IsStatic(el) {
				continue
			}
			pass.Report(el, "dynamic", nil)
		}
		return
	}
	pass.Report(at, "dynamic", nil)
}
