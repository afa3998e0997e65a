package props

import "strings"

var physicalProperties = map[string]string{
	"borderBottom":            "borderBlockEnd",
	"borderBottomColor":       "borderBlockEndColor",
	"borderBottomLeftRadius":  "borderEndStartRadius",
	"borderBottomRightRadius": "borderEndEndRadius",
	"borderBottomStyle":       "borderBlockEndStyle",
	"borderBottomWidth":       "borderBlockEndWidth",
	"borderLeft":              "borderInlineStart",
	"borderLeftColor":         "borderInlineStartColor",
	"borderLeftStyle":         "borderInlineStartStyle",
	"borderLeftWidth":         "borderInlineStartWidth",
	"borderRight":             "borderInlineEnd",
	"borderRightColor":        "borderInlineEndColor",
	"borderRightStyle":        "borderInlineEndStyle",
	"borderRightWidth":        "borderInlineEndWidth",
	"borderTop":               "borderBlockStart",
	"borderTopColor":          "borderBlockStartColor",
	"borderTopLeftRadius":     "borderStartStartRadius",
	"borderTopRightRadius":    "borderStartEndRadius",
	"borderTopStyle":          "borderBlockStartStyle",
	"borderTopWidth":          "borderBlockStartWidth",
	"bottom":                  "insetBlockEnd",
	"left":                    "insetInlineStart",
	"marginBottom":            "marginBlockEnd",
	"marginLeft":              "marginInlineStart",
	"marginRight":             "marginInlineEnd",
	"marginTop":               "marginBlockStart",
	"paddingBottom":           "paddingBlockEnd",
	"paddingLeft":             "paddingInlineStart",
	"paddingRight":            "paddingInlineEnd",
	"paddingTop":              "paddingBlockStart",
	"right":                   "insetInlineEnd",
	"top":                     "insetBlockStart",
}

var physicalValues = map[string]map[string]string{
	"textAlign": {
		"left":  "start",
		"right": "end",
	},
}

// Logical returns the logical equivalent of a physical property.
func Logical(property string) (string, bool) {
	l, ok := physicalProperties[property]
	return l, ok
}

// LogicalValue returns the logical equivalent of a physical value of
// property, e.g. textAlign "left" becomes "start".
func LogicalValue(property, value string) (string, bool) {
	values, ok := physicalValues[property]
	if !ok {
		return "", false
	}
	l, ok := values[value]
	return l, ok
}

// HasPhysicalValues reports whether property has physical values with a
// logical equivalent.
func HasPhysicalValues(property string) bool {
	_, ok := physicalValues[property]
	return ok
}

// PhysicalProperties returns the number of physical properties with a
// logical equivalent.
func PhysicalProperties() int { return len(physicalProperties) }

// IsMargin reports whether a longhand property belongs to the margin family.
func IsMargin(longhand string) bool {
	return strings.Contains(strings.ToLower(longhand), "margin")
}
