package analysis

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/leapstack-labs/pandalint/pkg/jsast"
)

// StaticString returns the text of a literal value or of a template literal
// without interpolations, together with the node whose inner text holds it.
// JSX expression containers are unwrapped.
func StaticString(n jsast.Node) (string, jsast.Node, bool) {
	switch v := n.(type) {
	case *jsast.JSXExpressionContainer:
		return StaticString(v.Expression)
	case *jsast.Literal:
		return literalString(v), v, true
	case *jsast.TemplateLiteral:
		if len(v.Expressions) != 0 || len(v.Quasis) == 0 {
			return "", nil, false
		}
		return v.Quasis[0].Raw, v.Quasis[0], true
	default:
		return "", nil, false
	}
}

func literalString(l *jsast.Literal) string {
	switch v := l.Value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// InnerSpan returns the byte range of the text inside a value node: string
// literals without their quotes, template elements as they are.
func InnerSpan(n jsast.Node) (start, end int) {
	start, end = jsast.Start(n), jsast.End(n)
	if lit, ok := n.(*jsast.Literal); ok {
		if _, isString := lit.Value.(string); isString && end-start >= 2 {
			return start + 1, end - 1
		}
	}
	return start, end
}

var (
	exclamationRegexp = regexp.MustCompile(`\s*!$`)
	importantRegexp   = regexp.MustCompile(`\s*!important\s*$`)
)

// ImportantMarker reports whether value ends in !important or a bare !,
// after escape-hatch brackets are stripped. It returns the keyword and the
// value with the keyword removed, re-wrapped in brackets when the original
// was bracket-escaped.
func ImportantMarker(value string) (keyword, fixed string, ok bool) {
	arbitrary := ArbitraryValue(value)
	var stripped string
	switch {
	case importantRegexp.MatchString(arbitrary):
		keyword = "!important"
		stripped = strings.TrimRight(importantRegexp.ReplaceAllString(arbitrary, ""), " \t\r\n")
	case exclamationRegexp.MatchString(arbitrary):
		keyword = "!"
		stripped = strings.TrimRight(exclamationRegexp.ReplaceAllString(arbitrary, ""), " \t\r\n")
	default:
		return "", value, false
	}
	if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
		return keyword, "[" + stripped + "]", true
	}
	return keyword, stripped, true
}
