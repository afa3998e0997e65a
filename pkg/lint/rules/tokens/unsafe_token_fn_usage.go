package tokens

import (
	"regexp"

	"github.com/leapstack-labs/pandalint/pkg/analysis"
	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/jsast"
	"github.com/leapstack-labs/pandalint/pkg/lint"
	"github.com/leapstack-labs/pandalint/pkg/lint/internal/styles"
)

func init() {
	lint.Register(UnsafeTokenFnUsage)
}

// UnsafeTokenFnUsage reports token() calls and values that consist of a
// single token reference, which the property can take as a plain token.
var UnsafeTokenFnUsage = lint.RuleDef{
	ID:          "no-unsafe-token-fn-usage",
	Name:        "tokens.unsafe_fn_usage",
	Group:       "tokens",
	Description: "Prevent users from using the token function in situations where they could simply use the raw design token.",
	Severity:    core.SeverityWarning,
	Check:       checkUnsafeTokenFnUsage,
	Messages: map[string]string{
		"noUnsafeTokenFnUsage": "Unnecessary token function usage. Prefer design token.",
		"replace":              "Replace token function with `{{safe}}`.",
	},
	Recommended: true,
	Suggestions: true,
	Rationale:   "A wrapped token bypasses the property's token type checking.",
	BadExample:  "css({ margin: '{spacing.4}' })",
	GoodExample: "css({ margin: '4' })",
	Fix:         "Use the token name without its category.",
}

var (
	tokenOnlyRegexp = regexp.MustCompile(`^(?:token\([^)]*\)|\{[^}]*\})$`)
	categoryRegexp  = regexp.MustCompile(`^[^.]*\.`)
)

func checkUnsafeTokenFnUsage(pass *lint.Pass) {
	f := pass.File
	for _, d := range styles.All(f) {
		switch v := d.Value.(type) {
		case *jsast.CallExpression:
			checkTokenCall(pass, v)
		case *jsast.Literal, *jsast.TemplateLiteral:
			text, ok := staticValue(v)
			if !ok {
				continue
			}
			value := analysis.ArbitraryValue(text)
			if !tokenOnlyRegexp.MatchString(value) {
				continue
			}
			reportUnsafe(pass, v, value)
		}
	}
}

func checkTokenCall(pass *lint.Pass, call *jsast.CallExpression) {
	tk, ok := pass.File.TokenImport()
	if !ok {
		return
	}
	if name, ok := call.Callee.(*jsast.Identifier); !ok || name.Name != tk.Alias {
		return
	}
	if len(call.Arguments) == 0 {
		return
	}
	arg, ok := staticValue(call.Arguments[0])
	if !ok {
		return
	}
	if value := analysis.ArbitraryValue(arg); value != "" {
		reportUnsafe(pass, call, "token("+value+")")
	}
}

func reportUnsafe(pass *lint.Pass, n jsast.Node, value string) {
	refs := analysis.ExtractTokens(value)
	if len(refs) == 0 {
		return
	}
	data := map[string]string{"safe": categoryRegexp.ReplaceAllString(refs[0].Path, "")}
	pass.Report(n, "noUnsafeTokenFnUsage", nil,
		pass.Suggest("replace", data, pass.Replace(n, "'"+data["safe"]+"'")))
}

// staticValue returns the text of a literal or of a template literal
// without interpolations.
func staticValue(n jsast.Node) (string, bool) {
	switch n.(type) {
	case *jsast.Literal, *jsast.TemplateLiteral:
		text, _, ok := analysis.StaticString(n)
		return text, ok
	}
	return "", false
}
