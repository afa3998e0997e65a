package tokens

import (
	"regexp"
	"strings"

	"github.com/leapstack-labs/pandalint/pkg/analysis"
	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/lint"
	"github.com/leapstack-labs/pandalint/pkg/lint/internal/styles"
)

func init() {
	lint.Register(HardcodedColor)
}

// HardcodedColor reports color literals on properties that take color
// tokens.
var HardcodedColor = lint.RuleDef{
	ID:          "no-hardcoded-color",
	Name:        "tokens.hardcoded_color",
	Group:       "tokens",
	Description: "Enforce the exclusive use of design tokens as values for colors within the codebase.",
	Severity:    core.SeverityWarning,
	Check:       checkHardcodedColor,
	Messages: map[string]string{
		"invalidColor": "`{{color}}` is not a valid color token.",
	},
	ConfigKeys:  []string{"noOpacity", "whitelist"},
	Recommended: true,
	Rationale:   "Raw colors drift from the palette and do not follow theme changes.",
	BadExample:  "css({ color: '#FEE2E2' })",
	GoodExample: "css({ color: 'red.100' })",
	Fix:         "Use a color token. With noOpacity, define a token for the translucent shade instead of a /opacity suffix.",
}

type hardcodedColorOptions struct {
	// NoOpacity also reports token/opacity values such as red.100/30.
	NoOpacity        bool `mapstructure:"noOpacity"`
	styles.Whitelist `mapstructure:",squash"`
}

var (
	hexColorRegexp      = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	colorFunctionRegexp = regexp.MustCompile(`(?i)^(?:rgba?|hsla?|hwb|lab|lch|oklab|oklch|color)\(.*\)$`)
)

func checkHardcodedColor(pass *lint.Pass) {
	var opts hardcodedColorOptions
	pass.DecodeOptions(&opts)

	f := pass.File
	for _, d := range styles.Named(f) {
		if opts.Allows(d.Name) {
			continue
		}
		if category, _ := f.Design.PropertyCategory(d.Name); category != "colors" {
			continue
		}
		text, node, ok := d.Static()
		if !ok {
			continue
		}
		value := analysis.ArbitraryValue(text)
		if len(analysis.ExtractTokens(value)) > 0 {
			continue
		}
		if isColorLiteral(value) || (opts.NoOpacity && isTokenWithOpacity(f, value)) {
			pass.Report(node, "invalidColor", map[string]string{"color": value})
		}
	}
}

func isColorLiteral(value string) bool {
	return hexColorRegexp.MatchString(value) || colorFunctionRegexp.MatchString(value)
}

func isTokenWithOpacity(f *analysis.File, value string) bool {
	color, opacity, found := strings.Cut(value, "/")
	if !found || opacity == "" {
		return false
	}
	_, ok := f.Design.Token("colors." + color)
	return ok
}
