package analysis

import (
	"regexp"
	"strings"
)

// tokenPattern matches token(path[, fallback]) and {content}. Brace content
// is kept only when it is a simple dotted path.
var (
	tokenPattern    = regexp.MustCompile(`token\(([^"'(),]+)(?:,\s*[^"'(),]+)?\)|\{([^\n\r{}]+)\}`)
	bracePathRegexp = regexp.MustCompile(`^\s*(\w+\.\w+(?:\.\w+)?)\s*$`)
)

// TokenRef is a token reference found in a style value.
type TokenRef struct {
	Path       string // token path, or the raw value for implicit references
	Offset     int    // byte offset of Path within the value, -1 when implicit
	Category   string // token category, set for implicit references
	Implicit   bool   // the whole value was treated as a token of Category
	Invalid    bool
	Deprecated bool
}

// Name returns the dotted registry path of the reference.
func (r TokenRef) Name() string {
	if r.Implicit {
		return r.Category + "." + r.Path
	}
	return r.Path
}

// ExtractTokens returns the token references of value in source order.
func ExtractTokens(value string) []TokenRef {
	var out []TokenRef
	for _, m := range tokenPattern.FindAllStringSubmatchIndex(value, -1) {
		switch {
		case m[2] >= 0:
			raw := value[m[2]:m[3]]
			path := strings.TrimSpace(raw)
			if path == "" {
				continue
			}
			out = append(out, TokenRef{Path: path, Offset: m[2] + strings.Index(raw, path)})
		case m[4] >= 0:
			inner := value[m[4]:m[5]]
			sub := bracePathRegexp.FindStringSubmatchIndex(inner)
			if sub == nil {
				continue
			}
			out = append(out, TokenRef{Path: inner[sub[2]:sub[3]], Offset: m[4] + sub[2]})
		}
	}
	return out
}

// ArbitraryValue strips one layer of escape-hatch brackets from a trimmed
// value: "[12px]" becomes "12px". Values whose outer brackets do not pair
// up, such as "[a] [b]", are returned trimmed.
func ArbitraryValue(value string) string {
	v := strings.TrimSpace(value)
	if len(v) < 2 || v[0] != '[' || v[len(v)-1] != ']' {
		return v
	}
	inner := v[1 : len(v)-1]
	depth := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '[':
			depth++
		case ']':
			if depth == 0 {
				return v
			}
			depth--
		}
	}
	if depth != 0 {
		return v
	}
	return inner
}

// HasEscapeHatch reports whether value wraps an arbitrary literal in square
// brackets. Values without "[" never do.
func HasEscapeHatch(value string) bool {
	if !strings.Contains(value, "[") {
		return false
	}
	return ArbitraryValue(value) != strings.TrimSpace(value)
}

// InvalidTokens returns the token references of value that are absent from
// the registry. Results are memoized by value.
func (f *File) InvalidTokens(value string) []TokenRef {
	if value == "" {
		return nil
	}
	if v, ok := f.invalid[value]; ok {
		return v
	}
	var out []TokenRef
	for _, ref := range ExtractTokens(value) {
		if _, ok := f.Design.Token(ref.Path); !ok {
			ref.Invalid = true
			out = append(out, ref)
		}
	}
	f.invalid[value] = out
	return out
}

type deprecatedKey struct {
	category string
	value    string
}

// DeprecatedTokens returns the deprecated token references of value set on
// property. Without explicit references the value itself, left of any
// "/opacity" suffix, is looked up in the property's token category.
// Results are memoized by category and value.
func (f *File) DeprecatedTokens(property, value string) []TokenRef {
	if value == "" {
		return nil
	}
	category, _ := f.Design.PropertyCategory(property)
	refs := ExtractTokens(value)
	if category == "" && len(refs) == 0 {
		return nil
	}
	key := deprecatedKey{value: value}
	if len(refs) == 0 {
		key.category = category
	}
	if v, ok := f.deprecated[key]; ok {
		return v
	}

	if len(refs) == 0 {
		implicit, _, _ := strings.Cut(value, "/")
		refs = []TokenRef{{Path: implicit, Offset: -1, Category: category, Implicit: true}}
	}
	var out []TokenRef
	for _, ref := range refs {
		tok, ok := f.Design.Token(ref.Name())
		if ok && tok.Deprecated {
			ref.Deprecated = true
			out = append(out, ref)
		}
	}
	f.deprecated[key] = out
	return out
}
