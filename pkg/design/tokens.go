package design

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// TokenInfo is one entry of the token registry.
type TokenInfo struct {
	Path       string `json:"path" yaml:"path"`
	Category   string `json:"category" yaml:"category"`
	Value      string `json:"value" yaml:"value"`
	Deprecated bool   `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Semantic   bool   `json:"semantic,omitempty" yaml:"semantic,omitempty"`
}

// flattenTokens walks a nested token tree. A leaf is any object that has a
// "value" key; its path is the dotted list of keys leading to it.
func flattenTokens(tree map[string]any, semantic bool, into map[string]TokenInfo) {
	for category, sub := range tree {
		walkTokens(category, []string{category}, sub, semantic, into)
	}
}

func walkTokens(category string, path []string, node any, semantic bool, into map[string]TokenInfo) {
	m := normalizeMap(node)
	if m == nil {
		return
	}
	if v, ok := m["value"]; ok && len(path) > 1 {
		p := strings.Join(path, ".")
		info := TokenInfo{
			Path:       p,
			Category:   category,
			Value:      tokenValueString(v),
			Deprecated: isDeprecated(m["deprecated"]),
			Semantic:   semantic,
		}
		into[p] = info
		// DEFAULT leaves are also addressable by their parent path.
		if path[len(path)-1] == "DEFAULT" && len(path) > 2 {
			info.Path = strings.Join(path[:len(path)-1], ".")
			if _, exists := into[info.Path]; !exists {
				into[info.Path] = info
			}
		}
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		next := append(append([]string(nil), path...), k)
		walkTokens(category, next, m[k], semantic, into)
	}
}

// normalizeMap accepts both string-keyed and interface-keyed maps.
func normalizeMap(node any) map[string]any {
	switch m := node.(type) {
	case map[string]any:
		return m
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[fmt.Sprint(k)] = v
		}
		return out
	default:
		return nil
	}
}

func isDeprecated(v any) bool {
	switch d := v.(type) {
	case bool:
		return d
	case string:
		return d != "" && d != "false"
	default:
		return false
	}
}

// tokenValueString renders a token value. Semantic tokens may hold a map of
// conditions; the "base" entry is used when present.
func tokenValueString(v any) string {
	if m := normalizeMap(v); m != nil {
		if base, ok := m["base"]; ok {
			return tokenValueString(base)
		}
		return ""
	}
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("read design config %s: %w", path, err)
	}
	return data, nil
}
