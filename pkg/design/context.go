package design

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Context is the resolved, read-only view of one design configuration.
// It is safe for concurrent use once constructed.
type Context struct {
	root       string
	configPath string
	cfg        Config

	properties map[string]struct{}
	conditions map[string]struct{}
	shorthands map[string]string   // shorthand -> longhand
	longhands  map[string][]string // longhand -> shorthands, registration order
	categories map[string]string   // property -> token category
	composites map[string][]string // composite -> atomic members
	memberOf   map[string][]string // atomic -> composites containing it
	tokens     map[string]TokenInfo
	patterns   map[string]*Pattern // pattern name and jsx names
	sources    []string
	jsxFactory string

	files map[string]bool // fixed included-file set, nil when globs apply
}

// New builds a Context from a decoded configuration. root is the directory
// include/exclude globs and relative import sources are resolved against.
func New(cfg Config, root string) (*Context, error) {
	c := &Context{
		root:       filepath.Clean(root),
		cfg:        cfg,
		properties: make(map[string]struct{}),
		conditions: make(map[string]struct{}),
		shorthands: make(map[string]string),
		longhands:  make(map[string][]string),
		categories: make(map[string]string),
		composites: make(map[string][]string),
		memberOf:   make(map[string][]string),
		tokens:     make(map[string]TokenInfo),
		patterns:   make(map[string]*Pattern),
		sources:    normalizeSources(cfg.ImportSources()),
		jsxFactory: cfg.JSXFactory,
	}
	if c.jsxFactory == "" {
		c.jsxFactory = "styled"
	}

	for _, p := range cfg.Properties {
		c.properties[p] = struct{}{}
	}
	for _, cond := range cfg.Conditions {
		c.conditions[strings.TrimPrefix(cond, "_")] = struct{}{}
	}

	for _, prop := range sortedKeys(cfg.Utilities) {
		u := cfg.Utilities[prop]
		c.properties[prop] = struct{}{}
		if u.Values != "" {
			c.categories[prop] = u.Values
		}
		for _, sh := range u.Shorthands() {
			c.addShorthand(sh, prop)
		}
	}
	for _, sh := range sortedKeys(cfg.Shorthands) {
		c.addShorthand(sh, cfg.Shorthands[sh])
	}

	for _, composite := range sortedKeys(cfg.Composites) {
		members := cfg.Composites[composite]
		for _, m := range members {
			if m == composite {
				return nil, fmt.Errorf("%w: composite %q lists itself as a member", ErrInvalidConfig, composite)
			}
			c.memberOf[m] = append(c.memberOf[m], composite)
		}
		c.composites[composite] = members
	}

	flattenTokens(cfg.Tokens, false, c.tokens)
	flattenTokens(cfg.SemanticTokens, true, c.tokens)

	for i := range cfg.Patterns {
		p := &cfg.Patterns[i]
		c.patterns[p.Name] = p
		for _, jsx := range p.JSX {
			c.patterns[jsx] = p
		}
	}
	return c, nil
}

func (c *Context) addShorthand(shorthand, longhand string) {
	if shorthand == "" || longhand == "" || shorthand == longhand {
		return
	}
	if _, exists := c.shorthands[shorthand]; exists {
		return
	}
	c.shorthands[shorthand] = longhand
	c.longhands[longhand] = append(c.longhands[longhand], shorthand)
	c.properties[shorthand] = struct{}{}
}

// Root returns the directory the configuration applies to.
func (c *Context) Root() string { return c.root }

// ConfigPath returns the configuration file the context was loaded from,
// empty for contexts built in memory.
func (c *Context) ConfigPath() string { return c.configPath }

// JSXFactory returns the name of the styled factory export.
func (c *Context) JSXFactory() string { return c.jsxFactory }

// IsValidProperty reports whether name is a style property: a CSS property,
// a utility, a shorthand, or a condition written as _name.
func (c *Context) IsValidProperty(name string) bool {
	if _, ok := c.properties[name]; ok {
		return true
	}
	if strings.HasPrefix(name, "_") {
		_, ok := c.conditions[name[1:]]
		return ok
	}
	return false
}

// Longhand returns the longhand of a registered shorthand.
func (c *Context) Longhand(name string) (string, bool) {
	lh, ok := c.shorthands[name]
	return lh, ok
}

// Shorthands returns the shorthands registered for a longhand, in
// registration order.
func (c *Context) Shorthands(name string) []string {
	return c.longhands[name]
}

// PropertyCategory returns the token category of a property after
// longhand resolution.
func (c *Context) PropertyCategory(name string) (string, bool) {
	if lh, ok := c.shorthands[name]; ok {
		name = lh
	}
	cat, ok := c.categories[name]
	return cat, ok
}

// Composite returns the atomic members of a composite property.
func (c *Context) Composite(name string) ([]string, bool) {
	m, ok := c.composites[name]
	return m, ok
}

// CompositesOf returns the composites that list name as a member.
func (c *Context) CompositesOf(name string) []string {
	return c.memberOf[name]
}

// Token looks up a token by path. An "/opacity" suffix is ignored.
func (c *Context) Token(path string) (TokenInfo, bool) {
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	t, ok := c.tokens[strings.TrimSpace(path)]
	return t, ok
}

// Tokens returns every registered token sorted by path.
func (c *Context) Tokens() []TokenInfo {
	out := make([]TokenInfo, 0, len(c.tokens))
	for _, t := range c.tokens {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// PatternFor returns the pattern behind a component or pattern name.
func (c *Context) PatternFor(name string) (*Pattern, bool) {
	p, ok := c.patterns[name]
	return p, ok
}

// Recipes returns the configured recipes and slot recipes.
func (c *Context) Recipes() []Recipe {
	out := make([]Recipe, 0, len(c.cfg.Recipes)+len(c.cfg.SlotRecipes))
	out = append(out, c.cfg.Recipes...)
	return append(out, c.cfg.SlotRecipes...)
}

// ImportSources returns the normalized module specifiers of the runtime.
func (c *Context) ImportSources() []string { return c.sources }

// WithFiles returns a copy of c whose included-file set is exactly paths.
func (c *Context) WithFiles(paths ...string) *Context {
	cp := *c
	cp.files = make(map[string]bool, len(paths))
	for _, p := range paths {
		cp.files[c.abs(p)] = true
	}
	return &cp
}

// IncludesFile reports whether path is matched by the include globs and not
// by the exclude globs. Without include globs every file is included.
func (c *Context) IncludesFile(path string) bool {
	abs := c.abs(path)
	if c.files != nil {
		return c.files[abs]
	}
	if len(c.cfg.Include) == 0 {
		return !c.matchAny(c.cfg.Exclude, abs)
	}
	return c.matchAny(c.cfg.Include, abs) && !c.matchAny(c.cfg.Exclude, abs)
}

func (c *Context) matchAny(patterns []string, abs string) bool {
	rel, err := filepath.Rel(c.root, abs)
	relOK := err == nil && !strings.HasPrefix(rel, "..")
	rel = filepath.ToSlash(rel)
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if filepath.IsAbs(pattern) || strings.HasPrefix(pattern, "/") {
			if ok, _ := doublestar.Match(pattern, filepath.ToSlash(abs)); ok {
				return true
			}
			continue
		}
		if !relOK {
			continue
		}
		if ok, _ := doublestar.Match(strings.TrimPrefix(pattern, "./"), rel); ok {
			return true
		}
	}
	return false
}

func (c *Context) abs(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.root, path)
	}
	return filepath.Clean(path)
}

// MatchImport reports whether mod, imported from file, refers to the
// generated design-system runtime. Path mappings are tried when the raw
// specifier does not match.
func (c *Context) MatchImport(file, mod string) bool {
	if c.matchSource(file, mod) {
		return true
	}
	for _, candidate := range c.expandPathMappings(mod) {
		if c.matchSource(file, candidate) {
			return true
		}
	}
	return false
}

func (c *Context) matchSource(file, mod string) bool {
	norm := strings.TrimPrefix(mod, "./")
	for _, src := range c.sources {
		if norm == src || strings.HasPrefix(norm, src+"/") {
			return true
		}
		if file == "" || !isRelative(mod) || !isRelativeSource(src) {
			continue
		}
		resolved := filepath.Join(filepath.Dir(c.abs(file)), filepath.FromSlash(mod))
		base := filepath.Join(c.root, filepath.FromSlash(src))
		if resolved == base || strings.HasPrefix(resolved, base+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (c *Context) expandPathMappings(mod string) []string {
	var out []string
	for _, m := range c.cfg.PathMappings {
		star := strings.IndexByte(m.Pattern, '*')
		if star < 0 {
			if mod == m.Pattern {
				out = append(out, m.Paths...)
			}
			continue
		}
		prefix, suffix := m.Pattern[:star], m.Pattern[star+1:]
		if !strings.HasPrefix(mod, prefix) || !strings.HasSuffix(mod, suffix) || len(mod) < len(prefix)+len(suffix) {
			continue
		}
		captured := mod[len(prefix) : len(mod)-len(suffix)]
		for _, p := range m.Paths {
			out = append(out, strings.Replace(p, "*", captured, 1))
		}
	}
	return out
}

func normalizeSources(sources []string) []string {
	out := make([]string, 0, len(sources))
	for _, s := range sources {
		s = strings.TrimSuffix(strings.TrimPrefix(filepath.ToSlash(s), "./"), "/")
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func isRelative(mod string) bool {
	return strings.HasPrefix(mod, "./") || strings.HasPrefix(mod, "../")
}

// isRelativeSource reports whether a normalized source is a path rather
// than a package name.
func isRelativeSource(src string) bool {
	return !strings.HasPrefix(src, "@") && !strings.Contains(src, ":")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
