// Package styles enumerates the governed style declarations of a file for
// lint rules.
package styles

import (
	"slices"
	"sort"
	"strings"

	"github.com/leapstack-labs/pandalint/pkg/analysis"
	"github.com/leapstack-labs/pandalint/pkg/jsast"
)

// Decl is one governed style declaration: a JSX attribute on a design-system
// element, or an object property inside a style call or style attribute.
// Variant keys of recipe definitions are never Decls.
type Decl struct {
	Attr *jsast.JSXAttribute
	Prop *jsast.Property

	// Name is the attribute name or the property key as written.
	Name string
	// Key is the *jsast.JSXIdentifier or non-computed *jsast.Identifier
	// naming the declaration, nil for any other key form.
	Key jsast.Node
	// Value is the declared value with a JSX expression container removed.
	// It is nil for a bare boolean attribute.
	Value jsast.Node
}

// Node returns the attribute or property.
func (d Decl) Node() jsast.Node {
	if d.Attr != nil {
		return d.Attr
	}
	return d.Prop
}

// RawValue returns the value as written: for attributes the literal or the
// expression container itself.
func (d Decl) RawValue() jsast.Node {
	if d.Attr != nil {
		return d.Attr.Value
	}
	return d.Prop.Value
}

// Static returns the text of a literal or interpolation-free template value
// and the node holding that text.
func (d Decl) Static() (string, jsast.Node, bool) {
	text, n, ok := analysis.StaticString(d.RawValue())
	if !ok || text == "" {
		return "", nil, false
	}
	return text, n, true
}

// Attributes returns the governed JSX attributes of f in source order.
func Attributes(f *analysis.File) []Decl {
	var out []Decl
	for _, attr := range jsast.Collect[*jsast.JSXAttribute](f.Program) {
		if !f.IsPandaProp(attr) {
			continue
		}
		d := Decl{Attr: attr}
		if id, ok := attr.Name.(*jsast.JSXIdentifier); ok {
			d.Name, d.Key = id.Name, id
		}
		if c, ok := attr.Value.(*jsast.JSXExpressionContainer); ok {
			d.Value = c.Expression
		} else {
			d.Value = attr.Value
		}
		out = append(out, d)
	}
	return out
}

// Properties returns the governed object properties of f in source order,
// leaving out recipe variant keys.
func Properties(f *analysis.File) []Decl {
	var out []Decl
	for _, p := range jsast.Collect[*jsast.Property](f.Program) {
		if !f.IsPandaAttribute(p) || f.IsRecipeVariant(p) {
			continue
		}
		d := Decl{Prop: p, Value: p.Value}
		d.Name, _ = jsast.KeyName(p)
		if id, ok := p.Key.(*jsast.Identifier); ok && !p.Computed {
			d.Key = id
		}
		out = append(out, d)
	}
	return out
}

// All returns every governed declaration of f in source order.
func All(f *analysis.File) []Decl {
	out := append(Attributes(f), Properties(f)...)
	sort.SliceStable(out, func(i, j int) bool {
		return jsast.Start(out[i].Node()) < jsast.Start(out[j].Node())
	})
	return out
}

// Named returns the declarations of f whose name is a plain identifier.
func Named(f *analysis.File) []Decl {
	var out []Decl
	for _, d := range All(f) {
		if d.Key != nil {
			out = append(out, d)
		}
	}
	return out
}

// Siblings returns the names declared next to d: the other attributes of
// the same element, or the identifier keys of the same object literal.
// Unnamed siblings appear as "".
func Siblings(d Decl) []string {
	var names []string
	switch {
	case d.Attr != nil:
		el, ok := d.Attr.Parent().(*jsast.JSXOpeningElement)
		if !ok {
			return nil
		}
		for _, a := range el.Attributes {
			attr, ok := a.(*jsast.JSXAttribute)
			if !ok {
				continue
			}
			name, _ := jsast.Name(attr.Name)
			names = append(names, name)
		}
	case d.Prop != nil:
		obj, ok := d.Prop.Parent().(*jsast.ObjectExpression)
		if !ok {
			return nil
		}
		for _, n := range obj.Properties {
			p, ok := n.(*jsast.Property)
			if !ok {
				continue
			}
			var name string
			if id, ok := p.Key.(*jsast.Identifier); ok && !p.Computed {
				name = id.Name
			}
			names = append(names, name)
		}
	}
	return names
}

// Whitelist is the option shape shared by property rules.
type Whitelist struct {
	Whitelist []string `mapstructure:"whitelist"`
}

// Allows reports whether name is exempt from the rule.
func (w Whitelist) Allows(name string) bool {
	return slices.Contains(w.Whitelist, name)
}

// Quote formats names as a list of code spans joined by sep.
func Quote(names []string, sep string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "`" + n + "`"
	}
	return strings.Join(quoted, sep)
}

// Rename returns the replacement text renaming the key of d to name. Object
// shorthand properties keep their value binding.
func Rename(d Decl, name string) string {
	if d.Prop != nil && d.Prop.Shorthand {
		return name + ": " + d.Name
	}
	return name
}
