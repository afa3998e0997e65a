package analysis

import (
	"slices"
	"strings"

	"github.com/leapstack-labs/pandalint/pkg/jsast"
)

// Classification is the result of classifying one node.
type Classification struct {
	Governed bool   // subject to design-system style rules
	Property string // key or attribute name as written
	Longhand string // longhand of Property, empty when Property is not a shorthand
	Variant  bool   // key inside a recipe definition naming a variant
}

// Style reports whether the node is a governed style declaration that is not
// a variant key. Property-oriented rules act on these only.
func (c Classification) Style() bool {
	return c.Governed && !c.Variant
}

// Classify classifies a JSX attribute or an object property. Every other
// node is not governed.
func (f *File) Classify(n jsast.Node) Classification {
	switch v := n.(type) {
	case *jsast.JSXAttribute:
		name, _ := jsast.Name(v.Name)
		c := Classification{Governed: f.IsPandaProp(v), Property: name}
		if lh, ok := f.Design.Longhand(name); ok {
			c.Longhand = lh
		}
		return c
	case *jsast.Property:
		name, _ := jsast.KeyName(v)
		c := Classification{
			Governed: f.IsPandaAttribute(v),
			Property: name,
			Variant:  f.IsRecipeVariant(v),
		}
		if lh, ok := f.Design.Longhand(name); ok {
			c.Longhand = lh
		}
		return c
	default:
		return Classification{}
	}
}

// IsValidProperty reports whether name is a style property. When callee
// names a pattern, the pattern's own properties are accepted too.
func (f *File) IsValidProperty(name, callee string) bool {
	if f.Design.IsValidProperty(name) {
		return true
	}
	if callee == "" {
		return false
	}
	p, ok := f.Design.PatternFor(callee)
	if !ok {
		return false
	}
	return slices.Contains(p.Properties, name)
}

// IsPandaProp reports whether a JSX attribute sets a style on a design-system
// element: a styled factory member (<styled.div>), a local styled component
// (const Comp = styled(...)), or an imported pattern component.
func (f *File) IsPandaProp(attr *jsast.JSXAttribute) bool {
	if attr == nil {
		return false
	}
	if v, ok := f.pandaProps[attr]; ok {
		return v
	}
	v := f.isPandaProp(attr)
	f.pandaProps[attr] = v
	return v
}

func (f *File) isPandaProp(attr *jsast.JSXAttribute) bool {
	el, ok := jsast.Closest(attr, jsast.KindJSXOpeningElement).(*jsast.JSXOpeningElement)
	if !ok {
		return false
	}
	prop, hasName := jsast.Name(attr.Name)

	switch name := el.Name.(type) {
	case *jsast.JSXMemberExpression:
		obj, _ := jsast.Name(name.Object)
		// Factories accept the full style-prop surface.
		return f.IsPandaIsh(obj) || f.isPandaModuleAlias(obj)
	case *jsast.JSXIdentifier:
		if f.isLocalStyledFactory(name.Name) {
			if !hasName {
				return false
			}
			if prop == "css" || strings.HasPrefix(prop, "_") {
				return true
			}
			return f.IsValidProperty(prop, "")
		}
		if !f.IsPandaIsh(name.Name) || !hasName {
			return false
		}
		return f.IsValidProperty(prop, name.Name)
	default:
		return false
	}
}

// isLocalStyledFactory reports whether name is declared in the file as
// `const name = factory(...)` where factory is the runtime's styled factory.
func (f *File) isLocalStyledFactory(name string) bool {
	if v, ok := f.localStyled[name]; ok {
		return v
	}
	v := false
	if d := f.declarator(name); d != nil {
		if call, ok := d.Init.(*jsast.CallExpression); ok {
			if callee, ok := call.Callee.(*jsast.Identifier); ok {
				v = f.isPandaModuleAlias(callee.Name) || f.IsPandaIsh(callee.Name)
			}
		}
	}
	f.localStyled[name] = v
	return v
}

// IsStyledProperty reports whether the key of p names a style property.
// Identifier, string literal, and template literal keys are considered.
func (f *File) IsStyledProperty(p *jsast.Property, callee string) bool {
	if p == nil {
		return false
	}
	switch p.Key.(type) {
	case *jsast.Identifier, *jsast.Literal, *jsast.TemplateLiteral:
	default:
		return false
	}
	name, ok := jsast.KeyName(p)
	if !ok {
		// Non-string literal keys such as numbers are not checked.
		_, isLit := p.Key.(*jsast.Literal)
		return isLit
	}
	return f.IsValidProperty(name, callee)
}

// InPandaFunction returns the callee name of the nearest call enclosing p
// when that callee is imported from the design system runtime. Both css(...)
// and css.raw(...) are recognized.
func (f *File) InPandaFunction(p *jsast.Property) (string, bool) {
	if p == nil {
		return "", false
	}
	if v, ok := f.pandaCallees[p]; ok {
		return v, v != ""
	}
	name := f.pandaCallee(p)
	f.pandaCallees[p] = name
	return name, name != ""
}

func (f *File) pandaCallee(p *jsast.Property) string {
	call, ok := styleScope(p).(*jsast.CallExpression)
	if !ok {
		return ""
	}
	var name string
	switch callee := call.Callee.(type) {
	case *jsast.Identifier:
		name = callee.Name
	case *jsast.MemberExpression:
		if obj, ok := callee.Object.(*jsast.Identifier); ok {
			name = obj.Name
		}
	}
	if !f.IsPandaIsh(name) {
		return ""
	}
	return name
}

// styleScope returns the nearest call or JSX expression container enclosing
// n. A container closer than any call means n is written in a JSX attribute
// even when the element itself sits inside a call such as items.map(...).
func styleScope(n jsast.Node) jsast.Node {
	return jsast.ClosestFunc(n, func(a jsast.Node) bool {
		k := a.Kind()
		return k == jsast.KindCallExpression || k == jsast.KindJSXExpressionContainer
	})
}

// IsInJSXProp reports whether p sits inside the expression value of a style
// attribute on a design-system element, e.g. <Box _hover={{ color: 'red' }} />.
func (f *File) IsInJSXProp(p *jsast.Property) bool {
	if p == nil {
		return false
	}
	container, ok := styleScope(p).(*jsast.JSXExpressionContainer)
	if !ok {
		return false
	}
	attr, ok := container.Parent().(*jsast.JSXAttribute)
	if !ok {
		return false
	}
	el, ok := jsast.Closest(attr, jsast.KindJSXOpeningElement).(*jsast.JSXOpeningElement)
	if !ok {
		return false
	}

	var panda bool
	switch name := el.Name.(type) {
	case *jsast.JSXMemberExpression:
		obj, _ := jsast.Name(name.Object)
		panda = f.IsPandaIsh(obj)
	case *jsast.JSXIdentifier:
		panda = f.IsPandaIsh(name.Name) || f.isLocalStyledFactory(name.Name)
	}
	if !panda {
		return false
	}

	attrName, ok := attr.Name.(*jsast.JSXIdentifier)
	if !ok {
		return false
	}
	return f.Design.IsValidProperty(attrName.Name)
}

// IsPandaAttribute reports whether an object property is a style
// declaration: a valid style key inside a design-system call, or inside the
// object value of a governed JSX attribute.
func (f *File) IsPandaAttribute(p *jsast.Property) bool {
	if p == nil {
		return false
	}
	if v, ok := f.pandaAttrs[p]; ok {
		return v
	}
	var v bool
	switch styleScope(p).(type) {
	case *jsast.CallExpression:
		if callee, ok := f.InPandaFunction(p); ok {
			v = f.IsStyledProperty(p, callee)
		}
	case *jsast.JSXExpressionContainer:
		v = f.IsInJSXProp(p) && f.IsStyledProperty(p, "")
	}
	f.pandaAttrs[p] = v
	return v
}

// TaggedTemplateCaller returns the name behind the tag of a tagged template:
// css`...`, styled.h1`...`, or styled(Comp)`...`.
func TaggedTemplateCaller(t *jsast.TaggedTemplateExpression) (string, bool) {
	if t == nil {
		return "", false
	}
	switch tag := t.Tag.(type) {
	case *jsast.Identifier:
		return tag.Name, true
	case *jsast.MemberExpression:
		if obj, ok := tag.Object.(*jsast.Identifier); ok {
			return obj.Name, true
		}
	case *jsast.CallExpression:
		if callee, ok := tag.Callee.(*jsast.Identifier); ok {
			return callee.Name, true
		}
	}
	return "", false
}

// IsStyledTaggedTemplate reports whether t is a design-system tagged
// template.
func (f *File) IsStyledTaggedTemplate(t *jsast.TaggedTemplateExpression) bool {
	caller, ok := TaggedTemplateCaller(t)
	if !ok {
		return false
	}
	return f.isPandaModuleAlias(caller) || f.IsPandaIsh(caller)
}

// ResolveComposite returns the composite property name is or stands for.
// Shorthands are resolved to their longhand first.
func (f *File) ResolveComposite(name string) (string, bool) {
	if _, ok := f.Design.Composite(name); ok {
		return name, true
	}
	lh := f.Longhand(name)
	if lh == name || !f.Design.IsValidProperty(lh) {
		return "", false
	}
	if _, ok := f.Design.Composite(lh); ok {
		return lh, true
	}
	return "", false
}
