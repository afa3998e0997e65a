package jsast

// Predicates accept nil and report false for it.

// IsIdentifier reports whether n is an *Identifier.
func IsIdentifier(n Node) bool {
	_, ok := n.(*Identifier)
	return ok
}

// IsLiteral reports whether n is a *Literal of any type.
func IsLiteral(n Node) bool {
	_, ok := n.(*Literal)
	return ok
}

// IsStringLiteral reports whether n is a string *Literal.
func IsStringLiteral(n Node) bool {
	lit, ok := n.(*Literal)
	if !ok {
		return false
	}
	_, ok = lit.Value.(string)
	return ok
}

// IsTemplateLiteral reports whether n is a *TemplateLiteral.
func IsTemplateLiteral(n Node) bool {
	_, ok := n.(*TemplateLiteral)
	return ok
}

// IsStaticTemplate reports whether n is a template literal without
// interpolations.
func IsStaticTemplate(n Node) bool {
	t, ok := n.(*TemplateLiteral)
	return ok && len(t.Expressions) == 0
}

// IsCallExpression reports whether n is a *CallExpression.
func IsCallExpression(n Node) bool {
	_, ok := n.(*CallExpression)
	return ok
}

// IsMemberExpression reports whether n is a *MemberExpression.
func IsMemberExpression(n Node) bool {
	_, ok := n.(*MemberExpression)
	return ok
}

// IsObjectExpression reports whether n is an *ObjectExpression.
func IsObjectExpression(n Node) bool {
	_, ok := n.(*ObjectExpression)
	return ok
}

// IsArrayExpression reports whether n is an *ArrayExpression.
func IsArrayExpression(n Node) bool {
	_, ok := n.(*ArrayExpression)
	return ok
}

// IsProperty reports whether n is an object *Property.
func IsProperty(n Node) bool {
	_, ok := n.(*Property)
	return ok
}

// IsComputedKey reports whether n is a property with a computed key.
func IsComputedKey(n Node) bool {
	p, ok := n.(*Property)
	return ok && p.Computed
}

// IsJSXAttribute reports whether n is a *JSXAttribute.
func IsJSXAttribute(n Node) bool {
	_, ok := n.(*JSXAttribute)
	return ok
}

// IsJSXOpeningElement reports whether n is a *JSXOpeningElement.
func IsJSXOpeningElement(n Node) bool {
	_, ok := n.(*JSXOpeningElement)
	return ok
}

// IsJSXIdentifier reports whether n is a *JSXIdentifier.
func IsJSXIdentifier(n Node) bool {
	_, ok := n.(*JSXIdentifier)
	return ok
}

// IsJSXMemberExpression reports whether n is a *JSXMemberExpression.
func IsJSXMemberExpression(n Node) bool {
	_, ok := n.(*JSXMemberExpression)
	return ok
}

// IsJSXExpressionContainer reports whether n is a *JSXExpressionContainer.
func IsJSXExpressionContainer(n Node) bool {
	_, ok := n.(*JSXExpressionContainer)
	return ok
}

// IsStatic reports whether n is a value known without evaluation:
// a literal, a template without interpolations, or an object literal.
func IsStatic(n Node) bool {
	switch v := n.(type) {
	case *Literal, *ObjectExpression:
		return true
	case *TemplateLiteral:
		return len(v.Expressions) == 0
	default:
		return false
	}
}

// Name returns the name of an *Identifier or *JSXIdentifier.
func Name(n Node) (string, bool) {
	switch v := n.(type) {
	case *Identifier:
		return v.Name, true
	case *JSXIdentifier:
		return v.Name, true
	default:
		return "", false
	}
}

// StringValue returns the text of a string literal or of a template literal
// without interpolations.
func StringValue(n Node) (string, bool) {
	switch v := n.(type) {
	case *Literal:
		s, ok := v.Value.(string)
		return s, ok
	case *TemplateLiteral:
		if len(v.Expressions) != 0 || len(v.Quasis) == 0 {
			return "", false
		}
		return v.Quasis[0].Raw, true
	default:
		return "", false
	}
}

// KeyName returns the statically known name of a property key: an
// identifier, a string literal, or a template literal whose first chunk is
// used. Computed identifier keys have no static name.
func KeyName(p *Property) (string, bool) {
	if p == nil {
		return "", false
	}
	switch k := p.Key.(type) {
	case *Identifier:
		if p.Computed {
			return "", false
		}
		return k.Name, true
	case *Literal:
		s, ok := k.Value.(string)
		return s, ok
	case *TemplateLiteral:
		if len(k.Quasis) == 0 {
			return "", false
		}
		return k.Quasis[0].Raw, true
	default:
		return "", false
	}
}

// Start returns the start byte offset of n, or -1 for nil.
func Start(n Node) int {
	if n == nil {
		return -1
	}
	return n.Span().Start.Offset
}

// End returns the end byte offset of n, or -1 for nil.
func End(n Node) int {
	if n == nil {
		return -1
	}
	return n.Span().End.Offset
}
