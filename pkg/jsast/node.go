package jsast

import "github.com/leapstack-labs/pandalint/pkg/token"

// Kind enumerates the node variants of the tree.
type Kind int

// Node kinds.
const (
	KindOther Kind = iota
	KindProgram
	KindImportDeclaration
	KindImportSpecifier
	KindIdentifier
	KindLiteral
	KindTemplateLiteral
	KindTemplateElement
	KindTaggedTemplateExpression
	KindCallExpression
	KindMemberExpression
	KindObjectExpression
	KindProperty
	KindSpreadElement
	KindArrayExpression
	KindVariableDeclaration
	KindVariableDeclarator
	KindJSXElement
	KindJSXOpeningElement
	KindJSXAttribute
	KindJSXIdentifier
	KindJSXMemberExpression
	KindJSXExpressionContainer
	KindJSXSpreadAttribute
)

var kindNames = [...]string{
	KindOther:                    "Other",
	KindProgram:                  "Program",
	KindImportDeclaration:        "ImportDeclaration",
	KindImportSpecifier:          "ImportSpecifier",
	KindIdentifier:               "Identifier",
	KindLiteral:                  "Literal",
	KindTemplateLiteral:          "TemplateLiteral",
	KindTemplateElement:          "TemplateElement",
	KindTaggedTemplateExpression: "TaggedTemplateExpression",
	KindCallExpression:           "CallExpression",
	KindMemberExpression:         "MemberExpression",
	KindObjectExpression:         "ObjectExpression",
	KindProperty:                 "Property",
	KindSpreadElement:            "SpreadElement",
	KindArrayExpression:          "ArrayExpression",
	KindVariableDeclaration:      "VariableDeclaration",
	KindVariableDeclarator:       "VariableDeclarator",
	KindJSXElement:               "JSXElement",
	KindJSXOpeningElement:        "JSXOpeningElement",
	KindJSXAttribute:             "JSXAttribute",
	KindJSXIdentifier:            "JSXIdentifier",
	KindJSXMemberExpression:      "JSXMemberExpression",
	KindJSXExpressionContainer:   "JSXExpressionContainer",
	KindJSXSpreadAttribute:       "JSXSpreadAttribute",
}

// String returns the ESTree type name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Node is implemented by every tree node. The set of implementations is closed.
type Node interface {
	Kind() Kind
	Span() token.Span
	Parent() Node
	Children() []Node

	setParent(Node)
}

type base struct {
	span   token.Span
	parent Node
}

func (b *base) Span() token.Span { return b.span }
func (b *base) Parent() Node     { return b.parent }
func (b *base) setParent(p Node) { b.parent = p }

// =============================================================================
// Program and modules
// =============================================================================

// Program is the root of a parsed file.
type Program struct {
	base
	Path      string
	Source    []byte
	Lines     *token.LineIndex
	Body      []Node
	HasErrors bool
}

// Kind implements Node.
func (*Program) Kind() Kind { return KindProgram }

// Children implements Node.
func (p *Program) Children() []Node { return p.Body }

// Text returns the source text covered by n.
func (p *Program) Text(n Node) string {
	if n == nil {
		return ""
	}
	s := n.Span()
	return string(p.Source[s.Start.Offset:s.End.Offset])
}

// Imports returns the import declarations at the top level of the file.
func (p *Program) Imports() []*ImportDeclaration {
	var out []*ImportDeclaration
	for _, n := range p.Body {
		if imp, ok := n.(*ImportDeclaration); ok {
			out = append(out, imp)
		}
	}
	return out
}

// ImportDeclaration is `import ... from "source"`.
type ImportDeclaration struct {
	base
	Source     *Literal
	Specifiers []*ImportSpecifier
	TypeOnly   bool
}

// Kind implements Node.
func (*ImportDeclaration) Kind() Kind { return KindImportDeclaration }

// Children implements Node.
func (d *ImportDeclaration) Children() []Node {
	out := make([]Node, 0, len(d.Specifiers)+1)
	for _, s := range d.Specifiers {
		out = append(out, s)
	}
	if d.Source != nil {
		out = append(out, d.Source)
	}
	return out
}

// Module returns the unquoted module specifier.
func (d *ImportDeclaration) Module() string {
	if d.Source == nil {
		return ""
	}
	s, _ := d.Source.Value.(string)
	return s
}

// ImportSpecifier is a named import, `{ imported as local }`.
type ImportSpecifier struct {
	base
	Imported string
	Local    *Identifier
}

// Kind implements Node.
func (*ImportSpecifier) Kind() Kind { return KindImportSpecifier }

// Children implements Node.
func (s *ImportSpecifier) Children() []Node {
	if s.Local == nil {
		return nil
	}
	return []Node{s.Local}
}

// LocalName returns the binding name in the importing file.
func (s *ImportSpecifier) LocalName() string {
	if s.Local == nil {
		return s.Imported
	}
	return s.Local.Name
}

// =============================================================================
// Expressions
// =============================================================================

// Identifier is a plain name.
type Identifier struct {
	base
	Name string
}

// Kind implements Node.
func (*Identifier) Kind() Kind { return KindIdentifier }

// Children implements Node.
func (*Identifier) Children() []Node { return nil }

// Literal is a string, number, boolean or null literal.
// Value holds a string, float64, bool, or nil.
type Literal struct {
	base
	Value any
	Raw   string
}

// Kind implements Node.
func (*Literal) Kind() Kind { return KindLiteral }

// Children implements Node.
func (*Literal) Children() []Node { return nil }

// TemplateLiteral is a backtick string. len(Quasis) == len(Expressions)+1.
type TemplateLiteral struct {
	base
	Quasis      []*TemplateElement
	Expressions []Node
}

// Kind implements Node.
func (*TemplateLiteral) Kind() Kind { return KindTemplateLiteral }

// Children implements Node.
func (t *TemplateLiteral) Children() []Node {
	out := make([]Node, 0, len(t.Quasis)+len(t.Expressions))
	for i, q := range t.Quasis {
		out = append(out, q)
		if i < len(t.Expressions) {
			out = append(out, t.Expressions[i])
		}
	}
	return out
}

// TemplateElement is one raw text chunk of a template literal.
type TemplateElement struct {
	base
	Raw string
}

// Kind implements Node.
func (*TemplateElement) Kind() Kind { return KindTemplateElement }

// Children implements Node.
func (*TemplateElement) Children() []Node { return nil }

// TaggedTemplateExpression is tag`...`.
type TaggedTemplateExpression struct {
	base
	Tag   Node
	Quasi *TemplateLiteral
}

// Kind implements Node.
func (*TaggedTemplateExpression) Kind() Kind { return KindTaggedTemplateExpression }

// Children implements Node.
func (t *TaggedTemplateExpression) Children() []Node {
	return nonNil(t.Tag, quasiNode(t.Quasi))
}

// CallExpression is callee(args...).
type CallExpression struct {
	base
	Callee    Node
	Arguments []Node
}

// Kind implements Node.
func (*CallExpression) Kind() Kind { return KindCallExpression }

// Children implements Node.
func (c *CallExpression) Children() []Node {
	out := nonNil(c.Callee)
	return append(out, c.Arguments...)
}

// MemberExpression is object.property or object[property].
type MemberExpression struct {
	base
	Object   Node
	Property Node
	Computed bool
}

// Kind implements Node.
func (*MemberExpression) Kind() Kind { return KindMemberExpression }

// Children implements Node.
func (m *MemberExpression) Children() []Node { return nonNil(m.Object, m.Property) }

// ObjectExpression is an object literal. Properties holds *Property,
// *SpreadElement and *Other (methods) nodes.
type ObjectExpression struct {
	base
	Properties []Node
}

// Kind implements Node.
func (*ObjectExpression) Kind() Kind { return KindObjectExpression }

// Children implements Node.
func (o *ObjectExpression) Children() []Node { return o.Properties }

// Property is a key/value pair of an object literal.
type Property struct {
	base
	Key       Node
	Value     Node
	Computed  bool
	Shorthand bool
}

// Kind implements Node.
func (*Property) Kind() Kind { return KindProperty }

// Children implements Node.
func (p *Property) Children() []Node { return nonNil(p.Key, p.Value) }

// SpreadElement is ...argument.
type SpreadElement struct {
	base
	Argument Node
}

// Kind implements Node.
func (*SpreadElement) Kind() Kind { return KindSpreadElement }

// Children implements Node.
func (s *SpreadElement) Children() []Node { return nonNil(s.Argument) }

// ArrayExpression is an array literal.
type ArrayExpression struct {
	base
	Elements []Node
}

// Kind implements Node.
func (*ArrayExpression) Kind() Kind { return KindArrayExpression }

// Children implements Node.
func (a *ArrayExpression) Children() []Node { return a.Elements }

// VariableDeclaration is a const/let/var statement.
type VariableDeclaration struct {
	base
	DeclKind     string
	Declarations []*VariableDeclarator
}

// Kind implements Node.
func (*VariableDeclaration) Kind() Kind { return KindVariableDeclaration }

// Children implements Node.
func (v *VariableDeclaration) Children() []Node {
	out := make([]Node, 0, len(v.Declarations))
	for _, d := range v.Declarations {
		out = append(out, d)
	}
	return out
}

// VariableDeclarator is one `id = init` binding.
type VariableDeclarator struct {
	base
	ID   Node
	Init Node
}

// Kind implements Node.
func (*VariableDeclarator) Kind() Kind { return KindVariableDeclarator }

// Children implements Node.
func (v *VariableDeclarator) Children() []Node { return nonNil(v.ID, v.Init) }

// =============================================================================
// JSX
// =============================================================================

// JSXElement is a JSX element with its opening tag and children.
type JSXElement struct {
	base
	Opening  *JSXOpeningElement
	Body     []Node
	Fragment bool
}

// Kind implements Node.
func (*JSXElement) Kind() Kind { return KindJSXElement }

// Children implements Node.
func (e *JSXElement) Children() []Node {
	var out []Node
	if e.Opening != nil {
		out = append(out, e.Opening)
	}
	return append(out, e.Body...)
}

// JSXOpeningElement is <Name attr... >. Name is a *JSXIdentifier,
// a *JSXMemberExpression, or an *Other for namespaced names.
type JSXOpeningElement struct {
	base
	Name        Node
	Attributes  []Node
	SelfClosing bool
}

// Kind implements Node.
func (*JSXOpeningElement) Kind() Kind { return KindJSXOpeningElement }

// Children implements Node.
func (o *JSXOpeningElement) Children() []Node {
	out := nonNil(o.Name)
	return append(out, o.Attributes...)
}

// JSXAttribute is name="value" or name={expr}. Value is nil for a bare
// boolean attribute.
type JSXAttribute struct {
	base
	Name  Node
	Value Node
}

// Kind implements Node.
func (*JSXAttribute) Kind() Kind { return KindJSXAttribute }

// Children implements Node.
func (a *JSXAttribute) Children() []Node { return nonNil(a.Name, a.Value) }

// JSXIdentifier is a name inside JSX syntax.
type JSXIdentifier struct {
	base
	Name string
}

// Kind implements Node.
func (*JSXIdentifier) Kind() Kind { return KindJSXIdentifier }

// Children implements Node.
func (*JSXIdentifier) Children() []Node { return nil }

// JSXMemberExpression is a dotted element name such as styled.div.
type JSXMemberExpression struct {
	base
	Object   Node
	Property *JSXIdentifier
}

// Kind implements Node.
func (*JSXMemberExpression) Kind() Kind { return KindJSXMemberExpression }

// Children implements Node.
func (m *JSXMemberExpression) Children() []Node {
	out := nonNil(m.Object)
	if m.Property != nil {
		out = append(out, m.Property)
	}
	return out
}

// JSXExpressionContainer is {expr}. Expression is nil for {}.
type JSXExpressionContainer struct {
	base
	Expression Node
}

// Kind implements Node.
func (*JSXExpressionContainer) Kind() Kind { return KindJSXExpressionContainer }

// Children implements Node.
func (c *JSXExpressionContainer) Children() []Node { return nonNil(c.Expression) }

// JSXSpreadAttribute is {...props} in attribute position.
type JSXSpreadAttribute struct {
	base
	Argument Node
}

// Kind implements Node.
func (*JSXSpreadAttribute) Kind() Kind { return KindJSXSpreadAttribute }

// Children implements Node.
func (s *JSXSpreadAttribute) Children() []Node { return nonNil(s.Argument) }

// =============================================================================
// Everything else
// =============================================================================

// Other is any construct without a dedicated variant. Type carries the
// grammar's node type name.
type Other struct {
	base
	Type string
	Kids []Node
}

// Kind implements Node.
func (*Other) Kind() Kind { return KindOther }

// Children implements Node.
func (o *Other) Children() []Node { return o.Kids }

func nonNil(nodes ...Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

func quasiNode(t *TemplateLiteral) Node {
	if t == nil {
		return nil
	}
	return t
}
