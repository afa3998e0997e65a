package jsast

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/token"
)

// Grammar node types consumed by the builder.
const (
	tsComment               = "comment"
	tsImportStatement       = "import_statement"
	tsImportClause          = "import_clause"
	tsNamedImports          = "named_imports"
	tsImportSpecifier       = "import_specifier"
	tsString                = "string"
	tsTemplateString        = "template_string"
	tsTemplateSubstitution  = "template_substitution"
	tsCallExpression        = "call_expression"
	tsMemberExpression      = "member_expression"
	tsSubscriptExpression   = "subscript_expression"
	tsParenthesized         = "parenthesized_expression"
	tsObject                = "object"
	tsPair                  = "pair"
	tsShorthandProperty     = "shorthand_property_identifier"
	tsComputedPropertyName  = "computed_property_name"
	tsArray                 = "array"
	tsSpreadElement         = "spread_element"
	tsLexicalDeclaration    = "lexical_declaration"
	tsVariableDeclaration   = "variable_declaration"
	tsVariableDeclarator    = "variable_declarator"
	tsJSXElement            = "jsx_element"
	tsJSXSelfClosingElement = "jsx_self_closing_element"
	tsJSXOpeningElement     = "jsx_opening_element"
	tsJSXClosingElement     = "jsx_closing_element"
	tsJSXAttribute          = "jsx_attribute"
	tsJSXExpression         = "jsx_expression"
)

// Parse parses src, choosing the grammar from the extension of path.
func Parse(ctx context.Context, path string, src []byte) (*Program, error) {
	kind := core.FileKindFromPath(path)
	if kind == core.FileUnknown {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFile)
	}
	return ParseKind(ctx, kind, path, src)
}

// ParseKind parses src with the grammar for kind. A file with syntax errors
// still yields a tree; Program.HasErrors is set.
func ParseKind(ctx context.Context, kind core.FileKind, path string, src []byte) (*Program, error) {
	// New parser per call, tree-sitter parsers are not safe for concurrent use.
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(language(kind))

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}
	if tree == nil {
		return nil, fmt.Errorf("%w: %s: no tree", ErrParse, path)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("%w: %s: nil root node", ErrParse, path)
	}

	b := &builder{src: src, lines: token.NewLineIndex(src)}
	prog := &Program{
		Path:      path,
		Source:    src,
		Lines:     b.lines,
		HasErrors: root.HasError(),
	}
	prog.span = b.lines.Span(0, len(src))
	prog.Body = b.list(root)
	link(prog)
	return prog, nil
}

func language(kind core.FileKind) *sitter.Language {
	switch kind {
	case core.FileJavaScript:
		return javascript.GetLanguage()
	case core.FileTypeScript:
		return typescript.GetLanguage()
	default:
		return tsx.GetLanguage()
	}
}

type builder struct {
	src   []byte
	lines *token.LineIndex
}

func (b *builder) base(n *sitter.Node) base {
	sp, ep := n.StartPoint(), n.EndPoint()
	return base{span: token.Span{
		Start: token.Position{Line: int(sp.Row) + 1, Column: int(sp.Column) + 1, Offset: int(n.StartByte())},
		End:   token.Position{Line: int(ep.Row) + 1, Column: int(ep.Column) + 1, Offset: int(n.EndByte())},
	}}
}

func (b *builder) text(n *sitter.Node) string {
	return string(b.src[n.StartByte():n.EndByte()])
}

func (b *builder) list(n *sitter.Node) []Node {
	var out []Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := b.convert(n.NamedChild(i)); c != nil {
			out = append(out, c)
		}
	}
	return out
}

func (b *builder) convert(n *sitter.Node) Node {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case tsComment, "hash_bang_line":
		return nil
	case tsImportStatement:
		return b.importDecl(n)
	case "identifier", "property_identifier", tsShorthandProperty, "private_property_identifier",
		"shorthand_property_identifier_pattern", "type_identifier", "undefined":
		return &Identifier{base: b.base(n), Name: b.text(n)}
	case tsString:
		return b.stringLit(n, false)
	case "number":
		return b.number(n)
	case "true", "false":
		return &Literal{base: b.base(n), Value: n.Type() == "true", Raw: b.text(n)}
	case "null":
		return &Literal{base: b.base(n), Raw: b.text(n)}
	case tsTemplateString:
		return b.template(n)
	case tsCallExpression:
		return b.call(n)
	case tsMemberExpression:
		return &MemberExpression{
			base:     b.base(n),
			Object:   b.convert(n.ChildByFieldName("object")),
			Property: b.convert(n.ChildByFieldName("property")),
		}
	case tsSubscriptExpression:
		return &MemberExpression{
			base:     b.base(n),
			Object:   b.convert(n.ChildByFieldName("object")),
			Property: b.convert(n.ChildByFieldName("index")),
			Computed: true,
		}
	case tsParenthesized:
		return b.convert(firstNamed(n))
	case tsObject:
		return b.object(n)
	case tsArray:
		return &ArrayExpression{base: b.base(n), Elements: b.list(n)}
	case tsSpreadElement:
		return &SpreadElement{base: b.base(n), Argument: b.convert(firstNamed(n))}
	case tsLexicalDeclaration, tsVariableDeclaration:
		return b.varDecl(n)
	case tsJSXElement:
		return b.jsxElement(n)
	case tsJSXSelfClosingElement:
		e := &JSXElement{base: b.base(n)}
		e.Opening = b.jsxOpening(n, true)
		return e
	case tsJSXOpeningElement:
		return b.jsxOpening(n, false)
	case tsJSXExpression:
		return &JSXExpressionContainer{base: b.base(n), Expression: b.convert(firstNamed(n))}
	}
	return &Other{base: b.base(n), Type: n.Type(), Kids: b.list(n)}
}

func (b *builder) importDecl(n *sitter.Node) *ImportDeclaration {
	d := &ImportDeclaration{base: b.base(n)}
	if src := n.ChildByFieldName("source"); src != nil {
		d.Source = b.stringLit(src, false)
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		switch {
		case !c.IsNamed() && c.Type() == "type":
			d.TypeOnly = true
		case c.Type() == tsImportClause:
			d.Specifiers = append(d.Specifiers, b.importClause(c)...)
		}
	}
	return d
}

// importClause returns the named specifiers of an import clause. Default and
// namespace imports carry no imported name and are not represented.
func (b *builder) importClause(n *sitter.Node) []*ImportSpecifier {
	var out []*ImportSpecifier
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() != tsNamedImports {
			continue
		}
		for j := 0; j < int(c.NamedChildCount()); j++ {
			if s := c.NamedChild(j); s.Type() == tsImportSpecifier {
				out = append(out, b.importSpecifier(s))
			}
		}
	}
	return out
}

func (b *builder) importSpecifier(n *sitter.Node) *ImportSpecifier {
	spec := &ImportSpecifier{base: b.base(n)}
	var names []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() == "identifier" || c.Type() == tsString {
			names = append(names, c)
		}
	}
	if len(names) == 0 {
		return spec
	}
	imported := names[0]
	if imported.Type() == tsString {
		s, _ := b.stringLit(imported, false).Value.(string)
		spec.Imported = s
	} else {
		spec.Imported = b.text(imported)
	}
	local := imported
	if len(names) > 1 {
		local = names[len(names)-1]
	}
	spec.Local = &Identifier{base: b.base(local), Name: b.text(local)}
	if local.Type() == tsString {
		spec.Local.Name = spec.Imported
	}
	return spec
}

func (b *builder) stringLit(n *sitter.Node, jsx bool) *Literal {
	raw := b.text(n)
	inner := raw
	if len(raw) >= 2 {
		inner = raw[1 : len(raw)-1]
	}
	if !jsx {
		inner = unescape(inner)
	}
	return &Literal{base: b.base(n), Value: inner, Raw: raw}
}

func (b *builder) number(n *sitter.Node) *Literal {
	raw := b.text(n)
	clean := strings.ReplaceAll(raw, "_", "")
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		if i, ierr := strconv.ParseInt(clean, 0, 64); ierr == nil {
			v = float64(i)
		}
	}
	return &Literal{base: b.base(n), Value: v, Raw: raw}
}

func (b *builder) template(n *sitter.Node) *TemplateLiteral {
	t := &TemplateLiteral{base: b.base(n)}
	cur := int(n.StartByte()) + 1
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() != tsTemplateSubstitution {
			continue
		}
		t.Quasis = append(t.Quasis, b.quasi(cur, int(c.StartByte())))
		expr := b.convert(firstNamed(c))
		if expr == nil {
			expr = &Other{base: b.base(c), Type: c.Type()}
		}
		t.Expressions = append(t.Expressions, expr)
		cur = int(c.EndByte())
	}
	end := int(n.EndByte()) - 1
	if end < cur {
		end = cur
	}
	t.Quasis = append(t.Quasis, b.quasi(cur, end))
	return t
}

func (b *builder) quasi(start, end int) *TemplateElement {
	return &TemplateElement{
		base: base{span: b.lines.Span(start, end)},
		Raw:  string(b.src[start:end]),
	}
}

func (b *builder) call(n *sitter.Node) Node {
	fn := n.ChildByFieldName("function")
	args := n.ChildByFieldName("arguments")
	if args != nil && args.Type() == tsTemplateString {
		return &TaggedTemplateExpression{
			base:  b.base(n),
			Tag:   b.convert(fn),
			Quasi: b.template(args),
		}
	}
	c := &CallExpression{base: b.base(n), Callee: b.convert(fn)}
	if args != nil {
		c.Arguments = b.list(args)
	}
	return c
}

func (b *builder) object(n *sitter.Node) *ObjectExpression {
	o := &ObjectExpression{base: b.base(n)}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		switch c.Type() {
		case tsComment:
		case tsPair:
			o.Properties = append(o.Properties, b.pair(c))
		case tsShorthandProperty:
			o.Properties = append(o.Properties, &Property{
				base:      b.base(c),
				Key:       &Identifier{base: b.base(c), Name: b.text(c)},
				Value:     &Identifier{base: b.base(c), Name: b.text(c)},
				Shorthand: true,
			})
		default:
			if conv := b.convert(c); conv != nil {
				o.Properties = append(o.Properties, conv)
			}
		}
	}
	return o
}

func (b *builder) pair(n *sitter.Node) *Property {
	p := &Property{base: b.base(n)}
	key := n.ChildByFieldName("key")
	if key != nil && key.Type() == tsComputedPropertyName {
		p.Computed = true
		p.Key = b.convert(firstNamed(key))
	} else if key != nil && (key.Type() == "true" || key.Type() == "false" || key.Type() == "null") {
		// Keywords used as property names are plain identifiers.
		p.Key = &Identifier{base: b.base(key), Name: b.text(key)}
	} else {
		p.Key = b.convert(key)
	}
	p.Value = b.convert(n.ChildByFieldName("value"))
	return p
}

func (b *builder) varDecl(n *sitter.Node) *VariableDeclaration {
	d := &VariableDeclaration{base: b.base(n)}
	if n.ChildCount() > 0 {
		d.DeclKind = n.Child(0).Type()
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() != tsVariableDeclarator {
			continue
		}
		d.Declarations = append(d.Declarations, &VariableDeclarator{
			base: b.base(c),
			ID:   b.convert(c.ChildByFieldName("name")),
			Init: b.convert(c.ChildByFieldName("value")),
		})
	}
	return d
}

func (b *builder) jsxElement(n *sitter.Node) *JSXElement {
	e := &JSXElement{base: b.base(n)}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		switch c.Type() {
		case tsJSXOpeningElement:
			if e.Opening == nil {
				e.Opening = b.jsxOpening(c, false)
			}
		case tsJSXClosingElement, tsComment:
		default:
			if conv := b.convert(c); conv != nil {
				e.Body = append(e.Body, conv)
			}
		}
	}
	e.Fragment = e.Opening == nil || e.Opening.Name == nil
	return e
}

func (b *builder) jsxOpening(n *sitter.Node, selfClosing bool) *JSXOpeningElement {
	o := &JSXOpeningElement{base: b.base(n), SelfClosing: selfClosing}
	name := n.ChildByFieldName("name")
	if name != nil {
		o.Name = b.jsxName(name)
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if name != nil && sameNode(c, name) {
			continue
		}
		switch c.Type() {
		case tsJSXAttribute:
			o.Attributes = append(o.Attributes, b.jsxAttribute(c))
		case tsJSXExpression:
			inner := firstNamed(c)
			if inner != nil && inner.Type() == tsSpreadElement {
				o.Attributes = append(o.Attributes, &JSXSpreadAttribute{
					base:     b.base(c),
					Argument: b.convert(firstNamed(inner)),
				})
				continue
			}
			o.Attributes = append(o.Attributes, &Other{base: b.base(c), Type: c.Type(), Kids: b.list(c)})
		}
	}
	return o
}

func (b *builder) jsxName(n *sitter.Node) Node {
	switch n.Type() {
	case "identifier", "jsx_identifier", "property_identifier":
		return &JSXIdentifier{base: b.base(n), Name: b.text(n)}
	case tsMemberExpression, "nested_identifier":
		obj := n.ChildByFieldName("object")
		prop := n.ChildByFieldName("property")
		if (obj == nil || prop == nil) && n.NamedChildCount() >= 2 {
			obj = n.NamedChild(0)
			prop = n.NamedChild(int(n.NamedChildCount()) - 1)
		}
		m := &JSXMemberExpression{base: b.base(n)}
		if obj != nil {
			m.Object = b.jsxName(obj)
		}
		if prop != nil {
			m.Property = &JSXIdentifier{base: b.base(prop), Name: b.text(prop)}
		}
		return m
	}
	return &Other{base: b.base(n), Type: n.Type(), Kids: b.list(n)}
}

func (b *builder) jsxAttribute(n *sitter.Node) *JSXAttribute {
	a := &JSXAttribute{base: b.base(n)}
	var parts []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c.Type() != tsComment {
			parts = append(parts, c)
		}
	}
	if len(parts) == 0 {
		return a
	}
	a.Name = b.jsxName(parts[0])
	if len(parts) < 2 {
		return a
	}
	v := parts[len(parts)-1]
	if v.Type() == tsString {
		a.Value = b.stringLit(v, true)
	} else {
		a.Value = b.convert(v)
	}
	return a
}

func firstNamed(n *sitter.Node) *sitter.Node {
	if n == nil {
		return nil
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c.Type() != tsComment {
			return c
		}
	}
	return nil
}

func sameNode(a, b *sitter.Node) bool {
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}

// unescape decodes the escape sequences of a JS string body.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch e := s[i]; e {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'v':
			sb.WriteByte('\v')
		case '0':
			sb.WriteByte(0)
		case '\n':
			// line continuation
		case 'x':
			if i+2 < len(s) {
				if v, err := strconv.ParseUint(s[i+1:i+3], 16, 8); err == nil {
					sb.WriteRune(rune(v))
					i += 2
					continue
				}
			}
			sb.WriteByte(e)
		case 'u':
			r, n := decodeUnicodeEscape(s[i+1:])
			if n == 0 {
				sb.WriteByte(e)
				continue
			}
			sb.WriteRune(r)
			i += n
		default:
			sb.WriteByte(e)
		}
	}
	return sb.String()
}

func decodeUnicodeEscape(s string) (rune, int) {
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 0 {
			return 0, 0
		}
		v, err := strconv.ParseUint(s[1:end], 16, 32)
		if err != nil {
			return 0, 0
		}
		return rune(v), end + 1
	}
	if len(s) < 4 {
		return 0, 0
	}
	v, err := strconv.ParseUint(s[:4], 16, 16)
	if err != nil {
		return 0, 0
	}
	return rune(v), 4
}
