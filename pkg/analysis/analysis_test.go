package analysis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/pandalint/pkg/analysis"
	"github.com/leapstack-labs/pandalint/pkg/design"
	"github.com/leapstack-labs/pandalint/pkg/design/designtest"
	"github.com/leapstack-labs/pandalint/pkg/jsast"
)

func parseFile(t *testing.T, src string) *analysis.File {
	t.Helper()
	prog, err := jsast.Parse(context.Background(), designtest.File, []byte(src))
	require.NoError(t, err)
	return analysis.NewFile(prog, designtest.Context(t))
}

// properties returns the object properties keyed key, in source order.
func properties(f *analysis.File, key string) []*jsast.Property {
	var out []*jsast.Property
	for _, p := range jsast.Collect[*jsast.Property](f.Program) {
		if name, ok := jsast.KeyName(p); ok && name == key {
			out = append(out, p)
		}
	}
	return out
}

func property(t *testing.T, f *analysis.File, key string) *jsast.Property {
	t.Helper()
	ps := properties(f, key)
	require.NotEmpty(t, ps, "no property %q", key)
	return ps[0]
}

func attribute(t *testing.T, f *analysis.File, name string) *jsast.JSXAttribute {
	t.Helper()
	for _, a := range jsast.Collect[*jsast.JSXAttribute](f.Program) {
		if n, ok := jsast.Name(a.Name); ok && n == name {
			return a
		}
	}
	require.FailNow(t, "attribute not found", name)
	return nil
}

func TestFile_Imports(t *testing.T) {
	f := parseFile(t, `
import { css, cva as recipe } from './panda/css';
import { useState } from 'react';
import { styled as s } from '../panda/jsx';
import { Button } from '@ui/recipes';
`)

	raw := f.RawImports()
	require.Len(t, raw, 5)
	assert.Equal(t, "recipe", raw[1].Alias)
	assert.Equal(t, "cva", raw[1].Name)
	assert.Equal(t, "./panda/css", raw[1].Module)

	var aliases []string
	for _, imp := range f.Imports() {
		aliases = append(aliases, imp.Alias)
	}
	assert.Equal(t, []string{"css", "recipe", "s", "Button"}, aliases)

	assert.True(t, f.IsPandaIsh("css"))
	assert.True(t, f.IsPandaIsh("s"))
	assert.False(t, f.IsPandaIsh("styled"), "only local aliases count")
	assert.False(t, f.IsPandaIsh("useState"))
	assert.False(t, f.IsPandaIsh(""))

	decls := f.Program.Imports()
	assert.True(t, f.IsPandaImport(decls[0]))
	assert.False(t, f.IsPandaImport(decls[1]))
	assert.False(t, f.IsPandaImport(nil))

	assert.Same(t, &f.RawImports()[0], &f.RawImports()[0], "bindings are resolved once")
}

func TestFile_NoDesignImports(t *testing.T) {
	f := parseFile(t, `
import { css } from 'other-lib';
const a = css({ color: 'red.400' });
`)
	assert.Empty(t, f.Imports())
	assert.False(t, f.IsPandaIsh("css"))
	assert.False(t, f.IsPandaAttribute(property(t, f, "color")))
}

func TestFile_IsPandaProp(t *testing.T) {
	src := `
import { styled } from './panda/jsx';
import { Circle } from './panda/jsx';
import { Modal } from 'some-ui';

const Btn = styled('button');
const Plain = makeComponent('button');

export const App = () => (
  <>
    <styled.div factoryColor="red" />
    <Circle size="4" marginX="2" onClick={handler} />
    <Btn css={{ color: 'red' }} _hover={{ color: 'blue' }} btnColor="red.400" color="red" onBtnClick={go} />
    <Plain color="red" />
    <Modal bg="red" />
    <div color="red" />
  </>
);
`
	f := parseFile(t, src)

	tests := []struct {
		attr string
		want bool
	}{
		{"factoryColor", true},
		{"size", true},
		{"marginX", true},
		{"onClick", false},
		{"css", true},
		{"_hover", true},
		{"btnColor", false},
		{"onBtnClick", false},
		{"bg", false},
	}
	for _, tt := range tests {
		t.Run(tt.attr, func(t *testing.T) {
			assert.Equal(t, tt.want, f.IsPandaProp(attribute(t, f, tt.attr)))
		})
	}

	// color appears on Btn (governed), Plain and div (not governed).
	var got []bool
	for _, a := range jsast.Collect[*jsast.JSXAttribute](f.Program) {
		if n, _ := jsast.Name(a.Name); n == "color" {
			got = append(got, f.IsPandaProp(a))
		}
	}
	assert.Equal(t, []bool{true, false, false}, got)
	assert.False(t, f.IsPandaProp(nil))
}

func TestFile_IsPandaAttribute(t *testing.T) {
	src := `
import { css } from './panda/css';
import { circle } from './panda/patterns';
import { Circle } from './panda/jsx';

const a = css({ color: 'red', notAProp: 1, '&:hover': { bg: 'blue' }, [dyn]: 'x' });
const b = css.raw({ rawColor: 'red' });
const c = other({ otherColor: 'red' });
const d = circle({ size: '4' });
const App = () => (
  <>
    <Circle _hover={{ jsxColor: 'red' }} />
    <div style={{ divColor: 'red' }} />
  </>
);
const List = ({ items }) => items.map((i) => <Circle key={i} css={{ accentColor: 'red', _hover: { caretColor: 'red' } }} />);
const Ref = forwardRef((props, ref) => <Circle ref={ref} css={{ outlineColor: 'red' }} />);
const Memo = memo(() => <Circle css={{ borderTopColor: fn({ nestedColor: 'red' }) }} />);
`
	f := parseFile(t, src)

	tests := []struct {
		key  string
		want bool
	}{
		{"color", true},
		{"notAProp", false},
		{"&:hover", false},
		{"bg", true},
		{"rawColor", false},
		{"otherColor", false},
		{"size", true},
		{"jsxColor", false},
		{"divColor", false},
		{"accentColor", true},
		{"caretColor", true},
		{"outlineColor", true},
		{"borderTopColor", true},
		{"nestedColor", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, f.IsPandaAttribute(property(t, f, tt.key)))
		})
	}
}

func TestFile_IsPandaAttribute_StyleKeys(t *testing.T) {
	f := parseFile(t, `
import { css } from './panda/css';
import { Circle } from './panda/jsx';

const a = css.raw({ color: 'red' });
const App = () => <Circle _hover={{ borderColor: 'red', 'margin': '2', bogus: 'x' }} />;
`)
	assert.True(t, f.IsPandaAttribute(property(t, f, "color")), "member callee css.raw")
	assert.True(t, f.IsPandaAttribute(property(t, f, "borderColor")), "inside governed JSX prop")
	assert.True(t, f.IsPandaAttribute(property(t, f, "margin")), "string literal key")
	assert.False(t, f.IsPandaAttribute(property(t, f, "bogus")))

	callee, ok := f.InPandaFunction(property(t, f, "color"))
	assert.True(t, ok)
	assert.Equal(t, "css", callee)
	assert.True(t, f.IsInJSXProp(property(t, f, "bogus")))
}

func TestFile_RecipeVariants(t *testing.T) {
	f := parseFile(t, `
import { cva, sva } from './panda/css';

const button = cva({
  base: { color: 'red' },
  variants: {
    debug: {
      true: { color: 'blue' },
    },
  },
});

const card = sva({
  slots: ['root'],
  base: { root: { padding: '4' } },
  variants: {
    size: {
      sm: { root: { margin: '2' } },
    },
  },
});
`)

	colors := properties(f, "color")
	require.Len(t, colors, 2)

	tests := []struct {
		name string
		prop *jsast.Property
		want bool
	}{
		{"cva base style", colors[0], false},
		{"cva variant name", property(t, f, "debug"), true},
		{"cva variant value", property(t, f, "true"), true},
		{"cva variant style", colors[1], false},
		{"cva anchor key", property(t, f, "variants"), true},
		{"sva base slot", property(t, f, "root"), true},
		{"sva base slot style", property(t, f, "padding"), false},
		{"sva variant slot style", property(t, f, "margin"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.IsRecipeVariant(tt.prop))
		})
	}

	debug := f.Classify(property(t, f, "debug"))
	assert.True(t, debug.Variant)
	assert.False(t, debug.Style(), "variant keys are never style declarations")
}

func TestFile_RecipeVariants_RequireRecipeFactory(t *testing.T) {
	f := parseFile(t, `
import { css } from './panda/css';
import { cva } from 'class-variance-authority';

const a = css({ variants: { debug: true } });
const b = cva({ variants: { debug: true } });
`)
	for _, p := range properties(f, "debug") {
		assert.False(t, f.IsRecipeVariant(p))
	}
}

func TestVariantWalk(t *testing.T) {
	f := parseFile(t, `
import { cva } from './panda/css';
cva({ base: { color: 'red' }, variants: { size: { sm: { fontSize: 'sm' } } }, other: 1 });
`)

	anchor, hops := analysis.VariantWalk(property(t, f, "color"))
	assert.Equal(t, analysis.AnchoredAtBase, anchor)
	assert.Equal(t, 2, hops)

	anchor, hops = analysis.VariantWalk(property(t, f, "fontSize"))
	assert.Equal(t, analysis.AnchoredAtVariants, anchor)
	assert.Equal(t, 6, hops)

	anchor, hops = analysis.VariantWalk(property(t, f, "base"))
	assert.Equal(t, analysis.AnchoredAtBase, anchor)
	assert.Equal(t, 0, hops)

	anchor, _ = analysis.VariantWalk(property(t, f, "other"))
	assert.Equal(t, analysis.Unanchored, anchor)
	assert.Equal(t, "unanchored", anchor.String())
}

func TestVariantThreshold(t *testing.T) {
	tests := []struct {
		factory string
		anchor  analysis.Anchor
		want    int
	}{
		{"cva", analysis.AnchoredAtBase, 2},
		{"cva", analysis.AnchoredAtVariants, 6},
		{"cva", analysis.Unanchored, 6},
		{"sva", analysis.AnchoredAtBase, 4},
		{"sva", analysis.AnchoredAtVariants, 8},
		{"sva", analysis.Unanchored, 8},
	}
	for _, tt := range tests {
		t.Run(tt.factory+"/"+tt.anchor.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, analysis.VariantThreshold(tt.factory, tt.anchor))
		})
	}
}

func TestClassify(t *testing.T) {
	f := parseFile(t, `
import { css } from './panda/css';
import { styled } from './panda/jsx';
const a = css({ bg: 'red.400' });
const App = () => <styled.div mx="2" />;
`)

	c := f.Classify(property(t, f, "bg"))
	assert.True(t, c.Governed)
	assert.True(t, c.Style())
	assert.Equal(t, "bg", c.Property)
	assert.Equal(t, "background", c.Longhand)

	c = f.Classify(attribute(t, f, "mx"))
	assert.True(t, c.Style())
	assert.Equal(t, "marginInline", c.Longhand)

	assert.Equal(t, analysis.Classification{}, f.Classify(f.Program))
	assert.Equal(t, f.Classify(property(t, f, "bg")), f.Classify(property(t, f, "bg")))
}

func TestTaggedTemplates(t *testing.T) {
	f := parseFile(t, `
import { css } from './panda/css';
import { styled } from './panda/jsx';
import { keyframes } from 'other';

const a = css`+"`color: red;`"+`;
const b = styled.h1`+"`color: red;`"+`;
const c = styled(Link)`+"`color: red;`"+`;
const d = keyframes`+"`from {}`"+`;
const e = fns[0]`+"`x`"+`;
`)

	templates := jsast.Collect[*jsast.TaggedTemplateExpression](f.Program)
	require.Len(t, templates, 5)

	wantCaller := []string{"css", "styled", "styled", "keyframes", "fns"}
	wantStyled := []bool{true, true, true, false, false}
	for i, tt := range templates {
		caller, _ := analysis.TaggedTemplateCaller(tt)
		assert.Equal(t, wantCaller[i], caller)
		assert.Equal(t, wantStyled[i], f.IsStyledTaggedTemplate(tt))
	}
}

func TestFile_TokenImport(t *testing.T) {
	f := parseFile(t, `import { token as tk } from './panda/tokens';`)
	imp, ok := f.TokenImport()
	require.True(t, ok)
	assert.Equal(t, "tk", imp.Alias)

	f = parseFile(t, `import { token } from 'elsewhere';`)
	_, ok = f.TokenImport()
	assert.False(t, ok)
}

func TestFile_ResolveComposite(t *testing.T) {
	f := parseFile(t, ``)

	got, ok := f.ResolveComposite("gap")
	assert.True(t, ok)
	assert.Equal(t, "gap", got)

	got, ok = f.ResolveComposite("bg")
	assert.True(t, ok)
	assert.Equal(t, "background", got)

	_, ok = f.ResolveComposite("rowGap")
	assert.False(t, ok)
}

func TestFile_IsIncluded(t *testing.T) {
	f := parseFile(t, ``)
	assert.True(t, f.IsIncluded())

	prog, err := jsast.Parse(context.Background(), designtest.ExcludedFile, nil)
	require.NoError(t, err)
	assert.False(t, analysis.NewFile(prog, designtest.Context(t)).IsIncluded())
}

// countingDesign counts registry lookups.
type countingDesign struct {
	*design.Context
	lookups int
}

func (d *countingDesign) Token(path string) (design.TokenInfo, bool) {
	d.lookups++
	return d.Context.Token(path)
}

func TestFile_TokenMemo(t *testing.T) {
	prog, err := jsast.Parse(context.Background(), designtest.File, []byte(``))
	require.NoError(t, err)
	d := &countingDesign{Context: designtest.Context(t)}
	f := analysis.NewFile(prog, d)

	first := f.InvalidTokens("{colors.nope.1} token(colors.red.300)")
	require.Len(t, first, 1)
	assert.Equal(t, 2, d.lookups)

	second := f.InvalidTokens("{colors.nope.1} token(colors.red.300)")
	assert.Equal(t, first, second)
	assert.Equal(t, 2, d.lookups, "second call must hit the memo")

	f.DeprecatedTokens("color", "red.400")
	f.DeprecatedTokens("color", "red.400")
	assert.Equal(t, 3, d.lookups)

	// Same value, different category: a distinct key.
	f.DeprecatedTokens("margin", "red.400")
	assert.Equal(t, 4, d.lookups)

	other := analysis.NewFile(prog, d)
	other.InvalidTokens("{colors.nope.1} token(colors.red.300)")
	assert.Equal(t, 6, d.lookups, "memo tables are per file")
}
