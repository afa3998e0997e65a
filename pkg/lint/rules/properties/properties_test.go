package properties_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/pandalint/pkg/lint"
	"github.com/leapstack-labs/pandalint/pkg/lint/linttest"
)

func snippets(src string, diags []lint.Diagnostic) []string {
	var out []string
	for _, d := range diags {
		out = append(out, linttest.Snippet(src, d))
	}
	return out
}

func TestMarginProperties(t *testing.T) {
	tests := []struct {
		name string
		src  string
		opts map[string]any
		want []string
	}{
		{
			name: "pattern prop shorthand",
			src: `import { Circle } from './panda/jsx';
const App = () => <Circle marginX="2" />;`,
			want: []string{"marginX"},
		},
		{
			name: "style object shorthand and longhand",
			src: `import { css } from './panda/css';
const a = css({ mt: '2', marginBottom: '4', padding: '2' });`,
			want: []string{"mt", "marginBottom"},
		},
		{
			name: "style prop object inside a map callback",
			src: `import { Circle } from './panda/jsx';
const List = ({ items }) => items.map((i) => <Circle key={i} css={{ marginLeft: '2' }} />);`,
			want: []string{"marginLeft"},
		},
		{
			name: "style prop object inside forwardRef",
			src: `import { forwardRef } from 'react';
import { Circle } from './panda/jsx';
const Ref = forwardRef((props, ref) => <Circle ref={ref} css={{ mt: '2' }} />);`,
			want: []string{"mt"},
		},
		{
			name: "whitelisted",
			src: `import { Circle } from './panda/jsx';
const App = () => <Circle marginX="2" />;`,
			opts: map[string]any{"whitelist": []any{"marginX"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := linttest.Run(t, "no-margin-properties", tt.src, tt.opts)
			assert.Equal(t, tt.want, snippets(tt.src, diags))
		})
	}
}

func TestPhysicalProperties(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		message string
		fixed   string
	}{
		{
			name: "longhand",
			src: `import { css } from './panda/css';
const a = css({ marginLeft: '4' });`,
			message: "Use logical property instead of `marginLeft`. Prefer `marginInlineStart`.",
			fixed: `import { css } from './panda/css';
const a = css({ marginInlineStart: '4' });`,
		},
		{
			name: "shorthand resolved",
			src: `import { css } from './panda/css';
const a = css({ ml: '4' });`,
			message: "Use logical property instead of `ml` (resolved to `marginLeft`). Prefer `marginInlineStart`.",
			fixed: `import { css } from './panda/css';
const a = css({ marginInlineStart: '4' });`,
		},
		{
			name: "object shorthand keeps its binding",
			src: `import { css } from './panda/css';
const a = (marginLeft) => css({ marginLeft });`,
			message: "Use logical property instead of `marginLeft`. Prefer `marginInlineStart`.",
			fixed: `import { css } from './panda/css';
const a = (marginLeft) => css({ marginInlineStart: marginLeft });`,
		},
		{
			name: "physical value",
			src: `import { css } from './panda/css';
const a = css({ textAlign: 'left' });`,
			message: "Use logical value instead of \"left\". Prefer `\"start\"`.",
			fixed: `import { css } from './panda/css';
const a = css({ textAlign: "start" });`,
		},
		{
			name: "pattern prop",
			src: `import { Circle } from './panda/jsx';
const App = () => <Circle left="0" />;`,
			message: "Use logical property instead of `left`. Prefer `insetInlineStart`.",
			fixed: `import { Circle } from './panda/jsx';
const App = () => <Circle insetInlineStart="0" />;`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := linttest.Run(t, "no-physical-properties", tt.src, nil)
			require.Len(t, diags, 1)
			assert.Equal(t, tt.message, diags[0].Message)

			fixed := linttest.ApplyFirstFix(t, tt.src, diags[0])
			assert.Equal(t, tt.fixed, fixed)
			assert.Empty(t, linttest.Run(t, "no-physical-properties", fixed, nil))
		})
	}
}

func TestPhysicalProperties_Valid(t *testing.T) {
	src := `import { css } from './panda/css';
const a = css({ marginInlineStart: '4', textAlign: 'start', marginLeft: '2' });`
	diags := linttest.Run(t, "no-physical-properties", src, map[string]any{"whitelist": []any{"marginLeft"}})
	assert.Empty(t, diags)
}

func TestAtomicProperties(t *testing.T) {
	src := `import { css } from './panda/css';
const a = css({ gap: '4', rowGap: '2' });`
	diags := linttest.Run(t, "prefer-atomic-properties", src, nil)
	require.Len(t, diags, 1)
	assert.Equal(t, "gap", linttest.Snippet(src, diags[0]))
	assert.Equal(t, "Use atomic properties instead of `gap`. Prefer: \n`rowGap`,\n`columnGap`", diags[0].Message)

	src = `import { Circle } from './panda/jsx';
const App = () => <Circle bg="red.100" />;`
	diags = linttest.Run(t, "prefer-atomic-properties", src, nil)
	require.Len(t, diags, 1)
	assert.Equal(t, "bg", diags[0].Data["composite"])
	assert.Contains(t, diags[0].Data["atomics"], "`backgroundColor`")

	assert.Empty(t, linttest.Run(t, "prefer-atomic-properties", src, map[string]any{"whitelist": []any{"bg"}}))
}

func TestCompositeProperties(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		composites []string
	}{
		{
			name: "gap members",
			src: `import { css } from './panda/css';
const a = css({ rowGap: '4', columnGap: '4' });`,
			composites: []string{"gap", "gap"},
		},
		{
			name: "border top members in a condition",
			src: `import { Circle } from './panda/jsx';
const App = () => <Circle _hover={{ borderTopStyle: 'solid', borderTopWidth: '1px', borderTopColor: 'red.400' }} />;`,
			composites: []string{"borderTop", "borderTop", "borderTop"},
		},
		{
			name: "composite alone",
			src: `import { css } from './panda/css';
const a = css({ gap: '4', borderTop: '1px solid' });`,
		},
		{
			name: "single member",
			src: `import { css } from './panda/css';
const a = css({ rowGap: '4', color: 'red.400' });`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := linttest.Run(t, "prefer-composite-properties", tt.src, nil)
			var got []string
			for _, d := range diags {
				got = append(got, d.Data["composite"])
			}
			assert.Equal(t, tt.composites, got)
		})
	}
}

func TestLonghandProperties(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		fixed string
	}{
		{
			name: "style object",
			src: `import { css } from './panda/css';
const a = css({ bg: 'red.400' });`,
			fixed: `import { css } from './panda/css';
const a = css({ background: 'red.400' });`,
		},
		{
			name: "pattern prop",
			src: `import { Circle } from './panda/jsx';
const App = () => <Circle mx="2" />;`,
			fixed: `import { Circle } from './panda/jsx';
const App = () => <Circle marginInline="2" />;`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := linttest.Run(t, "prefer-longhand-properties", tt.src, nil)
			require.Len(t, diags, 1)
			fixed := linttest.ApplyFirstFix(t, tt.src, diags[0])
			assert.Equal(t, tt.fixed, fixed)
			assert.Empty(t, linttest.Run(t, "prefer-longhand-properties", fixed, nil))
		})
	}

	src := `import { css } from './panda/css';
const a = css({ bg: 'red.400' });`
	diags := linttest.Run(t, "prefer-longhand-properties", src, nil)
	require.Len(t, diags, 1)
	assert.Equal(t, "Use longhand property instead of `bg`. Prefer `background`.", diags[0].Message)
	assert.Equal(t, "Replace `bg` with `background`.", diags[0].Fixes[0].Description)
}

func TestShorthandProperties(t *testing.T) {
	src := `import { css } from './panda/css';
const a = css({ marginInline: '2', display: 'flex', bg: 'red.400' });`
	diags := linttest.Run(t, "prefer-shorthand-properties", src, nil)
	require.Len(t, diags, 1)
	assert.Equal(t, "Use shorthand property instead of `marginInline`. Prefer `mx`, `marginX`.", diags[0].Message)
	assert.Equal(t, "Replace `marginInline` with `mx`.", diags[0].Fixes[0].Description)
	assert.Equal(t, "mx", diags[0].Data["shorthand"])

	fixed := linttest.ApplyFirstFix(t, src, diags[0])
	assert.Equal(t, `import { css } from './panda/css';
const a = css({ mx: '2', display: 'flex', bg: 'red.400' });`, fixed)
	assert.Empty(t, linttest.Run(t, "prefer-shorthand-properties", fixed, nil))
}

func TestUnifiedPropertyStyle(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		snippets []string
		atomic   string
	}{
		{
			name: "composite with a member",
			src: `import { css } from './panda/css';
const a = css({ borderColor: 'red.400', borderTopColor: 'blue.400' });`,
			snippets: []string{"borderColor"},
			atomic:   "`borderTopColor`",
		},
		{
			name: "pattern props",
			src: `import { Circle } from './panda/jsx';
const App = () => <Circle gap="2" rowGap="3" columnGap="1" />;`,
			snippets: []string{`gap="2"`},
			atomic:   "`rowGap`, `columnGap`",
		},
		{
			name: "composite alone",
			src: `import { css } from './panda/css';
const a = css({ gap: '2', color: 'red.400' });`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := tt.src
			diags := linttest.Run(t, "prefer-unified-property-style", src, nil)
			assert.Equal(t, tt.snippets, snippets(src, diags))
			if tt.atomic != "" {
				require.Len(t, diags, 1)
				assert.Equal(t, tt.atomic, diags[0].Data["atomicProperties"])
			}
		})
	}

	src := `import { css } from './panda/css';
const a = css({ bg: 'red.400', backgroundColor: 'blue.400' });`
	diags := linttest.Run(t, "prefer-unified-property-style", src, nil)
	require.Len(t, diags, 1)
	assert.Equal(t, "background", diags[0].Data["composite"])
	assert.Contains(t, diags[0].Message, "Remove `background` and use one or more of `backgroundColor`")
}
