package styling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/lint/linttest"
)

func TestDebug(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		snippets []string
	}{
		{
			name: "style property",
			src: `import { css } from './panda/css';
const a = css({ debug: true, color: 'red.400' });`,
			snippets: []string{"debug"},
		},
		{
			name: "nested condition",
			src: `import { css } from './panda/css';
const a = css({ _hover: { debug: true } });`,
			snippets: []string{"debug"},
		},
		{
			name: "style prop",
			src: `import { Circle } from './panda/jsx';
const App = () => <Circle debug />;`,
			snippets: []string{"debug"},
		},
		{
			name: "object style prop reported once",
			src: `import { Circle } from './panda/jsx';
const App = () => <Circle _hover={{ debug: true }} />;`,
			snippets: []string{"debug"},
		},
		{
			name: "recipe variant named debug",
			src: `import { cva } from './panda/css';
const button = cva({ variants: { debug: { true: { outline: 'none' } } } });`,
		},
		{
			name: "ungoverned element",
			src:  `const App = () => <div debug />;`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := linttest.Run(t, "no-debug", tt.src, nil)
			var got []string
			for _, d := range diags {
				assert.Equal(t, "Unnecessary debug utility.", d.Message)
				got = append(got, linttest.Snippet(tt.src, d))
			}
			assert.Equal(t, tt.snippets, got)
		})
	}
}

func TestDebug_Fix(t *testing.T) {
	src := `import { css } from './panda/css';
const a = css({ debug: true, color: 'red.400' });`
	diags := linttest.Run(t, "no-debug", src, nil)
	require.Len(t, diags, 1)
	assert.Equal(t, "Remove the debug property.", diags[0].Fixes[0].Description)

	fixed := linttest.ApplyFirstFix(t, src, diags[0])
	assert.Equal(t, `import { css } from './panda/css';
const a = css({ color: 'red.400' });`, fixed)
	assert.Empty(t, linttest.Run(t, "no-debug", fixed, nil))

	src = `import { Circle } from './panda/jsx';
const App = () => <Circle debug size="4" />;`
	diags = linttest.Run(t, "no-debug", src, nil)
	require.Len(t, diags, 1)
	assert.Equal(t, "Remove the debug prop.", diags[0].Fixes[0].Description)
	assert.NotContains(t, linttest.ApplyFirstFix(t, src, diags[0]), "debug")
}

func TestDynamicStyling(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		messages []string
		snippets []string
	}{
		{
			name: "static values",
			src: `import { Circle } from './panda/jsx';
const App = () => <Circle color="red.400" size={'4'} _hover={{ color: 'red.300' }} />;`,
		},
		{
			name: "identifier on a style prop",
			src: `import { Circle } from './panda/jsx';
const App = ({ tone }) => <Circle color={tone} />;`,
			messages: []string{"dynamic"},
			snippets: []string{"{tone}"},
		},
		{
			name: "responsive array",
			src: `import { Circle } from './panda/jsx';
const App = ({ tone }) => <Circle color={['red.400', tone]} />;`,
			messages: []string{"dynamic"},
			snippets: []string{"tone"},
		},
		{
			name: "style object value",
			src: `import { css } from './panda/css';
const a = (tone) => css({ color: tone });`,
			messages: []string{"dynamic"},
			snippets: []string{"tone"},
		},
		{
			name:     "interpolated template",
			src:      "import { css } from './panda/css';\nconst a = (n) => css({ margin: `${n}px` });",
			messages: []string{"dynamic"},
			snippets: []string{"`${n}px`"},
		},
		{
			name: "computed key",
			src: `import { css } from './panda/css';
const a = (key) => css({ [key]: 'red.400' });`,
			messages: []string{"dynamicProperty"},
			snippets: []string{"key"},
		},
		{
			name: "computed variant",
			src: `import { cva } from './panda/css';
const button = (size) => cva({ variants: { [size]: { sm: { color: 'red.400' } } } });`,
			messages: []string{"dynamicRecipeVariant"},
			snippets: []string{"size"},
		},
		{
			name: "ungoverned call",
			src:  `const a = (tone) => other({ color: tone });`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := linttest.Run(t, "no-dynamic-styling", tt.src, nil)
			var snippets []string
			for _, d := range diags {
				snippets = append(snippets, linttest.Snippet(tt.src, d))
			}
			assert.Equal(t, tt.messages, nilIfEmpty(linttest.MessageIDs(diags)))
			assert.Equal(t, tt.snippets, snippets)
		})
	}
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

func TestEscapeHatch(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		fixed string
	}{
		{
			name: "string literal",
			src: `import { css } from './panda/css';
const a = css({ marginTop: '[12px]' });`,
			fixed: `import { css } from './panda/css';
const a = css({ marginTop: '12px' });`,
		},
		{
			name: "style prop",
			src: `import { Circle } from './panda/jsx';
const App = () => <Circle marginTop="[12px]" />;`,
			fixed: `import { Circle } from './panda/jsx';
const App = () => <Circle marginTop="12px" />;`,
		},
		{
			name:  "template literal",
			src:   "import { css } from './panda/css';\nconst a = css({ marginTop: `[12px]` });",
			fixed: "import { css } from './panda/css';\nconst a = css({ marginTop: `12px` });",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := linttest.Run(t, "no-escape-hatch", tt.src, nil)
			require.Len(t, diags, 1)
			assert.Equal(t, "escapeHatch", diags[0].MessageID)
			assert.Equal(t, "Remove the square brackets (`[]`).", diags[0].Fixes[0].Description)

			fixed := linttest.ApplyFirstFix(t, tt.src, diags[0])
			assert.Equal(t, tt.fixed, fixed)
			assert.Empty(t, linttest.Run(t, "no-escape-hatch", fixed, nil))
		})
	}

	valid := `import { css } from './panda/css';
const a = css({ marginTop: '3', gridArea: '[a] [b]' });`
	assert.Empty(t, linttest.Run(t, "no-escape-hatch", valid, nil))
}

func TestImportant(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		keyword string
		fixed   string
	}{
		{
			name: "bang shorthand",
			src: `import { css } from './panda/css';
const a = css({ width: '4px!' });`,
			keyword: "!",
			fixed: `import { css } from './panda/css';
const a = css({ width: '4px' });`,
		},
		{
			name: "important keyword",
			src: `import { css } from './panda/css';
const a = css({ color: 'red.400 !important' });`,
			keyword: "!important",
			fixed: `import { css } from './panda/css';
const a = css({ color: 'red.400' });`,
		},
		{
			name: "inside an escape hatch",
			src: `import { Circle } from './panda/jsx';
const App = () => <Circle width="[4px !important]" />;`,
			keyword: "!important",
			fixed: `import { Circle } from './panda/jsx';
const App = () => <Circle width="[4px]" />;`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := linttest.Run(t, "no-important", tt.src, nil)
			require.Len(t, diags, 1)
			assert.Equal(t, tt.keyword, diags[0].Data["keyword"])
			assert.Equal(t, "Avoid using the "+tt.keyword+" keyword. Refactor your code to prioritize specificity for predictable styling.", diags[0].Message)

			fixed := linttest.ApplyFirstFix(t, tt.src, diags[0])
			assert.Equal(t, tt.fixed, fixed)
			assert.Empty(t, linttest.Run(t, "no-important", fixed, nil))
		})
	}
}

func TestInvalidNesting(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		snippets []string
	}{
		{
			name: "selector without ampersand",
			src: `import { css } from './panda/css';
const a = css({ ':hover': { color: 'red.400' } });`,
			snippets: []string{"':hover'"},
		},
		{
			name: "selector with ampersand",
			src: `import { css } from './panda/css';
const a = css({ '&:hover': { color: 'red.400' }, '.dark &': { color: 'red.300' } });`,
		},
		{
			name: "object style prop",
			src: `import { Circle } from './panda/jsx';
const App = () => <Circle _hover={{ '.child': { color: 'red.400' } }} />;`,
			snippets: []string{"'.child'"},
		},
		{
			name: "recipe variant with a string key",
			src: `import { cva } from './panda/css';
const button = cva({ variants: { size: { 'sm': { color: 'red.400' } } } });`,
		},
		{
			name: "condition identifier",
			src: `import { css } from './panda/css';
const a = css({ _hover: { color: 'red.400' } });`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := linttest.Run(t, "no-invalid-nesting", tt.src, nil)
			var got []string
			for _, d := range diags {
				assert.Equal(t, core.SeverityWarning, d.Severity)
				got = append(got, linttest.Snippet(tt.src, d))
			}
			assert.Equal(t, tt.snippets, got)
		})
	}
}

func TestPropertyRenaming(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		snippets []string
		data     []map[string]string
	}{
		{
			name: "renamed style prop",
			src: `import { Circle } from './panda/jsx';
const Text = ({ color }) => <Circle bg={color} />;`,
			snippets: []string{"{color}"},
			data:     []map[string]string{{"prop": "color", "expected": "bg"}},
		},
		{
			name: "member expression in a style object",
			src: `import { css } from './panda/css';
const a = (props) => css({ color: props.tone });`,
			snippets: []string{"props.tone"},
			data:     []map[string]string{{"prop": "tone", "expected": "color"}},
		},
		{
			name: "same name",
			src: `import { Circle } from './panda/jsx';
import { css } from './panda/css';
const Text = ({ bg, color }) => <Circle bg={bg} className={css({ color })} />;`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := linttest.Run(t, "no-property-renaming", tt.src, nil)
			var snippets []string
			var data []map[string]string
			for _, d := range diags {
				snippets = append(snippets, linttest.Snippet(tt.src, d))
				data = append(data, d.Data)
			}
			assert.Equal(t, tt.snippets, snippets)
			assert.Equal(t, tt.data, data)
		})
	}
}
