package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/design/designtest"
	"github.com/leapstack-labs/pandalint/pkg/lint/linttest"
)

func TestFileNotIncluded(t *testing.T) {
	src := `import { useState } from 'react';
import { css } from './panda/css';
import { Circle } from './panda/jsx';
`
	diags := linttest.RunFile(t, designtest.ExcludedFile, "file-not-included", src, nil)
	require.Len(t, diags, 1)
	assert.Equal(t, 2, diags[0].Pos.Line)
	assert.Equal(t, core.SeverityError, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "The use of Panda CSS is not allowed in this file.")

	assert.Empty(t, linttest.Run(t, "file-not-included", src, nil))
	assert.Empty(t, linttest.RunFile(t, designtest.ExcludedFile, "file-not-included", `import { useState } from 'react';`, nil))
}

func TestConfigFunctionInSource(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		calls []string
	}{
		{
			name: "config helper",
			src: `import { defineKeyframes } from '@pandacss/dev';
const k = defineKeyframes({ fade: {} });`,
			calls: []string{"defineKeyframes"},
		},
		{
			name: "several helpers",
			src: `import { defineTokens, defineRecipe } from '@pandacss/dev';
const t = defineTokens({});
export default defineRecipe({});`,
			calls: []string{"defineTokens", "defineRecipe"},
		},
		{
			name: "aliased import",
			src: `import { defineTokens as dt } from '@pandacss/dev';
const t = dt({});`,
		},
		{
			name: "other package",
			src: `import { defineTokens } from './tokens';
const t = defineTokens({});`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := linttest.Run(t, "no-config-function-in-source", tt.src, nil)
			var got []string
			for _, d := range diags {
				got = append(got, d.Data["name"])
			}
			assert.Equal(t, tt.calls, got)
		})
	}
}

func TestConfigFunctionInSource_Excluded(t *testing.T) {
	src := `import { defineKeyframes } from '@pandacss/dev';
const k = defineKeyframes({});`
	assert.Empty(t, linttest.RunFile(t, designtest.ExcludedFile, "no-config-function-in-source", src, nil))
}

func TestConfigFunctionInSource_Fix(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		wantImport string
	}{
		{
			name: "first of two specifiers",
			src: `import { defineKeyframes, defineTokens } from '@pandacss/dev';
const k = defineKeyframes({});`,
			wantImport: "import { defineTokens } from '@pandacss/dev';",
		},
		{
			name: "last of two specifiers",
			src: `import { defineTokens, defineKeyframes } from '@pandacss/dev';
const k = defineKeyframes({});`,
			wantImport: "import { defineTokens } from '@pandacss/dev';",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := linttest.Run(t, "no-config-function-in-source", tt.src, nil)
			require.Len(t, diags, 1)
			assert.Equal(t, "Delete `defineKeyframes` call.", diags[0].Fixes[0].Description)

			fixed := linttest.ApplyFirstFix(t, tt.src, diags[0])
			assert.Contains(t, fixed, tt.wantImport)
			assert.NotContains(t, fixed, "defineKeyframes")
			assert.Empty(t, linttest.Run(t, "no-config-function-in-source", fixed, nil))
		})
	}

	src := `import { defineKeyframes } from '@pandacss/dev';
const k = defineKeyframes({});`
	diags := linttest.Run(t, "no-config-function-in-source", src, nil)
	require.Len(t, diags, 1)
	fixed := linttest.ApplyFirstFix(t, src, diags[0])
	assert.NotContains(t, fixed, "@pandacss/dev")
	assert.NotContains(t, fixed, "defineKeyframes")
}
