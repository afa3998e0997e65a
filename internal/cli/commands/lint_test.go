package commands

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/pandalint/internal/cli/config"
	"github.com/leapstack-labs/pandalint/internal/cli/output"
	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/lint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	debugSource = "import { css } from './panda/css';\n\nexport const box = css({ debug: true, color: 'brand' });\n"
	cleanSource = "import { css } from './panda/css';\n\nexport const box = css({ color: 'brand' });\n"
)

func TestNewLintCommand(t *testing.T) {
	cmd := NewLintCommand()

	assert.Equal(t, "lint [path...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	// Verify flags exist
	flags := []string{"format", "disable", "severity", "rule", "jobs", "watch"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestBuildLintConfig(t *testing.T) {
	t.Run("nil config uses recommended preset", func(t *testing.T) {
		cfg, err := buildLintConfig(nil, &LintOptions{})
		require.NoError(t, err)
		assert.False(t, cfg.IsDisabled("no-debug"))
		assert.True(t, cfg.IsDisabled("no-margin-properties"))
	})

	t.Run("disable rules", func(t *testing.T) {
		cfg, err := buildLintConfig(&config.Config{Preset: lint.PresetAll}, &LintOptions{
			Disable: []string{"no-debug", " no-important"},
		})
		require.NoError(t, err)
		assert.True(t, cfg.IsDisabled("no-debug"))
		assert.True(t, cfg.IsDisabled("no-important"))
		assert.False(t, cfg.IsDisabled("no-escape-hatch"))
	})

	t.Run("enable only specific rules", func(t *testing.T) {
		cfg, err := buildLintConfig(&config.Config{Preset: lint.PresetRecommended}, &LintOptions{
			Rules: []string{"no-margin-properties"},
		})
		require.NoError(t, err)
		assert.False(t, cfg.IsDisabled("no-margin-properties"))
		for _, r := range lint.GetAll() {
			if r.ID() != "no-margin-properties" {
				assert.True(t, cfg.IsDisabled(r.ID()), "rule %q should be disabled", r.ID())
			}
		}
	})

	t.Run("unknown rule", func(t *testing.T) {
		_, err := buildLintConfig(nil, &LintOptions{Rules: []string{"AM01"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown rule "AM01"`)
	})

	t.Run("project config", func(t *testing.T) {
		projectCfg := &config.Config{
			Preset: lint.PresetAll,
			Lint: &config.LintConfig{
				Disabled: []string{"no-debug"},
				Severity: map[string]string{"no-important": "error"},
			},
		}
		cfg, err := buildLintConfig(projectCfg, &LintOptions{})
		require.NoError(t, err)
		assert.True(t, cfg.IsDisabled("no-debug"))
		assert.Equal(t, core.SeverityError, cfg.GetSeverity("no-important", core.SeverityWarning))
	})
}

func TestCollectFiles(t *testing.T) {
	root := setupProject(t, map[string]string{
		"src/App.tsx":                       cleanSource,
		"src/util.ts":                       "export const x = 1;\n",
		"src/styles.css":                    "a {}\n",
		"node_modules/pkg/index.js":         "module.exports = {};\n",
		"src/styled-system/css/index.mjs":   "export {};\n",
		"src/components/Button/Button.jsx":  cleanSource,
		"src/components/Button/README.md":   "# Button\n",
		"src/components/Button/Button.d.ts": "export {};\n",
	})
	exts := []string{".tsx", ".ts", ".jsx", ".mjs", ".js"}
	ignore := []string{"**/node_modules/**", "**/styled-system/**"}

	t.Run("walk directory", func(t *testing.T) {
		files, err := collectFiles([]string{root}, exts, ignore)
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(root, "src", "App.tsx"),
			filepath.Join(root, "src", "components", "Button", "Button.d.ts"),
			filepath.Join(root, "src", "components", "Button", "Button.jsx"),
			filepath.Join(root, "src", "util.ts"),
		}, files)
	})

	t.Run("explicit files are kept and deduplicated", func(t *testing.T) {
		css := filepath.Join(root, "src", "styles.css")
		app := filepath.Join(root, "src", "App.tsx")
		files, err := collectFiles([]string{css, app, filepath.Join(root, "src")}, []string{".tsx"}, ignore)
		require.NoError(t, err)
		assert.Equal(t, []string{app, css}, files)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := collectFiles([]string{filepath.Join(root, "nope")}, exts, ignore)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot lint")
	})
}

func TestIsIgnored(t *testing.T) {
	patterns := []string{"**/node_modules/**", "dist/**", "**/*.gen.tsx"}
	tests := []struct {
		rel  string
		want bool
	}{
		{"node_modules", true},
		{"web/node_modules", true},
		{"web/node_modules/react/index.js", true},
		{"dist", true},
		{"dist/app.js", true},
		{"src/dist.ts", false},
		{"src/api.gen.tsx", true},
		{"src/App.tsx", false},
	}
	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			assert.Equal(t, tt.want, isIgnored(tt.rel, patterns))
		})
	}
}

func TestFilterBySeverity(t *testing.T) {
	results := []lintFileResult{{
		Path: "a.tsx",
		Diagnostics: []lint.Diagnostic{
			{RuleID: "no-invalid-token-paths", Severity: core.SeverityError},
			{RuleID: "no-debug", Severity: core.SeverityWarning},
		},
	}}

	tests := []struct {
		threshold string
		want      int
	}{
		{"error", 1},
		{"warning", 2},
		{"hint", 2},
		{"bogus", 2},
	}
	for _, tt := range tests {
		t.Run(tt.threshold, func(t *testing.T) {
			filtered := filterBySeverity(results, tt.threshold)
			require.Len(t, filtered, 1)
			assert.Len(t, filtered[0].Diagnostics, tt.want)
		})
	}
}

func TestLintCommand_ReportsIssues(t *testing.T) {
	root := setupProject(t, map[string]string{
		"src/App.tsx":   debugSource,
		"src/Clean.tsx": cleanSource,
	})

	out, err := execute(t, NewLintCommand(), root, "--format", "json")
	require.ErrorIs(t, err, ErrLintIssues)

	var result output.LintOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 2, result.Summary.FilesAnalyzed)
	assert.Equal(t, 1, result.Summary.FilesWithIssues)
	assert.Equal(t, 1, result.Summary.Warnings)
	require.Len(t, result.Files, 1)
	assert.Equal(t, filepath.Join(root, "src", "App.tsx"), result.Files[0].Path)

	require.Len(t, result.Files[0].Diagnostics, 1)
	d := result.Files[0].Diagnostics[0]
	assert.Equal(t, "no-debug", d.RuleID)
	assert.Equal(t, "warning", d.Severity)
	assert.Equal(t, "Unnecessary debug utility.", d.Message)
	assert.Equal(t, 3, d.Line)
	assert.NotEmpty(t, d.Suggestions)
	assert.Contains(t, d.DocURL, "no-debug")
}

func TestLintCommand_Markdown(t *testing.T) {
	root := setupProject(t, map[string]string{"src/App.tsx": debugSource})

	out, err := execute(t, NewLintCommand(), root, "--format", "markdown")
	require.ErrorIs(t, err, ErrLintIssues)
	assert.Contains(t, out, "### "+filepath.Join(root, "src", "App.tsx"))
	assert.Contains(t, out, "Unnecessary debug utility. (`no-debug`)")
	assert.Contains(t, out, "Summary: 1 issues, 1 warnings in 1 of 1 files")
}

func TestLintCommand_Clean(t *testing.T) {
	root := setupProject(t, map[string]string{"src/App.tsx": cleanSource})

	out, err := execute(t, NewLintCommand(), root)
	require.NoError(t, err)
	assert.Contains(t, out, "No lint issues found in 1 files")
}

func TestLintCommand_SeverityThreshold(t *testing.T) {
	root := setupProject(t, map[string]string{"src/App.tsx": debugSource})

	_, err := execute(t, NewLintCommand(), root, "--severity", "error")
	assert.NoError(t, err)
}

func TestLintCommand_DisabledRule(t *testing.T) {
	root := setupProject(t, map[string]string{"src/App.tsx": debugSource})

	_, err := execute(t, NewLintCommand(), root, "--disable", "no-debug")
	assert.NoError(t, err)
}

func TestLintCommand_MissingDesignConfig(t *testing.T) {
	config.ResetConfig()
	dir := t.TempDir()
	file := filepath.Join(dir, "App.tsx")
	require.NoError(t, writeFile(file, debugSource))

	out, err := execute(t, NewLintCommand(), file, "--format", "json")
	require.ErrorIs(t, err, ErrLintIssues)

	var result output.LintOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Failed, 1)
	assert.Equal(t, file, result.Failed[0].Path)
	assert.Contains(t, result.Failed[0].Error, "design config not found")
	assert.Empty(t, result.Files)
}
