package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/pandalint/internal/cli/commands"
	"github.com/leapstack-labs/pandalint/internal/cli/config"
	"github.com/leapstack-labs/pandalint/internal/cli/output"
	"github.com/leapstack-labs/pandalint/internal/cli/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.ResetConfig()

	cmd := NewRootCmd()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCmd_Help(t *testing.T) {
	out, _, err := runRoot(t, "--help")
	require.NoError(t, err)

	for _, expected := range []string{"lint", "rules", "design", "lsp", "version", "completion"} {
		assert.Contains(t, out, expected)
	}
	for _, flag := range []string{"--config", "--design-config", "--preset", "--output"} {
		assert.Contains(t, out, flag)
	}
}

func TestRootCmd_Version(t *testing.T) {
	out, _, err := runRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pandalint v"+Version)
}

func TestRootCmd_LintJSON(t *testing.T) {
	project := testutil.SetupTestProject(t)
	t.Chdir(project)

	out, _, err := runRoot(t, "lint", "--output", "json", "src")
	require.ErrorIs(t, err, commands.ErrLintIssues)
	testutil.AssertNoANSI(t, out)

	var result output.LintOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 2, result.Summary.FilesAnalyzed)
	require.Len(t, result.Files, 1)
	assert.Equal(t, filepath.Join("src", "Debug.tsx"), result.Files[0].Path)
	assert.Equal(t, "no-debug", result.Files[0].Diagnostics[0].RuleID)
}

func TestRootCmd_LintMarkdown(t *testing.T) {
	project := testutil.SetupTestProject(t)
	t.Chdir(project)

	out, _, err := runRoot(t, "lint")
	require.ErrorIs(t, err, commands.ErrLintIssues)
	testutil.AssertValidMarkdown(t, out)
	testutil.AssertContains(t, out, "(`no-debug`)")
	testutil.AssertNotContains(t, out, "Button.tsx")
}

func TestRootCmd_LintProjectConfig(t *testing.T) {
	project := testutil.SetupTestProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(project, "pandalint.yaml"), []byte(`lint:
  disabled:
    - no-debug
`), 0600))
	t.Chdir(project)

	out, _, err := runRoot(t, "lint")
	require.NoError(t, err)
	assert.Contains(t, out, "No lint issues found in 2 files")
}

func TestRootCmd_LintVerboseLogs(t *testing.T) {
	project := testutil.SetupTestProject(t)
	t.Chdir(project)

	_, errOut, err := runRoot(t, "lint", "-v", "--output", "json", filepath.Join("src", "Button.tsx"))
	require.NoError(t, err)
	assert.Contains(t, errOut, "linted file")
}

func TestRootCmd_InvalidPreset(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := runRoot(t, "rules", "--preset", "strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestRootCmd_Completion(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{"bash", "bash completion"},
		{"zsh", "#compdef pandalint"},
		{"fish", "complete -c pandalint"},
	}
	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			out, _, err := runRoot(t, "completion", tt.shell)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestGetConfig_Default(t *testing.T) {
	cfg := GetConfig(t.Context())
	assert.Equal(t, config.DefaultPreset, cfg.Preset)
}
