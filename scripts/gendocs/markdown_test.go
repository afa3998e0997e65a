package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownWriter(t *testing.T) {
	w := NewMarkdownWriter()
	w.Header(2, "Options")
	w.Table([]string{"Option", "Description"}, [][]string{{InlineCode("--rule"), "a|b"}})
	w.CodeBlock("bash", "pandalint lint\n")

	want := "## Options\n\n" +
		"| Option | Description |\n| --- | --- |\n| `--rule` | a\\|b |\n\n" +
		"```bash\npandalint lint\n```\n\n"
	assert.Equal(t, want, string(w.Bytes()))
}

func TestCleanExample(t *testing.T) {
	in := "  # Lint a directory\n  pandalint lint src\n\n    pandalint lint --fix"
	assert.Equal(t, "# Lint a directory\npandalint lint src\n\n  pandalint lint --fix", cleanExample(in))
}

func TestGenerateRuleDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateRuleDocs(dir))

	index, err := os.ReadFile(filepath.Join(dir, "index.md"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "## Tokens")
	assert.Contains(t, string(index), "[`no-debug`](/rules/no-debug)")

	page, err := os.ReadFile(filepath.Join(dir, "no-hardcoded-color.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(page), "---\ntitle: \"no-hardcoded-color\""))
	assert.Contains(t, string(page), "```tsx")
	assert.Contains(t, string(page), "- `noOpacity`")
}

func TestGenerateCLIDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateCLIDocs(dir))

	index, err := os.ReadFile(filepath.Join(dir, "index.md"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "[`lint`](/cli/lint)")
	assert.Contains(t, string(index), "PANDALINT_PRESET")

	page, err := os.ReadFile(filepath.Join(dir, "lint.md"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "pandalint lint")
	assert.Contains(t, string(page), "## Options")
}
