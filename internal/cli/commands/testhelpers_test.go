package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/pandalint/internal/cli/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const testDesignConfig = `importMap: ./panda
include:
  - src/**/*.tsx
tokens:
  colors:
    brand: {value: '#ff0000'}
`

// setupProject writes a design config and the given source files into a
// temporary project and returns its root.
func setupProject(t *testing.T, files map[string]string) string {
	t.Helper()
	config.ResetConfig()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "panda.config.yaml"), []byte(testDesignConfig), 0600))
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	}
	return root
}

// execute runs cmd with args and returns its standard output.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0600)
}
