// Package main provides tests for the pandalint CLI.
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leapstack-labs/pandalint/internal/cli"
	"github.com/leapstack-labs/pandalint/internal/cli/testutil"
)

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("version command error = %v", err)
	}

	if output := buf.String(); !strings.Contains(output, "pandalint") {
		t.Errorf("version output should contain 'pandalint', got: %s", output)
	}
}

func TestRulesCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"rules", "--output", "markdown"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("rules command error = %v", err)
	}

	output := buf.String()
	testutil.AssertValidMarkdown(t, output)
	testutil.AssertContains(t, output, "no-invalid-token-paths")
}

func TestLintCommand(t *testing.T) {
	project := testutil.SetupTestProject(t)
	t.Chdir(project)

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"lint", "--rule", "no-invalid-token-paths", "src"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("lint command error = %v, output: %s", err, buf.String())
	}
	testutil.AssertContains(t, buf.String(), "No lint issues found in 2 files")
}
