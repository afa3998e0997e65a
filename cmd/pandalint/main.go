// Package main provides the CLI for the pandalint design-system linter.
package main

import (
	"os"

	"github.com/leapstack-labs/pandalint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
