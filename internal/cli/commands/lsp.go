package commands

import (
	"os"

	"github.com/leapstack-labs/pandalint/internal/cli/config"
	"github.com/leapstack-labs/pandalint/internal/lsp"
	"github.com/spf13/cobra"
)

// NewLSPCommand creates the lsp command.
func NewLSPCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Long: `Start the LSP server for editor integration.

The server communicates over stdin/stdout using JSON-RPC. It publishes
design-system diagnostics for JavaScript and TypeScript documents, offers
rule suggestions as quick fixes, and completes and describes token paths. The project root is taken from the
client's initialization request (rootUri parameter).`,
		Example: `  # Start LSP server (usually called by an editor)
  pandalint lsp`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLSP(cmd)
		},
	}

	return cmd
}

func runLSP(cmd *cobra.Command) error {
	logger := config.GetLogger(cmd.Context())
	server := lsp.NewServerWithLogger(os.Stdin, os.Stdout, logger)
	return server.Run()
}
