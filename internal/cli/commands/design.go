package commands

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/pandalint/internal/cli/output"
	"github.com/leapstack-labs/pandalint/pkg/design"
	"github.com/spf13/cobra"
)

// DesignOptions holds options for the design command.
type DesignOptions struct {
	Format string
}

// NewDesignCommand creates the design command.
func NewDesignCommand() *cobra.Command {
	opts := &DesignOptions{}
	cmd := &cobra.Command{
		Use:   "design [path]",
		Short: "Show the resolved design context",
		Long: `Print the design context that governs a file or directory: import
sources, include and exclude globs, shorthand and composite tables,
patterns, recipes and the token registry.

The design config is found by searching upward from the path, or set with
--design-config. For a file, whether the config includes it is reported too.`,
		Example: `  # Design context for the current directory
  pandalint design

  # Design context governing a file
  pandalint design src/App.tsx

  # Output as JSON
  pandalint design --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			return runDesign(cmd, path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: yaml (text, markdown), json")

	return cmd
}

func runDesign(cmd *cobra.Command, path string, opts *DesignOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	r := cmdCtx.Renderer
	loader := cmdCtx.NewDesignLoader()

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot inspect %s: %w", path, err)
	}

	var dc *design.Context
	if info.IsDir() {
		configPath := cmdCtx.Cfg.DesignConfig
		if configPath == "" {
			if configPath, err = design.Find(path); err != nil {
				return err
			}
		}
		dc, err = loader.Load(cmd.Context(), configPath)
	} else {
		dc, err = loader.ForFile(cmd.Context(), path)
	}
	if err != nil {
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(designJSONOutput{
			Summary:  dc.Summarize(),
			File:     fileIf(!info.IsDir(), path),
			Included: boolIf(!info.IsDir(), dc.IncludesFile(path)),
		})
	}

	if !info.IsDir() {
		state := "included"
		if !dc.IncludesFile(path) {
			state = "not included"
		}
		r.Printf("# %s is %s by %s\n", path, state, dc.ConfigPath())
	}
	return dc.Dump(r.Writer())
}

// designJSONOutput is the JSON output structure of the design command.
type designJSONOutput struct {
	design.Summary
	File     string `json:"file,omitempty"`
	Included *bool  `json:"included,omitempty"`
}

func fileIf(ok bool, path string) string {
	if ok {
		return path
	}
	return ""
}

func boolIf(ok, v bool) *bool {
	if ok {
		return &v
	}
	return nil
}
