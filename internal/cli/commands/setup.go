package commands

import (
	"log/slog"
	"os"

	"github.com/leapstack-labs/pandalint/internal/cli/config"
	"github.com/leapstack-labs/pandalint/internal/cli/output"
	sharedcfg "github.com/leapstack-labs/pandalint/internal/config"
	"github.com/leapstack-labs/pandalint/pkg/design"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration.
// format, when set, overrides the configured output mode.
func NewCommandContext(cmd *cobra.Command, format string) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.OutputFormat)
	if format != "" {
		mode = output.Mode(format)
	}
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// NewDesignLoader creates the design loader for the configuration: pinned
// to the configured design file, or searching upward from each linted file.
func (c *CommandContext) NewDesignLoader() *design.Loader {
	opts := []design.Option{design.WithLogger(c.Logger)}
	if c.Cfg.DesignConfig != "" {
		opts = append(opts, design.WithConfigPath(c.Cfg.DesignConfig))
	}
	return design.NewLoader(opts...)
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	cwd, _ := os.Getwd()
	return &config.Config{
		DesignConfig: os.Getenv("PANDALINT_DESIGN_CONFIG"),
		Preset:       getEnvOrDefault("PANDALINT_PRESET", config.DefaultPreset),
		Extensions:   append([]string(nil), sharedcfg.DefaultExtensions...),
		Ignore:       append([]string(nil), sharedcfg.DefaultIgnore...),
		Verbose:      os.Getenv("PANDALINT_VERBOSE") == "true",
		OutputFormat: os.Getenv("PANDALINT_OUTPUT"),
		ProjectRoot:  cwd,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
