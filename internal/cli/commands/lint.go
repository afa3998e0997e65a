package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/leapstack-labs/pandalint/internal/cli/config"
	"github.com/leapstack-labs/pandalint/internal/cli/output"
	sharedcfg "github.com/leapstack-labs/pandalint/internal/config"
	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/design"
	"github.com/leapstack-labs/pandalint/pkg/lint"
	_ "github.com/leapstack-labs/pandalint/pkg/lint/rules" // register rules
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// ErrLintIssues is returned when a lint run reports diagnostics or fails to
// analyze a file.
var ErrLintIssues = errors.New("lint issues found")

// LintOptions holds options for the lint command.
type LintOptions struct {
	Paths    []string // Files or directories to lint
	Format   string   // Output format: text, markdown, json
	Disable  []string // Rule IDs to disable
	Severity string   // Minimum severity: error, warning, info, hint
	Rules    []string // Run only specific rules
	Jobs     int      // Files analyzed in parallel
	Watch    bool     // Re-lint on file changes
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [path...]",
		Short: "Lint source files against the design system",
		Long: `Analyze JavaScript and TypeScript sources for design-system violations.

Each file is checked against the Panda design configuration that governs it,
found by searching upward from the file or set with --design-config.
Rules can be configured in pandalint.yaml.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Lint the current directory
  pandalint lint

  # Lint specific paths
  pandalint lint src/components src/App.tsx

  # Output as JSON
  pandalint lint --format json

  # Disable specific rules
  pandalint lint --disable no-margin-properties,no-escape-hatch

  # Only report errors
  pandalint lint --severity error

  # Re-lint on every save
  pandalint lint --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return runLint(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", "hint", "Minimum severity: error, warning, info, hint")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", runtime.NumCPU(), "Files analyzed in parallel")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-lint files when they change")

	return cmd
}

func runLint(cmd *cobra.Command, opts *LintOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	lintCfg, err := buildLintConfig(cfg, opts)
	if err != nil {
		return err
	}

	paths := opts.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}
	files, err := collectFiles(paths, cfg.Extensions, cfg.Ignore)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("collected files", slog.Int("count", len(files)))

	linter := &fileLinter{
		loader:   cmdCtx.NewDesignLoader(),
		analyzer: lint.NewAnalyzer(lintCfg),
		logger:   cmdCtx.Logger,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results := linter.lintAll(ctx, files, opts.Jobs)
	results = filterBySeverity(results, opts.Severity)
	hasIssues := renderLintResults(r, results, len(files))

	if opts.Watch {
		return watchAndLint(ctx, cmdCtx, linter, paths, opts)
	}
	if hasIssues {
		return ErrLintIssues
	}
	return nil
}

func buildLintConfig(cfg *config.Config, opts *LintOptions) (*lint.Config, error) {
	preset := config.DefaultPreset
	var projectLint *config.LintConfig
	if cfg != nil {
		preset = cfg.Preset
		projectLint = cfg.Lint
	}

	// Apply project config first (lower precedence)
	lintCfg, err := sharedcfg.BuildLintConfig(preset, projectLint)
	if err != nil {
		return nil, err
	}

	// Apply CLI overrides (higher precedence)
	for _, id := range opts.Disable {
		lintCfg.Disable(strings.TrimSpace(id))
	}

	// If --rule specified, run exactly those rules
	if len(opts.Rules) > 0 {
		lintCfg.EnabledRules = make(map[string]bool)
		for _, id := range opts.Rules {
			id = strings.TrimSpace(id)
			if _, ok := lint.GetByID(id); !ok {
				return nil, fmt.Errorf("unknown rule %q", id)
			}
			lintCfg.Enable(id)
		}
	}

	return lintCfg, nil
}

// collectFiles expands paths into the sorted list of files to lint.
// Directories are walked, keeping files with a listed extension and
// skipping ignored paths; files named explicitly are always kept.
func collectFiles(paths, extensions, ignore []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		path = filepath.Clean(path)
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("cannot lint %s: %w", root, err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				rel = path
			}
			rel = filepath.ToSlash(rel)
			if d.IsDir() {
				if path != root && isIgnored(rel, ignore) {
					return filepath.SkipDir
				}
				return nil
			}
			if hasExtension(path, extensions) && !isIgnored(rel, ignore) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", root, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

func hasExtension(path string, extensions []string) bool {
	return slices.Contains(extensions, strings.ToLower(filepath.Ext(path)))
}

func isIgnored(rel string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
		// Directory patterns ending in /** also cover the directory itself.
		if base, found := strings.CutSuffix(p, "/**"); found {
			if ok, _ := doublestar.Match(base, rel); ok {
				return true
			}
		}
	}
	return false
}

// lintFileResult holds lint results for a single file.
type lintFileResult struct {
	Path        string
	Diagnostics []lint.Diagnostic
	Err         error
}

// fileLinter analyzes files against the design context governing each.
type fileLinter struct {
	loader   *design.Loader
	analyzer *lint.Analyzer
	logger   *slog.Logger
}

// lintAll analyzes files with at most jobs files in flight. A file that
// cannot be analyzed records its error and does not stop the others.
func (l *fileLinter) lintAll(ctx context.Context, files []string, jobs int) []lintFileResult {
	results := make([]lintFileResult, len(files))
	if jobs < 1 {
		jobs = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		g.Go(func() error {
			results[i] = l.lintFile(gctx, path)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (l *fileLinter) lintFile(ctx context.Context, path string) lintFileResult {
	res := lintFileResult{Path: path}

	src, err := os.ReadFile(path) //nolint:gosec // linting user-selected files
	if err != nil {
		res.Err = fmt.Errorf("reading file: %w", err)
		return res
	}

	designCtx, err := l.loader.ForFile(ctx, path)
	if err != nil {
		res.Err = err
		return res
	}

	diags, err := l.analyzer.AnalyzeSource(ctx, designCtx, path, src)
	if err != nil {
		res.Err = err
		return res
	}
	l.logger.Debug("linted file",
		slog.String("path", path),
		slog.String("design_config", designCtx.ConfigPath()),
		slog.Int("diagnostics", len(diags)))

	res.Diagnostics = diags
	return res
}

func filterBySeverity(results []lintFileResult, severityThreshold string) []lintFileResult {
	threshold, ok := core.ParseSeverity(severityThreshold)
	if !ok {
		threshold = core.SeverityHint
	}

	filtered := make([]lintFileResult, 0, len(results))
	for _, r := range results {
		var diags []lint.Diagnostic
		for _, d := range r.Diagnostics {
			if d.Severity <= threshold {
				diags = append(diags, d)
			}
		}
		r.Diagnostics = diags
		filtered = append(filtered, r)
	}
	return filtered
}

// summarize counts diagnostics by severity.
func summarize(results []lintFileResult, filesAnalyzed int) output.LintSummary {
	summary := output.LintSummary{FilesAnalyzed: filesAnalyzed}
	for _, res := range results {
		if len(res.Diagnostics) > 0 {
			summary.FilesWithIssues++
		}
		summary.TotalIssues += len(res.Diagnostics)
		for _, d := range res.Diagnostics {
			switch d.Severity {
			case core.SeverityError:
				summary.Errors++
			case core.SeverityWarning:
				summary.Warnings++
			case core.SeverityInfo:
				summary.Info++
			case core.SeverityHint:
				summary.Hints++
			}
		}
	}
	return summary
}

// renderLintResults prints results and reports whether there was anything
// to fix: a diagnostic or a file that failed to analyze.
func renderLintResults(r *output.Renderer, results []lintFileResult, filesAnalyzed int) bool {
	summary := summarize(results, filesAnalyzed)
	var failures []output.LintFailure
	for _, res := range results {
		if res.Err != nil {
			failures = append(failures, output.LintFailure{Path: res.Path, Error: res.Err.Error()})
		}
	}
	hasIssues := summary.TotalIssues > 0 || len(failures) > 0

	if r.EffectiveMode() == output.ModeJSON {
		jsonOutput := output.LintOutput{
			Summary: summary,
			Files:   []output.LintFileResult{},
			Failed:  failures,
		}
		for _, res := range results {
			if len(res.Diagnostics) == 0 {
				continue
			}
			fileResult := output.LintFileResult{Path: res.Path}
			for _, d := range res.Diagnostics {
				fileResult.Diagnostics = append(fileResult.Diagnostics, toJSONDiagnostic(d))
			}
			jsonOutput.Files = append(jsonOutput.Files, fileResult)
		}
		_ = r.JSON(jsonOutput)
		return hasIssues
	}

	for _, f := range failures {
		r.Error(fmt.Sprintf("%s: %s", f.Path, f.Error))
	}

	if summary.TotalIssues == 0 {
		if len(failures) == 0 {
			r.Success(fmt.Sprintf("No lint issues found in %d files", filesAnalyzed))
		}
		return hasIssues
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		renderLintMarkdown(r, results)
	} else {
		renderLintText(r, results)
	}

	// Print summary
	summaryParts := []string{fmt.Sprintf("%d issues", summary.TotalIssues)}
	if summary.Errors > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d errors", summary.Errors))
	}
	if summary.Warnings > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d warnings", summary.Warnings))
	}
	if summary.Info > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d info", summary.Info))
	}
	if summary.Hints > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d hints", summary.Hints))
	}
	r.Printf("Summary: %s in %d of %d files\n", strings.Join(summaryParts, ", "), summary.FilesWithIssues, filesAnalyzed)

	return hasIssues
}

func renderLintText(r *output.Renderer, results []lintFileResult) {
	styles := r.Styles()
	for _, res := range results {
		if len(res.Diagnostics) == 0 {
			continue
		}
		r.Println(styles.FilePath.Render(res.Path))
		for _, d := range res.Diagnostics {
			loc := fmt.Sprintf("%d:%d", d.Pos.Line, d.Pos.Column)
			r.Printf("  %s  %s  %s  %s\n",
				styles.Muted.Render(fmt.Sprintf("%-7s", loc)),
				severityStyle(r, d.Severity),
				d.Message,
				styles.Muted.Render(d.RuleID),
			)
			for _, fix := range d.Fixes {
				r.Println(styles.Info.Render("           suggestion: " + fix.Description))
			}
		}
		r.Println("")
	}
}

func renderLintMarkdown(r *output.Renderer, results []lintFileResult) {
	for _, res := range results {
		if len(res.Diagnostics) == 0 {
			continue
		}
		r.Printf("### %s\n\n", res.Path)
		for _, d := range res.Diagnostics {
			r.Printf("- `%d:%d` **%s** %s (`%s`)\n", d.Pos.Line, d.Pos.Column, d.Severity, d.Message, d.RuleID)
		}
		r.Println("")
	}
}

func toJSONDiagnostic(d lint.Diagnostic) output.LintDiagnostic {
	out := output.LintDiagnostic{
		RuleID:    d.RuleID,
		Severity:  d.Severity.String(),
		MessageID: d.MessageID,
		Message:   d.Message,
		Data:      d.Data,
		Line:      d.Pos.Line,
		Column:    d.Pos.Column,
		EndLine:   d.EndPos.Line,
		EndColumn: d.EndPos.Column,
		DocURL:    d.DocumentationURL,
	}
	for _, fix := range d.Fixes {
		out.Suggestions = append(out.Suggestions, fix.Description)
	}
	return out
}

func severityStyle(r *output.Renderer, sev core.Severity) string {
	switch sev {
	case core.SeverityError:
		return r.Styles().Error.Render("error  ")
	case core.SeverityWarning:
		return r.Styles().Warning.Render("warning")
	case core.SeverityInfo:
		return r.Styles().Info.Render("info   ")
	case core.SeverityHint:
		return r.Styles().Muted.Render("hint   ")
	default:
		return r.Styles().Muted.Render("unknown")
	}
}
