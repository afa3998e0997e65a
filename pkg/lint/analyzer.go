package lint

import (
	"context"
	"fmt"
	"sort"

	"github.com/leapstack-labs/pandalint/pkg/analysis"
	"github.com/leapstack-labs/pandalint/pkg/jsast"
)

// Analyzer runs lint rules against parsed source files.
type Analyzer struct {
	config *Config
}

// NewAnalyzer creates a new analyzer with optional configuration.
func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	return &Analyzer{config: config}
}

// Config returns the analyzer configuration.
func (a *Analyzer) Config() *Config {
	return a.config
}

// Rules returns the registered rules the configuration enables, by ID.
func (a *Analyzer) Rules() []Rule {
	var rules []Rule
	for _, rule := range GetAll() {
		if !a.config.IsDisabled(rule.ID()) {
			rules = append(rules, rule)
		}
	}
	return rules
}

// Analyze runs every enabled rule against f. Rules share f's memo tables;
// diagnostics are returned in source order.
func (a *Analyzer) Analyze(f *analysis.File) []Diagnostic {
	if f == nil || f.Program == nil {
		return nil
	}

	var diagnostics []Diagnostic
	for _, rule := range a.Rules() {
		pass := NewPass(rule, f, a.config.GetRuleOptions(rule.ID()))
		rule.Check(pass)

		diags := pass.Diagnostics()
		for i := range diags {
			diags[i].Severity = a.config.GetSeverity(rule.ID(), diags[i].Severity)
			diags[i].DocumentationURL = BuildDocURL(rule.ID())
			diags[i].ImpactScore = ImpactFor(diags[i].Severity).Int()
			diags[i].AutoFixable = len(diags[i].Fixes) > 0
		}
		diagnostics = append(diagnostics, diags...)
	}

	SortDiagnostics(diagnostics)
	return diagnostics
}

// AnalyzeSource parses src as the file at path and analyzes it against the
// design context d.
func (a *Analyzer) AnalyzeSource(ctx context.Context, d analysis.Design, path string, src []byte) ([]Diagnostic, error) {
	prog, err := jsast.Parse(ctx, path, src)
	if err != nil {
		return nil, fmt.Errorf("parsing source: %w", err)
	}
	return a.Analyze(analysis.NewFile(prog, d)), nil
}

// SortDiagnostics orders diagnostics by position, then by rule ID.
func SortDiagnostics(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].Pos.Offset != diags[j].Pos.Offset {
			return diags[i].Pos.Offset < diags[j].Pos.Offset
		}
		return diags[i].RuleID < diags[j].RuleID
	})
}
