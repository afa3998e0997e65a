package lsp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/design"
	"github.com/leapstack-labs/pandalint/pkg/lint"
	_ "github.com/leapstack-labs/pandalint/pkg/lint/rules" // register rules
	"github.com/leapstack-labs/pandalint/pkg/token"
)

const (
	diagnosticSource = "pandalint"

	// codeDesignConfig marks a diagnostic about the design config itself.
	codeDesignConfig = "design-config"

	// maxTokenSuggestions bounds the "did you mean" fixes per diagnostic.
	maxTokenSuggestions = 3
)

// publishDiagnostics lints the document and publishes the result. Documents
// that are not JavaScript or TypeScript, or that no design config governs,
// get an empty set.
func (s *Server) publishDiagnostics(uri string) {
	doc := s.documents.Get(uri)
	if doc == nil {
		return
	}

	diagnostics := s.computeDiagnostics(doc)

	version := doc.Version
	s.sendNotification("textDocument/publishDiagnostics", &PublishDiagnosticsParams{
		URI:         uri,
		Version:     &version,
		Diagnostics: diagnostics,
	})
}

// publishAll re-publishes diagnostics for every open document.
func (s *Server) publishAll() {
	uris := s.documents.List()
	sort.Strings(uris)
	for _, uri := range uris {
		s.publishDiagnostics(uri)
	}
}

func (s *Server) computeDiagnostics(doc *Document) []Diagnostic {
	diagnostics := []Diagnostic{}
	path := URIToPath(doc.URI)

	if core.FileKindFromPath(path) == core.FileUnknown {
		s.fixes.clearURI(doc.URI)
		return diagnostics
	}

	ctx := context.Background()
	loader, analyzer := s.linter()

	designCtx, err := loader.ForFile(ctx, path)
	if err != nil {
		s.fixes.clearURI(doc.URI)
		if errors.Is(err, design.ErrConfigNotFound) {
			s.logger.Debug("no design config", slog.String("path", path))
			return diagnostics
		}
		s.logger.Warn("design config failed to load", slog.String("path", path), slog.Any("error", err))
		return append(diagnostics, errorDiagnostic(codeDesignConfig, "Design config: "+err.Error()))
	}
	s.watchConfig(designCtx.ConfigPath())

	lintDiags, err := analyzer.AnalyzeSource(ctx, designCtx, path, []byte(doc.Content))
	if err != nil {
		s.fixes.clearURI(doc.URI)
		s.logger.Warn("analysis failed", slog.String("path", path), slog.Any("error", err))
		return append(diagnostics, errorDiagnostic("parse", err.Error()))
	}

	var cached []cachedFix
	for _, d := range lintDiags {
		diag := toLSPDiagnostic(doc, d)
		diagnostics = append(diagnostics, diag)

		fixes := d.Fixes
		if d.RuleID == "no-invalid-token-paths" {
			fixes = append(fixes, tokenSuggestionFixes(doc, d, designCtx)...)
		}
		if len(fixes) > 0 {
			cached = append(cached, cachedFix{ruleID: d.RuleID, rng: diag.Range, fixes: fixes})
		}
	}

	// Cache fixes for code actions
	s.fixes.store(doc.URI, cached)

	return diagnostics
}

// toLSPDiagnostic converts a lint diagnostic to an LSP diagnostic.
func toLSPDiagnostic(doc *Document, d lint.Diagnostic) Diagnostic {
	end := d.EndPos.Offset
	if !d.EndPos.IsValid() || end < d.Pos.Offset {
		end = d.Pos.Offset
	}

	diag := Diagnostic{
		Range: Range{
			Start: doc.OffsetToPosition(d.Pos.Offset),
			End:   doc.OffsetToPosition(end),
		},
		Severity: toLSPSeverity(d.Severity),
		Code:     d.RuleID,
		Source:   diagnosticSource,
		Message:  d.Message,
	}

	// Add documentation URL
	if d.DocumentationURL != "" {
		diag.CodeDescription = &CodeDescription{Href: d.DocumentationURL}
	} else {
		diag.CodeDescription = &CodeDescription{Href: lint.BuildDocURL(d.RuleID)}
	}

	return diag
}

// errorDiagnostic reports a problem that has no position in the document.
func errorDiagnostic(code, msg string) Diagnostic {
	return Diagnostic{
		Range: Range{
			Start: Position{Line: 0, Character: 0},
			End:   Position{Line: 0, Character: 0},
		},
		Severity: DiagnosticSeverityError,
		Code:     code,
		Source:   diagnosticSource,
		Message:  msg,
	}
}

// toLSPSeverity converts core.Severity to LSP DiagnosticSeverity.
func toLSPSeverity(s core.Severity) DiagnosticSeverity {
	switch s {
	case core.SeverityError:
		return DiagnosticSeverityError
	case core.SeverityWarning:
		return DiagnosticSeverityWarning
	case core.SeverityInfo:
		return DiagnosticSeverityInformation
	case core.SeverityHint:
		return DiagnosticSeverityHint
	default:
		return DiagnosticSeverityWarning
	}
}

// tokenSuggestionFixes offers the registered token paths closest to the
// invalid path of d as replacements.
func tokenSuggestionFixes(doc *Document, d lint.Diagnostic, dc *design.Context) []lint.Fix {
	invalid := d.Data["token"]
	if invalid == "" || d.Pos.Offset < 0 || d.EndPos.Offset < d.Pos.Offset || d.EndPos.Offset > len(doc.Content) {
		return nil
	}
	i := strings.Index(doc.Content[d.Pos.Offset:d.EndPos.Offset], invalid)
	if i < 0 {
		return nil
	}
	start := d.Pos.Offset + i

	tokens := dc.Tokens()
	paths := make([]string, len(tokens))
	for j, t := range tokens {
		paths[j] = t.Path
	}

	maxDistance := max(2, len(invalid)/4)
	var fixes []lint.Fix
	for _, candidate := range suggestSimilar(invalid, paths, maxDistance) {
		fixes = append(fixes, lint.Fix{
			Description: fmt.Sprintf("Did you mean `%s`?", candidate),
			TextEdits: []lint.TextEdit{{
				Pos:     token.Position{Offset: start},
				EndPos:  token.Position{Offset: start + len(invalid)},
				NewText: candidate,
			}},
		})
		if len(fixes) == maxTokenSuggestions {
			break
		}
	}
	return fixes
}

// suggestSimilar finds similar strings using Levenshtein distance, closest
// first.
func suggestSimilar(input string, candidates []string, maxDistance int) []string {
	inputLower := strings.ToLower(input)

	type scored struct {
		candidate string
		dist      int
	}
	var matches []scored
	for _, candidate := range candidates {
		dist := levenshtein(inputLower, strings.ToLower(candidate))
		if dist <= maxDistance && dist > 0 {
			matches = append(matches, scored{candidate, dist})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].dist < matches[j].dist })

	suggestions := make([]string, len(matches))
	for i, m := range matches {
		suggestions[i] = m.candidate
	}
	return suggestions
}

// levenshtein calculates the Levenshtein distance between two strings.
func levenshtein(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	// Create distance matrix
	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}

	// Fill in the rest of the matrix
	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(s1)][len(s2)]
}
