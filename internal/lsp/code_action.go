package lsp

import (
	"encoding/json"
	"slices"
	"sync"

	"github.com/leapstack-labs/pandalint/pkg/lint"
)

// cachedFix is the suggestion set of one published diagnostic.
type cachedFix struct {
	ruleID string
	rng    Range
	fixes  []lint.Fix
}

// fixCache stores fixes for published diagnostics, keyed by URI. A code
// action request names its diagnostic by rule ID and range.
type fixCache struct {
	mu    sync.RWMutex
	fixes map[string][]cachedFix // URI -> fixes of the last publish
}

func newFixCache() *fixCache {
	return &fixCache{fixes: make(map[string][]cachedFix)}
}

// store replaces the cached fixes of uri.
func (c *fixCache) store(uri string, entries []cachedFix) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(entries) == 0 {
		delete(c.fixes, uri)
		return
	}
	c.fixes[uri] = entries
}

// lookup returns the fixes of the diagnostic of ruleID published at rng.
func (c *fixCache) lookup(uri, ruleID string, rng Range) []lint.Fix {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, e := range c.fixes[uri] {
		if e.ruleID == ruleID && e.rng == rng {
			return e.fixes
		}
	}
	return nil
}

// clearURI removes all cached fixes for a URI.
func (c *fixCache) clearURI(uri string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.fixes, uri)
}

// clearAll empties the cache.
func (c *fixCache) clearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fixes = make(map[string][]cachedFix)
}

// handleCodeAction handles the textDocument/codeAction request.
func (s *Server) handleCodeAction(msg *JSONRPCMessage) error {
	var params CodeActionParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		s.sendResponse(msg.ID, nil, &JSONRPCError{Code: -32602, Message: err.Error()})
		return err
	}

	actions := s.getCodeActions(params)
	s.sendResponse(msg.ID, actions, nil)
	return nil
}

// getCodeActions returns quick fixes for the diagnostics in params.
func (s *Server) getCodeActions(params CodeActionParams) []CodeAction {
	actions := []CodeAction{}

	// All our fixes are quick fixes
	if len(params.Context.Only) > 0 && !slices.Contains(params.Context.Only, CodeActionKindQuickFix) {
		return actions
	}

	uri := params.TextDocument.URI
	doc := s.documents.Get(uri)
	if doc == nil {
		return actions
	}

	for _, diag := range params.Context.Diagnostics {
		if diag.Source != diagnosticSource {
			continue
		}
		fixes := s.fixes.lookup(uri, diag.Code, diag.Range)
		for _, fix := range fixes {
			actions = append(actions, CodeAction{
				Title:       fix.Description,
				Kind:        CodeActionKindQuickFix,
				Diagnostics: []Diagnostic{diag},
				IsPreferred: len(fixes) == 1, // Single fix is preferred
				Edit: &WorkspaceEdit{
					Changes: map[string][]TextEdit{
						uri: convertTextEdits(doc, fix.TextEdits),
					},
				},
			})
		}
	}

	return actions
}

// convertTextEdits converts lint.TextEdit byte offsets to LSP ranges.
func convertTextEdits(doc *Document, edits []lint.TextEdit) []TextEdit {
	result := make([]TextEdit, len(edits))
	for i, edit := range edits {
		result[i] = TextEdit{
			Range: Range{
				Start: doc.OffsetToPosition(edit.Pos.Offset),
				End:   doc.OffsetToPosition(edit.EndPos.Offset),
			},
			NewText: edit.NewText,
		}
	}
	return result
}
