package lsp

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/design"
)

// CompletionContextType describes what kind of completion context we're in.
type CompletionContextType int

// Completion context type constants.
const (
	ContextUnknown       CompletionContextType = iota
	ContextTokenFunction                       // Inside token('...') or token(...)
	ContextTokenBrace                          // Inside '{...' within a string
	ContextPropertyValue                       // Inside the string value of a style property
)

var (
	tokenFnPattern   = regexp.MustCompile(`token\(\s*['"]?([\w.-]*)$`)
	bracePattern     = regexp.MustCompile(`['"\x60][^'"\x60]*\{([\w.-]*)$`)
	propValuePattern = regexp.MustCompile(`([A-Za-z][\w]*)\s*[:=]\s*\{?\s*['"]([\w.-]*)$`)
)

// completionTarget is the detected context and the partial text typed so
// far.
type completionTarget struct {
	kind     CompletionContextType
	partial  string
	property string // ContextPropertyValue only
}

// handleCompletion handles the textDocument/completion request.
func (s *Server) handleCompletion(msg *JSONRPCMessage) error {
	var params CompletionParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		s.sendResponse(msg.ID, nil, &JSONRPCError{Code: -32602, Message: err.Error()})
		return err
	}

	items := s.getCompletions(params)
	s.sendResponse(msg.ID, &CompletionList{Items: items}, nil)
	return nil
}

// getCompletions returns token path completions for the given position.
func (s *Server) getCompletions(params CompletionParams) []CompletionItem {
	items := []CompletionItem{}

	doc := s.documents.Get(params.TextDocument.URI)
	if doc == nil {
		return items
	}
	target := detectContext(doc, params.Position)
	if target.kind == ContextUnknown {
		return items
	}
	dc := s.designFor(doc)
	if dc == nil {
		return items
	}

	// Replace the partial path typed so far
	cursor := doc.PositionToOffset(params.Position)
	replace := Range{
		Start: doc.OffsetToPosition(cursor - len(target.partial)),
		End:   params.Position,
	}

	category := ""
	if target.kind == ContextPropertyValue {
		cat, ok := dc.PropertyCategory(target.property)
		if !ok {
			return items
		}
		category = cat
	}

	for _, t := range dc.Tokens() {
		label := t.Path
		if category != "" {
			if t.Category != category {
				continue
			}
			label = strings.TrimPrefix(t.Path, category+".")
		}
		if !strings.HasPrefix(label, target.partial) {
			continue
		}
		items = append(items, tokenCompletionItem(t, label, replace))
	}

	return items
}

func tokenCompletionItem(t design.TokenInfo, label string, replace Range) CompletionItem {
	kind := CompletionItemKindConstant
	if t.Category == "colors" {
		kind = CompletionItemKindColor
	}
	doc := t.Path
	if t.Semantic {
		doc += " (semantic token)"
	}
	return CompletionItem{
		Label:         label,
		Kind:          kind,
		Detail:        t.Value,
		Documentation: doc,
		Deprecated:    t.Deprecated,
		SortText:      sortText(t, label),
		TextEdit:      &TextEdit{Range: replace, NewText: label},
	}
}

// sortText lists deprecated tokens after the others.
func sortText(t design.TokenInfo, label string) string {
	if t.Deprecated {
		return "1" + label
	}
	return "0" + label
}

// detectContext determines the completion context at the given position.
// Only the current line is considered.
func detectContext(doc *Document, pos Position) completionTarget {
	before := doc.GetTextInRange(Range{Start: Position{Line: pos.Line}, End: pos})

	// 1. token() function argument
	if m := tokenFnPattern.FindStringSubmatch(before); m != nil {
		return completionTarget{kind: ContextTokenFunction, partial: m[1]}
	}

	// 2. {path} reference inside a string
	if m := bracePattern.FindStringSubmatch(before); m != nil {
		return completionTarget{kind: ContextTokenBrace, partial: m[1]}
	}

	// 3. Style property value: color: '...' or color="..."
	if m := propValuePattern.FindStringSubmatch(before); m != nil {
		return completionTarget{kind: ContextPropertyValue, property: m[1], partial: m[2]}
	}

	return completionTarget{kind: ContextUnknown}
}

// designFor returns the design context governing doc, or nil.
func (s *Server) designFor(doc *Document) *design.Context {
	path := URIToPath(doc.URI)
	if core.FileKindFromPath(path) == core.FileUnknown {
		return nil
	}
	loader, _ := s.linter()
	dc, err := loader.ForFile(context.Background(), path)
	if err != nil {
		return nil
	}
	return dc
}

// handleHover handles the textDocument/hover request.
func (s *Server) handleHover(msg *JSONRPCMessage) error {
	var params HoverParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		s.sendResponse(msg.ID, nil, &JSONRPCError{Code: -32602, Message: err.Error()})
		return err
	}

	hover := s.getHover(params)
	s.sendResponse(msg.ID, hover, nil)
	return nil
}

// getHover describes the token under the cursor: a full path, or a path
// relative to the category of the style property it is the value of.
func (s *Server) getHover(params HoverParams) *Hover {
	doc := s.documents.Get(params.TextDocument.URI)
	if doc == nil {
		return nil
	}

	word, rng := doc.GetWordAtPosition(params.Position)
	if word == "" {
		return nil
	}
	dc := s.designFor(doc)
	if dc == nil {
		return nil
	}

	t, ok := dc.Token(word)
	if !ok {
		before := doc.GetTextInRange(Range{Start: Position{Line: rng.Start.Line}, End: rng.Start})
		m := propValuePattern.FindStringSubmatch(before)
		if m == nil {
			return nil
		}
		category, found := dc.PropertyCategory(m[1])
		if !found {
			return nil
		}
		if t, ok = dc.Token(category + "." + word); !ok {
			return nil
		}
	}

	return &Hover{
		Contents: MarkupContent{Kind: MarkupKindMarkdown, Value: formatTokenHover(t)},
		Range:    &rng,
	}
}

func formatTokenHover(t design.TokenInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**", t.Path)
	if t.Semantic {
		b.WriteString(" (semantic)")
	}
	fmt.Fprintf(&b, "\n\n`%s`", t.Value)
	if t.Deprecated {
		b.WriteString("\n\n_Deprecated_")
	}
	return b.String()
}
