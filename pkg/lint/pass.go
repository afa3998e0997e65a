package lint

import (
	"regexp"

	"github.com/leapstack-labs/pandalint/pkg/analysis"
	"github.com/leapstack-labs/pandalint/pkg/jsast"
)

// Pass is one run of one rule over one file. Rules read the file through
// the shared analysis context and report through the pass.
type Pass struct {
	File    *analysis.File
	Options map[string]any

	rule  Rule
	diags []Diagnostic
}

// NewPass prepares a run of rule over f with the given options.
func NewPass(rule Rule, f *analysis.File, opts map[string]any) *Pass {
	return &Pass{File: f, Options: opts, rule: rule}
}

// RuleID returns the ID of the running rule.
func (p *Pass) RuleID() string { return p.rule.ID() }

// Diagnostics returns what the pass has reported so far.
func (p *Pass) Diagnostics() []Diagnostic { return p.diags }

// Report reports a finding covering node n.
func (p *Pass) Report(n jsast.Node, messageID string, data map[string]string, fixes ...Fix) {
	p.ReportRange(jsast.Start(n), jsast.End(n), messageID, data, fixes...)
}

// ReportRange reports a finding covering the byte range [start, end).
func (p *Pass) ReportRange(start, end int, messageID string, data map[string]string, fixes ...Fix) {
	span := p.File.Program.Lines.Span(start, end)
	p.diags = append(p.diags, Diagnostic{
		RuleID:    p.rule.ID(),
		Severity:  p.rule.DefaultSeverity(),
		MessageID: messageID,
		Data:      data,
		Message:   FormatMessage(p.rule.Messages()[messageID], data),
		Pos:       span.Start,
		EndPos:    span.End,
		Fixes:     fixes,
	})
}

// Suggest builds a fix described by the rule's messageID template.
func (p *Pass) Suggest(messageID string, data map[string]string, edits ...TextEdit) Fix {
	return Fix{
		Description: FormatMessage(p.rule.Messages()[messageID], data),
		TextEdits:   edits,
	}
}

// Replace returns an edit replacing the text of n.
func (p *Pass) Replace(n jsast.Node, text string) TextEdit {
	return p.ReplaceRange(jsast.Start(n), jsast.End(n), text)
}

// ReplaceRange returns an edit replacing the byte range [start, end).
func (p *Pass) ReplaceRange(start, end int, text string) TextEdit {
	span := p.File.Program.Lines.Span(start, end)
	return TextEdit{Pos: span.Start, EndPos: span.End, NewText: text}
}

// Remove returns an edit deleting the text of n.
func (p *Pass) Remove(n jsast.Node) TextEdit {
	return p.Replace(n, "")
}

// DecodeOptions decodes the rule's options into out. Malformed options
// leave out at its defaults.
func (p *Pass) DecodeOptions(out any) {
	_ = DecodeOptions(p.Options, out)
}

var placeholderRegexp = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)

// FormatMessage fills {{name}} placeholders of template from data.
// Unknown placeholders are left as written.
func FormatMessage(template string, data map[string]string) string {
	if len(data) == 0 {
		return template
	}
	return placeholderRegexp.ReplaceAllStringFunc(template, func(m string) string {
		name := placeholderRegexp.FindStringSubmatch(m)[1]
		if v, ok := data[name]; ok {
			return v
		}
		return m
	})
}
