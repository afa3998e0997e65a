package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leapstack-labs/pandalint/pkg/lint"
	_ "github.com/leapstack-labs/pandalint/pkg/lint/rules"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// groupOrder is the order rule groups appear in the reference.
var groupOrder = []string{"config", "tokens", "styling", "properties"}

// titleCase capitalizes a group name for a heading.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

var groupDescriptions = map[string]string{
	"config":     "Rules about where the design system may be used.",
	"tokens":     "Rules about token references and color values.",
	"styling":    "Rules about how style objects and props are written.",
	"properties": "Rules about which property names are used.",
}

// generateRuleDocs writes the rules overview and one page per rule.
func generateRuleDocs(outDir string) error {
	log.Printf("Generating rule docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	grouped := groupRules(lint.GetAll())

	if err := generateRulesIndex(outDir, grouped); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	for _, group := range groupOrder {
		for _, rule := range grouped[group] {
			if err := generateRulePage(outDir, rule); err != nil {
				return fmt.Errorf("failed to generate page for %s: %w", rule.ID(), err)
			}
			log.Printf("  Generated %s.md", rule.ID())
		}
	}

	return nil
}

// generateRulesIndex generates the rules overview page.
func generateRulesIndex(outDir string, grouped map[string][]lint.Rule) error {
	w := NewMarkdownWriter()

	w.Frontmatter("Rules", "Design-system lint rules for Panda CSS")
	w.GeneratedMarker()

	total := 0
	for _, rules := range grouped {
		total += len(rules)
	}

	w.Header(1, "Rules")
	w.Paragraph(fmt.Sprintf("pandalint ships **%d rules**. Rules marked recommended run by default.", total))

	w.Header(2, "Severity Levels")
	w.Table(
		[]string{"Severity", "Description"},
		[][]string{
			{InlineCode("error"), "The style is broken or refers to something that does not exist"},
			{InlineCode("warning"), "The style works but should not ship"},
			{InlineCode("info"), "Informational feedback"},
			{InlineCode("hint"), "Suggestion for improvement"},
		},
	)

	w.Header(2, "Configuration")
	w.Paragraph("Rules are configured in `pandalint.yaml`:")
	w.CodeBlock("yaml", `preset: recommended
lint:
  disabled:
    - no-debug
  severity:
    no-escape-hatch: warning
  rules:
    no-hardcoded-color:
      noOpacity: true
      whitelist: [transparent]`)

	for _, group := range groupOrder {
		rules := grouped[group]
		if len(rules) == 0 {
			continue
		}

		w.Header(2, titleCase(group))
		if desc, ok := groupDescriptions[group]; ok {
			w.Paragraph(desc)
		}

		var rows [][]string
		for _, rule := range rules {
			rows = append(rows, []string{
				fmt.Sprintf("[%s](/rules/%s)", InlineCode(rule.ID()), rule.ID()),
				InlineCode(rule.DefaultSeverity().String()),
				yesNo(rule.Recommended()),
				cleanDescription(rule.Description()),
			})
		}
		w.Table([]string{"Rule", "Severity", "Recommended", "Description"}, rows)
	}

	return os.WriteFile(filepath.Join(outDir, "index.md"), w.Bytes(), 0600)
}

// generateRulePage generates the documentation page of one rule.
func generateRulePage(outDir string, rule lint.Rule) error {
	w := NewMarkdownWriter()

	w.Frontmatter(rule.ID(), cleanDescription(rule.Description()))
	w.GeneratedMarker()

	w.Header(1, rule.ID())
	w.Line(fmt.Sprintf("%s %s | %s %s | %s %s",
		Bold("Group:"), rule.Group(),
		Bold("Severity:"), InlineCode(rule.DefaultSeverity().String()),
		Bold("Recommended:"), yesNo(rule.Recommended())))
	w.Newline()

	w.Paragraph(cleanDescription(rule.Description()))

	if rationale := rule.Rationale(); rationale != "" {
		w.Header(2, "Why This Matters")
		w.Paragraph(strings.TrimSpace(rationale))
	}

	if bad := rule.BadExample(); bad != "" {
		w.Header(2, "Bad")
		w.CodeBlock("tsx", bad)
	}

	if good := rule.GoodExample(); good != "" {
		w.Header(2, "Good")
		w.CodeBlock("tsx", good)
	}

	if fix := rule.Fix(); fix != "" {
		w.Header(2, "How to Fix")
		w.Paragraph(strings.TrimSpace(fix))
	}
	if rule.HasSuggestions() {
		w.Paragraph("Editors connected to `pandalint lsp` offer this rule's suggestions as quick fixes.")
	}

	if keys := rule.ConfigKeys(); len(keys) > 0 {
		w.Header(2, "Options")
		quoted := make([]string, len(keys))
		for i, k := range keys {
			quoted[i] = InlineCode(k)
		}
		w.BulletList(quoted)
	}

	return os.WriteFile(filepath.Join(outDir, rule.ID()+".md"), w.Bytes(), 0600)
}

// groupRules organizes rules by their group, sorted by ID within a group.
func groupRules(rules []lint.Rule) map[string][]lint.Rule {
	grouped := make(map[string][]lint.Rule)
	for _, r := range rules {
		grouped[r.Group()] = append(grouped[r.Group()], r)
	}
	for group := range grouped {
		sort.Slice(grouped[group], func(i, j int) bool {
			return grouped[group][i].ID() < grouped[group][j].ID()
		})
	}
	return grouped
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
