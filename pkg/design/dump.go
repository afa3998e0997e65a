package design

import (
	"fmt"
	"io"

	yamlv3 "gopkg.in/yaml.v3"
)

// Summary is the serializable view of a Context printed by `pandalint design`.
type Summary struct {
	Root          string              `yaml:"root" json:"root"`
	ConfigPath    string              `yaml:"config,omitempty" json:"config,omitempty"`
	ImportSources []string            `yaml:"import_sources" json:"import_sources"`
	JSXFactory    string              `yaml:"jsx_factory" json:"jsx_factory"`
	Include       []string            `yaml:"include" json:"include"`
	Exclude       []string            `yaml:"exclude,omitempty" json:"exclude,omitempty"`
	Shorthands    map[string]string   `yaml:"shorthands" json:"shorthands"`
	Composites    map[string][]string `yaml:"composites" json:"composites"`
	Patterns      []Pattern           `yaml:"patterns" json:"patterns"`
	Recipes       []Recipe            `yaml:"recipes,omitempty" json:"recipes,omitempty"`
	Tokens        []TokenInfo         `yaml:"tokens" json:"tokens"`
}

// Summarize returns the serializable view of c.
func (c *Context) Summarize() Summary {
	return Summary{
		Root:          c.root,
		ConfigPath:    c.configPath,
		ImportSources: c.sources,
		JSXFactory:    c.jsxFactory,
		Include:       c.cfg.Include,
		Exclude:       c.cfg.Exclude,
		Shorthands:    c.shorthands,
		Composites:    c.composites,
		Patterns:      c.cfg.Patterns,
		Recipes:       c.Recipes(),
		Tokens:        c.Tokens(),
	}
}

// Dump writes the summary of c as YAML.
func (c *Context) Dump(w io.Writer) error {
	enc := yamlv3.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.Summarize()); err != nil {
		return fmt.Errorf("encode design summary: %w", err)
	}
	return enc.Close()
}
