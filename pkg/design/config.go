package design

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// ConfigFileNames are the design configuration names searched for, in order.
var ConfigFileNames = []string{"panda.config.yaml", "panda.config.yml", "panda.config.json"}

// keyDelim separates nested koanf keys. Token names such as "0.5" contain
// dots, so the default "." cannot be used.
const keyDelim = "::"

//go:embed defaults.yaml
var defaultsYAML []byte

// Config is the decoded design-system configuration.
type Config struct {
	Include        []string            `koanf:"include" yaml:"include"`
	Exclude        []string            `koanf:"exclude" yaml:"exclude"`
	ImportMap      any                 `koanf:"importMap" yaml:"importMap"` // string or map of module kinds
	PathMappings   []PathMapping       `koanf:"pathMappings" yaml:"pathMappings"`
	JSXFactory     string              `koanf:"jsxFactory" yaml:"jsxFactory"`
	Properties     []string            `koanf:"properties" yaml:"properties"`
	Conditions     []string            `koanf:"conditions" yaml:"conditions"`
	Utilities      map[string]Utility  `koanf:"utilities" yaml:"utilities"`
	Shorthands     map[string]string   `koanf:"shorthands" yaml:"shorthands"`
	Composites     map[string][]string `koanf:"composites" yaml:"composites"`
	Tokens         map[string]any      `koanf:"tokens" yaml:"tokens"`
	SemanticTokens map[string]any      `koanf:"semanticTokens" yaml:"semanticTokens"`
	Patterns       []Pattern           `koanf:"patterns" yaml:"patterns"`
	Recipes        []Recipe            `koanf:"recipes" yaml:"recipes"`
	SlotRecipes    []Recipe            `koanf:"slotRecipes" yaml:"slotRecipes"`
}

// Utility describes a style property: its shorthand aliases and the token
// category its values come from.
type Utility struct {
	Shorthand any    `koanf:"shorthand" yaml:"shorthand"` // string or list of strings
	Values    string `koanf:"values" yaml:"values"`
}

// Shorthands returns the normalized shorthand list.
func (u Utility) Shorthands() []string {
	return stringList(u.Shorthand)
}

// Pattern is a layout component generated from a pattern definition.
type Pattern struct {
	Name       string   `koanf:"name" yaml:"name"`
	JSX        []string `koanf:"jsx" yaml:"jsx"`
	Properties []string `koanf:"properties" yaml:"properties"`
}

// Recipe is a recipe or slot recipe with its JSX component names.
type Recipe struct {
	Name string   `koanf:"name" yaml:"name"`
	JSX  []string `koanf:"jsx" yaml:"jsx"`
}

// PathMapping is a tsconfig-style path alias. A single "*" in Pattern is
// substituted into each entry of Paths.
type PathMapping struct {
	Pattern string   `koanf:"pattern" yaml:"pattern"`
	Paths   []string `koanf:"paths" yaml:"paths"`
}

// ImportSources returns the module specifiers of the generated runtime.
func (c Config) ImportSources() []string {
	switch v := c.ImportMap.(type) {
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case map[string]any:
		var out []string
		for _, kind := range []string{"css", "recipes", "patterns", "jsx", "tokens"} {
			out = append(out, stringList(v[kind])...)
		}
		return out
	default:
		return stringList(v)
	}
}

// LoadFile reads a design configuration file and layers it over the
// built-in preset.
func LoadFile(path string) (Config, error) {
	data, err := readFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := validateStrict(data); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return load(file.Provider(path))
}

// ParseConfig layers raw YAML or JSON over the built-in preset.
func ParseConfig(data []byte) (Config, error) {
	if err := validateStrict(data); err != nil {
		return Config{}, err
	}
	m, err := yaml.Parser().Unmarshal(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return load(confmap.Provider(m, keyDelim))
}

// DefaultConfig returns the built-in preset on its own.
func DefaultConfig() (Config, error) {
	return load(nil)
}

func load(user koanf.Provider) (Config, error) {
	k := koanf.New(keyDelim)

	defaults, err := yaml.Parser().Unmarshal(defaultsYAML)
	if err != nil {
		return Config{}, fmt.Errorf("parse built-in preset: %w", err)
	}
	if err := k.Load(confmap.Provider(defaults, keyDelim), nil); err != nil {
		return Config{}, fmt.Errorf("load built-in preset: %w", err)
	}

	if user != nil {
		var parser koanf.Parser
		if _, isFile := user.(*file.File); isFile {
			parser = yaml.Parser()
		}
		if err := k.Load(user, parser); err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// validateStrict rejects unknown top-level keys, mirroring a strict decode.
func validateStrict(data []byte) error {
	dec := yamlv3.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var probe Config
	if err := dec.Decode(&probe); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func stringList(v any) []string {
	switch s := v.(type) {
	case nil:
		return nil
	case string:
		if s == "" {
			return nil
		}
		return []string{s}
	case []string:
		return s
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok && strings.TrimSpace(str) != "" {
				out = append(out, str)
			}
		}
		return out
	default:
		return nil
	}
}
