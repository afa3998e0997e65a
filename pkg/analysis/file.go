package analysis

import (
	"strings"

	"github.com/leapstack-labs/pandalint/pkg/jsast"
)

// Import is one named import binding of a file.
type Import struct {
	Alias  string // local binding name
	Name   string // exported name in the source module
	Module string // module specifier as written

	Spec *jsast.ImportSpecifier
	Decl *jsast.ImportDeclaration
}

// File is the analysis context of one source file.
type File struct {
	Program *jsast.Program
	Path    string
	Design  Design

	raw      []Import
	filtered []Import
	resolved bool

	included    *bool
	declarators map[string]*jsast.VariableDeclarator

	pandaProps   map[*jsast.JSXAttribute]bool
	pandaAttrs   map[*jsast.Property]bool
	pandaCallees map[*jsast.Property]string
	variants     map[*jsast.Property]bool
	localStyled  map[string]bool

	invalid    map[string][]TokenRef
	deprecated map[deprecatedKey][]TokenRef
}

// NewFile creates the analysis context for prog. The path used for include
// matching and relative import resolution is prog.Path.
func NewFile(prog *jsast.Program, d Design) *File {
	return &File{
		Program:      prog,
		Path:         prog.Path,
		Design:       d,
		pandaProps:   make(map[*jsast.JSXAttribute]bool),
		pandaAttrs:   make(map[*jsast.Property]bool),
		pandaCallees: make(map[*jsast.Property]string),
		variants:     make(map[*jsast.Property]bool),
		localStyled:  make(map[string]bool),
		invalid:      make(map[string][]TokenRef),
		deprecated:   make(map[deprecatedKey][]TokenRef),
	}
}

// RawImports returns every named import binding of the file, regardless of
// its module.
func (f *File) RawImports() []Import {
	f.resolveImports()
	return f.raw
}

// Imports returns the import bindings whose module resolves to the design
// system runtime.
func (f *File) Imports() []Import {
	f.resolveImports()
	return f.filtered
}

func (f *File) resolveImports() {
	if f.resolved {
		return
	}
	f.resolved = true
	for _, decl := range f.Program.Imports() {
		mod := decl.Module()
		if mod == "" {
			continue
		}
		for _, spec := range decl.Specifiers {
			imp := Import{
				Alias:  spec.LocalName(),
				Name:   spec.Imported,
				Module: mod,
				Spec:   spec,
				Decl:   decl,
			}
			f.raw = append(f.raw, imp)
			if f.Design.MatchImport(f.Path, mod) {
				f.filtered = append(f.filtered, imp)
			}
		}
	}
}

// IsPandaIsh reports whether name is bound by an import from the design
// system runtime.
func (f *File) IsPandaIsh(name string) bool {
	if name == "" {
		return false
	}
	for _, imp := range f.Imports() {
		if imp.Alias == name {
			return true
		}
	}
	return false
}

// isPandaModuleAlias reports whether name is imported from a module whose
// specifier mentions panda, whatever the configuration says.
func (f *File) isPandaModuleAlias(name string) bool {
	for _, imp := range f.RawImports() {
		if imp.Alias == name && strings.Contains(imp.Module, "panda") {
			return true
		}
	}
	return false
}

// IsPandaImport reports whether decl imports from the design system runtime.
func (f *File) IsPandaImport(decl *jsast.ImportDeclaration) bool {
	if decl == nil {
		return false
	}
	mod := decl.Module()
	for _, imp := range f.Imports() {
		if imp.Module == mod {
			return true
		}
	}
	return false
}

// ImportFor returns the raw binding whose local alias is alias.
func (f *File) ImportFor(alias string) (Import, bool) {
	for _, imp := range f.RawImports() {
		if imp.Alias == alias {
			return imp, true
		}
	}
	return Import{}, false
}

// TokenImport returns the runtime's token() helper binding, if imported.
func (f *File) TokenImport() (Import, bool) {
	for _, imp := range f.Imports() {
		if imp.Name == "token" {
			return imp, true
		}
	}
	return Import{}, false
}

// IsIncluded reports whether the file is matched by the design system's
// include and exclude globs.
func (f *File) IsIncluded() bool {
	if f.included == nil {
		v := f.Design.IncludesFile(f.Path)
		f.included = &v
	}
	return *f.included
}

// Longhand returns the longhand of name, or name itself when it is not a
// registered shorthand.
func (f *File) Longhand(name string) string {
	if lh, ok := f.Design.Longhand(name); ok {
		return lh
	}
	return name
}

// Text returns the source text of n.
func (f *File) Text(n jsast.Node) string {
	return f.Program.Text(n)
}

// declarator returns the first variable declarator binding name anywhere in
// the file. Block scope and shadowing are not considered.
func (f *File) declarator(name string) *jsast.VariableDeclarator {
	if f.declarators == nil {
		f.declarators = make(map[string]*jsast.VariableDeclarator)
		for _, d := range jsast.Collect[*jsast.VariableDeclarator](f.Program) {
			id, ok := d.ID.(*jsast.Identifier)
			if !ok {
				continue
			}
			if _, seen := f.declarators[id.Name]; !seen {
				f.declarators[id.Name] = d
			}
		}
	}
	return f.declarators[name]
}
