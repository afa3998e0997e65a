package config

import (
	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/lint"
)

func init() {
	lint.Register(FileNotIncluded)
}

// FileNotIncluded reports the first design-system import of a file that the
// include globs do not cover.
var FileNotIncluded = lint.RuleDef{
	ID:          "file-not-included",
	Name:        "config.file_not_included",
	Group:       "config",
	Description: "Disallow the use of Panda CSS in files that are not included in the specified Panda CSS `include` config.",
	Severity:    core.SeverityError,
	Check:       checkFileNotIncluded,
	Messages: map[string]string{
		"include": "The use of Panda CSS is not allowed in this file. Please ensure the file is included in the Panda CSS `include` configuration.",
	},
	Recommended: true,
	Rationale:   "Files outside include are never scanned, so their styles are missing from the generated CSS.",
	Fix:         "Add the file to include, or move the styles to an included file.",
}

func checkFileNotIncluded(pass *lint.Pass) {
	f := pass.File
	if f.IsIncluded() {
		return
	}
	for _, decl := range f.Program.Imports() {
		if f.IsPandaImport(decl) {
			pass.Report(decl, "include", nil)
			return
		}
	}
}
