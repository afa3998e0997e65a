package config

import (
	"github.com/leapstack-labs/pandalint/pkg/analysis"
	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/jsast"
	"github.com/leapstack-labs/pandalint/pkg/lint"
)

func init() {
	lint.Register(ConfigFunctionInSource)
}

// devModule is the package that exports the config helpers.
const devModule = "@pandacss/dev"

var configFunctions = map[string]bool{
	"defineConfig":         true,
	"defineGlobalStyles":   true,
	"defineKeyframes":      true,
	"defineLayerStyles":    true,
	"defineParts":          true,
	"definePattern":        true,
	"definePreset":         true,
	"defineRecipe":         true,
	"defineSemanticTokens": true,
	"defineSlotRecipe":     true,
	"defineStyles":         true,
	"defineTextStyles":     true,
	"defineTokens":         true,
	"defineUtility":        true,
}

// ConfigFunctionInSource reports config helpers such as defineRecipe called
// from application source.
var ConfigFunctionInSource = lint.RuleDef{
	ID:          "no-config-function-in-source",
	Name:        "config.function_in_source",
	Group:       "config",
	Description: "Prohibit the use of config functions outside the Panda config file.",
	Severity:    core.SeverityError,
	Check:       checkConfigFunctionInSource,
	Messages: map[string]string{
		"configFunction": "Unnecessary `{{name}}` call. Config functions should only be used in the Panda config file.",
		"delete":         "Delete `{{name}}` call.",
	},
	Recommended: true,
	Suggestions: true,
	Rationale:   "Config helpers only take effect when the config file is loaded; in source they do nothing at runtime.",
	BadExample:  "import { defineKeyframes } from '@pandacss/dev'\nconst k = defineKeyframes({})",
	GoodExample: "// panda.config.ts\nexport default defineConfig({ theme: { keyframes } })",
	Fix:         "Move the definition to the config file.",
}

func checkConfigFunctionInSource(pass *lint.Pass) {
	f := pass.File
	if !importsDevModule(f) || !f.IsIncluded() {
		return
	}
	for _, call := range jsast.Collect[*jsast.CallExpression](f.Program) {
		id, ok := call.Callee.(*jsast.Identifier)
		if !ok || !configFunctions[id.Name] {
			continue
		}
		imp, ok := f.ImportFor(id.Name)
		if !ok || imp.Module != devModule || imp.Name != id.Name {
			continue
		}

		var target jsast.Node = call
		if decl := jsast.Closest(call, jsast.KindVariableDeclaration); decl != nil {
			target = decl
		}
		data := map[string]string{"name": id.Name}
		pass.Report(call, "configFunction", data,
			pass.Suggest("delete", data, pass.Remove(target), removeSpecifier(pass, imp)))
	}
}

func importsDevModule(f *analysis.File) bool {
	for _, imp := range f.RawImports() {
		if imp.Module == devModule {
			return true
		}
	}
	return false
}

// removeSpecifier deletes the import binding of imp together with one
// adjacent comma, or the whole declaration when it is the only binding.
func removeSpecifier(pass *lint.Pass, imp analysis.Import) lint.TextEdit {
	if len(imp.Decl.Specifiers) == 1 {
		return pass.Remove(imp.Decl)
	}
	src := pass.File.Program.Source
	start, end := jsast.Start(imp.Spec), jsast.End(imp.Spec)
	if i := skipSpace(src, end); i < len(src) && src[i] == ',' {
		return pass.ReplaceRange(start, skipSpace(src, i+1), "")
	}
	i := start - 1
	for i >= 0 && isSpace(src[i]) {
		i--
	}
	if i >= 0 && src[i] == ',' {
		start = i
	}
	return pass.ReplaceRange(start, end, "")
}

func skipSpace(src []byte, i int) int {
	for i < len(src) && isSpace(src[i]) {
		i++
	}
	return i
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
