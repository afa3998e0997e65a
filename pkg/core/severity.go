package core

import (
	"fmt"
	"strings"
)

// =============================================================================
// Severity
// =============================================================================

// Severity indicates the importance of a lint diagnostic.
type Severity int

// Severity levels for diagnostics.
const (
	// SeverityError indicates a design-system violation that should be fixed.
	SeverityError Severity = iota
	// SeverityWarning indicates a style that drifts from the design system.
	SeverityWarning
	// SeverityInfo indicates informational feedback.
	SeverityInfo
	// SeverityHint indicates a suggestion for improvement.
	SeverityHint
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityHint:
		return "hint"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity as its name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name accepted by ParseSeverity.
func (s *Severity) UnmarshalText(text []byte) error {
	v, ok := ParseSeverity(string(text))
	if !ok {
		return fmt.Errorf("invalid severity %q", text)
	}
	*s = v
	return nil
}

// ParseSeverity converts a string to a Severity value.
// Returns the severity and true if valid, or SeverityWarning and false if invalid.
// "warn" is accepted as an alias of "warning".
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SeverityError, true
	case "warning", "warn":
		return SeverityWarning, true
	case "info":
		return SeverityInfo, true
	case "hint":
		return SeverityHint, true
	default:
		return SeverityWarning, false
	}
}

// =============================================================================
// RuleInfo
// =============================================================================

// RuleInfo provides metadata about a lint rule for documentation/tooling.
// This is a DTO (Data Transfer Object) - it carries data without behavior.
type RuleInfo struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Group           string   `json:"group"`
	Description     string   `json:"description"`
	DefaultSeverity Severity `json:"default_severity"`
	ConfigKeys      []string `json:"config_keys,omitempty"`
	Recommended     bool     `json:"recommended"`
	HasSuggestions  bool     `json:"has_suggestions"`
	Type            string   `json:"type"` // "file"

	// Documentation fields
	Rationale   string `json:"rationale,omitempty"`
	BadExample  string `json:"bad_example,omitempty"`
	GoodExample string `json:"good_example,omitempty"`
	Fix         string `json:"fix,omitempty"`
}

// =============================================================================
// FileKind
// =============================================================================

// FileKind identifies the source language of a file.
type FileKind int

// Supported source kinds.
const (
	FileUnknown FileKind = iota
	FileJavaScript
	FileTypeScript
	FileTSX
)

// String returns the name of the file kind.
func (k FileKind) String() string {
	switch k {
	case FileJavaScript:
		return "javascript"
	case FileTypeScript:
		return "typescript"
	case FileTSX:
		return "tsx"
	default:
		return "unknown"
	}
}

// FileKindFromPath classifies a file by its extension.
func FileKindFromPath(path string) FileKind {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return FileUnknown
	}
	switch strings.ToLower(path[i:]) {
	case ".js", ".jsx", ".mjs", ".cjs":
		return FileJavaScript
	case ".ts", ".mts", ".cts":
		return FileTypeScript
	case ".tsx":
		return FileTSX
	default:
		return FileUnknown
	}
}
