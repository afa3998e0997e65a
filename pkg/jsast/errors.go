package jsast

import "errors"

var (
	// ErrParse indicates that the parser produced no tree at all.
	// Syntax errors inside a file do not cause it; see Program.HasErrors.
	ErrParse = errors.New("parse failed")

	// ErrUnsupportedFile indicates a file extension with no grammar.
	ErrUnsupportedFile = errors.New("unsupported file type")
)
