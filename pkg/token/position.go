package token

import "sort"

// Position represents a location in the source code.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number, counted in bytes
	Offset int // 0-based byte offset
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Span represents a range in source code. End is exclusive.
type Span struct {
	Start Position
	End   Position
}

// Contains returns true if the span contains the given offset.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}

// IsValid returns true if both start and end positions are valid.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid()
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// LineIndex converts byte offsets into line/column positions.
type LineIndex struct {
	lines []int // offset of the first byte of each line
	size  int
}

// NewLineIndex builds a line index for src.
func NewLineIndex(src []byte) *LineIndex {
	lines := []int{0}
	for i, b := range src {
		if b == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &LineIndex{lines: lines, size: len(src)}
}

// Position returns the position of the given byte offset.
// Offsets are clamped to the source bounds.
func (li *LineIndex) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > li.size {
		offset = li.size
	}
	line := sort.Search(len(li.lines), func(i int) bool { return li.lines[i] > offset }) - 1
	return Position{
		Line:   line + 1,
		Column: offset - li.lines[line] + 1,
		Offset: offset,
	}
}

// Span returns the span between two byte offsets.
func (li *LineIndex) Span(start, end int) Span {
	return Span{Start: li.Position(start), End: li.Position(end)}
}

// LineCount returns the number of lines in the source.
func (li *LineIndex) LineCount() int {
	return len(li.lines)
}
