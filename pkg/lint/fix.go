package lint

import (
	"fmt"
	"sort"
)

// ApplyFix applies the edits of fix to src and returns the new text. Edits
// must not overlap; they are applied from the end of the file backwards so
// earlier offsets stay valid.
func ApplyFix(src []byte, fix Fix) ([]byte, error) {
	edits := make([]TextEdit, len(fix.TextEdits))
	copy(edits, fix.TextEdits)
	sort.SliceStable(edits, func(i, j int) bool {
		return edits[i].Pos.Offset > edits[j].Pos.Offset
	})

	out := append([]byte(nil), src...)
	limit := len(out)
	for _, e := range edits {
		start, end := e.Pos.Offset, e.EndPos.Offset
		if start < 0 || end < start || end > len(src) {
			return nil, fmt.Errorf("edit [%d,%d) outside source of %d bytes", start, end, len(src))
		}
		if end > limit {
			return nil, fmt.Errorf("edit [%d,%d) overlaps a later edit", start, end)
		}
		out = append(out[:start], append([]byte(e.NewText), out[end:]...)...)
		limit = start
	}
	return out, nil
}
