package props

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogical(t *testing.T) {
	tests := []struct {
		physical string
		want     string
		ok       bool
	}{
		{"marginLeft", "marginInlineStart", true},
		{"paddingTop", "paddingBlockStart", true},
		{"borderBottomLeftRadius", "borderEndStartRadius", true},
		{"left", "insetInlineStart", true},
		{"marginInlineStart", "", false},
		{"color", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.physical, func(t *testing.T) {
			got, ok := Logical(tt.physical)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogical_TableIsClosed(t *testing.T) {
	assert.Equal(t, 32, PhysicalProperties())
	for physical, logical := range physicalProperties {
		_, again := Logical(logical)
		assert.False(t, again, "%s maps to %s which is itself physical", physical, logical)
		for _, dir := range []string{"Left", "Right", "Top", "Bottom"} {
			assert.False(t, strings.Contains(logical, dir), "%s still names a physical side", logical)
		}
	}
}

func TestLogicalValue(t *testing.T) {
	got, ok := LogicalValue("textAlign", "left")
	assert.True(t, ok)
	assert.Equal(t, "start", got)

	got, ok = LogicalValue("textAlign", "right")
	assert.True(t, ok)
	assert.Equal(t, "end", got)

	_, ok = LogicalValue("textAlign", "center")
	assert.False(t, ok)
	_, ok = LogicalValue("float", "left")
	assert.False(t, ok)

	assert.True(t, HasPhysicalValues("textAlign"))
	assert.False(t, HasPhysicalValues("color"))
}

func TestIsMargin(t *testing.T) {
	assert.True(t, IsMargin("marginInline"))
	assert.True(t, IsMargin("scrollMarginTop"))
	assert.False(t, IsMargin("padding"))
}
