package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/pandalint/pkg/lint"
)

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]string
		want     string
	}{
		{"no placeholders", "Unnecessary debug utility.", nil, "Unnecessary debug utility."},
		{"single", "`{{token}}` is an invalid token path.", map[string]string{"token": "colors.x"}, "`colors.x` is an invalid token path."},
		{"padded", "Prefer `{{ logical }}`.", map[string]string{"logical": "marginInlineStart"}, "Prefer `marginInlineStart`."},
		{"repeated", "Remove `{{c}}`, not `{{c}}`.", map[string]string{"c": "gap"}, "Remove `gap`, not `gap`."},
		{"unknown left as written", "{{a}} and {{b}}", map[string]string{"a": "x"}, "x and {{b}}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lint.FormatMessage(tt.template, tt.data))
		})
	}
}
