package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in     string
		want   Severity
		wantOK bool
	}{
		{"error", SeverityError, true},
		{"WARNING", SeverityWarning, true},
		{"warn", SeverityWarning, true},
		{" info ", SeverityInfo, true},
		{"hint", SeverityHint, true},
		{"fatal", SeverityWarning, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSeverity(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestFileKindFromPath(t *testing.T) {
	assert.Equal(t, FileTSX, FileKindFromPath("src/App.tsx"))
	assert.Equal(t, FileTypeScript, FileKindFromPath("theme.ts"))
	assert.Equal(t, FileJavaScript, FileKindFromPath("button.JSX"))
	assert.Equal(t, FileJavaScript, FileKindFromPath("x.mjs"))
	assert.Equal(t, FileUnknown, FileKindFromPath("README.md"))
	assert.Equal(t, FileUnknown, FileKindFromPath("Makefile"))
}

func TestRuleInfo_DecodesSeverityName(t *testing.T) {
	data, err := json.Marshal(RuleInfo{ID: "no-debug", DefaultSeverity: SeverityHint})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"default_severity":"hint"`)

	var info RuleInfo
	require.NoError(t, json.Unmarshal(data, &info))
	assert.Equal(t, SeverityHint, info.DefaultSeverity)

	err = json.Unmarshal([]byte(`{"default_severity":"fatal"}`), &info)
	assert.ErrorContains(t, err, `invalid severity "fatal"`)
}
