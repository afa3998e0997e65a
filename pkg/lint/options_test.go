package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/pandalint/pkg/core"
	"github.com/leapstack-labs/pandalint/pkg/lint"
)

type colorOptions struct {
	NoOpacity bool     `mapstructure:"noOpacity"`
	Whitelist []string `mapstructure:"whitelist"`
}

func TestDecodeOptions(t *testing.T) {
	var opts colorOptions
	require.NoError(t, lint.DecodeOptions(map[string]any{
		"noOpacity": "true",
		"whitelist": []any{"color", "fill"},
	}, &opts))
	assert.True(t, opts.NoOpacity)
	assert.Equal(t, []string{"color", "fill"}, opts.Whitelist)

	var empty colorOptions
	require.NoError(t, lint.DecodeOptions(nil, &empty))
	assert.Equal(t, colorOptions{}, empty)

	err := lint.DecodeOptions(map[string]any{"whitlist": []any{"color"}}, &opts)
	assert.ErrorContains(t, err, "whitlist")
}

func TestValidateOptions(t *testing.T) {
	lint.Register(lint.RuleDef{
		ID:         "test-options",
		Severity:   core.SeverityHint,
		ConfigKeys: []string{"whitelist"},
	})

	cfg := lint.NewConfig().SetRuleOptions("test-options", map[string]any{"whitelist": []any{"a"}})
	assert.NoError(t, lint.ValidateOptions(cfg))

	cfg.SetRuleOptions("test-options", map[string]any{"noOpacity": true})
	assert.ErrorContains(t, lint.ValidateOptions(cfg), `does not accept option "noOpacity"`)

	cfg = lint.NewConfig().SetRuleOptions("test-missing", map[string]any{})
	assert.ErrorContains(t, lint.ValidateOptions(cfg), "unknown rule")

	assert.NoError(t, lint.ValidateOptions(nil))
}

func TestGetOptions(t *testing.T) {
	opts := map[string]any{
		"flag":  true,
		"list":  []any{"a", 1, "b"},
		"typed": []string{"x"},
	}
	assert.True(t, lint.GetBoolOption(opts, "flag", false))
	assert.False(t, lint.GetBoolOption(opts, "missing", false))
	assert.Equal(t, []string{"a", "b"}, lint.GetStringSliceOption(opts, "list", nil))
	assert.Equal(t, []string{"x"}, lint.GetStringSliceOption(opts, "typed", nil))
	assert.Equal(t, []string{"d"}, lint.GetStringSliceOption(nil, "list", []string{"d"}))
	assert.Equal(t, 3, lint.GetOption(opts, "flag", 3))
}
