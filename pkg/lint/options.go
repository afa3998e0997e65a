package lint

import (
	"fmt"
	"slices"

	"github.com/go-viper/mapstructure/v2"
)

// DecodeOptions decodes rule options into the struct pointed to by out.
// Keys are matched against `mapstructure` tags; scalar values are weakly
// converted so YAML and JSON sources both decode. Unknown keys are an error.
func DecodeOptions(opts map[string]any, out any) error {
	if len(opts) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("building options decoder: %w", err)
	}
	if err := dec.Decode(opts); err != nil {
		return fmt.Errorf("decoding options: %w", err)
	}
	return nil
}

// ValidateOptions checks every configured option map against the keys its
// rule accepts.
func ValidateOptions(cfg *Config) error {
	if cfg == nil {
		return nil
	}
	for id, opts := range cfg.RuleOptions {
		rule, ok := GetByID(id)
		if !ok {
			return fmt.Errorf("options for unknown rule %q", id)
		}
		for key := range opts {
			if !slices.Contains(rule.ConfigKeys(), key) {
				return fmt.Errorf("rule %q does not accept option %q", id, key)
			}
		}
	}
	return nil
}

// GetOption extracts a typed option with a default value.
func GetOption[T any](opts map[string]any, key string, defaultVal T) T {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	if typed, ok := v.(T); ok {
		return typed
	}
	return defaultVal
}

// GetBoolOption extracts a bool option.
func GetBoolOption(opts map[string]any, key string, defaultVal bool) bool {
	return GetOption(opts, key, defaultVal)
}

// GetStringSliceOption extracts a string slice option, accepting the []any
// produced by YAML and JSON decoders.
func GetStringSliceOption(opts map[string]any, key string, defaultVal []string) []string {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	switch s := v.(type) {
	case []string:
		return s
	case []any:
		result := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	default:
		return defaultVal
	}
}
