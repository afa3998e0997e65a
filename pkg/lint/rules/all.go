package rules

// Import all rule subpackages to register them with the global registry.
// This file triggers all init() functions in the rule packages.
import (
	_ "github.com/leapstack-labs/pandalint/pkg/lint/rules/config"
	_ "github.com/leapstack-labs/pandalint/pkg/lint/rules/properties"
	_ "github.com/leapstack-labs/pandalint/pkg/lint/rules/styling"
	_ "github.com/leapstack-labs/pandalint/pkg/lint/rules/tokens"
)
