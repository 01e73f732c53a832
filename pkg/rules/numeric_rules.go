package rules

import (
	"fmt"

	"github.com/fieldchain/fieldchain/pkg/chain"
)

// IsInt validates that a value is an integer: a Go integer type, an
// integral float (JSON numbers decode as float64), or a string of digits.
func IsInt() chain.Rule {
	return chain.Rule{
		Kind: chain.KindValidator,
		Name: "isInt",
		Check: func(v any, _ *chain.Context) bool {
			return isIntegral(v)
		},
		Message:           "must be an integer",
		TranslationKey:    "validation.int",
		TranslationValues: map[string]any{},
	}
}

// IsNumeric validates that a value is any number.
func IsNumeric() chain.Rule {
	return chain.Rule{
		Kind: chain.KindValidator,
		Name: "isNumeric",
		Check: func(v any, _ *chain.Context) bool {
			_, ok := asFloat(v)
			return ok
		},
		Message:           "must be a number",
		TranslationKey:    "validation.numeric",
		TranslationValues: map[string]any{},
	}
}

// IsBool validates that a value is a boolean.
func IsBool() chain.Rule {
	return chain.Rule{
		Kind: chain.KindValidator,
		Name: "isBool",
		Check: func(v any, _ *chain.Context) bool {
			_, ok := v.(bool)
			return ok
		},
		Message:           "must be a boolean",
		TranslationKey:    "validation.bool",
		TranslationValues: map[string]any{},
	}
}

// Min validates that a numeric value is at least min.
func Min(min float64) chain.Rule {
	return chain.Rule{
		Kind: chain.KindValidator,
		Name: "min",
		Check: func(v any, _ *chain.Context) bool {
			n, ok := asFloat(v)
			return ok && n >= min
		},
		Message:           fmt.Sprintf("must be at least %v", min),
		TranslationKey:    "validation.min",
		TranslationValues: map[string]any{"min": min},
	}
}

// Max validates that a numeric value is at most max.
func Max(max float64) chain.Rule {
	return chain.Rule{
		Kind: chain.KindValidator,
		Name: "max",
		Check: func(v any, _ *chain.Context) bool {
			n, ok := asFloat(v)
			return ok && n <= max
		},
		Message:           fmt.Sprintf("must be at most %v", max),
		TranslationKey:    "validation.max",
		TranslationValues: map[string]any{"max": max},
	}
}

// Between validates that a numeric value lies in [min, max].
func Between(min, max float64) chain.Rule {
	return chain.Rule{
		Kind: chain.KindValidator,
		Name: "between",
		Check: func(v any, _ *chain.Context) bool {
			n, ok := asFloat(v)
			return ok && n >= min && n <= max
		},
		Message:           fmt.Sprintf("must be between %v and %v", min, max),
		TranslationKey:    "validation.between",
		TranslationValues: map[string]any{"min": min, "max": max},
	}
}
