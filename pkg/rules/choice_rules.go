package rules

import (
	"fmt"

	"github.com/fieldchain/fieldchain/pkg/chain"
)

// In validates that a value equals one of the allowed choices.
func In(choices ...any) chain.Rule {
	return chain.Rule{
		Kind: chain.KindValidator,
		Name: "in",
		Check: func(v any, _ *chain.Context) bool {
			for _, choice := range choices {
				if v == choice {
					return true
				}
			}
			return false
		},
		Message:           fmt.Sprintf("must be one of %v", choices),
		TranslationKey:    "validation.one_of",
		TranslationValues: map[string]any{"choices": choices},
	}
}

// NotIn validates that a value equals none of the forbidden choices.
func NotIn(choices ...any) chain.Rule {
	return chain.Rule{
		Kind: chain.KindValidator,
		Name: "notIn",
		Check: func(v any, _ *chain.Context) bool {
			for _, choice := range choices {
				if v == choice {
					return false
				}
			}
			return true
		},
		Message:           fmt.Sprintf("must not be one of %v", choices),
		TranslationKey:    "validation.not_one_of",
		TranslationValues: map[string]any{"choices": choices},
	}
}

// IsArray validates that a value is an array.
func IsArray() chain.Rule {
	return chain.Rule{
		Kind: chain.KindValidator,
		Name: "isArray",
		Check: func(v any, _ *chain.Context) bool {
			_, ok := v.([]any)
			return ok
		},
		Message:           "must be an array",
		TranslationKey:    "validation.array",
		TranslationValues: map[string]any{},
	}
}

// ArrayLength validates that an array's element count lies in [min, max].
// A max of zero means unbounded above.
func ArrayLength(min, max int) chain.Rule {
	return chain.Rule{
		Kind: chain.KindValidator,
		Name: "arrayLength",
		Check: func(v any, _ *chain.Context) bool {
			arr, ok := v.([]any)
			if !ok || len(arr) < min {
				return false
			}
			return max == 0 || len(arr) <= max
		},
		Message:           fmt.Sprintf("must have between %d and %d items", min, max),
		TranslationKey:    "validation.array_length",
		TranslationValues: map[string]any{"min": min, "max": max},
	}
}
