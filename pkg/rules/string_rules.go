package rules

import (
	"fmt"
	"strings"

	"github.com/fieldchain/fieldchain/pkg/chain"
)

// Required validates that a value is present: not absent, not null, and for
// strings not blank after trimming whitespace.
func Required() chain.Rule {
	return chain.Rule{
		Kind: chain.KindValidator,
		Name: "required",
		Check: func(v any, _ *chain.Context) bool {
			if v == nil {
				return false
			}
			if s, ok := asString(v); ok {
				return strings.TrimSpace(s) != ""
			}
			return true
		},
		Message:           "field is required",
		TranslationKey:    "validation.required",
		TranslationValues: map[string]any{},
	}
}

// NotEmpty validates that a string value is not empty. Non-string values
// fail the check.
func NotEmpty() chain.Rule {
	return chain.Rule{
		Kind: chain.KindValidator,
		Name: "notEmpty",
		Check: func(v any, _ *chain.Context) bool {
			s, ok := asString(v)
			return ok && s != ""
		},
		Message:           "must not be empty",
		TranslationKey:    "validation.not_empty",
		TranslationValues: map[string]any{},
	}
}

// MinLen validates that a string is at least min bytes long.
func MinLen(min int) chain.Rule {
	return chain.Rule{
		Kind: chain.KindValidator,
		Name: "minLen",
		Check: func(v any, _ *chain.Context) bool {
			s, ok := asString(v)
			return ok && len(s) >= min
		},
		Message:           fmt.Sprintf("must be at least %d characters long", min),
		TranslationKey:    "validation.min_length",
		TranslationValues: map[string]any{"min": min},
	}
}

// MaxLen validates that a string is at most max bytes long.
func MaxLen(max int) chain.Rule {
	return chain.Rule{
		Kind: chain.KindValidator,
		Name: "maxLen",
		Check: func(v any, _ *chain.Context) bool {
			s, ok := asString(v)
			return ok && len(s) <= max
		},
		Message:           fmt.Sprintf("must be at most %d characters long", max),
		TranslationKey:    "validation.max_length",
		TranslationValues: map[string]any{"max": max},
	}
}

// IsLength validates that a string's length lies in [min, max]. A max of
// zero means unbounded above.
func IsLength(min, max int) chain.Rule {
	message := fmt.Sprintf("must be between %d and %d characters long", min, max)
	if max == 0 {
		message = fmt.Sprintf("must be at least %d characters long", min)
	}
	return chain.Rule{
		Kind: chain.KindValidator,
		Name: "isLength",
		Check: func(v any, _ *chain.Context) bool {
			s, ok := asString(v)
			if !ok {
				return false
			}
			if len(s) < min {
				return false
			}
			return max == 0 || len(s) <= max
		},
		Message:           message,
		TranslationKey:    "validation.length_between",
		TranslationValues: map[string]any{"min": min, "max": max},
	}
}

// Contains validates that a string contains the given substring.
func Contains(substr string) chain.Rule {
	return chain.Rule{
		Kind: chain.KindValidator,
		Name: "contains",
		Check: func(v any, _ *chain.Context) bool {
			s, ok := asString(v)
			return ok && strings.Contains(s, substr)
		},
		Message:           fmt.Sprintf("must contain %q", substr),
		TranslationKey:    "validation.contains",
		TranslationValues: map[string]any{"substring": substr},
	}
}
