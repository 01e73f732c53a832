package sanitize

import (
	"strconv"
	"strings"

	"github.com/fieldchain/fieldchain/pkg/chain"
)

// ToInt converts numeric strings and floats to int64. Values that cannot be
// converted pass through unchanged so a later validator can reject them.
func ToInt() chain.Rule {
	return chain.Sanitizer("toInt", func(v any) any {
		switch n := v.(type) {
		case string:
			if i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
				return i
			}
		case float64:
			if n == float64(int64(n)) {
				return int64(n)
			}
		case int:
			return int64(n)
		}
		return v
	})
}

// ToFloat converts numeric strings and integers to float64. Values that
// cannot be converted pass through unchanged.
func ToFloat() chain.Rule {
	return chain.Sanitizer("toFloat", func(v any) any {
		switch n := v.(type) {
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
				return f
			}
		case int:
			return float64(n)
		case int64:
			return float64(n)
		}
		return v
	})
}

// ToBool converts the strings "true"/"false"/"1"/"0" (case-insensitive) to
// booleans. Anything else passes through unchanged.
func ToBool() chain.Rule {
	return chain.Sanitizer("toBool", func(v any) any {
		s, ok := v.(string)
		if !ok {
			return v
		}
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "1":
			return true
		case "false", "0":
			return false
		default:
			return v
		}
	})
}

// Default replaces absent, null, and empty-string values with a fallback.
func Default(fallback any) chain.Rule {
	return chain.Sanitizer("default", func(v any) any {
		if v == nil || v == "" {
			return fallback
		}
		return v
	})
}
