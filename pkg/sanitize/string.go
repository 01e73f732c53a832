package sanitize

import (
	"html"
	"strings"

	"github.com/fieldchain/fieldchain/pkg/chain"
)

// onString lifts a string transform into a document-value transform that
// leaves non-string values untouched.
func onString(fn func(string) string) chain.TransformFunc {
	return func(v any) any {
		if s, ok := v.(string); ok {
			return fn(s)
		}
		return v
	}
}

// Trim removes leading and trailing whitespace from string values.
func Trim() chain.Rule {
	return chain.Sanitizer("trim", onString(strings.TrimSpace))
}

// ToLower lowercases string values.
func ToLower() chain.Rule {
	return chain.Sanitizer("toLower", onString(strings.ToLower))
}

// ToUpper uppercases string values.
func ToUpper() chain.Rule {
	return chain.Sanitizer("toUpper", onString(strings.ToUpper))
}

// Escape replaces the HTML special characters <, >, &, ' and " in string
// values with their entities.
func Escape() chain.Rule {
	return chain.Sanitizer("escape", onString(html.EscapeString))
}

// CollapseWhitespace replaces runs of whitespace in string values with a
// single space and trims the ends.
func CollapseWhitespace() chain.Rule {
	return chain.Sanitizer("collapseWhitespace", onString(func(s string) string {
		return strings.Join(strings.Fields(s), " ")
	}))
}

// NormalizeEmail trims and lowercases string values, the common email
// canonicalization. Provider-specific rewrites (dots, plus-addressing) are
// deliberately not applied.
func NormalizeEmail() chain.Rule {
	return chain.Sanitizer("normalizeEmail", onString(func(s string) string {
		return strings.ToLower(strings.TrimSpace(s))
	}))
}
