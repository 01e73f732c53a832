package rules

import (
	"fmt"
	"regexp"

	"github.com/fieldchain/fieldchain/pkg/chain"
)

// Matches validates against a custom pattern. The pattern compiles at
// construction time and panics if invalid; the schema compiler validates
// patterns before reaching here. The description names the pattern in the
// failure message.
func Matches(pattern, description string) chain.Rule {
	regex := regexp.MustCompile(pattern)
	return chain.Rule{
		Kind: chain.KindValidator,
		Name: "matches",
		Check: func(v any, _ *chain.Context) bool {
			s, ok := asString(v)
			return ok && regex.MatchString(s)
		},
		Message:           fmt.Sprintf("must match %s pattern", description),
		TranslationKey:    "validation.regex_pattern",
		TranslationValues: map[string]any{"pattern": pattern, "description": description},
	}
}

// NotMatches validates that a string does not match a pattern. Negating
// Matches with the chain's Not modifier is equivalent.
func NotMatches(pattern, description string) chain.Rule {
	regex := regexp.MustCompile(pattern)
	return chain.Rule{
		Kind: chain.KindValidator,
		Name: "notMatches",
		Check: func(v any, _ *chain.Context) bool {
			s, ok := asString(v)
			return ok && !regex.MatchString(s)
		},
		Message:           fmt.Sprintf("must not match %s pattern", description),
		TranslationKey:    "validation.regex_not_pattern",
		TranslationValues: map[string]any{"pattern": pattern, "description": description},
	}
}
