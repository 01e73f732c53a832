package rules

import (
	"net/mail"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/fieldchain/fieldchain/pkg/chain"
)

// IsEmail validates email addresses for typical web use: parseable by the
// address parser, exactly one @, and a domain containing a dot.
func IsEmail() chain.Rule {
	return chain.Rule{
		Kind: chain.KindValidator,
		Name: "isEmail",
		Check: func(v any, _ *chain.Context) bool {
			s, ok := asString(v)
			if !ok || strings.TrimSpace(s) == "" {
				return false
			}

			addr, err := mail.ParseAddress(s)
			if err != nil || addr.Address != s {
				return false
			}

			parts := strings.Split(addr.Address, "@")
			if len(parts) != 2 || parts[0] == "" {
				return false
			}
			return strings.Contains(parts[1], ".")
		},
		Message:           "must be a valid email address",
		TranslationKey:    "validation.email",
		TranslationValues: map[string]any{},
	}
}

// IsURL validates absolute URLs with a scheme and host.
func IsURL() chain.Rule {
	return chain.Rule{
		Kind: chain.KindValidator,
		Name: "isURL",
		Check: func(v any, _ *chain.Context) bool {
			s, ok := asString(v)
			if !ok || strings.TrimSpace(s) == "" {
				return false
			}
			u, err := url.ParseRequestURI(s)
			if err != nil {
				return false
			}
			return u.Scheme != "" && u.Host != ""
		},
		Message:           "must be a valid URL",
		TranslationKey:    "validation.url",
		TranslationValues: map[string]any{},
	}
}

// IsUUID validates standard UUID format. Length and hyphen positions are
// checked before handing off to the parser, which accepts more formats than
// the canonical 36-character one.
func IsUUID() chain.Rule {
	return chain.Rule{
		Kind: chain.KindValidator,
		Name: "isUUID",
		Check: func(v any, _ *chain.Context) bool {
			s, ok := asString(v)
			if !ok || len(s) != 36 {
				return false
			}
			if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
				return false
			}
			_, err := uuid.Parse(s)
			return err == nil
		},
		Message:           "must be a valid UUID",
		TranslationKey:    "validation.uuid",
		TranslationValues: map[string]any{},
	}
}
