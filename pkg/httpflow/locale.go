package httpflow

import (
	"net/http"

	"golang.org/x/text/language"
)

// localeSources lists where the request locale is read from, first match
// wins: explicit query override, cookie, then Accept-Language negotiation.
const (
	localeQueryKey  = "locale"
	localeCookieKey = "locale"
)

// NegotiateLocale resolves the request's locale against the supported tags.
// The first supported tag is the fallback; with no supported tags the
// result is language.Und and messages stay in their default form.
func NegotiateLocale(r *http.Request, supported []language.Tag) language.Tag {
	if len(supported) == 0 {
		return language.Und
	}
	matcher := language.NewMatcher(supported)

	if raw := r.URL.Query().Get(localeQueryKey); raw != "" {
		if tag, err := language.Parse(raw); err == nil {
			_, i, _ := matcher.Match(tag)
			return supported[i]
		}
	}

	if cookie, err := r.Cookie(localeCookieKey); err == nil && cookie.Value != "" {
		if tag, err := language.Parse(cookie.Value); err == nil {
			_, i, _ := matcher.Match(tag)
			return supported[i]
		}
	}

	if accept := r.Header.Get("Accept-Language"); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, i, _ := matcher.Match(tags...)
			return supported[i]
		}
	}

	return supported[0]
}
