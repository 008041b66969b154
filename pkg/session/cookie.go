package session

// cookieSources is the ordered list of cookie names the extractor
// consults. The current name comes first; a future migration appends a
// new name here instead of growing a branch in the extractor.
var cookieSources = []string{CookieName, LegacyCookieName}

// CookieNames returns the cookie names recognized for session tokens, in
// precedence order.
func CookieNames() []string {
	return cookieSources
}

// CookieLookup reads a cookie value by name from some request-shaped
// carrier. A gin request, an http.Request, and a plain map can all be
// adapted to it.
type CookieLookup func(name string) (string, bool)

// ExtractRole locates the session token among the recognized cookie
// names and decodes it. The first present cookie wins; its value is
// decoded even when a lower-precedence cookie would have validated.
// Absence of every cookie is the normal anonymous case, not an error.
func ExtractRole(codec Codec, lookup CookieLookup) Role {
	for _, name := range cookieSources {
		if value, ok := lookup(name); ok && value != "" {
			return codec.Decode(value)
		}
	}
	return RoleNone
}
