package session

import "time"

const (
	// CookieName is the current session cookie name.
	CookieName = "admin_session_v2"
	// LegacyCookieName is the previous session cookie name, still accepted
	// on reads and cleared on login/logout.
	LegacyCookieName = "admin_session"

	// TokenMaxAge is the absolute session lifetime from issuance.
	TokenMaxAge = 7 * 24 * time.Hour

	// DefaultSharedSecret is the last-resort shared secret when neither a
	// dedicated secret nor any role password is configured.
	DefaultSharedSecret = "admin-secret"
)

// Codec selector names (config surface).
const (
	CodecLegacy = "legacy"
	CodecHMAC   = "hmac"
)
