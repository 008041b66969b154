package session

// Codec converts a Role to a storable token string and back.
//
// Decode never returns an error: any absent, malformed, or unverifiable
// input yields RoleNone, which callers treat the same as an anonymous
// visitor. Implementations must be safe for concurrent use.
//
//go:generate mockery --name Codec
type Codec interface {
	Encode(role Role) (string, error)
	Decode(token string) Role
}

// New builds the codec selected by name. Unknown names fall back to the
// legacy codec so a typo in config cannot silently lock everyone out of
// existing sessions.
func New(name string, creds Credentials, sharedSecret string) Codec {
	switch name {
	case CodecHMAC:
		return NewHMACCodec(sharedSecret, TokenMaxAge)
	default:
		return NewLegacyCodec(creds, sharedSecret)
	}
}
