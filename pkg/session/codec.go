package session

import "strings"

// legacyCodec implements the historical token format "<role>|<secret>".
// It has no expiry claim and no cryptographic signature; its sole
// integrity property is string equality of the secret half against the
// process-wide shared secret.
type legacyCodec struct {
	creds  Credentials
	secret string
}

// NewLegacyCodec returns the codec that is byte-compatible with tokens
// issued before the codec became pluggable.
func NewLegacyCodec(creds Credentials, sharedSecret string) Codec {
	return &legacyCodec{creds: creds, secret: sharedSecret}
}

func (c *legacyCodec) Encode(role Role) (string, error) {
	return string(role) + "|" + c.secret, nil
}

// Decode accepts two independent formats:
//
//  1. the structured token "<role>|<secret>", valid iff the role is a
//     known enum value and the secret equals the shared secret;
//  2. a bare role password, run through the credential resolver.
//
// Format 2 keeps cookies from the pre-token scheme working. Everything
// else decodes to RoleNone.
func (c *legacyCodec) Decode(token string) Role {
	if token == "" {
		return RoleNone
	}

	if candidateRole, candidateSecret, ok := strings.Cut(token, "|"); ok {
		if role := ParseRole(candidateRole); role.Valid() && candidateSecret == c.secret {
			return role
		}
	}

	return c.creds.Resolve(token)
}
