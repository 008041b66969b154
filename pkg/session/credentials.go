package session

import "autoexport-srv/pkg/encrypter"

// Credentials is the immutable role→secret mapping, constructed once at
// startup and passed to the resolver and codec explicitly. An empty secret
// disables its role: nobody can authenticate into it.
//
// A secret may be stored as a bcrypt hash; those are matched with a hash
// comparison instead of string equality.
type Credentials struct {
	Admin  string
	Editor string
	Viewer string
}

// Empty reports whether no role has a configured secret.
func (c Credentials) Empty() bool {
	return c.Admin == "" && c.Editor == "" && c.Viewer == ""
}

// Resolve maps a submitted password to the role it authenticates as.
// Roles are checked in fixed priority order admin, editor, viewer, so a
// misconfigured duplicate secret resolves to the higher role. Returns
// RoleNone when nothing matches or the input is empty.
func (c Credentials) Resolve(password string) Role {
	if password == "" {
		return RoleNone
	}
	if matchSecret(password, c.Admin) {
		return RoleAdmin
	}
	if matchSecret(password, c.Editor) {
		return RoleEditor
	}
	if matchSecret(password, c.Viewer) {
		return RoleViewer
	}
	return RoleNone
}

func matchSecret(password, secret string) bool {
	if secret == "" {
		return false
	}
	if encrypter.IsBcryptHash(secret) {
		return encrypter.CheckPasswordHash(password, secret)
	}
	return password == secret
}

// SharedSecret derives the process-wide token verification secret.
// A dedicated secret wins; otherwise the chain falls back to the admin,
// editor, then viewer password, then a hardcoded default. The fallback
// chain ties the token secret to a login password, so config validation
// rejects it unless explicitly allowed.
func (c Credentials) SharedSecret(dedicated string) string {
	switch {
	case dedicated != "":
		return dedicated
	case c.Admin != "":
		return c.Admin
	case c.Editor != "":
		return c.Editor
	case c.Viewer != "":
		return c.Viewer
	default:
		return DefaultSharedSecret
	}
}
