package session

import "errors"

var (
	// ErrForbidden is returned by gated operations when the caller's role
	// is below the required minimum. Callers can observe denials instead
	// of a silent no-op.
	ErrForbidden = errors.New("forbidden: insufficient role")

	// ErrNoCredentials is returned at login when no role password is
	// configured at all, disabling authentication entirely.
	ErrNoCredentials = errors.New("no role credentials configured")

	// ErrInvalidPassword is returned at login when the submitted password
	// does not resolve to any role.
	ErrInvalidPassword = errors.New("password does not match any role")
)
