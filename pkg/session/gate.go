package session

// HasRequiredRole is the authorization gate: true iff the caller holds a
// role at or above the minimum. RoleNone never passes. The check is pure;
// calling it any number of times with the same inputs yields the same
// answer.
func HasRequiredRole(role, minRole Role) bool {
	if !role.Valid() {
		return false
	}
	return role.Rank() >= minRole.Rank()
}

// Require returns nil when the gate admits the role and ErrForbidden
// otherwise. Gated mutations call this at the top and propagate the
// typed error so denials are observable by callers and tests.
func Require(role, minRole Role) error {
	if !HasRequiredRole(role, minRole) {
		return ErrForbidden
	}
	return nil
}
