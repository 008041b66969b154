package session

// Role is an admin console privilege level. The zero value means "no role"
// (anonymous visitor or failed decode).
type Role string

// Admin roles, ordered from least to most privileged.
const (
	RoleNone   Role = ""
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

var roleRank = map[Role]int{
	RoleViewer: 1,
	RoleEditor: 2,
	RoleAdmin:  3,
}

// ParseRole converts a string to a Role. Unknown values map to RoleNone.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleViewer, RoleEditor, RoleAdmin:
		return Role(s)
	default:
		return RoleNone
	}
}

// Valid reports whether the role is one of the three enum values.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// Rank returns the privilege rank of the role (0 for RoleNone).
func (r Role) Rank() int {
	return roleRank[r]
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}
