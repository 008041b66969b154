package model

import (
	"context"

	"autoexport-srv/pkg/session"
)

// Scope carries the caller's admin privileges through use cases and
// repositories. Anonymous public requests carry a zero Scope.
type Scope struct {
	Role session.Role `json:"role"`
}

// IsAdmin checks if the scope has admin role.
func (s Scope) IsAdmin() bool {
	return s.Role == session.RoleAdmin
}

// CanEdit checks if the scope can perform content mutations.
func (s Scope) CanEdit() bool {
	return session.HasRequiredRole(s.Role, session.RoleEditor)
}

// CanView checks if the scope can read admin data.
func (s Scope) CanView() bool {
	return session.HasRequiredRole(s.Role, session.RoleViewer)
}

type scopeKey struct{}

// SetScopeToContext stores the scope in the context for use in handlers.
func SetScopeToContext(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// GetScopeFromContext retrieves the scope from context.
// Returns a zero Scope when no scope was attached.
func GetScopeFromContext(ctx context.Context) Scope {
	s, ok := ctx.Value(scopeKey{}).(Scope)
	if !ok {
		return Scope{}
	}
	return s
}
