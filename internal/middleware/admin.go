package middleware

import (
	"github.com/gin-gonic/gin"

	"autoexport-srv/internal/model"
	"autoexport-srv/pkg/response"
	"autoexport-srv/pkg/session"
)

// AdminSession returns a middleware that resolves the admin session from
// request cookies and attaches the resulting scope to the context. An
// absent or invalid session attaches an anonymous scope; route handlers
// and use cases decide what that scope may do.
func (m Middleware) AdminSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := session.ExtractRole(m.codec, func(name string) (string, bool) {
			value, err := c.Cookie(name)
			if err != nil {
				return "", false
			}
			return value, true
		})

		ctx := c.Request.Context()
		ctx = model.SetScopeToContext(ctx, model.Scope{Role: role})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireSession returns a middleware that rejects requests without any
// valid admin session. Role sufficiency is still checked downstream.
func (m Middleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		scope := model.GetScopeFromContext(c.Request.Context())
		if !scope.Role.Valid() {
			m.l.Warnf(c.Request.Context(), "Missing or invalid admin session | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
