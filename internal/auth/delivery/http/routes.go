package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the admin login and logout routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	{
		admin.POST("/login", h.Login)
		admin.POST("/logout", h.Logout)
	}
}
