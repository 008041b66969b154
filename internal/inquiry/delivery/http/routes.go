package http

import (
	"github.com/gin-gonic/gin"

	"autoexport-srv/internal/middleware"
)

// RegisterRoutes registers the public inquiry submission route and the
// admin inquiry management routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.POST("/inquiries", h.Submit)

	admin := r.Group("/admin", mw.RequireSession())
	{
		admin.GET("/inquiries", h.Get)
		admin.GET("/inquiries/:id", h.Detail)
		admin.PATCH("/inquiries/:id/status", h.UpdateStatus)
		admin.DELETE("/inquiries/:id", h.Delete)
	}
}
