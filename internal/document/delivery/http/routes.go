package http

import (
	"github.com/gin-gonic/gin"

	"autoexport-srv/internal/middleware"
)

// RegisterRoutes registers the public document routes and the admin
// document management routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	documents := r.Group("/documents")
	{
		documents.GET("", h.Get)
		documents.GET("/:id", h.Detail)
	}

	admin := r.Group("/admin", mw.RequireSession())
	{
		admin.POST("/documents", h.Create)
		admin.PUT("/documents/:id", h.Update)
		admin.DELETE("/documents/:id", h.Delete)
	}
}
