package http

import (
	"github.com/gin-gonic/gin"

	"autoexport-srv/internal/middleware"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	admin := r.Group("/admin", mw.RequireSession())
	{
		admin.POST("/uploads/presign", h.Presign)
		admin.DELETE("/uploads/*key", h.Delete)
	}
}
