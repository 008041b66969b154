package http

import (
	"github.com/gin-gonic/gin"

	"autoexport-srv/internal/middleware"
)

// RegisterRoutes registers the public catalog routes and the admin
// vehicle management routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	vehicles := r.Group("/vehicles")
	{
		vehicles.GET("", h.Get)
		vehicles.GET("/:id", h.Detail)
	}

	admin := r.Group("/admin", mw.RequireSession())
	{
		admin.POST("/vehicles", h.Create)
		admin.PUT("/vehicles/:id", h.Update)
		admin.DELETE("/vehicles/:id", h.Delete)

		admin.POST("/vehicles/:id/images", h.AddImage)
		admin.DELETE("/vehicle-images/:id", h.DeleteImage)

		admin.POST("/vehicles/:id/certificates", h.AddCertificate)
		admin.DELETE("/certificates/:id", h.DeleteCertificate)
	}
}
