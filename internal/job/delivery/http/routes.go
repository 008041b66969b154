package http

import (
	"github.com/gin-gonic/gin"

	"autoexport-srv/internal/middleware"
)

// RegisterRoutes registers the public careers routes and the admin
// job and application management routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	jobs := r.Group("/jobs")
	{
		jobs.GET("", h.Get)
		jobs.GET("/:id", h.Detail)
		jobs.POST("/:id/apply", h.Apply)
	}

	admin := r.Group("/admin", mw.RequireSession())
	{
		admin.POST("/jobs", h.Create)
		admin.PUT("/jobs/:id", h.Update)
		admin.DELETE("/jobs/:id", h.Delete)

		admin.GET("/applications", h.GetApplications)
		admin.PATCH("/applications/:id/status", h.UpdateApplicationStatus)
		admin.DELETE("/applications/:id", h.DeleteApplication)
	}
}
