package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autoexport-srv/pkg/errors"
	"autoexport-srv/pkg/response"
)

// healthCheck reports overall service health, including its backing stores.
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(http.StatusServiceUnavailable, "Database connection failed"))
		return
	}

	storageStatus := "connected"
	if srv.storage != nil {
		if err := srv.storage.HealthCheck(ctx); err != nil {
			storageStatus = "degraded"
		}
	} else {
		storageStatus = "disabled"
	}

	response.OK(c, gin.H{
		"status":   "healthy",
		"service":  "autoexport-srv",
		"database": "connected",
		"storage":  storageStatus,
	})
}

// readyCheck reports whether the service can take traffic.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Failure 503 {object} map[string]interface{} "Service is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(http.StatusServiceUnavailable, "Database connection not available"))
		return
	}

	response.OK(c, gin.H{
		"status":   "ready",
		"service":  "autoexport-srv",
		"database": "connected",
	})
}

// liveCheck reports process liveness.
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": "autoexport-srv",
	})
}
