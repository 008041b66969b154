package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"autoexport-srv/internal/model"
	"autoexport-srv/pkg/errors"
	"autoexport-srv/pkg/response"
)

// Presign issues a direct upload URL for a media object.
// @Summary Presign upload
// @Tags Upload
// @Param body body presignRequest true "Upload descriptor"
// @Success 200 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Router /admin/uploads/presign [POST]
func (h *Handler) Presign(c *gin.Context) {
	ctx := c.Request.Context()

	var req presignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.upload.delivery.http.Presign.ShouldBindJSON: %v", err)
		response.HttpError(c, errors.NewHTTPError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	out, err := h.uc.Presign(ctx, model.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, out)
}

// Delete removes a stored media object.
// @Summary Delete media object
// @Tags Upload
// @Param key path string true "Object key"
// @Success 200 {object} response.Resp
// @Router /admin/uploads/{key} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	key := strings.TrimPrefix(c.Param("key"), "/")
	if err := h.uc.Delete(ctx, model.GetScopeFromContext(ctx), key); err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, nil)
}
