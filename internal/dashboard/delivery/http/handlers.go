package http

import (
	"github.com/gin-gonic/gin"

	"autoexport-srv/internal/model"
	"autoexport-srv/pkg/errors"
	"autoexport-srv/pkg/response"
	"autoexport-srv/pkg/session"
)

var errorMapping = response.ErrorMapping{
	session.ErrForbidden: errors.NewForbiddenHTTPError(),
}

// Stats returns the back-office dashboard counters.
// @Summary Dashboard stats
// @Tags Dashboard
// @Success 200 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /admin/dashboard [GET]
func (h *Handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Stats(ctx, model.GetScopeFromContext(ctx))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, out)
}
