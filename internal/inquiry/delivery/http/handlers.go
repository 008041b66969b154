package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autoexport-srv/internal/inquiry"
	"autoexport-srv/internal/model"
	"autoexport-srv/pkg/errors"
	"autoexport-srv/pkg/response"
)

// Submit records a purchase inquiry from the public site.
// @Summary Submit inquiry
// @Tags Inquiry
// @Param body body submitInquiryRequest true "Inquiry"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /inquiries [POST]
func (h *Handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	var req submitInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.inquiry.delivery.http.Submit.ShouldBindJSON: %v", err)
		response.HttpError(c, errors.NewHTTPError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	inq, err := h.uc.Submit(ctx, model.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, inq)
}

// Get lists inquiries.
// @Summary List inquiries
// @Tags Inquiry
// @Param vehicle_id query string false "Vehicle ID"
// @Param status query string false "Status"
// @Param country query string false "Country"
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Resp
// @Router /admin/inquiries [GET]
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	var req getInquiriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.inquiry.delivery.http.Get.ShouldBindQuery: %v", err)
		response.HttpError(c, errors.NewHTTPError(http.StatusBadRequest, "Invalid query parameters"))
		return
	}

	out, err := h.uc.Get(ctx, model.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, getInquiriesResponse{
		Items: out.Inquiries,
		Meta:  out.Paginator.ToResponse(),
	})
}

// Detail returns one inquiry.
// @Summary Inquiry detail
// @Tags Inquiry
// @Param id path string true "Inquiry ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /admin/inquiries/{id} [GET]
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	inq, err := h.uc.Detail(ctx, model.GetScopeFromContext(ctx), c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, inq)
}

// UpdateStatus moves an inquiry through the follow-up pipeline.
// @Summary Update inquiry status
// @Tags Inquiry
// @Param id path string true "Inquiry ID"
// @Param body body updateInquiryStatusRequest true "Status"
// @Success 200 {object} response.Resp
// @Router /admin/inquiries/{id}/status [PATCH]
func (h *Handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateInquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.inquiry.delivery.http.UpdateStatus.ShouldBindJSON: %v", err)
		response.HttpError(c, errors.NewHTTPError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	inq, err := h.uc.UpdateStatus(ctx, model.GetScopeFromContext(ctx), inquiry.UpdateStatusInput{
		ID:     c.Param("id"),
		Status: req.Status,
	})
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, inq)
}

// Delete removes an inquiry.
// @Summary Delete inquiry
// @Tags Inquiry
// @Param id path string true "Inquiry ID"
// @Success 200 {object} response.Resp
// @Router /admin/inquiries/{id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, model.GetScopeFromContext(ctx), c.Param("id")); err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, nil)
}
