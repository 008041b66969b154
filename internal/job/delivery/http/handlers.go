package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autoexport-srv/internal/job"
	"autoexport-srv/internal/model"
	"autoexport-srv/pkg/errors"
	"autoexport-srv/pkg/response"
)

// Get lists job openings. Anonymous callers only see active openings.
// @Summary List jobs
// @Tags Job
// @Param status query string false "Status"
// @Param location query string false "Location"
// @Param search query string false "Title search"
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Resp
// @Router /jobs [GET]
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	var req getJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.job.delivery.http.Get.ShouldBindQuery: %v", err)
		response.HttpError(c, errors.NewHTTPError(http.StatusBadRequest, "Invalid query parameters"))
		return
	}

	out, err := h.uc.Get(ctx, model.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, getJobsResponse{
		Items: out.Jobs,
		Meta:  out.Paginator.ToResponse(),
	})
}

// Detail returns one job opening.
// @Summary Job detail
// @Tags Job
// @Param id path string true "Job ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /jobs/{id} [GET]
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	j, err := h.uc.Detail(ctx, model.GetScopeFromContext(ctx), c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, j)
}

// Create adds a job opening.
// @Summary Create job
// @Tags Job
// @Param body body createJobRequest true "Job"
// @Success 200 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Router /admin/jobs [POST]
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.job.delivery.http.Create.ShouldBindJSON: %v", err)
		response.HttpError(c, errors.NewHTTPError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	j, err := h.uc.Create(ctx, model.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, j)
}

// Update modifies a job opening. Omitted fields are left unchanged.
// @Summary Update job
// @Tags Job
// @Param id path string true "Job ID"
// @Param body body updateJobRequest true "Changes"
// @Success 200 {object} response.Resp
// @Router /admin/jobs/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.job.delivery.http.Update.ShouldBindJSON: %v", err)
		response.HttpError(c, errors.NewHTTPError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	j, err := h.uc.Update(ctx, model.GetScopeFromContext(ctx), req.toInput(c.Param("id")))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, j)
}

// Delete removes a job opening and its applications.
// @Summary Delete job
// @Tags Job
// @Param id path string true "Job ID"
// @Success 200 {object} response.Resp
// @Router /admin/jobs/{id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, model.GetScopeFromContext(ctx), c.Param("id")); err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, nil)
}

// Apply files an application for an active job opening.
// @Summary Apply to job
// @Tags Job
// @Param id path string true "Job ID"
// @Param body body applyRequest true "Application"
// @Success 200 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /jobs/{id}/apply [POST]
func (h *Handler) Apply(c *gin.Context) {
	ctx := c.Request.Context()

	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.job.delivery.http.Apply.ShouldBindJSON: %v", err)
		response.HttpError(c, errors.NewHTTPError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	app, err := h.uc.Apply(ctx, model.GetScopeFromContext(ctx), req.toInput(c.Param("id")))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, app)
}

// GetApplications lists job applications.
// @Summary List applications
// @Tags Job
// @Param job_id query string false "Job ID"
// @Param status query string false "Status"
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Resp
// @Router /admin/applications [GET]
func (h *Handler) GetApplications(c *gin.Context) {
	ctx := c.Request.Context()

	var req getApplicationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.job.delivery.http.GetApplications.ShouldBindQuery: %v", err)
		response.HttpError(c, errors.NewHTTPError(http.StatusBadRequest, "Invalid query parameters"))
		return
	}

	out, err := h.uc.GetApplications(ctx, model.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, getApplicationsResponse{
		Items: out.Applications,
		Meta:  out.Paginator.ToResponse(),
	})
}

// UpdateApplicationStatus moves an application through the review pipeline.
// @Summary Update application status
// @Tags Job
// @Param id path string true "Application ID"
// @Param body body updateApplicationStatusRequest true "Status"
// @Success 200 {object} response.Resp
// @Router /admin/applications/{id}/status [PATCH]
func (h *Handler) UpdateApplicationStatus(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.job.delivery.http.UpdateApplicationStatus.ShouldBindJSON: %v", err)
		response.HttpError(c, errors.NewHTTPError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	app, err := h.uc.UpdateApplicationStatus(ctx, model.GetScopeFromContext(ctx), job.UpdateApplicationStatusInput{
		ID:     c.Param("id"),
		Status: req.Status,
	})
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, app)
}

// DeleteApplication removes an application.
// @Summary Delete application
// @Tags Job
// @Param id path string true "Application ID"
// @Success 200 {object} response.Resp
// @Router /admin/applications/{id} [DELETE]
func (h *Handler) DeleteApplication(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteApplication(ctx, model.GetScopeFromContext(ctx), c.Param("id")); err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, nil)
}
