package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autoexport-srv/internal/model"
	"autoexport-srv/pkg/errors"
	"autoexport-srv/pkg/response"
)

// Get lists downloadable documents.
// @Summary List documents
// @Tags Document
// @Param category query string false "Category"
// @Param search query string false "Title search"
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Resp
// @Router /documents [GET]
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	var req getDocumentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.document.delivery.http.Get.ShouldBindQuery: %v", err)
		response.HttpError(c, errors.NewHTTPError(http.StatusBadRequest, "Invalid query parameters"))
		return
	}

	out, err := h.uc.Get(ctx, model.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, getDocumentsResponse{
		Items: out.Documents,
		Meta:  out.Paginator.ToResponse(),
	})
}

// Detail returns one document.
// @Summary Document detail
// @Tags Document
// @Param id path string true "Document ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /documents/{id} [GET]
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	doc, err := h.uc.Detail(ctx, model.GetScopeFromContext(ctx), c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, doc)
}

// Create adds a document.
// @Summary Create document
// @Tags Document
// @Param body body createDocumentRequest true "Document"
// @Success 200 {object} response.Resp
// @Router /admin/documents [POST]
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.document.delivery.http.Create.ShouldBindJSON: %v", err)
		response.HttpError(c, errors.NewHTTPError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	doc, err := h.uc.Create(ctx, model.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, doc)
}

// Update modifies a document. Omitted fields are left unchanged.
// @Summary Update document
// @Tags Document
// @Param id path string true "Document ID"
// @Param body body updateDocumentRequest true "Changes"
// @Success 200 {object} response.Resp
// @Router /admin/documents/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.document.delivery.http.Update.ShouldBindJSON: %v", err)
		response.HttpError(c, errors.NewHTTPError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	doc, err := h.uc.Update(ctx, model.GetScopeFromContext(ctx), req.toInput(c.Param("id")))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, doc)
}

// Delete removes a document.
// @Summary Delete document
// @Tags Document
// @Param id path string true "Document ID"
// @Success 200 {object} response.Resp
// @Router /admin/documents/{id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, model.GetScopeFromContext(ctx), c.Param("id")); err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, nil)
}
