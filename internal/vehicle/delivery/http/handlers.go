package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autoexport-srv/internal/model"
	"autoexport-srv/pkg/errors"
	"autoexport-srv/pkg/response"
)

// Get lists vehicles.
// @Summary List vehicles
// @Description Lists vehicles with optional filters and pagination. Anonymous callers only see non-archived listings.
// @Tags Vehicle
// @Param ids query []string false "Vehicle IDs"
// @Param category query string false "Category"
// @Param status query string false "Status"
// @Param search query string false "Name search"
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Resp
// @Router /vehicles [GET]
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	var req getVehiclesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.vehicle.delivery.http.Get.ShouldBindQuery: %v", err)
		response.HttpError(c, errors.NewHTTPError(http.StatusBadRequest, "Invalid query parameters"))
		return
	}

	out, err := h.uc.Get(ctx, model.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, getVehiclesResponse{
		Items: out.Vehicles,
		Meta:  out.Paginator.ToResponse(),
	})
}

// Detail returns one vehicle with its gallery and certificates.
// @Summary Vehicle detail
// @Tags Vehicle
// @Param id path string true "Vehicle ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /vehicles/{id} [GET]
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Detail(ctx, model.GetScopeFromContext(ctx), c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, vehicleDetailResponse{
		Vehicle:      out.Vehicle,
		Images:       out.Images,
		Certificates: out.Certificates,
	})
}

// Create adds a vehicle listing.
// @Summary Create vehicle
// @Tags Vehicle
// @Param body body createVehicleRequest true "Vehicle"
// @Success 200 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Router /admin/vehicles [POST]
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.vehicle.delivery.http.Create.ShouldBindJSON: %v", err)
		response.HttpError(c, errors.NewHTTPError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	v, err := h.uc.Create(ctx, model.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, v)
}

// Update modifies a vehicle listing. Omitted fields are left unchanged.
// @Summary Update vehicle
// @Tags Vehicle
// @Param id path string true "Vehicle ID"
// @Param body body updateVehicleRequest true "Changes"
// @Success 200 {object} response.Resp
// @Router /admin/vehicles/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.vehicle.delivery.http.Update.ShouldBindJSON: %v", err)
		response.HttpError(c, errors.NewHTTPError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	v, err := h.uc.Update(ctx, model.GetScopeFromContext(ctx), req.toInput(c.Param("id")))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, v)
}

// Delete removes a vehicle listing and its attachments.
// @Summary Delete vehicle
// @Tags Vehicle
// @Param id path string true "Vehicle ID"
// @Success 200 {object} response.Resp
// @Router /admin/vehicles/{id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, model.GetScopeFromContext(ctx), c.Param("id")); err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, nil)
}

// AddImage attaches a gallery image to a vehicle.
// @Summary Add vehicle image
// @Tags Vehicle
// @Param id path string true "Vehicle ID"
// @Param body body addImageRequest true "Image"
// @Success 200 {object} response.Resp
// @Router /admin/vehicles/{id}/images [POST]
func (h *Handler) AddImage(c *gin.Context) {
	ctx := c.Request.Context()

	var req addImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.vehicle.delivery.http.AddImage.ShouldBindJSON: %v", err)
		response.HttpError(c, errors.NewHTTPError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	img, err := h.uc.AddImage(ctx, model.GetScopeFromContext(ctx), req.toInput(c.Param("id")))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, img)
}

// DeleteImage removes a gallery image.
// @Summary Delete vehicle image
// @Tags Vehicle
// @Param id path string true "Image ID"
// @Success 200 {object} response.Resp
// @Router /admin/vehicle-images/{id} [DELETE]
func (h *Handler) DeleteImage(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteImage(ctx, model.GetScopeFromContext(ctx), c.Param("id")); err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, nil)
}

// AddCertificate attaches a certificate to a vehicle.
// @Summary Add certificate
// @Tags Vehicle
// @Param id path string true "Vehicle ID"
// @Param body body addCertificateRequest true "Certificate"
// @Success 200 {object} response.Resp
// @Router /admin/vehicles/{id}/certificates [POST]
func (h *Handler) AddCertificate(c *gin.Context) {
	ctx := c.Request.Context()

	var req addCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.vehicle.delivery.http.AddCertificate.ShouldBindJSON: %v", err)
		response.HttpError(c, errors.NewHTTPError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	cert, err := h.uc.AddCertificate(ctx, model.GetScopeFromContext(ctx), req.toInput(c.Param("id")))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, cert)
}

// DeleteCertificate removes a certificate.
// @Summary Delete certificate
// @Tags Vehicle
// @Param id path string true "Certificate ID"
// @Success 200 {object} response.Resp
// @Router /admin/certificates/{id} [DELETE]
func (h *Handler) DeleteCertificate(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteCertificate(ctx, model.GetScopeFromContext(ctx), c.Param("id")); err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, nil)
}
