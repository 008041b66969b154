package http

import (
	"net/http"

	"autoexport-srv/internal/vehicle"
	"autoexport-srv/pkg/errors"
	"autoexport-srv/pkg/response"
	"autoexport-srv/pkg/session"
)

var errorMapping = response.ErrorMapping{
	vehicle.ErrVehicleNotFound:     errors.NewHTTPError(http.StatusNotFound, "Vehicle not found"),
	vehicle.ErrImageNotFound:       errors.NewHTTPError(http.StatusNotFound, "Vehicle image not found"),
	vehicle.ErrCertificateNotFound: errors.NewHTTPError(http.StatusNotFound, "Certificate not found"),
	vehicle.ErrInvalidStatus:       errors.NewHTTPError(http.StatusBadRequest, "Invalid vehicle status"),
	vehicle.ErrInvalidPriceRange:   errors.NewHTTPError(http.StatusBadRequest, "Price range minimum exceeds maximum"),
	vehicle.ErrNameRequired:        errors.NewHTTPError(http.StatusBadRequest, "Vehicle name is required"),
	session.ErrForbidden:           errors.NewForbiddenHTTPError(),
}
