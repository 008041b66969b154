package http

import (
	"net/http"

	"autoexport-srv/internal/inquiry"
	"autoexport-srv/pkg/errors"
	"autoexport-srv/pkg/response"
	"autoexport-srv/pkg/session"
)

var errorMapping = response.ErrorMapping{
	inquiry.ErrInquiryNotFound: errors.NewHTTPError(http.StatusNotFound, "Inquiry not found"),
	inquiry.ErrVehicleNotFound: errors.NewHTTPError(http.StatusBadRequest, "Referenced vehicle not found"),
	inquiry.ErrInvalidStatus:   errors.NewHTTPError(http.StatusBadRequest, "Invalid inquiry status"),
	inquiry.ErrContactRequired: errors.NewHTTPError(http.StatusBadRequest, "Contact name and email are required"),
	session.ErrForbidden:       errors.NewForbiddenHTTPError(),
}
