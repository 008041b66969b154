package http

import (
	"net/http"

	"autoexport-srv/internal/upload"
	"autoexport-srv/pkg/errors"
	"autoexport-srv/pkg/response"
	"autoexport-srv/pkg/session"
)

var errorMapping = response.ErrorMapping{
	upload.ErrInvalidKind:        errors.NewHTTPError(http.StatusBadRequest, "Invalid upload kind"),
	upload.ErrInvalidContentType: errors.NewHTTPError(http.StatusBadRequest, "Content type not allowed"),
	upload.ErrFileTooLarge:       errors.NewHTTPError(http.StatusBadRequest, "File exceeds the maximum allowed size"),
	upload.ErrFileNameRequired:   errors.NewHTTPError(http.StatusBadRequest, "File name is required"),
	upload.ErrObjectNotFound:     errors.NewHTTPError(http.StatusNotFound, "Object not found"),
	session.ErrForbidden:         errors.NewForbiddenHTTPError(),
}
