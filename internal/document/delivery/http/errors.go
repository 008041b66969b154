package http

import (
	"net/http"

	"autoexport-srv/internal/document"
	"autoexport-srv/pkg/errors"
	"autoexport-srv/pkg/response"
	"autoexport-srv/pkg/session"
)

var errorMapping = response.ErrorMapping{
	document.ErrDocumentNotFound: errors.NewHTTPError(http.StatusNotFound, "Document not found"),
	document.ErrTitleRequired:    errors.NewHTTPError(http.StatusBadRequest, "Document title is required"),
	document.ErrFileURLRequired:  errors.NewHTTPError(http.StatusBadRequest, "Document file URL is required"),
	session.ErrForbidden:         errors.NewForbiddenHTTPError(),
}
