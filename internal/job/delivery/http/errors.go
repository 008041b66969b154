package http

import (
	"net/http"

	"autoexport-srv/internal/job"
	"autoexport-srv/pkg/errors"
	"autoexport-srv/pkg/response"
	"autoexport-srv/pkg/session"
)

var errorMapping = response.ErrorMapping{
	job.ErrJobNotFound:         errors.NewHTTPError(http.StatusNotFound, "Job not found"),
	job.ErrApplicationNotFound: errors.NewHTTPError(http.StatusNotFound, "Application not found"),
	job.ErrJobClosed:           errors.NewHTTPError(http.StatusConflict, "Job is closed for applications"),
	job.ErrInvalidStatus:       errors.NewHTTPError(http.StatusBadRequest, "Invalid job status"),
	job.ErrInvalidAppStatus:    errors.NewHTTPError(http.StatusBadRequest, "Invalid application status"),
	job.ErrTitleRequired:       errors.NewHTTPError(http.StatusBadRequest, "Job title is required"),
	job.ErrApplicantRequired:   errors.NewHTTPError(http.StatusBadRequest, "Applicant name and email are required"),
	session.ErrForbidden:       errors.NewForbiddenHTTPError(),
}
