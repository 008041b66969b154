package job

import "errors"

var (
	ErrJobNotFound         = errors.New("job not found")
	ErrJobClosed           = errors.New("job is closed for applications")
	ErrApplicationNotFound = errors.New("job application not found")
	ErrInvalidStatus       = errors.New("invalid job status")
	ErrInvalidAppStatus    = errors.New("invalid application status")
	ErrTitleRequired       = errors.New("job title is required")
	ErrApplicantRequired   = errors.New("applicant name and email are required")
)
