package document

import "errors"

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrTitleRequired    = errors.New("document title is required")
	ErrFileURLRequired  = errors.New("document file URL is required")
)
