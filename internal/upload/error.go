package upload

import "errors"

var (
	ErrInvalidKind        = errors.New("invalid upload kind")
	ErrInvalidContentType = errors.New("content type not allowed for this kind")
	ErrFileTooLarge       = errors.New("file exceeds the maximum allowed size")
	ErrFileNameRequired   = errors.New("file name is required")
	ErrObjectNotFound     = errors.New("object not found")
)
