package inquiry

import "errors"

var (
	ErrInquiryNotFound = errors.New("inquiry not found")
	ErrInvalidStatus   = errors.New("invalid inquiry status")
	ErrContactRequired = errors.New("contact name and email are required")
	ErrVehicleNotFound = errors.New("referenced vehicle not found")
)
