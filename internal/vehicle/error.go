package vehicle

import "errors"

var (
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrImageNotFound       = errors.New("vehicle image not found")
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrInvalidStatus       = errors.New("invalid vehicle status")
	ErrInvalidPriceRange   = errors.New("price range minimum exceeds maximum")
	ErrNameRequired        = errors.New("vehicle name is required")
)
