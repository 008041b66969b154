package auth

import "errors"

var (
	ErrNoPasswordsConfigured = errors.New("no admin passwords configured")
	ErrInvalidPassword       = errors.New("invalid password")
)
