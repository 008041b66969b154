package http

import (
	"autoexport-srv/internal/auth"
	pkgLog "autoexport-srv/pkg/log"
)

type Handler struct {
	uc auth.UseCase
	l  pkgLog.Logger

	// secureCookies marks session cookies Secure; enabled in production.
	secureCookies bool
}

func New(uc auth.UseCase, l pkgLog.Logger, secureCookies bool) *Handler {
	return &Handler{
		uc:            uc,
		l:             l,
		secureCookies: secureCookies,
	}
}
