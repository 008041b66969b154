package http

import (
	"autoexport-srv/internal/inquiry"
	pkgLog "autoexport-srv/pkg/log"
)

type Handler struct {
	uc inquiry.UseCase
	l  pkgLog.Logger
}

func New(uc inquiry.UseCase, l pkgLog.Logger) *Handler {
	return &Handler{
		uc: uc,
		l:  l,
	}
}
