package http

import (
	"autoexport-srv/internal/dashboard"
	pkgLog "autoexport-srv/pkg/log"
)

type Handler struct {
	uc dashboard.UseCase
	l  pkgLog.Logger
}

func New(uc dashboard.UseCase, l pkgLog.Logger) *Handler {
	return &Handler{
		uc: uc,
		l:  l,
	}
}
