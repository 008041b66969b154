package http

import (
	"autoexport-srv/internal/upload"
	pkgLog "autoexport-srv/pkg/log"
)

type Handler struct {
	uc upload.UseCase
	l  pkgLog.Logger
}

func New(uc upload.UseCase, l pkgLog.Logger) *Handler {
	return &Handler{
		uc: uc,
		l:  l,
	}
}
