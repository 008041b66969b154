package http

import (
	"autoexport-srv/internal/document"
	pkgLog "autoexport-srv/pkg/log"
)

type Handler struct {
	uc document.UseCase
	l  pkgLog.Logger
}

func New(uc document.UseCase, l pkgLog.Logger) *Handler {
	return &Handler{
		uc: uc,
		l:  l,
	}
}
