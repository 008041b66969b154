package http

import (
	"autoexport-srv/internal/job"
	pkgLog "autoexport-srv/pkg/log"
)

type Handler struct {
	uc job.UseCase
	l  pkgLog.Logger
}

func New(uc job.UseCase, l pkgLog.Logger) *Handler {
	return &Handler{
		uc: uc,
		l:  l,
	}
}
