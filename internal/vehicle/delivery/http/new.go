package http

import (
	"autoexport-srv/internal/vehicle"
	pkgLog "autoexport-srv/pkg/log"
)

type Handler struct {
	uc vehicle.UseCase
	l  pkgLog.Logger
}

func New(uc vehicle.UseCase, l pkgLog.Logger) *Handler {
	return &Handler{
		uc: uc,
		l:  l,
	}
}
