package usecase

import (
	"autoexport-srv/internal/vehicle"
	"autoexport-srv/internal/vehicle/repository"
	pkgLog "autoexport-srv/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) vehicle.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
