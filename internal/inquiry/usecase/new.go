package usecase

import (
	"autoexport-srv/internal/inquiry"
	"autoexport-srv/internal/inquiry/repository"
	vehicleRepo "autoexport-srv/internal/vehicle/repository"
	pkgLog "autoexport-srv/pkg/log"
	"autoexport-srv/pkg/mailer"
)

type usecase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	vehicles  vehicleRepo.Repository
	mailer    mailer.Mailer
	salesAddr string
}

func New(l pkgLog.Logger, repo repository.Repository, vehicles vehicleRepo.Repository, m mailer.Mailer, salesAddr string) inquiry.UseCase {
	return &usecase{
		l:         l,
		repo:      repo,
		vehicles:  vehicles,
		mailer:    m,
		salesAddr: salesAddr,
	}
}
