package usecase

import (
	"autoexport-srv/internal/job"
	"autoexport-srv/internal/job/repository"
	pkgLog "autoexport-srv/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) job.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
