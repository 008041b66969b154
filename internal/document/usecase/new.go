package usecase

import (
	"autoexport-srv/internal/document"
	"autoexport-srv/internal/document/repository"
	pkgLog "autoexport-srv/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) document.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
