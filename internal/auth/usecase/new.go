package usecase

import (
	"autoexport-srv/internal/auth"
	pkgLog "autoexport-srv/pkg/log"
	"autoexport-srv/pkg/session"
)

type usecase struct {
	l     pkgLog.Logger
	creds session.Credentials
	codec session.Codec
}

func New(l pkgLog.Logger, creds session.Credentials, codec session.Codec) auth.UseCase {
	return &usecase{
		l:     l,
		creds: creds,
		codec: codec,
	}
}
