package middleware

import (
	"autoexport-srv/pkg/log"
	"autoexport-srv/pkg/session"
)

type Middleware struct {
	l     log.Logger
	codec session.Codec
}

func New(l log.Logger, codec session.Codec) Middleware {
	return Middleware{
		l:     l,
		codec: codec,
	}
}
