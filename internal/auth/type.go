package auth

import "autoexport-srv/pkg/session"

type LoginInput struct {
	Password string
}

type LoginOutput struct {
	Token string
	Role  session.Role
}
